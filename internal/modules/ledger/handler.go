package ledger

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studioops/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/expenses", h.RecordExpense)
	rg.POST("/bookings/:id/settle", h.SettleBooking)
	rg.POST("/transfers", h.Transfer)
	rg.DELETE("/transactions/:id", h.VoidTransaction)
	rg.GET("/accounts", h.ListAccounts)
	rg.GET("/transactions", h.ListTransactions)
}

func (h *Handler) RecordExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.RecordExpense(c.Request.Context(), c.GetInt64("tenant_id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"transaction": t})
}

func (h *Handler) SettleBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	var req SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.SettleBooking(c.Request.Context(), c.GetInt64("tenant_id"), bookingID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking_id":    b.ID,
		"paid_amount":   b.PaidAmount,
		"amount_due":    b.AmountDue(),
		"payment_state": b.PaymentState,
	})
}

func (h *Handler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Transfer(c.Request.Context(), c.GetInt64("tenant_id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"transaction": t})
}

func (h *Handler) VoidTransaction(c *gin.Context) {
	txID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid transaction ID")
		return
	}

	if err := h.service.VoidTransaction(c.Request.Context(), c.GetInt64("tenant_id"), txID); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"voided": txID})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.service.ListAccounts(c.Request.Context(), c.GetInt64("tenant_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"accounts": accounts})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	accountID, _ := strconv.ParseInt(c.Query("account_id"), 10, 64)
	bookingID, _ := strconv.ParseInt(c.Query("booking_id"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	txns, err := h.service.ListTransactions(c.Request.Context(), c.GetInt64("tenant_id"), accountID, bookingID, limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": txns})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var overErr *OverAllocationError
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.As(err, &overErr):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "OVER_ALLOCATION", overErr.Reason, gin.H{
			"requested": overErr.Requested,
			"limit":     overErr.Limit,
		})
	case errors.Is(err, ErrDuplicateRequest):
		response.Error(c, http.StatusConflict, "DUPLICATE_REQUEST", "This request was already processed")
	case errors.Is(err, ErrDegradedStore):
		response.Error(c, http.StatusServiceUnavailable, "DEGRADED_STORE", "Store cannot guarantee atomic rollback right now")
	case errors.Is(err, ErrAtomicWrite):
		response.Error(c, http.StatusServiceUnavailable, "ATOMIC_WRITE_FAILURE", "Write set could not be committed; retry the operation")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
