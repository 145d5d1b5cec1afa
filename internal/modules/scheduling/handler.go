package scheduling

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studioops/internal/modules/ledger"
	"studioops/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/check", h.CheckBooking)
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListDay)
	rg.GET("/bookings/:id", h.GetBooking)
}

func (h *Handler) CheckBooking(c *gin.Context) {
	var req CheckBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	conflict, err := h.service.Check(c.Request.Context(), c.GetInt64("tenant_id"), req)
	if err != nil {
		h.respondError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"conflict": conflict})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, conflict, err := h.service.Create(c.Request.Context(), c.GetInt64("tenant_id"), req)
	if err != nil {
		h.respondError(c, err, conflict)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking":          b,
		"required_deposit": h.service.RequiredDeposit(b),
	})
}

func (h *Handler) ListDay(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	bookings, err := h.service.ListDay(c.Request.Context(), c.GetInt64("tenant_id"), dateStr)
	if err != nil {
		h.respondError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	b, err := h.service.Get(c.Request.Context(), c.GetInt64("tenant_id"), id)
	if err != nil {
		h.respondError(c, err, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking":     b,
		"grand_total": b.GrandTotal(),
		"amount_due":  b.AmountDue(),
	})
}

func (h *Handler) respondError(c *gin.Context, err error, conflict *Conflict) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, ErrHardConflict):
		response.ErrorWithDetails(c, http.StatusConflict, "HARD_CONFLICT", conflict.Message, conflict)
	case errors.Is(err, ErrSoftConflict):
		response.ErrorWithDetails(c, http.StatusConflict, "SOFT_CONFLICT", conflict.Message, conflict)
	case errors.Is(err, ErrFlaggedClient):
		response.Error(c, http.StatusConflict, "FLAGGED_CLIENT", "Client is flagged; explicit acknowledgment required")
	case errors.Is(err, ledger.ErrDuplicateRequest):
		response.Error(c, http.StatusConflict, "DUPLICATE_REQUEST", "This request was already processed")
	case errors.Is(err, ledger.ErrAtomicWrite):
		response.Error(c, http.StatusServiceUnavailable, "ATOMIC_WRITE_FAILURE", "Write set could not be committed; retry the operation")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
