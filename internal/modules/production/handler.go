package production

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studioops/internal/domain"
	"studioops/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:id/status", h.SetStatus)
	rg.GET("/bookings/outstanding", h.ListOutstanding)
}

func (h *Handler) SetStatus(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.SetStatus(
		c.Request.Context(),
		c.GetInt64("tenant_id"),
		bookingID,
		c.GetInt64("user_id"),
		domain.BookingStatus(req.Status),
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking_id": b.ID,
		"status":     b.Status,
		"tasks":      b.Tasks,
	})
}

func (h *Handler) ListOutstanding(c *gin.Context) {
	out, err := h.service.ListOutstanding(c.Request.Context(), c.GetInt64("tenant_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list outstanding bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"outstanding": out})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var gateErr *OutstandingBalanceError
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrUnknownStatus), errors.Is(err, ErrNoChange):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrTerminalState):
		response.Error(c, http.StatusConflict, "TERMINAL_STATE", "Booking is in a terminal state")
	case errors.As(err, &gateErr):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "PAYMENT_OUTSTANDING", gateErr.Error(), gin.H{
			"booking_id": gateErr.BookingID,
			"amount_due": gateErr.AmountDue,
		})
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
	}
}
