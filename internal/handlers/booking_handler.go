package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PedroGomesFR/myPlanning/internal/httperr"
	"github.com/PedroGomesFR/myPlanning/internal/httpresp"
	"github.com/PedroGomesFR/myPlanning/internal/middleware"
	ucBooking "github.com/PedroGomesFR/myPlanning/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateStatus
	delete       *ucBooking.DeleteBooking
	list         *ucBooking.ListMyBookings
	stats        *ucBooking.GetStats
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateStatus,
	delete *ucBooking.DeleteBooking,
	list *ucBooking.ListMyBookings,
	stats *ucBooking.GetStats,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		updateStatus: updateStatus,
		delete:       delete,
		list:         list,
		stats:        stats,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ProfessionalID string `json:"professionalId" binding:"required"`
	ServiceID      string `json:"serviceId" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	Notes          string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Champs obligatoires manquants")
		return
	}

	booking, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientID:       clientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Réservation créée",
		"booking": booking,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	isClient := c.MustGet(middleware.ContextIsClient).(bool)

	bookings, err := h.list.Execute(c.Request.Context(), userID, isClient)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erreur serveur")
		return
	}

	httpresp.OK(c, bookings)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_status", "Statut invalide")
		return
	}

	booking, err := h.updateStatus.Execute(c.Request.Context(), id, userID, req.Status)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Statut mis à jour",
		"booking": booking,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if err := h.delete.Execute(c.Request.Context(), id, userID); err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Réservation supprimée"})
}

// ======================================================
// STATS
// ======================================================

func (h *BookingHandler) Stats(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	isClient := c.MustGet(middleware.ContextIsClient).(bool)

	if isClient {
		httperr.Forbidden(c, "professionals_only", "Réservé aux professionnels")
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Erreur serveur")
		return
	}

	httpresp.OK(c, stats)
}
