package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PedroGomesFR/myPlanning/internal/httperr"
	"github.com/PedroGomesFR/myPlanning/internal/httpresp"
	"github.com/PedroGomesFR/myPlanning/internal/middleware"
	ucAvailability "github.com/PedroGomesFR/myPlanning/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	getSettings    *ucAvailability.GetSettings
	updateSettings *ucAvailability.UpdateSettings
	getSlots       *ucAvailability.GetSlots
}

func NewAvailabilityHandler(
	getSettings *ucAvailability.GetSettings,
	updateSettings *ucAvailability.UpdateSettings,
	getSlots *ucAvailability.GetSlots,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getSettings:    getSettings,
		updateSettings: updateSettings,
		getSlots:       getSlots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateSettingsRequest struct {
	WorkingDays  []string `json:"working_days" binding:"required"`
	StartTime    string   `json:"start_time" binding:"required"`
	EndTime      string   `json:"end_time" binding:"required"`
	BreakStart   string   `json:"break_start"`
	BreakEnd     string   `json:"break_end"`
	SlotDuration int      `json:"slot_duration" binding:"required"`
}

// ======================================================
// SETTINGS
// ======================================================

// GET /api/availability/settings/:professionalId — público, devolve o
// perfil salvo ou o padrão.
func (h *AvailabilityHandler) GetSettings(c *gin.Context) {
	professionalID := c.Param("professionalId")

	settings, err := h.getSettings.Execute(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_settings", "Erreur serveur")
		return
	}

	httpresp.OK(c, settings)
}

// POST /api/availability/settings — o chamador só altera o próprio perfil.
func (h *AvailabilityHandler) UpdateSettings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	isClient := c.MustGet(middleware.ContextIsClient).(bool)

	if isClient {
		httperr.Forbidden(c, "professionals_only", "Réservé aux professionnels")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides")
		return
	}

	settings, err := h.updateSettings.Execute(c.Request.Context(), userID, ucAvailability.UpdateSettingsInput{
		WorkingDays:  req.WorkingDays,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakStart:   req.BreakStart,
		BreakEnd:     req.BreakEnd,
		SlotDuration: req.SlotDuration,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Paramètres mis à jour",
		"settings": settings,
	})
}

// ======================================================
// SLOTS
// ======================================================

// GET /api/availability/slots/:professionalId?date=YYYY-MM-DD
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	professionalID := c.Param("professionalId")

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date requise")
		return
	}

	slots, err := h.getSlots.Execute(c.Request.Context(), professionalID, date)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, slots)
}
