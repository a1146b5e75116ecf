package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PedroGomesFR/myPlanning/internal/httperr"
	"github.com/PedroGomesFR/myPlanning/internal/httpresp"
	"github.com/PedroGomesFR/myPlanning/internal/middleware"
	"github.com/PedroGomesFR/myPlanning/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// Catálogo fixo de categorias exibido no front.
var serviceCategories = []string{
	"Coiffure",
	"Coupe Femme",
	"Coupe Homme",
	"Coupe Enfant",
	"Barbier",
	"Coloration",
	"Mèches & Balayage",
	"Lissage & Défrisage",
	"Soins Capillaires",
	"Extensions Capillaires",
	"Manucure",
	"Pédicure",
	"Onglerie",
	"Épilation",
	"Épilation Définitive",
	"Beauté du Regard",
	"Maquillage",
	"Soins du Visage",
	"Soins du Corps",
	"Massage",
	"Spa & Balnéo",
	"Tatouage",
	"Piercing",
	"Bien-être",
	"Autre",
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Categories(c *gin.Context) {
	httpresp.OK(c, serviceCategories)
}

func (h *ServiceHandler) ListByProfessional(c *gin.Context) {
	professionalID := c.Param("professionalId")

	var services []models.Service
	if err := h.db.
		Where("professional_id = ?", professionalID).
		Order("created_at ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erreur serveur")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) MyServices(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var services []models.Service
	if err := h.db.
		Where("professional_id = ?", userID).
		Order("created_at ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erreur serveur")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	isClient := c.MustGet(middleware.ContextIsClient).(bool)

	if isClient {
		httperr.Forbidden(c, "professionals_only", "Réservé aux professionnels")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nom, durée et prix sont obligatoires")
		return
	}

	category := req.Category
	if category == "" {
		category = "Autre"
	}

	service := models.Service{
		ProfessionalID: userID,
		Name:           req.Name,
		Description:    req.Description,
		Duration:       req.Duration,
		Price:          req.Price,
		Category:       category,
		IsActive:       true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erreur serveur")
		return
	}

	httpresp.Created(c, gin.H{"service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND professional_id = ?", id, userID).
		First(&service).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Service introuvable")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erreur serveur")
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	res := h.db.Delete(&models.Service{}, "id = ? AND professional_id = ?", id, userID)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erreur serveur")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service introuvable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service supprimé"})
}
