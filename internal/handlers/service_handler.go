package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/audit"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db      *gorm.DB
	auditor *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, auditor *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, auditor: auditor}
}

// ======================================================
// CRUD
// ======================================================

type serviceRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	IsAdditional    bool            `json:"is_additional"`
	IsActive        *bool           `json:"is_active"`
	DisplayOrder    int             `json:"display_order"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("display_order ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
		return
	}

	service := models.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price.Round(2),
		DurationMinutes: req.DurationMinutes,
		IsAdditional:    req.IsAdditional,
		IsActive:        true,
		DisplayOrder:    req.DisplayOrder,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if service.DurationMinutes <= 0 {
		service.DurationMinutes = 30
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "create_failed", "Erro ao criar serviço.")
		return
	}

	h.log(c, "service.create", service.ID)
	c.JSON(201, service)
}

// Update não mexe nos itens de agendamentos existentes: eles guardam a
// cópia de nome e preço feita na reserva.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price.Round(2)
	service.IsAdditional = req.IsAdditional
	service.DisplayOrder = req.DisplayOrder
	if req.DurationMinutes > 0 {
		service.DurationMinutes = req.DurationMinutes
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "update_failed", "Erro ao atualizar serviço.")
		return
	}

	h.log(c, "service.update", service.ID)
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	result := h.db.Model(&models.Service{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Erro ao desativar serviço.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	h.log(c, "service.deactivate", id)
	c.Status(204)
}

func (h *ServiceHandler) log(c *gin.Context, action string, entityID uuid.UUID) {
	h.auditor.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   action,
		Entity:   "services",
		EntityID: &entityID,
	})
}
