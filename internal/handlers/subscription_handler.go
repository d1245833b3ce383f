package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type SubscriptionHandler struct {
	db *gorm.DB
}

func NewSubscriptionHandler(db *gorm.DB) *SubscriptionHandler {
	return &SubscriptionHandler{db: db}
}

// ======================================================
// CRUD
// ======================================================

type subscriptionRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Benefits    string          `json:"benefits"`
	IsActive    *bool           `json:"is_active"`
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	var subs []models.Subscription
	if err := h.db.Order("price ASC").Find(&subs).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar planos.")
		return
	}
	httpresp.List(c, subs)
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.Price.IsNegative() || req.Price.IsZero() {
		httperr.BadRequest(c, "invalid_price", "Preço deve ser maior que zero.")
		return
	}

	sub := models.Subscription{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Round(2),
		Benefits:    req.Benefits,
		IsActive:    true,
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}

	if err := h.db.Create(&sub).Error; err != nil {
		httperr.Internal(c, "create_failed", "Erro ao criar plano.")
		return
	}

	c.JSON(201, sub)
}

func (h *SubscriptionHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var sub models.Subscription
	if err := h.db.First(&sub, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "subscription_not_found", "Plano não encontrado.")
		return
	}

	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.Price.IsNegative() || req.Price.IsZero() {
		httperr.BadRequest(c, "invalid_price", "Preço deve ser maior que zero.")
		return
	}

	sub.Name = req.Name
	sub.Description = req.Description
	sub.Price = req.Price.Round(2)
	sub.Benefits = req.Benefits
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}

	if err := h.db.Save(&sub).Error; err != nil {
		httperr.Internal(c, "update_failed", "Erro ao atualizar plano.")
		return
	}

	httpresp.OK(c, sub)
}

func (h *SubscriptionHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	result := h.db.Model(&models.Subscription{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Erro ao desativar plano.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "subscription_not_found", "Plano não encontrado.")
		return
	}

	c.Status(204)
}
