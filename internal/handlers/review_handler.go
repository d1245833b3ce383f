package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

// ======================================================
// MODERAÇÃO
// ======================================================

func (h *ReviewHandler) List(c *gin.Context) {
	var reviews []models.Review
	if err := h.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar avaliações.")
		return
	}
	httpresp.List(c, reviews)
}

type moderateReviewRequest struct {
	IsVisible bool `json:"is_visible"`
}

func (h *ReviewHandler) Moderate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req moderateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result := h.db.Model(&models.Review{}).
		Where("id = ?", id).
		Update("is_visible", req.IsVisible)
	if result.Error != nil {
		httperr.Internal(c, "update_failed", "Erro ao moderar a avaliação.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "review_not_found", "Avaliação não encontrada.")
		return
	}

	c.Status(204)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	result := h.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Erro ao remover a avaliação.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "review_not_found", "Avaliação não encontrada.")
		return
	}

	c.Status(204)
}
