package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/audit"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BlockedDateHandler struct {
	db      *gorm.DB
	auditor *audit.Dispatcher
}

func NewBlockedDateHandler(db *gorm.DB, auditor *audit.Dispatcher) *BlockedDateHandler {
	return &BlockedDateHandler{db: db, auditor: auditor}
}

// ======================================================
// CRUD
// ======================================================

type blockedDateRequest struct {
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time"`      // vazio + is_full_day = dia inteiro
	BarberID  string `json:"barber_id"` // vazio = todos os barbeiros
	IsFullDay bool   `json:"is_full_day"`
	Reason    string `json:"reason"`
}

func (h *BlockedDateHandler) List(c *gin.Context) {
	query := h.db.Preload("Barber").Order("blocked_date ASC, blocked_time ASC")

	if date := c.Query("date"); date != "" {
		if !isValidDate(date) {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		query = query.Where("blocked_date = ?", date)
	}

	var blocks []models.BlockedDate
	if err := query.Find(&blocks).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar bloqueios.")
		return
	}
	httpresp.List(c, blocks)
}

func (h *BlockedDateHandler) Create(c *gin.Context) {
	var req blockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !isValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}
	if !req.IsFullDay && req.Time != "" && !isValidSlot(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
		return
	}

	block := models.BlockedDate{
		BlockedDate: req.Date,
		IsFullDay:   req.IsFullDay,
		Reason:      req.Reason,
	}
	if !req.IsFullDay {
		block.BlockedTime = req.Time
	}

	if req.BarberID != "" {
		barberID, err := uuid.Parse(req.BarberID)
		if err != nil {
			httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		var barber models.Barber
		if err := h.db.First(&barber, "id = ?", barberID).Error; err != nil {
			httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		block.BarberID = &barber.ID
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "create_failed", "Erro ao criar bloqueio.")
		return
	}

	entityID := block.ID
	h.auditor.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "blocked_date.create",
		Entity:   "blocked_dates",
		EntityID: &entityID,
	})

	c.JSON(201, block)
}

func (h *BlockedDateHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	result := h.db.Delete(&models.BlockedDate{}, "id = ?", id)
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Erro ao remover bloqueio.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_date_not_found", "Bloqueio não encontrado.")
		return
	}

	h.auditor.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "blocked_date.delete",
		Entity:   "blocked_dates",
		EntityID: &id,
	})

	c.Status(204)
}
