package handlers

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/audit"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
	"github.com/goldblade/barbershop-api/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	auditor  *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, uploader *storage.Uploader, auditor *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, uploader: uploader, auditor: auditor}
}

// ======================================================
// CRUD
// ======================================================

type barberRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Instagram    string `json:"instagram"`
	Bio          string `json:"bio"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("display_order ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar barbeiros.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req barberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber := models.Barber{
		Name:         req.Name,
		Phone:        req.Phone,
		Instagram:    req.Instagram,
		Bio:          req.Bio,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
	}
	if req.IsActive != nil {
		barber.IsActive = *req.IsActive
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "create_failed", "Erro ao criar barbeiro.")
		return
	}

	h.log(c, "barber.create", barber.ID)
	c.JSON(201, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req barberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber.Name = req.Name
	barber.Phone = req.Phone
	barber.Instagram = req.Instagram
	barber.Bio = req.Bio
	barber.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		barber.IsActive = *req.IsActive
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "update_failed", "Erro ao atualizar barbeiro.")
		return
	}

	h.log(c, "barber.update", barber.ID)
	httpresp.OK(c, barber)
}

// Delete desativa em vez de remover: agendamentos antigos continuam
// apontando para o barbeiro.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	result := h.db.Model(&models.Barber{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Erro ao desativar barbeiro.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	h.log(c, "barber.deactivate", id)
	c.Status(204)
}

// ======================================================
// FOTO
// ======================================================

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	if h.uploader == nil {
		httperr.Write(c, 503, "storage_unavailable", "Armazenamento indisponível.")
		return
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo photo.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao ler o arquivo.")
		return
	}
	defer src.Close()

	encoded, err := storage.EncodeWebP(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}

	key := storage.NewKey("barbers", "webp")
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", bytes.NewReader(encoded))
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar a imagem.")
		return
	}

	barber.PhotoURL = url
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "update_failed", "Erro ao salvar a foto.")
		return
	}

	h.log(c, "barber.photo", barber.ID)
	httpresp.OK(c, barber)
}

func (h *BarberHandler) log(c *gin.Context, action string, entityID uuid.UUID) {
	h.auditor.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   action,
		Entity:   "barbers",
		EntityID: &entityID,
	})
}
