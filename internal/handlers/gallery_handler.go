package handlers

import (
	"bytes"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
	"github.com/goldblade/barbershop-api/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type GalleryHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewGalleryHandler(db *gorm.DB, uploader *storage.Uploader) *GalleryHandler {
	return &GalleryHandler{db: db, uploader: uploader}
}

// ======================================================
// LISTAGEM
// ======================================================

func (h *GalleryHandler) List(c *gin.Context) {
	var items []models.GalleryItem
	if err := h.db.Order("display_order ASC").Find(&items).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar a galeria.")
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// UPLOAD (multipart → webp → bucket)
// ======================================================

func (h *GalleryHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Write(c, 503, "storage_unavailable", "Armazenamento indisponível.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo image.")
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

	key := storage.NewKey("gallery", "webp")
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", bytes.NewReader(encoded))
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar a imagem.")
		return
	}

	order, _ := strconv.Atoi(c.PostForm("display_order"))
	item := models.GalleryItem{
		Title:        c.PostForm("title"),
		ImageURL:     url,
		IsActive:     true,
		DisplayOrder: order,
	}
	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "create_failed", "Erro ao salvar o item.")
		return
	}

	c.JSON(201, item)
}

// ======================================================
// EXCLUSÃO
// ======================================================

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var item models.GalleryItem
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "gallery_item_not_found", "Item não encontrado.")
		return
	}

	if err := h.db.Delete(&item).Error; err != nil {
		httperr.Internal(c, "delete_failed", "Erro ao remover o item.")
		return
	}

	c.Status(204)
}
