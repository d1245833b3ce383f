package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/audit"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
	"github.com/goldblade/barbershop-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type SettingsHandler struct {
	db      *gorm.DB
	auditor *audit.Dispatcher
}

func NewSettingsHandler(db *gorm.DB, auditor *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{db: db, auditor: auditor}
}

// ======================================================
// GET / UPDATE (registro único)
// ======================================================

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.Settings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Configuração não encontrada.")
		return
	}
	httpresp.OK(c, settings)
}

type updateSettingsRequest struct {
	BusinessName string  `json:"business_name"`
	Phone        string  `json:"phone"`
	WhatsApp     string  `json:"whatsapp"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Instagram    string  `json:"instagram"`
	LogoURL      string  `json:"logo_url"`
	OpeningHour  string  `json:"opening_hour"`
	ClosingHour  string  `json:"closing_hour"`
	WorkingDays  string  `json:"working_days"`
	GPSLat       float64 `json:"gps_lat"`
	GPSLng       float64 `json:"gps_lng"`

	ReminderEnabled *bool  `json:"reminder_enabled"`
	ReminderDays    int    `json:"reminder_days"`
	ReminderMessage string `json:"reminder_message"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.Settings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Configuração não encontrada.")
		return
	}

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.OpeningHour != "" || req.ClosingHour != "" {
		opening := settings.OpeningHour
		closing := settings.ClosingHour
		if req.OpeningHour != "" {
			opening = req.OpeningHour
		}
		if req.ClosingHour != "" {
			closing = req.ClosingHour
		}
		if !isValidSlot(opening) || !isValidSlot(closing) || opening >= closing {
			httperr.BadRequest(c, "invalid_hours", "Horário de funcionamento inválido.")
			return
		}
		settings.OpeningHour = opening
		settings.ClosingHour = closing
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail de contato inválido.")
		return
	}

	if req.BusinessName != "" {
		settings.BusinessName = req.BusinessName
	}
	settings.Phone = req.Phone
	settings.WhatsApp = req.WhatsApp
	settings.Email = req.Email
	settings.Address = req.Address
	settings.Instagram = req.Instagram
	settings.LogoURL = req.LogoURL
	settings.WorkingDays = req.WorkingDays
	settings.GPSLat = req.GPSLat
	settings.GPSLng = req.GPSLng

	if req.ReminderEnabled != nil {
		settings.ReminderEnabled = *req.ReminderEnabled
	}
	if req.ReminderDays > 0 {
		settings.ReminderDays = req.ReminderDays
	}
	if req.ReminderMessage != "" {
		settings.ReminderMessage = req.ReminderMessage
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "update_failed", "Erro ao salvar a configuração.")
		return
	}

	entityID := settings.ID
	h.auditor.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "settings.update",
		Entity:   "settings",
		EntityID: &entityID,
	})

	httpresp.OK(c, settings)
}
