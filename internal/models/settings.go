package models

import (
	"time"

	"github.com/google/uuid"
)

// Registro único de configuração do negócio, criado no bootstrap do banco.
type Settings struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	BusinessName string `gorm:"size:100;not null;default:'Gold Blade'" json:"business_name"`
	Phone        string `gorm:"size:20" json:"phone"`
	WhatsApp     string `gorm:"size:20" json:"whatsapp"`
	Email        string `gorm:"size:100" json:"email"`
	Address      string `gorm:"size:255" json:"address"`
	Instagram    string `gorm:"size:100" json:"instagram"`
	LogoURL      string `gorm:"size:255" json:"logo_url"`

	OpeningHour string `gorm:"size:5;default:'09:00'" json:"opening_hour"`
	ClosingHour string `gorm:"size:5;default:'20:00'" json:"closing_hour"`
	WorkingDays string `gorm:"size:100" json:"working_days"`

	ReminderEnabled bool   `gorm:"default:true" json:"reminder_enabled"`
	ReminderDays    int    `gorm:"default:15" json:"reminder_days"`
	ReminderMessage string `gorm:"size:500" json:"reminder_message"`

	GPSLat float64 `json:"gps_lat"`
	GPSLng float64 `json:"gps_lng"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
