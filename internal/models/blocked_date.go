package models

import (
	"time"

	"github.com/google/uuid"
)

// Bloqueio de agenda. Sem horário = dia inteiro; sem barbeiro = todos.
type BlockedDate struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	BlockedDate string `gorm:"type:date;not null;index" json:"blocked_date"`
	BlockedTime string `gorm:"size:5" json:"blocked_time"`

	BarberID *uuid.UUID `gorm:"type:uuid" json:"barber_id"`
	Barber   *Barber    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber,omitempty"`

	IsFullDay bool   `gorm:"default:false" json:"is_full_day"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
