package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Rating     int    `gorm:"default:5" json:"rating"`
	Comment    string `gorm:"size:500" json:"comment"`
	Source     string `gorm:"size:50" json:"source"`

	IsVisible bool `gorm:"default:true" json:"is_visible"`

	CreatedAt time.Time `json:"created_at"`
}
