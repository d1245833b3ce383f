package models

import (
	"time"

	"github.com/google/uuid"
)

type Barber struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	PhotoURL  string `gorm:"size:255" json:"photo_url"`
	Phone     string `gorm:"size:20" json:"phone"`
	Instagram string `gorm:"size:100" json:"instagram"`
	Bio       string `gorm:"size:255" json:"bio"`

	IsActive     bool `gorm:"default:true" json:"is_active"`
	DisplayOrder int  `gorm:"default:0" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
