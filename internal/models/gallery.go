package models

import (
	"time"

	"github.com/google/uuid"
)

type GalleryItem struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Title    string `gorm:"size:100" json:"title"`
	ImageURL string `gorm:"size:255;not null" json:"image_url"`
	IsVideo  bool   `gorm:"default:false" json:"is_video"`

	IsActive     bool `gorm:"default:true" json:"is_active"`
	DisplayOrder int  `gorm:"default:0" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}
