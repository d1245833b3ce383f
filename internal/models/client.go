package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente identificado pelo telefone (somente dígitos). Os agregados de
// fidelidade só mudam quando um agendamento é concluído.
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	TotalVisits int             `gorm:"default:0" json:"total_visits"`
	TotalSpent  decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"total_spent"`
	LastVisitAt *time.Time      `json:"last_visit_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
