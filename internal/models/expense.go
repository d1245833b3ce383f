package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	ExpenseDate string          `gorm:"type:date;not null;index" json:"expense_date"`

	// fixed ou variable
	ExpenseType string `gorm:"size:20;default:'variable'" json:"expense_type"`
	Category    string `gorm:"size:50" json:"category"`
	Notes       string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
