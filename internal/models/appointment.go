package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	// Nulo quando o cliente escolhe "qualquer barbeiro"
	BarberID *uuid.UUID `gorm:"type:uuid" json:"barber_id"`
	Barber   *Barber    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber,omitempty"`

	// Preenchido na conclusão, nunca na criação
	ClientID *uuid.UUID `gorm:"type:uuid" json:"client_id"`
	Client   *Client    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	AppointmentDate string `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_price"`
	Notes      string          `gorm:"size:255" json:"notes"`

	Services []AppointmentService `gorm:"constraint:OnDelete:CASCADE;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
