package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item de serviço do agendamento. Nome e preço são cópias do catálogo no
// momento da reserva: edições posteriores do serviço não alteram o histórico.
type AppointmentService struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`

	ServiceID *uuid.UUID `gorm:"type:uuid" json:"service_id"`

	ServiceName string          `gorm:"size:100;not null" json:"service_name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
