package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/audit"
	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
	usecase "github.com/goldblade/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db      *gorm.DB
	status  *usecase.ChangeStatusUseCase
	auditor *audit.Dispatcher
}

func NewAppointmentHandler(
	db *gorm.DB,
	status *usecase.ChangeStatusUseCase,
	auditor *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{db: db, status: status, auditor: auditor}
}

// ======================================================
// LISTAGEM
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	query := h.db.
		Preload("Services").
		Preload("Barber").
		Order("appointment_date DESC, appointment_time DESC")

	if date := c.Query("date"); date != "" {
		if !isValidDate(date) {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		query = query.Where("appointment_date = ?", date)
	}

	if status := c.Query("status"); status != "" {
		if !domain.IsValidStatus(status) {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.Preload("Services").Preload("Barber").
		First(&ap, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// EDIÇÃO (data, hora, barbeiro, observações)
// ======================================================

type updateAppointmentRequest struct {
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	BarberID *string `json:"barber_id"` // uuid, "any" limpa o barbeiro
	Notes    *string `json:"notes"`
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if req.Date != nil {
		if !isValidDate(*req.Date) {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		ap.AppointmentDate = *req.Date
	}
	if req.Time != nil {
		if !isValidSlot(*req.Time) {
			httperr.BadRequest(c, "invalid_time", "Hora inválida.")
			return
		}
		ap.AppointmentTime = *req.Time
	}
	if req.BarberID != nil {
		if *req.BarberID == domain.AnyBarber || *req.BarberID == "" {
			ap.BarberID = nil
		} else {
			barberID, err := uuid.Parse(*req.BarberID)
			if err != nil {
				httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
				return
			}
			var barber models.Barber
			if err := h.db.Where("id = ? AND is_active = true", barberID).
				First(&barber).Error; err != nil {
				httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
				return
			}
			ap.BarberID = &barber.ID
		}
	}
	if req.Notes != nil {
		ap.Notes = *req.Notes
	}

	if err := h.db.Save(&ap).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			httperr.Conflict(c, "time_conflict", "Horário já ocupado.")
			return
		}
		httperr.Internal(c, "update_failed", "Erro ao atualizar o agendamento.")
		return
	}

	entityID := ap.ID
	h.auditor.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "appointment.update",
		Entity:   "appointments",
		EntityID: &entityID,
	})

	httpresp.OK(c, ap)
}

// ======================================================
// TRANSIÇÕES DE STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.status.Confirm)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.status.Complete)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.status.Cancel)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	fn func(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*models.Appointment, error),
) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := fn(c.Request.Context(), id, actorID(c))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.Conflict(c, "invalid_state", "Transição de status inválida.")
			return
		}
		httperr.Internal(c, "status_change_failed", "Erro ao mudar o status.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// EXCLUSÃO
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	// Remove os itens junto: nunca fica item órfão.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appointment_id = ?", ap.ID).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ap).Error
	})
	if err != nil {
		httperr.Internal(c, "delete_failed", "Erro ao excluir o agendamento.")
		return
	}

	entityID := ap.ID
	h.auditor.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "appointment.delete",
		Entity:   "appointments",
		EntityID: &entityID,
	})

	c.Status(204)
}
