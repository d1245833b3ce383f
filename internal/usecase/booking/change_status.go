package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/goldblade/barbershop-api/internal/audit"
	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/events"
	"github.com/goldblade/barbershop-api/internal/models"
	"github.com/goldblade/barbershop-api/internal/timezone"
)

// ChangeStatusUseCase agrupa as transições do ciclo de vida feitas pelo
// painel: confirmar, concluir e cancelar. A conclusão é a única transição
// com efeito colateral, o upsert do cliente.
type ChangeStatusUseCase struct {
	repo     domain.Repository
	auditor  *audit.Dispatcher
	notifier events.Notifier
}

func NewChangeStatusUseCase(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	notifier events.Notifier,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{repo: repo, auditor: auditor, notifier: notifier}
}

func (uc *ChangeStatusUseCase) Confirm(
	ctx context.Context,
	id uuid.UUID,
	actorID *uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CanConfirm(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusConfirmed)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.afterChange(ctx, ap, actorID, "appointment.confirm")
	return ap, nil
}

// Complete fecha o agendamento e atualiza os agregados do cliente na mesma
// transação do repositório.
func (uc *ChangeStatusUseCase) Complete(
	ctx context.Context,
	id uuid.UUID,
	actorID *uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if _, err := uc.repo.CompleteAppointmentAndUpsertClient(ctx, ap, timezone.Now()); err != nil {
		return nil, err
	}

	uc.afterChange(ctx, ap, actorID, "appointment.complete")
	return ap, nil
}

func (uc *ChangeStatusUseCase) Cancel(
	ctx context.Context,
	id uuid.UUID,
	actorID *uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusCancelled)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.afterChange(ctx, ap, actorID, "appointment.cancel")
	return ap, nil
}

func (uc *ChangeStatusUseCase) afterChange(
	ctx context.Context,
	ap *models.Appointment,
	actorID *uuid.UUID,
	action string,
) {
	_ = uc.notifier.Publish(ctx, events.Event{
		Table:   "appointments",
		Kind:    events.KindUpdate,
		Payload: ap,
	})

	if uc.auditor == nil {
		return
	}

	entityID := ap.ID
	uc.auditor.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   action,
		Entity:   "appointments",
		EntityID: &entityID,
		Metadata: map[string]string{"status": ap.Status},
	})
}
