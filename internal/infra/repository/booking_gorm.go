package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/models"
)

const pgUniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Configuração
// --------------------------------------------------

func (r *BookingGormRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// --------------------------------------------------
// Barbeiros
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uuid.UUID,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = true", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) CountActiveBarbers(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("is_active = true").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// --------------------------------------------------
// Serviços
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("display_order ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Clientes
// --------------------------------------------------

func (r *BookingGormRepository) FindClientByPhone(
	ctx context.Context,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// --------------------------------------------------
// Agenda (leitura reduzida, sem dados pessoais)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedSlots(
	ctx context.Context,
	date string,
) ([]domain.BookedSlot, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("appointment_date", "appointment_time", "barber_id").
		Where("appointment_date = ? AND status <> ?", date, string(domain.StatusCancelled)).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	slots := make([]domain.BookedSlot, 0, len(rows))
	for _, ap := range rows {
		slot := domain.BookedSlot{
			Date: ap.AppointmentDate,
			Time: ap.AppointmentTime,
		}
		if ap.BarberID != nil {
			slot.BarberID = ap.BarberID.String()
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (r *BookingGormRepository) ListBlockedSlots(
	ctx context.Context,
	date string,
) ([]domain.BlockedSlot, error) {

	var rows []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Where("blocked_date = ?", date).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	slots := make([]domain.BlockedSlot, 0, len(rows))
	for _, bd := range rows {
		slot := domain.BlockedSlot{
			Date:    bd.BlockedDate,
			Time:    bd.BlockedTime,
			FullDay: bd.IsFullDay,
		}
		if bd.BarberID != nil {
			slot.BarberID = bd.BarberID.String()
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// --------------------------------------------------
// Agendamentos
// --------------------------------------------------

// CreateAppointmentWithServices grava o agendamento e os itens na mesma
// transação: nunca fica item órfão de uma criação que falhou. O índice
// único parcial do banco transforma corrida de horário em time_conflict.
func (r *BookingGormRepository) CreateAppointmentWithServices(
	ctx context.Context,
	ap *models.Appointment,
	items []models.AppointmentService,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].AppointmentID = ap.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if isUniqueViolation(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Barber").
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Save(ap).Error
	if isUniqueViolation(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

// --------------------------------------------------
// Conclusão + upsert de cliente
// --------------------------------------------------

// CompleteAppointmentAndUpsertClient muda o status para completed e ajusta
// os agregados do cliente pelo telefone, tudo em uma transação. É o único
// caminho que mexe em total_visits/total_spent/last_visit_at.
func (r *BookingGormRepository) CompleteAppointmentAndUpsertClient(
	ctx context.Context,
	ap *models.Appointment,
	now time.Time,
) (*models.Client, error) {

	var client models.Client

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("phone = ?", ap.ClientPhone).First(&client).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			client = models.Client{
				Name:        ap.ClientName,
				Phone:       ap.ClientPhone,
				TotalVisits: 1,
				TotalSpent:  ap.TotalPrice,
				LastVisitAt: &now,
			}
			if err := tx.Create(&client).Error; err != nil {
				return err
			}

		case err != nil:
			return err

		default:
			client.Name = ap.ClientName
			client.TotalVisits++
			client.TotalSpent = client.TotalSpent.Add(ap.TotalPrice)
			client.LastVisitAt = &now
			if err := tx.Save(&client).Error; err != nil {
				return err
			}
		}

		ap.Status = string(domain.StatusCompleted)
		ap.ClientID = &client.ID
		return tx.Save(ap).Error
	})

	if err != nil {
		return nil, err
	}
	return &client, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
