package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/config"
	"github.com/goldblade/barbershop-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Barber{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.BlockedDate{},
		&models.Settings{},
		&models.GalleryItem{},
		&models.Review{},
		&models.Expense{},
		&models.Subscription{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Fecha a corrida de double-booking no banco: um barbeiro não pode ter
	// dois agendamentos ativos no mesmo dia e horário. Agendamentos
	// "qualquer barbeiro" (barber_id nulo) ficam de fora de propósito — o
	// limite deles é a contagem de barbeiros ativos na disponibilidade.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (appointment_date, appointment_time, barber_id)
        WHERE status IN ('pending', 'confirmed') AND barber_id IS NOT NULL
    `)

	seedSettings(db)

	return db
}

// seedSettings garante o registro único de configuração.
func seedSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.Settings{}).Count(&count)
	if count > 0 {
		return
	}

	settings := models.Settings{
		BusinessName:    "Gold Blade",
		OpeningHour:     "09:00",
		ClosingHour:     "20:00",
		ReminderEnabled: true,
		ReminderDays:    15,
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed settings")
	}
}
