package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goldblade/barbershop-api/internal/config"
	dbpkg "github.com/goldblade/barbershop-api/internal/db"
	"github.com/goldblade/barbershop-api/internal/events"
	"github.com/goldblade/barbershop-api/internal/payments"
	"github.com/goldblade/barbershop-api/internal/routes"
	"github.com/goldblade/barbershop-api/internal/storage"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	deps := routes.Deps{Notifier: events.NopNotifier{}}

	if cfg.RedisURL != "" {
		notifier, err := events.NewRedisNotifier(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer notifier.Close()
		deps.Notifier = notifier
	}

	if cfg.S3Bucket != "" {
		uploader, err := storage.New(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure storage")
		}
		deps.Uploader = uploader
	}

	if cfg.MercadoPagoToken != "" {
		checkout, err := payments.New(cfg.MercadoPagoToken)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure mercadopago")
		}
		deps.Checkout = checkout
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, deps)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
