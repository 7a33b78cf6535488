// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kyhorne/coload/config"
	"github.com/kyhorne/coload/internal/repository"
	"github.com/kyhorne/coload/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB           *repository.MongoDB
	AuditService service.CheckoutAuditService
}

// InitializeDatabase initializes the MongoDB connection and the checkout
// audit trail. Returns nil if the database is disabled or connection fails;
// the service runs without an audit trail in that case.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without audit trail")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	logsRepo := repository.NewCheckoutLogsRepository(db)
	auditService := service.NewCheckoutAuditService(logsRepo)

	return &DatabaseComponents{
		DB:           db,
		AuditService: auditService,
	}
}
