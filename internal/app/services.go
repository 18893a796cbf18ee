package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pixelbar/pixeld/internal/api"
	"github.com/pixelbar/pixeld/internal/config"
	"github.com/pixelbar/pixeld/internal/controller"
	"github.com/pixelbar/pixeld/internal/db"
	"github.com/pixelbar/pixeld/internal/ledger"
	"github.com/pixelbar/pixeld/internal/serialport"
)

// Services is a container for all application services.
// It manages service initialization order and dependencies.
type Services struct {
	cfg *config.Config

	// Core infrastructure
	DB     *db.DB         // nil when the ledger is disabled
	Ledger *ledger.Ledger // nil when the ledger is disabled
	Port   *serialport.Port

	// Command service and HTTP facade
	Controller *controller.Controller
	API        *api.Server

	wg sync.WaitGroup
}

// NewServices creates all services with proper dependency injection.
func NewServices(cfg *config.Config) (*Services, error) {
	s := &Services{cfg: cfg}

	// Initialize database + send-history ledger when enabled
	if cfg.Ledger.Enabled {
		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		s.DB = database
		s.Ledger = ledger.New(database.DB)
	}

	// Open the serial connection to the STM32 board
	port, err := serialport.Open(cfg.Serial)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Port = port

	// Initialize the command service
	var opts []controller.Option
	if s.Ledger != nil {
		opts = append(opts, controller.WithRecorder(s.Ledger))
	}
	s.Controller = controller.New(port, opts...)

	// Initialize the HTTP facade
	s.API = api.NewServer(cfg.Server.Host, cfg.Server.Port, s.Controller, s.Ledger)

	return s, nil
}

// Start starts all background services.
// The onFatalError callback is called when a service fails terminally.
func (s *Services) Start(ctx context.Context, onFatalError func(error)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.API.Run(ctx, s.cfg.ShutdownTimeout.Duration()); err != nil {
			onFatalError(err)
		}
	}()

	if s.Ledger != nil {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runLedgerCleanup(ctx)
		}()
	}
}

// runLedgerCleanup periodically applies the history retention policy.
func (s *Services) runLedgerCleanup(ctx context.Context) {
	retention := time.Duration(s.cfg.Ledger.RetentionDays) * 24 * time.Hour
	ticker := time.NewTicker(s.cfg.Ledger.CleanupInterval.Duration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.Ledger.DeleteOlderThan(retention)
			if err != nil {
				log.Error().Err(err).Msg("Ledger cleanup failed")
				continue
			}
			if deleted > 0 {
				log.Info().Int64("deleted", deleted).Msg("Ledger cleanup removed old entries")
			}
		}
	}
}

// Stop gracefully stops all services.
func (s *Services) Stop() error {
	s.wg.Wait()
	s.Close()
	return nil
}

// Close releases all resources.
func (s *Services) Close() {
	if s.Port != nil {
		if err := s.Port.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close serial device")
		}
	}
	if s.DB != nil {
		s.DB.Close()
	}
}
