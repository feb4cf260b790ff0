package services

import (
	"context"
	"log"
	"time"

	"ooskills-backend/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// MaintenanceService runs scheduled housekeeping jobs. Today that is a
// nightly sweep of expired refresh token records; revoked rows are kept
// so lineage revocation stays visible until the whole lineage expires.
type MaintenanceService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	scheduler        *cron.Cron
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(refreshTokenRepo repositories.RefreshTokenRepository) *MaintenanceService {
	return &MaintenanceService{
		refreshTokenRepo: refreshTokenRepo,
		scheduler:        cron.New(),
	}
}

// Start schedules the background jobs
func (s *MaintenanceService) Start() {
	// 03:00 daily, off-peak
	s.scheduler.AddFunc("0 3 * * *", s.sweepExpiredTokens)
	s.scheduler.Start()
	log.Println("🚀 MaintenanceService started (token sweep daily at 03:00)")
}

// Stop stops the scheduler and waits for a running job to finish
func (s *MaintenanceService) Stop() {
	ctx := s.scheduler.Stop()
	<-ctx.Done()
	log.Println("🛑 MaintenanceService stopped")
}

func (s *MaintenanceService) sweepExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("❌ Token sweep failed: %v", err)
		return
	}
	log.Printf("✅ Token sweep removed %d expired refresh tokens", deleted)
}
