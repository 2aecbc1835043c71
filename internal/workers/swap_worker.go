package workers

import (
	"context"
	"time"

	"skillswap_backend/internal/config"
	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"

	"gorm.io/gorm"
)

const workerName = "swap_worker"

// SwapWorker auto-rejects pending swap requests that were never answered
// and purges expired refresh tokens on the same tick.
type SwapWorker struct {
	db        *gorm.DB
	swapRepo  repositories.SwapRepository
	tokenRepo repositories.RefreshTokenRepository
	interval  time.Duration
}

func NewSwapWorker(db *gorm.DB, swapRepo repositories.SwapRepository, tokenRepo repositories.RefreshTokenRepository) *SwapWorker {
	return &SwapWorker{
		db:        db,
		swapRepo:  swapRepo,
		tokenRepo: tokenRepo,
		interval:  1 * time.Hour,
	}
}

func (w *SwapWorker) Start(ctx context.Context) {
	go w.expirePendingSwaps(ctx)
}

func (w *SwapWorker) expirePendingSwaps(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.WorkerLog(workerName, "stop", nil)
			return
		case <-ticker.C:
			w.runOnce()
		}
	}
}

func (w *SwapWorker) runOnce() {
	if err := w.tokenRepo.DeleteExpired(w.db); err != nil {
		logger.WorkerLog(workerName, "purge_expired_tokens", err)
	}

	ttlDays := config.GetConfig().Swap.PendingTTLDays
	cutoff := time.Now().AddDate(0, 0, -ttlDays)

	expired, err := w.swapRepo.FindPendingOlderThan(w.db, cutoff)
	if err != nil {
		logger.WorkerLog(workerName, "find_stale_pending", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	rejected := 0
	for i := range expired {
		if err := w.swapRepo.UpdateStatus(w.db, expired[i].ID, models.SwapStatusRejected); err != nil {
			logger.WorkerLog(workerName, "auto_reject "+expired[i].ID, err)
			continue
		}
		rejected++
	}

	logger.Info("auto-rejected stale pending swaps", "worker", workerName, "count", rejected)
}
