package jobs

import (
	"context"
	"time"

	"entitysearch/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

type BusinessRepository interface {
	DeleteExpired(before int64) (int64, error)
}

type BusinessCacheCleaner struct {
	businessRepo BusinessRepository
	ttl          time.Duration
	interval     time.Duration
}

func NewBusinessCacheCleaner(repo BusinessRepository, ttl, interval time.Duration) *BusinessCacheCleaner {
	return &BusinessCacheCleaner{
		businessRepo: repo,
		ttl:          ttl,
		interval:     interval,
	}
}

func (c *BusinessCacheCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	log.Info("Business cache cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping business cache cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *BusinessCacheCleaner) cleanup() {
	now := utils.NowUTC()
	cutoff := now - c.ttl.Milliseconds()

	n, err := c.businessRepo.DeleteExpired(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired business cache: %v", err)
		return
	}

	log.Debugf("Cleaner: swept %d business caches older than %d", n, cutoff)
}
