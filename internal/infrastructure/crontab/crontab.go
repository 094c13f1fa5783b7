package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"github.com/chaosweaver007/Genesis/internal/config"
	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/logger"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/metrics"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

const (
	DefaultStatsRefreshInterval = 5               // in minutes
	CronJobTimeout              = 2 * time.Minute // Timeout for each cron job execution
)

type Crontab struct {
	ctab           *crontab.Crontab
	archiveService *archive.Service
}

func NewCrontab(archiveService *archive.Service) *Crontab {
	return &Crontab{
		ctab:           crontab.New(),
		archiveService: archiveService,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()
	// execute once on server start
	c.refreshArchiveGauges(ctx)

	// Schedule archive stats refresh job if enabled
	cfg := config.GetGlobal()
	if cfg != nil && cfg.StatsRefreshEnabled {
		interval := cfg.StatsRefreshIntervalMinutes
		if interval <= 0 {
			interval = DefaultStatsRefreshInterval
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", interval)
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.refreshArchiveGauges(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add stats refresh job")
		}
		log.Info().Msgf("Archive stats refresh scheduled: every %d minute(s)", interval)
	}

	// Schedule environment reload job
	if err := c.ctab.AddJob("* * * * *", func() {
		// Reload config
		config.Load()
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add env reload job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) refreshArchiveGauges(ctx context.Context) {
	log := logger.GetLogger()

	stats, err := c.archiveService.NetworkStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to refresh archive stats")
		return
	}

	metrics.SetArchiveGauges(
		stats.TotalConversations,
		stats.WisdomPatternsCount,
		stats.CollectiveInsightsCount,
		stats.ActiveSessions,
	)
}
