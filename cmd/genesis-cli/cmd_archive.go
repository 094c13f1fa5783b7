package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/infrastructure"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/repository/archiverepo"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/repository/consentrepo"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/transaction"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/logger"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Conversation archive maintenance",
	Long: `Operate on the conversation archive: run retention sweeps, synthesize
collective insights, and inspect network statistics.

Examples:
  genesis-cli archive sweep          # Delete conversations past retention
  genesis-cli archive synthesize     # Promote frequent patterns into insights
  genesis-cli archive stats          # Show archive-wide statistics`,
}

var archiveSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete conversations past their retention window",
	Long:  `Delete every conversation older than its session's retention period, in a single transaction.`,
	RunE:  runArchiveSweep,
}

var archiveSynthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Promote frequent wisdom patterns into collective insights",
	RunE:  runArchiveSynthesize,
}

var archiveStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show archive network statistics",
	RunE:  runArchiveStats,
}

func init() {
	archiveCmd.AddCommand(archiveSweepCmd)
	archiveCmd.AddCommand(archiveSynthesizeCmd)
	archiveCmd.AddCommand(archiveStatsCmd)

	// stats flags
	archiveStatsCmd.Flags().String("format", "text", "Output format: text, json")
}

func runArchiveSweep(cmd *cobra.Command, args []string) error {
	services, err := openServices()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var deleted int64
	err = services.db.Execute(cmd.Context(), func(txCtx context.Context) error {
		var sweepErr error
		deleted, sweepErr = services.archive.SweepExpired(txCtx, now)
		return sweepErr
	})
	if err != nil {
		return fmt.Errorf("run retention sweep: %w", err)
	}

	fmt.Printf("Deleted %d expired conversations\n", deleted)
	return nil
}

func runArchiveSynthesize(cmd *cobra.Command, args []string) error {
	services, err := openServices()
	if err != nil {
		return err
	}

	created, err := services.archive.SynthesizeInsights(cmd.Context())
	if err != nil {
		return fmt.Errorf("synthesize insights: %w", err)
	}

	fmt.Printf("Created %d collective insights\n", created)
	return nil
}

func runArchiveStats(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	services, err := openServices()
	if err != nil {
		return err
	}

	stats, err := services.archive.NetworkStats(cmd.Context())
	if err != nil {
		return fmt.Errorf("load network stats: %w", err)
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		fmt.Printf("Total conversations:   %d\n", stats.TotalConversations)
		fmt.Printf("Active sessions (7d):  %d\n", stats.ActiveSessions)
		fmt.Printf("Wisdom patterns:       %d\n", stats.WisdomPatternsCount)
		fmt.Printf("Collective insights:   %d\n", stats.CollectiveInsightsCount)
		if len(stats.ConsentBreakdown) > 0 {
			fmt.Println("Consent breakdown:")
			levels := make([]string, 0, len(stats.ConsentBreakdown))
			for level := range stats.ConsentBreakdown {
				levels = append(levels, level)
			}
			sort.Strings(levels)
			for _, level := range levels {
				fmt.Printf("  %-12s %d\n", level, stats.ConsentBreakdown[level])
			}
		}
		if len(stats.TopThemes) > 0 {
			fmt.Println("Top themes:")
			for _, theme := range stats.TopThemes {
				fmt.Printf("  %-12s %d\n", theme.ThemeCategory, theme.Frequency)
			}
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	return nil
}

// Helper functions

// cliServices bundles the database-backed services shared by CLI commands.
type cliServices struct {
	db      *transaction.Database
	archive *archive.Service
	consent *consent.Service
}

// openServices wires config, database, and domain services the same way the
// server does, minus the HTTP layer.
func openServices() (*cliServices, error) {
	cfg, err := infrastructure.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// CLI output goes to stdout; keep structured logs out of it unless debugging.
	log := logger.GetLogger()
	if cfg.LogLevel != "debug" {
		log = log.Level(zerolog.WarnLevel)
	}

	db, err := infrastructure.ProvideDatabase(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	txDB := infrastructure.ProvideTransactionDatabase(db)
	consentService := consent.NewService(consentrepo.NewConsentGormRepository(txDB))
	archiveService := archive.NewService(
		archiverepo.NewConversationRecordGormRepository(txDB),
		archiverepo.NewWisdomPatternGormRepository(txDB),
		archiverepo.NewCollectiveInsightGormRepository(txDB),
		consentService,
		log,
	)

	return &cliServices{
		db:      txDB,
		archive: archiveService,
		consent: consentService,
	}, nil
}
