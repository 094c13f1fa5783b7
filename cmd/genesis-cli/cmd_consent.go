package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaosweaver007/Genesis/internal/domain/consent"
)

var consentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Session consent management",
	Long: `Inspect and update per-session consent preferences for conversation
archiving.

Examples:
  genesis-cli consent show my-session
  genesis-cli consent set my-session --level anonymous
  genesis-cli consent set my-session --level collective --collective-learning`,
}

var consentShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the effective consent preference for a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runConsentShow,
}

var consentSetCmd = &cobra.Command{
	Use:   "set <session-id>",
	Short: "Store a consent preference for a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runConsentSet,
}

func init() {
	consentCmd.AddCommand(consentShowCmd)
	consentCmd.AddCommand(consentSetCmd)

	// set flags
	consentSetCmd.Flags().String("level", "private", "Consent level: private, anonymous, collective")
	consentSetCmd.Flags().Int("retention-days", consent.DefaultRetentionDays, "Days to keep conversations before the sweep deletes them")
	consentSetCmd.Flags().Bool("collective-learning", false, "Allow conversations to feed pattern extraction")
	consentSetCmd.Flags().Bool("no-anonymization", false, "Skip anonymization for stored analysis fields")
}

func runConsentShow(cmd *cobra.Command, args []string) error {
	services, err := openServices()
	if err != nil {
		return err
	}

	preference, err := services.consent.Resolve(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("load consent preference: %w", err)
	}

	printPreference(preference)
	return nil
}

func runConsentSet(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("level")
	retentionDays, _ := cmd.Flags().GetInt("retention-days")
	collectiveLearning, _ := cmd.Flags().GetBool("collective-learning")
	noAnonymization, _ := cmd.Flags().GetBool("no-anonymization")

	services, err := openServices()
	if err != nil {
		return err
	}

	preference, err := services.consent.Set(cmd.Context(), &consent.Preference{
		SessionID:                 args[0],
		Level:                     consent.Level(level),
		DataRetentionDays:         retentionDays,
		CollectiveLearningEnabled: collectiveLearning,
		AnonymizationRequired:     !noAnonymization,
	})
	if err != nil {
		return fmt.Errorf("store consent preference: %w", err)
	}

	fmt.Println("Consent preference stored")
	printPreference(preference)
	return nil
}

// Helper functions

func printPreference(preference *consent.Preference) {
	fmt.Printf("Session:              %s\n", preference.SessionID)
	fmt.Printf("Level:                %s\n", preference.Level)
	fmt.Printf("Retention days:       %d\n", preference.DataRetentionDays)
	fmt.Printf("Collective learning:  %t\n", preference.CollectiveLearningEnabled)
	fmt.Printf("Anonymization:        %t\n", preference.AnonymizationRequired)
	if preference.UpdatedAt.IsZero() {
		fmt.Println("Stored:               no (implicit default)")
	} else {
		fmt.Printf("Updated at:           %s\n", preference.UpdatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	}
}
