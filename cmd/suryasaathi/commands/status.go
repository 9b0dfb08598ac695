package commands

import (
	"context"
	"fmt"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/internal/config"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/api"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/auth"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
	"github.com/spf13/cobra"
)

var statusShowReport bool

var statusCmd = &cobra.Command{
	Use:   "status <application-id>",
	Short: "Show an application's backend status",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusShowReport, "report", false, "Also fetch the verification report")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	applicationID := args[0]

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config load failed")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config invalid")
	}

	client := api.NewClient(cfg.APIBaseURL, auth.NewFileStore(cfg.TokenPath))

	app, err := client.GetApplication(ctx, applicationID)
	if err != nil {
		return errors.Wrap(err, "status fetch failed")
	}

	fmt.Printf("Application: %s\n", app.ID)
	fmt.Printf("Status:      %s\n", app.Status)
	if app.Address != "" {
		fmt.Printf("Address:     %s\n", app.Address)
	}
	fmt.Printf("Registered:  %f, %f\n", app.RegisteredLat, app.RegisteredLon)
	if app.SubmissionDate != "" {
		fmt.Printf("Submitted:   %s\n", app.SubmissionDate)
	}

	if !statusShowReport {
		return nil
	}

	report, err := client.GetVerificationReport(ctx, applicationID)
	if err != nil {
		return errors.Wrap(err, "report fetch failed")
	}

	fmt.Println()
	fmt.Printf("Decision:    %s\n", report.Decision)
	fmt.Printf("Confidence:  %.2f\n", report.ConfidenceScore)
	if report.Reasoning != "" {
		fmt.Printf("Reasoning:   %s\n", report.Reasoning)
	}

	return nil
}
