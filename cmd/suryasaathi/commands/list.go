package commands

import (
	"fmt"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/internal/config"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/db"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded submission attempts",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config load failed")
	}

	// Ensure database directory exists
	if err := ensureDirectories(cfg.SQLitePath, "", ""); err != nil {
		return err
	}

	repo, err := db.NewRepository(cfg.SQLitePath)
	if err != nil {
		return errors.Wrap(err, "db init failed")
	}
	defer repo.Close()

	return renderSubmissions(repo)
}

func renderSubmissions(repo *db.Repository) error {
	subs, err := repo.List()
	if err != nil {
		return errors.Wrap(err, "list failed")
	}

	if len(subs) == 0 {
		fmt.Println("No submissions found")
		return nil
	}

	fmt.Printf("%-16s %-10s %-12s %-12s %-20s %s\n", "APPLICATION", "STATUS", "LAT", "LON", "CREATED", "DETAIL")
	fmt.Println("------------------------------------------------------------------------------------------------")

	for _, sub := range subs {
		detail := sub.Detail
		if detail == "" {
			detail = "-"
		}
		fmt.Printf("%-16s %-10s %-12s %-12s %-20s %s\n",
			sub.ApplicationID, sub.Status, sub.Latitude, sub.Longitude, sub.CreatedAt, detail)
	}

	return nil
}
