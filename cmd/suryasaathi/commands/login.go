package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/internal/config"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/internal/tui"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/api"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/auth"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the access token",
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config load failed")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config invalid")
	}

	email, cancelled, err := tui.Input("Email:", "agent@example.com")
	if err != nil {
		return errors.Wrap(err, "email prompt failed")
	}
	if cancelled || email == "" {
		return errors.New("login cancelled")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return errors.Wrap(err, "password read failed")
	}

	client := api.NewClient(cfg.APIBaseURL, nil)
	token, err := client.Login(ctx, email, string(password))
	if err != nil {
		return errors.Wrap(err, "login failed")
	}

	store := auth.NewFileStore(cfg.TokenPath)
	if err := store.Save(token); err != nil {
		return errors.Wrap(err, "token save failed")
	}

	fmt.Println("Logged in.")
	return nil
}
