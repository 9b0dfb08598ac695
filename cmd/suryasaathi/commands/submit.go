package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/internal/config"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/internal/tui"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/api"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/auth"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capture"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/db"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/device"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/photolib"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/workflow"
	"github.com/spf13/cobra"
	"github.com/superfly/fsm"
)

var submitCmd = &cobra.Command{
	Use:   "submit [application-id]",
	Short: "Capture location and photos, then submit for verification",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config load failed")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config invalid")
	}

	// Ensure all necessary directories exist
	if err := ensureDirectories(cfg.SQLitePath, cfg.FSMDBPath, cfg.WorkDir); err != nil {
		return err
	}

	repo, err := db.NewRepository(cfg.SQLitePath)
	if err != nil {
		return errors.Wrap(err, "db init failed")
	}
	defer repo.Close()

	store := auth.NewFileStore(cfg.TokenPath)
	client := api.NewClient(cfg.APIBaseURL, store)

	cameraDir := filepath.Join(cfg.WorkDir, "camera")
	library, err := photoLibrary(ctx, cfg)
	if err != nil {
		if cfg.CameraCommand == "" {
			return errors.Wrap(err, "photo library init failed")
		}
		// Camera-only setup: earlier captures double as the library.
		library = photolib.NewDirLibrary(cameraDir)
	}

	prompter := tui.NewPrompter()
	provider := device.NewProvider(cfg.LocationCommand, cfg.CameraCommand, library, prompter, prompter, cameraDir)

	identifier := ""
	if len(args) == 1 {
		identifier = args[0]
	}
	form := capture.NewForm(identifier)
	if identifier == "" {
		value, cancelled, err := tui.Input("Application ID:", "APP12345")
		if err != nil {
			return errors.Wrap(err, "identifier prompt failed")
		}
		if cancelled {
			return nil
		}
		form.SetIdentifier(value)
	}

	rules := capture.Rules{
		MinIdentifierLen:    cfg.MinIdentifierLen,
		AllowZeroCoordinate: cfg.AllowZeroCoordinate,
	}
	locations := capture.NewLocationCapturer(provider, prompter)
	photos := capture.NewPhotoCapturer(provider, prompter, prompter, provider.CameraAvailable())

	manager, err := fsm.New(fsm.Config{DBPath: cfg.FSMDBPath})
	if err != nil {
		return errors.Wrap(err, "FSM manager failed")
	}
	defer manager.Shutdown(10 * time.Second)

	machine := workflow.NewMachine(form, rules, client, repo, prompter, &submissionNavigator{repo: repo}, cfg.WorkDir, cfg.MaxPhotoSize)
	start, _, err := machine.Register(ctx, manager)
	if err != nil {
		return errors.Wrap(err, "FSM register failed")
	}

	slots := capture.SlotKeys()
	for {
		choice, cancelled, err := tui.Choose("SuryaSaathi - "+form.Identifier(), sessionOptions(form))
		if err != nil {
			return errors.Wrap(err, "menu failed")
		}
		if cancelled {
			return nil
		}

		switch {
		case choice == 0:
			if err := locations.Capture(ctx, form); err != nil {
				prompter.Notify(fmt.Sprintf("Location capture failed: %v", err))
			}
		case choice >= 1 && choice <= len(slots):
			if err := photos.Capture(ctx, form, slots[choice-1]); err != nil {
				prompter.Notify(fmt.Sprintf("Photo capture failed: %v", err))
			}
		case choice == len(slots)+1:
			if err := machine.Submit(ctx, manager, start); err == nil {
				return nil
			}
			// Failure keeps every captured value; the user can fix
			// and resubmit from the same session.
		default:
			return nil
		}
	}
}

// sessionOptions renders the capture menu with completion markers.
func sessionOptions(form *capture.Form) []string {
	mark := func(done bool) string {
		if done {
			return " [done]"
		}
		return ""
	}

	options := []string{
		"Capture GPS location" + mark(form.Latitude() != "" && form.Longitude() != ""),
	}
	for _, slot := range capture.SlotKeys() {
		options = append(options, "Add "+capture.SlotLabel(slot)+mark(form.Photo(slot) != nil))
	}
	return append(options, "Submit application", "Quit")
}

// submissionNavigator shows the local history after a successful submission.
type submissionNavigator struct {
	repo *db.Repository
}

func (n *submissionNavigator) ShowSubmissions(ctx context.Context) error {
	return renderSubmissions(n.repo)
}
