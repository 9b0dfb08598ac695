package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capture"
)

// Prompter adapts the terminal prompts to the collaborator interfaces the
// capture and device layers expect: source choice, photo picking, consent
// dialogs, and user notifications.
type Prompter struct {
	styles *Styles
	out    io.Writer
}

// NewPrompter creates a prompter writing notifications to stdout.
func NewPrompter() *Prompter {
	return &Prompter{
		styles: DefaultStyles(),
		out:    os.Stdout,
	}
}

// ChooseSource presents the camera/library/cancel menu for a photo slot.
func (p *Prompter) ChooseSource(ctx context.Context, slot capture.SlotKey) (capture.Source, error) {
	title := fmt.Sprintf("Add the %s from:", capture.SlotLabel(slot))
	index, cancelled, err := Choose(title, []string{"Take photo", "Photo library", "Cancel"})
	if err != nil {
		return capture.SourceCancel, err
	}
	if cancelled {
		return capture.SourceCancel, nil
	}

	switch index {
	case 0:
		return capture.SourceCamera, nil
	case 1:
		return capture.SourceLibrary, nil
	default:
		return capture.SourceCancel, nil
	}
}

// PickPhoto presents the library contents and returns the chosen name.
func (p *Prompter) PickPhoto(ctx context.Context, names []string) (string, bool, error) {
	index, cancelled, err := Choose("Pick a photo:", names)
	if err != nil {
		return "", false, err
	}
	if cancelled {
		return "", true, nil
	}
	return names[index], false, nil
}

// Confirm presents a consent dialog. The dialog is shown fresh on every
// call; dismissing it counts as a denial.
func (p *Prompter) Confirm(ctx context.Context, message string) (bool, error) {
	index, cancelled, err := Choose(message, []string{"Allow", "Deny"})
	if err != nil {
		return false, err
	}
	return !cancelled && index == 0, nil
}

// Notify prints a user-facing message.
func (p *Prompter) Notify(message string) {
	fmt.Fprintln(p.out, p.styles.Normal.Render(message))
}
