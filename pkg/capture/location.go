package capture

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capability"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
)

// Sentinel outcomes shared by the capturers.
var (
	// ErrPermissionDenied reports that the user declined a capability.
	// Recoverable: re-invoking the same capture asks again.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrOperationInFlight reports that another capture or submission
	// currently holds the form.
	ErrOperationInFlight = errors.New("another operation is in progress")
)

// LocationCapturer acquires a single high-accuracy fix and writes it into
// the form's coordinate pair.
type LocationCapturer struct {
	broker   *capability.Broker
	provider capability.Provider
	notifier capability.Notifier
}

// NewLocationCapturer creates a location capturer over the device provider.
func NewLocationCapturer(provider capability.Provider, notifier capability.Notifier) *LocationCapturer {
	return &LocationCapturer{
		broker:   capability.NewBroker(provider),
		provider: provider,
		notifier: notifier,
	}
}

// Capture requests the location permission, takes one positioning fix, and
// overwrites the form's coordinate. The previous coordinate survives every
// failure path: denial and hardware errors leave the form untouched.
func (c *LocationCapturer) Capture(ctx context.Context, form *Form) error {
	if !form.BeginOperation() {
		return ErrOperationInFlight
	}
	defer form.EndOperation()

	grant, err := c.broker.Request(ctx, capability.Location)
	if err != nil {
		slog.Error("location_permission_request_failed", "error", err)
		return errors.Wrap(err, "location permission request failed")
	}
	if grant != capability.Granted {
		slog.Warn("location_permission_denied")
		c.notifier.Notify("Location permission is required to capture GPS coordinates.")
		return ErrPermissionDenied
	}

	slog.Info("location_fix_requested")
	pos, err := c.provider.CurrentPosition(ctx)
	if err != nil {
		slog.Error("location_fix_failed", "error", err)
		c.notifier.Notify("Could not read the current location. Please try again.")
		return errors.Wrap(err, "positioning fix failed")
	}

	form.SetPosition(pos.Latitude, pos.Longitude)
	slog.Info("location_captured",
		"latitude", form.Latitude(),
		"longitude", form.Longitude(),
		"accuracy_m", pos.Accuracy,
	)
	c.notifier.Notify(fmt.Sprintf("Location captured: %s, %s", form.Latitude(), form.Longitude()))

	return nil
}
