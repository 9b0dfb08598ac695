package capture

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capability"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
)

// Source identifies where a photo capture comes from.
type Source int

const (
	SourceCancel Source = iota
	SourceCamera
	SourceLibrary
)

// SourceChooser presents the ternary camera/library/cancel choice for a
// slot. It is only consulted when the camera capability is available.
type SourceChooser interface {
	ChooseSource(ctx context.Context, slot SlotKey) (Source, error)
}

// PhotoCapturer fills one evidence slot per call from the camera or the
// media library. The camera flag is fixed at construction: environments
// without a camera get the library source directly, with no choice dialog.
type PhotoCapturer struct {
	broker          *capability.Broker
	provider        capability.Provider
	chooser         SourceChooser
	notifier        capability.Notifier
	cameraAvailable bool
}

// NewPhotoCapturer creates a photo capturer over the device provider.
func NewPhotoCapturer(provider capability.Provider, chooser SourceChooser, notifier capability.Notifier, cameraAvailable bool) *PhotoCapturer {
	return &PhotoCapturer{
		broker:          capability.NewBroker(provider),
		provider:        provider,
		chooser:         chooser,
		notifier:        notifier,
		cameraAvailable: cameraAvailable,
	}
}

// Capture acquires one image for slot and overwrites the slot's previous
// descriptor. Cancellation at any prompt is a normal outcome: the slot
// keeps its previous value and no error is returned. Each source carries
// its own permission; a camera grant never implies a library grant.
func (c *PhotoCapturer) Capture(ctx context.Context, form *Form, slot SlotKey) error {
	if !validSlot(slot) {
		return fmt.Errorf("unknown evidence slot: %s", slot)
	}
	if !form.BeginOperation() {
		return ErrOperationInFlight
	}
	defer form.EndOperation()

	source := SourceLibrary
	if c.cameraAvailable {
		chosen, err := c.chooser.ChooseSource(ctx, slot)
		if err != nil {
			slog.Error("photo_source_choice_failed", "slot", slot, "error", err)
			return errors.Wrap(err, "source choice failed")
		}
		source = chosen
	}
	if source == SourceCancel {
		slog.Info("photo_capture_cancelled", "slot", slot, "stage", "source_choice")
		return nil
	}

	kind := capability.MediaLibrary
	if source == SourceCamera {
		kind = capability.Camera
	}
	grant, err := c.broker.Request(ctx, kind)
	if err != nil {
		slog.Error("photo_permission_request_failed", "slot", slot, "kind", kind, "error", err)
		return errors.Wrap(err, "photo permission request failed")
	}
	if grant != capability.Granted {
		slog.Warn("photo_permission_denied", "slot", slot, "kind", kind)
		c.notifier.Notify(fmt.Sprintf("Permission for the %s is required to add this photo.", kind))
		return ErrPermissionDenied
	}

	var result capability.PickResult
	if source == SourceCamera {
		result, err = c.provider.LaunchCamera(ctx)
	} else {
		result, err = c.provider.LaunchLibrary(ctx)
	}
	if err != nil {
		slog.Error("photo_capture_failed", "slot", slot, "source", source, "error", err)
		c.notifier.Notify("Could not capture the photo. Please try again.")
		return errors.Wrap(err, "photo capture failed")
	}
	if result.Cancelled {
		slog.Info("photo_capture_cancelled", "slot", slot, "stage", "picker")
		return nil
	}

	desc := PhotoDescriptor{
		URI:       result.Asset.URI,
		Name:      DerivedName(slot, result.Asset.URI),
		MediaType: JPEGMediaType,
	}
	form.setPhoto(slot, desc)

	slog.Info("photo_captured", "slot", slot, "name", desc.Name)
	c.notifier.Notify(fmt.Sprintf("Photo saved for the %s.", SlotLabel(slot)))

	return nil
}
