// Package device implements capability.Provider for field hardware reached
// through helper commands (termux-api style) and terminal prompts. The
// terminal consent prompt plays the role of the OS permission dialog: it is
// shown fresh on every request, so a denial is never sticky.
package device

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capability"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/photolib"
)

// ConsentPrompter asks the user to grant or deny one capability request.
type ConsentPrompter interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// PhotoPicker lets the user pick one photo by name, or cancel.
type PhotoPicker interface {
	PickPhoto(ctx context.Context, names []string) (name string, cancelled bool, err error)
}

// Provider is the production capability.Provider. Positioning and camera
// capture run through configured helper commands; the media library is
// served by a photolib source.
type Provider struct {
	locationCommand string
	cameraCommand   string
	library         photolib.Library
	picker          PhotoPicker
	consent         ConsentPrompter
	cameraDir       string
}

// NewProvider wires the device provider. An empty cameraCommand marks the
// environment as library-only.
func NewProvider(locationCommand, cameraCommand string, library photolib.Library, picker PhotoPicker, consent ConsentPrompter, cameraDir string) *Provider {
	return &Provider{
		locationCommand: locationCommand,
		cameraCommand:   cameraCommand,
		library:         library,
		picker:          picker,
		consent:         consent,
		cameraDir:       cameraDir,
	}
}

// CameraAvailable reports whether a camera helper is configured.
func (p *Provider) CameraAvailable() bool {
	return p.cameraCommand != ""
}

// RequestLocationPermission asks consent for the location capability.
func (p *Provider) RequestLocationPermission(ctx context.Context) (capability.Grant, error) {
	return p.confirm(ctx, "Allow suryasaathi to access the device location?")
}

// RequestCameraPermission asks consent for the camera capability.
func (p *Provider) RequestCameraPermission(ctx context.Context) (capability.Grant, error) {
	return p.confirm(ctx, "Allow suryasaathi to use the camera?")
}

// RequestLibraryPermission asks consent for the media library capability.
func (p *Provider) RequestLibraryPermission(ctx context.Context) (capability.Grant, error) {
	return p.confirm(ctx, "Allow suryasaathi to read the photo library?")
}

func (p *Provider) confirm(ctx context.Context, message string) (capability.Grant, error) {
	granted, err := p.consent.Confirm(ctx, message)
	if err != nil {
		return capability.Denied, errors.Wrap(err, "consent prompt failed")
	}
	if !granted {
		return capability.Denied, nil
	}
	return capability.Granted, nil
}

// CurrentPosition runs the positioning helper once and decodes its JSON
// output. The helper owns its own GPS timeout.
func (p *Provider) CurrentPosition(ctx context.Context) (capability.Position, error) {
	if p.locationCommand == "" {
		return capability.Position{}, errors.New("no positioning helper configured")
	}

	output, err := p.run(ctx, p.locationCommand)
	if err != nil {
		slog.Error("location_helper_failed", "command", p.locationCommand, "error", err)
		return capability.Position{}, errors.Wrap(err, "positioning helper failed")
	}

	return parsePosition(output)
}

// LaunchCamera runs the camera helper with a destination path appended as
// its final argument, and returns the written photo.
func (p *Provider) LaunchCamera(ctx context.Context) (capability.PickResult, error) {
	if p.cameraCommand == "" {
		return capability.PickResult{}, errors.New("no camera helper configured")
	}

	if err := os.MkdirAll(p.cameraDir, 0755); err != nil {
		return capability.PickResult{}, errors.Wrap(err, "failed to create camera dir")
	}
	dest := filepath.Join(p.cameraDir, fmt.Sprintf("capture_%d.jpg", time.Now().UnixNano()))

	if _, err := p.run(ctx, p.cameraCommand+" "+dest); err != nil {
		slog.Error("camera_helper_failed", "command", p.cameraCommand, "error", err)
		return capability.PickResult{}, errors.Wrap(err, "camera helper failed")
	}
	if _, err := os.Stat(dest); err != nil {
		return capability.PickResult{}, errors.Wrap(err, "camera helper wrote no photo")
	}

	slog.Info("camera_capture_complete", "path", dest)
	return capability.PickResult{Asset: capability.Asset{URI: dest}}, nil
}

// LaunchLibrary lists the library and lets the user pick one photo. An
// empty library or a closed picker is a cancellation, not an error.
func (p *Provider) LaunchLibrary(ctx context.Context) (capability.PickResult, error) {
	names, err := p.library.List(ctx)
	if err != nil {
		return capability.PickResult{}, errors.Wrap(err, "failed to list photo library")
	}
	if len(names) == 0 {
		slog.Warn("photo_library_empty")
		return capability.PickResult{Cancelled: true}, nil
	}

	name, cancelled, err := p.picker.PickPhoto(ctx, names)
	if err != nil {
		return capability.PickResult{}, errors.Wrap(err, "photo picker failed")
	}
	if cancelled {
		return capability.PickResult{Cancelled: true}, nil
	}

	path, err := p.library.Fetch(ctx, name)
	if err != nil {
		return capability.PickResult{}, errors.Wrap(err, "failed to fetch picked photo")
	}

	return capability.PickResult{Asset: capability.Asset{URI: path}}, nil
}

// run executes a helper command line. Arguments are whitespace-split; the
// helpers this client targets take no quoted arguments.
func (p *Provider) run(ctx context.Context, commandLine string) ([]byte, error) {
	parts := strings.Fields(commandLine)
	if len(parts) == 0 {
		return nil, errors.New("empty helper command")
	}

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w", msg, err)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// parsePosition decodes the JSON emitted by termux-location style helpers.
func parsePosition(output []byte) (capability.Position, error) {
	var body struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Accuracy  float64 `json:"accuracy"`
	}
	if err := json.Unmarshal(output, &body); err != nil {
		return capability.Position{}, errors.Wrap(err, "failed to decode positioning output")
	}

	return capability.Position{
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
		Accuracy:  body.Accuracy,
	}, nil
}
