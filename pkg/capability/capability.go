// Package capability models permission-gated access to device hardware.
// Grant state is requested fresh on every call: a past denial is never
// cached, so a user who changes device settings between attempts is picked
// up on the next request.
package capability

import (
	"context"
	"fmt"
)

// Kind identifies one hardware capability the workflow may request.
type Kind string

const (
	Location     Kind = "location"
	Camera       Kind = "camera"
	MediaLibrary Kind = "media_library"
)

// Grant is the outcome of a permission request. Denial is an expected,
// first-class outcome the caller must branch on, never an error.
type Grant int

const (
	Denied Grant = iota
	Granted
)

func (g Grant) String() string {
	if g == Granted {
		return "granted"
	}
	return "denied"
}

// Position is a single positioning fix in decimal degrees.
type Position struct {
	Latitude  float64
	Longitude float64
	// Accuracy is in metres, zero when the source does not report it.
	Accuracy float64
}

// Asset is one captured or picked media item. URI is a local file path in
// this client; remote library sources materialize into the media cache
// before returning.
type Asset struct {
	URI string
}

// PickResult is the outcome of a camera or library launch. Cancelled is a
// normal outcome, not an error: the slot it targeted stays unchanged.
type PickResult struct {
	Cancelled bool
	Asset     Asset
}

// Provider is the device-side collaborator: permission dialogs, the
// positioning subsystem, and the camera/library pickers. Implementations
// own their own timeouts.
type Provider interface {
	RequestLocationPermission(ctx context.Context) (Grant, error)
	RequestCameraPermission(ctx context.Context) (Grant, error)
	RequestLibraryPermission(ctx context.Context) (Grant, error)

	CurrentPosition(ctx context.Context) (Position, error)
	LaunchCamera(ctx context.Context) (PickResult, error)
	LaunchLibrary(ctx context.Context) (PickResult, error)
}

// Notifier surfaces user-facing acknowledgments and error prompts.
type Notifier interface {
	Notify(message string)
}

// Broker dispatches permission requests to the provider by kind.
type Broker struct {
	provider Provider
}

// NewBroker creates a broker over the given provider.
func NewBroker(provider Provider) *Broker {
	return &Broker{provider: provider}
}

// Request performs a fresh permission request for kind. A grant for one
// kind never implies a grant for another.
func (b *Broker) Request(ctx context.Context, kind Kind) (Grant, error) {
	switch kind {
	case Location:
		return b.provider.RequestLocationPermission(ctx)
	case Camera:
		return b.provider.RequestCameraPermission(ctx)
	case MediaLibrary:
		return b.provider.RequestLibraryPermission(ctx)
	default:
		return Denied, fmt.Errorf("unknown capability kind: %s", kind)
	}
}
