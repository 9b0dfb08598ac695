package capture

import (
	"context"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capability"
)

// fakeProvider scripts the device collaborator for capturer tests and
// counts how often each subsystem is touched.
type fakeProvider struct {
	locationGrant capability.Grant
	cameraGrant   capability.Grant
	libraryGrant  capability.Grant

	position    capability.Position
	positionErr error
	fixCalls    int

	cameraResult  capability.PickResult
	cameraErr     error
	cameraCalls   int
	libraryResult capability.PickResult
	libraryErr    error
	libraryCalls  int

	cameraPermCalls  int
	libraryPermCalls int
}

func (p *fakeProvider) RequestLocationPermission(ctx context.Context) (capability.Grant, error) {
	return p.locationGrant, nil
}

func (p *fakeProvider) RequestCameraPermission(ctx context.Context) (capability.Grant, error) {
	p.cameraPermCalls++
	return p.cameraGrant, nil
}

func (p *fakeProvider) RequestLibraryPermission(ctx context.Context) (capability.Grant, error) {
	p.libraryPermCalls++
	return p.libraryGrant, nil
}

func (p *fakeProvider) CurrentPosition(ctx context.Context) (capability.Position, error) {
	p.fixCalls++
	return p.position, p.positionErr
}

func (p *fakeProvider) LaunchCamera(ctx context.Context) (capability.PickResult, error) {
	p.cameraCalls++
	return p.cameraResult, p.cameraErr
}

func (p *fakeProvider) LaunchLibrary(ctx context.Context) (capability.PickResult, error) {
	p.libraryCalls++
	return p.libraryResult, p.libraryErr
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

type fakeChooser struct {
	source Source
	calls  int
}

func (c *fakeChooser) ChooseSource(ctx context.Context, slot SlotKey) (Source, error) {
	c.calls++
	return c.source, nil
}

// filledForm builds a form that passes the default validation gate.
func filledForm() *Form {
	form := NewForm("APP12345")
	form.SetLatitude("28.7041")
	form.SetLongitude("77.1025")
	for _, slot := range SlotKeys() {
		form.setPhoto(slot, PhotoDescriptor{
			URI:       "/tmp/" + string(slot) + ".jpg",
			Name:      DerivedName(slot, "/tmp/"+string(slot)+".jpg"),
			MediaType: JPEGMediaType,
		})
	}
	return form
}
