package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capability"
)

func TestLocationCaptureSuccess(t *testing.T) {
	provider := &fakeProvider{
		locationGrant: capability.Granted,
		position:      capability.Position{Latitude: 28.7041, Longitude: 77.1025, Accuracy: 4.2},
	}
	notifier := &fakeNotifier{}
	form := NewForm("")

	capturer := NewLocationCapturer(provider, notifier)
	if err := capturer.Capture(context.Background(), form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if form.Latitude() != "28.7041" || form.Longitude() != "77.1025" {
		t.Errorf("coordinate not written: (%q, %q)", form.Latitude(), form.Longitude())
	}
	if form.Loading() {
		t.Error("loading flag not cleared after capture")
	}
	if len(notifier.messages) == 0 {
		t.Error("expected a capture acknowledgment")
	}
}

func TestLocationCaptureDeniedLeavesStateAndSkipsFix(t *testing.T) {
	provider := &fakeProvider{locationGrant: capability.Denied}
	form := NewForm("")
	form.SetLatitude("12.9716")
	form.SetLongitude("77.5946")

	capturer := NewLocationCapturer(provider, &fakeNotifier{})
	err := capturer.Capture(context.Background(), form)

	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("got %v, want %v", err, ErrPermissionDenied)
	}
	if provider.fixCalls != 0 {
		t.Errorf("positioning fix attempted %d times after denial", provider.fixCalls)
	}
	if form.Latitude() != "12.9716" || form.Longitude() != "77.5946" {
		t.Errorf("prior coordinate lost: (%q, %q)", form.Latitude(), form.Longitude())
	}
}

func TestLocationCaptureHardwareErrorLeavesState(t *testing.T) {
	provider := &fakeProvider{
		locationGrant: capability.Granted,
		positionErr:   errors.New("gps timeout"),
	}
	form := NewForm("")
	form.SetLatitude("12.9716")
	form.SetLongitude("77.5946")

	capturer := NewLocationCapturer(provider, &fakeNotifier{})
	if err := capturer.Capture(context.Background(), form); err == nil {
		t.Fatal("expected hardware error")
	}

	if form.Latitude() != "12.9716" || form.Longitude() != "77.5946" {
		t.Errorf("prior coordinate lost: (%q, %q)", form.Latitude(), form.Longitude())
	}
	if form.Loading() {
		t.Error("loading flag not cleared after failure")
	}
}

func TestLocationCaptureRejectedWhileLoading(t *testing.T) {
	provider := &fakeProvider{locationGrant: capability.Granted}
	form := NewForm("")
	form.BeginOperation()

	capturer := NewLocationCapturer(provider, &fakeNotifier{})
	if err := capturer.Capture(context.Background(), form); !errors.Is(err, ErrOperationInFlight) {
		t.Errorf("got %v, want %v", err, ErrOperationInFlight)
	}
	if provider.fixCalls != 0 {
		t.Error("fix attempted while another operation held the form")
	}
}
