package capture

import (
	"errors"
	"testing"
)

func TestValidateIdentifierLength(t *testing.T) {
	tests := []struct {
		identifier string
		wantErr    error
	}{
		{"", ErrIdentifierTooShort},
		{"ABC", ErrIdentifierTooShort},
		{"APP12", ErrIdentifierTooShort}, // exactly the threshold is still invalid
		{"APP123", nil},
		{"APP12345", nil},
	}

	for _, tt := range tests {
		form := filledForm()
		form.identifierReadOnly = false
		form.SetIdentifier(tt.identifier)

		err := DefaultRules().Validate(form)
		if !errors.Is(err, tt.wantErr) && !(tt.wantErr == nil && err == nil) {
			t.Errorf("identifier %q: got %v, want %v", tt.identifier, err, tt.wantErr)
		}
	}
}

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name      string
		lat, lon  string
		allowZero bool
		wantErr   error
	}{
		{name: "valid pair", lat: "28.7041", lon: "77.1025"},
		{name: "missing latitude", lat: "", lon: "77.1025", wantErr: ErrCoordinateInvalid},
		{name: "missing longitude", lat: "28.7041", lon: "", wantErr: ErrCoordinateInvalid},
		{name: "bare minus sign", lat: "-", lon: "77.1025", wantErr: ErrCoordinateInvalid},
		{name: "double decimal point", lat: "28..7", lon: "77.1025", wantErr: ErrCoordinateInvalid},
		{name: "zero rejected by default", lat: "0", lon: "77.1025", wantErr: ErrCoordinateInvalid},
		{name: "zero accepted when configured", lat: "0", lon: "77.1025", allowZero: true},
		{name: "negative values accepted", lat: "-33.8688", lon: "-151.2093"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := filledForm()
			form.SetLatitude(tt.lat)
			form.SetLongitude(tt.lon)

			rules := DefaultRules()
			rules.AllowZeroCoordinate = tt.allowZero

			err := rules.Validate(form)
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMissingPhoto(t *testing.T) {
	for _, missing := range SlotKeys() {
		form := filledForm()
		delete(form.slots, missing)

		if err := DefaultRules().Validate(form); !errors.Is(err, ErrPhotosMissing) {
			t.Errorf("slot %s missing: got %v, want %v", missing, err, ErrPhotosMissing)
		}
	}
}

func TestValidateOrderReportsFirstFailure(t *testing.T) {
	// Everything wrong at once: the identifier reason wins.
	form := NewForm("")
	if err := DefaultRules().Validate(form); !errors.Is(err, ErrIdentifierTooShort) {
		t.Errorf("got %v, want %v", err, ErrIdentifierTooShort)
	}

	// Identifier fixed: the coordinate reason is next.
	form.SetIdentifier("APP12345")
	if err := DefaultRules().Validate(form); !errors.Is(err, ErrCoordinateInvalid) {
		t.Errorf("got %v, want %v", err, ErrCoordinateInvalid)
	}
}

func TestValidateIsPure(t *testing.T) {
	form := filledForm()
	rules := DefaultRules()

	first := rules.Validate(form)
	second := rules.Validate(form)

	if !errors.Is(first, second) && (first != nil || second != nil) {
		t.Errorf("verdict changed on unmodified state: %v then %v", first, second)
	}
}
