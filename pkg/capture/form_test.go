package capture

import "testing"

func TestSanitizeCoordinateInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"28.7041", "28.7041"},
		{"28.70a41b", "28.7041"},
		{"-77.10 25", "-77.1025"},
		{"N28°42'", "2842"},
		{"", ""},
	}

	for _, tt := range tests {
		form := NewForm("")
		form.SetLatitude(tt.input)
		if got := form.Latitude(); got != tt.want {
			t.Errorf("SetLatitude(%q): got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPreSuppliedIdentifierIsReadOnly(t *testing.T) {
	form := NewForm("APP12345")

	if !form.IdentifierReadOnly() {
		t.Error("expected pre-supplied identifier to be read-only")
	}

	form.SetIdentifier("OTHER99999")
	if form.Identifier() != "APP12345" {
		t.Errorf("identifier changed despite read-only: %q", form.Identifier())
	}
}

func TestEmptyFormIdentifierEditable(t *testing.T) {
	form := NewForm("")

	if form.IdentifierReadOnly() {
		t.Error("expected editable identifier on empty form")
	}

	form.SetIdentifier("APP12345")
	if form.Identifier() != "APP12345" {
		t.Errorf("identifier not stored: %q", form.Identifier())
	}
}

func TestSetPositionFormatsRoundTrippableStrings(t *testing.T) {
	form := NewForm("")
	form.SetPosition(28.7041, 77.1025)

	if form.Latitude() != "28.7041" || form.Longitude() != "77.1025" {
		t.Errorf("got (%q, %q), want (28.7041, 77.1025)", form.Latitude(), form.Longitude())
	}
}

func TestBeginOperationRejectsOverlap(t *testing.T) {
	form := NewForm("")

	if !form.BeginOperation() {
		t.Fatal("first BeginOperation should succeed")
	}
	if form.BeginOperation() {
		t.Error("second BeginOperation should fail while loading")
	}
	if !form.Loading() {
		t.Error("form should report loading")
	}

	form.EndOperation()
	if !form.BeginOperation() {
		t.Error("BeginOperation should succeed again after EndOperation")
	}
}

func TestDerivedName(t *testing.T) {
	tests := []struct {
		slot SlotKey
		uri  string
		want string
	}{
		{SlotWideRooftop, "/data/media/IMG_0042.jpg", "wide_rooftop_photo_IMG_0042.jpg"},
		{SlotSerialNumber, "cache/serial.jpeg", "serial_number_photo_serial.jpeg"},
		{SlotInverter, "inverter.jpg", "inverter_photo_inverter.jpg"},
	}

	for _, tt := range tests {
		if got := DerivedName(tt.slot, tt.uri); got != tt.want {
			t.Errorf("DerivedName(%s, %q): got %q, want %q", tt.slot, tt.uri, got, tt.want)
		}
	}
}
