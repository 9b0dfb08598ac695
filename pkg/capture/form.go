package capture

import "strconv"

// Form is the single source of truth for one capture session: the
// application identifier, the coordinate pair as editable decimal strings,
// the three evidence slots, and the loading flag that serializes capture
// and submission operations. One Form exists per workflow run; nothing is
// persisted across runs.
//
// The form is mutated only by its setters and the two capturers, always
// from the single thread of control that owns the workflow. Each mutation
// entry point touches exactly one logical field.
type Form struct {
	identifier         string
	identifierReadOnly bool

	latitude  string
	longitude string

	slots map[SlotKey]*PhotoDescriptor

	loading bool
}

// NewForm creates an empty form. A non-empty pre-supplied identifier (from
// a prior step) locks the identifier field read-only.
func NewForm(identifier string) *Form {
	f := &Form{slots: make(map[SlotKey]*PhotoDescriptor, 3)}
	if identifier != "" {
		f.identifier = identifier
		f.identifierReadOnly = true
	}
	return f
}

// Identifier returns the application identifier under verification.
func (f *Form) Identifier() string { return f.identifier }

// IdentifierReadOnly reports whether the identifier was pre-supplied.
func (f *Form) IdentifierReadOnly() bool { return f.identifierReadOnly }

// SetIdentifier updates the identifier. It is a no-op when the identifier
// was pre-supplied.
func (f *Form) SetIdentifier(identifier string) {
	if f.identifierReadOnly {
		return
	}
	f.identifier = identifier
}

// Latitude returns the latitude text.
func (f *Form) Latitude() string { return f.latitude }

// Longitude returns the longitude text.
func (f *Form) Longitude() string { return f.longitude }

// SetLatitude stores user-entered latitude text, sanitized to [0-9.-].
func (f *Form) SetLatitude(text string) {
	f.latitude = sanitizeCoordinate(text)
}

// SetLongitude stores user-entered longitude text, sanitized to [0-9.-].
func (f *Form) SetLongitude(text string) {
	f.longitude = sanitizeCoordinate(text)
}

// SetPosition overwrites the coordinate pair with a device fix, formatted
// as decimal strings that round-trip through the text fields.
func (f *Form) SetPosition(latitude, longitude float64) {
	f.latitude = strconv.FormatFloat(latitude, 'f', -1, 64)
	f.longitude = strconv.FormatFloat(longitude, 'f', -1, 64)
}

// Photo returns the descriptor for slot, or nil while the slot is empty.
func (f *Form) Photo(slot SlotKey) *PhotoDescriptor {
	return f.slots[slot]
}

// setPhoto overwrites the slot. Re-capture replaces, it never appends.
func (f *Form) setPhoto(slot SlotKey, desc PhotoDescriptor) {
	f.slots[slot] = &desc
}

// Loading reports whether a capture or submission is in flight.
func (f *Form) Loading() bool { return f.loading }

// BeginOperation marks the form busy. It returns false when another
// operation already holds the form, in which case the caller must not
// proceed.
func (f *Form) BeginOperation() bool {
	if f.loading {
		return false
	}
	f.loading = true
	return true
}

// EndOperation releases the form after a completed operation.
func (f *Form) EndOperation() { f.loading = false }

// sanitizeCoordinate keeps only the characters meaningful in a decimal
// coordinate: digits, the decimal point, and the minus sign.
func sanitizeCoordinate(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			out = append(out, r)
		}
	}
	return string(out)
}
