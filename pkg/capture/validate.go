package capture

import (
	"math"
	"strconv"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
)

// Validation reasons, one per ordered check. Each is user-legible so the
// UI can explain exactly what is missing.
var (
	ErrIdentifierTooShort = errors.New("application ID is missing or too short")
	ErrCoordinateInvalid  = errors.New("valid GPS coordinates are required")
	ErrPhotosMissing      = errors.New("all three photos are required")
)

// Rules configures the pre-submission validation gate.
//
// AllowZeroCoordinate exists because a coordinate of exactly 0 is valid on
// the equator/prime meridian; whether to accept it is pending product
// clarification, so the historical reject-zero behavior stays the default.
type Rules struct {
	// MinIdentifierLen is the length the identifier must exceed.
	MinIdentifierLen int
	// AllowZeroCoordinate accepts coordinate components of exactly 0.
	AllowZeroCoordinate bool
}

// DefaultRules returns the production validation rules.
func DefaultRules() Rules {
	return Rules{MinIdentifierLen: 5}
}

// Validate runs the three ordered checks and returns the first failing
// reason, or nil when the form is ready to submit. It is pure: identical
// form state always yields the identical verdict, and it never triggers
// submission itself.
func (r Rules) Validate(form *Form) error {
	minLen := r.MinIdentifierLen
	if minLen <= 0 {
		minLen = 5
	}
	if len(form.Identifier()) <= minLen {
		return ErrIdentifierTooShort
	}

	if !r.coordinateValid(form.Latitude()) || !r.coordinateValid(form.Longitude()) {
		return ErrCoordinateInvalid
	}

	for _, slot := range SlotKeys() {
		if form.Photo(slot) == nil {
			return ErrPhotosMissing
		}
	}

	return nil
}

func (r Rules) coordinateValid(text string) bool {
	if text == "" {
		return false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if v == 0 && !r.AllowZeroCoordinate {
		return false
	}
	return true
}
