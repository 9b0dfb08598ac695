// Package capture implements the guided evidence capture workflow: the
// mutable capture form, the location and photo capturers that write into
// it, and the validation gate that guards submission.
package capture

import (
	"fmt"
	"path"
	"strings"
)

// SlotKey names one of the three fixed evidence roles. The keys double as
// the multipart field names on submission.
type SlotKey string

const (
	SlotWideRooftop  SlotKey = "wide_rooftop_photo"
	SlotSerialNumber SlotKey = "serial_number_photo"
	SlotInverter     SlotKey = "inverter_photo"
)

// SlotKeys returns the three evidence slots in submission order.
func SlotKeys() []SlotKey {
	return []SlotKey{SlotWideRooftop, SlotSerialNumber, SlotInverter}
}

// SlotLabel returns the human-readable role for a slot.
func SlotLabel(slot SlotKey) string {
	switch slot {
	case SlotWideRooftop:
		return "wide-angle rooftop photo"
	case SlotSerialNumber:
		return "serial number close-up"
	case SlotInverter:
		return "inverter installation photo"
	default:
		return string(slot)
	}
}

// JPEGMediaType is the fixed content type for every uploaded photo.
const JPEGMediaType = "image/jpeg"

// PhotoDescriptor is one captured image bound to an evidence slot.
type PhotoDescriptor struct {
	URI       string
	Name      string
	MediaType string
}

// DerivedName builds the uploaded filename for a slot. Prefixing the slot
// key keeps the stored file traceable to its semantic role and avoids
// collisions between slots that picked the same source file.
func DerivedName(slot SlotKey, uri string) string {
	return fmt.Sprintf("%s_%s", slot, path.Base(strings.ReplaceAll(uri, "\\", "/")))
}

func validSlot(slot SlotKey) bool {
	switch slot {
	case SlotWideRooftop, SlotSerialNumber, SlotInverter:
		return true
	}
	return false
}
