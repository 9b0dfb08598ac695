package workflow

import (
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capture"
)

// evidenceForm builds a valid form backed by real photo files on disk.
func evidenceForm(t *testing.T) *capture.Form {
	t.Helper()
	dir := t.TempDir()

	form := capture.NewForm("APP12345")
	form.SetLatitude("28.7041")
	form.SetLongitude("77.1025")

	photos := map[capture.SlotKey]string{
		capture.SlotWideRooftop:  "roof.jpg",
		capture.SlotSerialNumber: "serial.jpg",
		capture.SlotInverter:     "inverter.jpg",
	}
	provider := &stubPickProvider{}
	capturer := capture.NewPhotoCapturer(provider, nil, &stubNotifier{}, false)
	for slot, name := range photos {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("jpeg bytes for "+name), 0644); err != nil {
			t.Fatalf("write photo: %v", err)
		}
		provider.uri = path
		if err := capturer.Capture(t.Context(), form, slot); err != nil {
			t.Fatalf("fill slot %s: %v", slot, err)
		}
	}
	return form
}

type part struct {
	field       string
	filename    string
	contentType string
	value       string
}

func readParts(t *testing.T, path, contentType string) []part {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open payload: %v", err)
	}
	defer f.Close()

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type %q: %v", contentType, err)
	}

	var parts []part
	reader := multipart.NewReader(f, params["boundary"])
	for {
		p, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("next part: %v", err)
		}
		value, err := io.ReadAll(p)
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		parts = append(parts, part{
			field:       p.FormName(),
			filename:    p.FileName(),
			contentType: p.Header.Get("Content-Type"),
			value:       string(value),
		})
	}
	return parts
}

func TestAssemblePayload(t *testing.T) {
	form := evidenceForm(t)
	path := filepath.Join(t.TempDir(), "payload.multipart")

	info, err := AssemblePayload(form, path, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Size <= 0 || info.SHA256 == "" {
		t.Errorf("payload metadata incomplete: %+v", info)
	}

	parts := readParts(t, path, info.ContentType)
	if len(parts) != 6 {
		t.Fatalf("expected 6 parts, got %d", len(parts))
	}

	want := []part{
		{field: "application_id", value: "APP12345"},
		{field: "registered_lat", value: "28.7041"},
		{field: "registered_lon", value: "77.1025"},
		{field: "wide_rooftop_photo", filename: "wide_rooftop_photo_roof.jpg", contentType: "image/jpeg", value: "jpeg bytes for roof.jpg"},
		{field: "serial_number_photo", filename: "serial_number_photo_serial.jpg", contentType: "image/jpeg", value: "jpeg bytes for serial.jpg"},
		{field: "inverter_photo", filename: "inverter_photo_inverter.jpg", contentType: "image/jpeg", value: "jpeg bytes for inverter.jpg"},
	}

	for i, w := range want {
		got := parts[i]
		if got.field != w.field {
			t.Errorf("part %d field: got %q, want %q", i, got.field, w.field)
		}
		if got.filename != w.filename {
			t.Errorf("part %d filename: got %q, want %q", i, got.filename, w.filename)
		}
		if w.contentType != "" && got.contentType != w.contentType {
			t.Errorf("part %d content type: got %q, want %q", i, got.contentType, w.contentType)
		}
		if got.value != w.value {
			t.Errorf("part %d value: got %q, want %q", i, got.value, w.value)
		}
	}
}

func TestAssemblePayloadIsDeterministic(t *testing.T) {
	form := evidenceForm(t)
	dir := t.TempDir()

	first, err := AssemblePayload(form, filepath.Join(dir, "a.multipart"), 0)
	if err != nil {
		t.Fatalf("first assembly: %v", err)
	}
	second, err := AssemblePayload(form, filepath.Join(dir, "b.multipart"), 0)
	if err != nil {
		t.Fatalf("second assembly: %v", err)
	}

	// The boundary is random, so compare the decoded parts.
	a := readParts(t, first.Path, first.ContentType)
	b := readParts(t, second.Path, second.ContentType)
	if len(a) != len(b) {
		t.Fatalf("part counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("part %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestAssemblePayloadUnparsableCoordinate(t *testing.T) {
	form := evidenceForm(t)
	form.SetLatitude("-.")

	if _, err := AssemblePayload(form, filepath.Join(t.TempDir(), "p"), 0); err == nil {
		t.Error("expected error for unparsable latitude")
	}
}

func TestAssemblePayloadOversizedPhoto(t *testing.T) {
	form := evidenceForm(t)

	if _, err := AssemblePayload(form, filepath.Join(t.TempDir(), "p"), 4); err == nil {
		t.Error("expected error when a photo exceeds the size limit")
	}
}
