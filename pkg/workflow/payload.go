package workflow

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"strconv"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capture"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
)

// PayloadInfo describes one assembled multipart body staged on disk.
type PayloadInfo struct {
	Path        string
	ContentType string
	SHA256      string
	Size        int64
}

// AssemblePayload serializes the form into a multipart body at path. Part
// order is fixed: application_id, registered_lat, registered_lon, then the
// three photo slots in declaration order, each attached as a file part
// keyed by its slot name with the derived filename and image/jpeg content
// type. Coordinates are re-parsed from their text form so the wire carries
// canonical numeric text.
func AssemblePayload(form *capture.Form, path string, maxPhotoBytes int64) (*PayloadInfo, error) {
	lat, err := strconv.ParseFloat(form.Latitude(), 64)
	if err != nil {
		return nil, errors.Wrap(err, "latitude does not parse")
	}
	lon, err := strconv.ParseFloat(form.Longitude(), 64)
	if err != nil {
		return nil, errors.Wrap(err, "longitude does not parse")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payload file")
	}
	defer f.Close()

	hash := sha256.New()
	writer := multipart.NewWriter(io.MultiWriter(f, hash))

	if err := writer.WriteField("application_id", form.Identifier()); err != nil {
		return nil, errors.Wrap(err, "failed to write application_id field")
	}
	if err := writer.WriteField("registered_lat", strconv.FormatFloat(lat, 'f', -1, 64)); err != nil {
		return nil, errors.Wrap(err, "failed to write registered_lat field")
	}
	if err := writer.WriteField("registered_lon", strconv.FormatFloat(lon, 'f', -1, 64)); err != nil {
		return nil, errors.Wrap(err, "failed to write registered_lon field")
	}

	for _, slot := range capture.SlotKeys() {
		photo := form.Photo(slot)
		if photo == nil {
			return nil, fmt.Errorf("evidence slot %s is empty", slot)
		}
		if err := attachPhoto(writer, slot, photo, maxPhotoBytes); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize payload")
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat payload file")
	}

	return &PayloadInfo{
		Path:        path,
		ContentType: writer.FormDataContentType(),
		SHA256:      hex.EncodeToString(hash.Sum(nil)),
		Size:        stat.Size(),
	}, nil
}

func attachPhoto(writer *multipart.Writer, slot capture.SlotKey, photo *capture.PhotoDescriptor, maxPhotoBytes int64) error {
	src, err := os.Open(photo.URI)
	if err != nil {
		return errors.Wrap(err, "failed to open photo "+photo.Name)
	}
	defer src.Close()

	if maxPhotoBytes > 0 {
		stat, err := src.Stat()
		if err != nil {
			return errors.Wrap(err, "failed to stat photo "+photo.Name)
		}
		if stat.Size() > maxPhotoBytes {
			return fmt.Errorf("photo %s is %d bytes, exceeds max %d", photo.Name, stat.Size(), maxPhotoBytes)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, string(slot), photo.Name))
	header.Set("Content-Type", photo.MediaType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return errors.Wrap(err, "failed to create photo part")
	}
	if _, err := io.Copy(part, src); err != nil {
		return errors.Wrap(err, "failed to copy photo "+photo.Name)
	}
	return nil
}
