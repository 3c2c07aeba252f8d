package valueobjects

import (
	"fmt"

	pkgerrors "mathsolver-backend/pkg/errors"
)

// MaxImageBytes is the upload size ceiling
const MaxImageBytes = 10 << 20 // 10 MiB

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
}

// ImageUpload is a validated photographed problem. Construction fails on
// disallowed content types and oversized payloads, so downstream code never
// sees an invalid upload.
type ImageUpload struct {
	data        []byte
	contentType string
	filename    string
}

// NewImageUpload validates and wraps an uploaded image
func NewImageUpload(data []byte, contentType, filename string) (ImageUpload, error) {
	if len(data) == 0 {
		return ImageUpload{}, pkgerrors.NewValidationError("uploaded file is empty")
	}
	if len(data) > MaxImageBytes {
		return ImageUpload{}, pkgerrors.NewValidationError(
			fmt.Sprintf("file exceeds maximum size of %d bytes", MaxImageBytes))
	}
	if _, ok := allowedImageTypes[contentType]; !ok {
		return ImageUpload{}, pkgerrors.NewValidationError(
			fmt.Sprintf("unsupported content type %q: only PNG and JPEG images are accepted", contentType))
	}
	if filename == "" {
		filename = "upload"
	}
	return ImageUpload{
		data:        data,
		contentType: contentType,
		filename:    filename,
	}, nil
}

// Data returns the raw image bytes
func (u ImageUpload) Data() []byte {
	return u.data
}

// ContentType returns the declared MIME type
func (u ImageUpload) ContentType() string {
	return u.contentType
}

// Filename returns the original upload filename
func (u ImageUpload) Filename() string {
	return u.filename
}

// Size returns the image size in bytes
func (u ImageUpload) Size() int {
	return len(u.data)
}
