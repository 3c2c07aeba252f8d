package valueobjects

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "mathsolver-backend/pkg/errors"
)

func TestNewImageUpload_Success(t *testing.T) {
	data := []byte("fake png bytes")

	upload, err := NewImageUpload(data, "image/png", "homework.png")

	require.NoError(t, err)
	assert.Equal(t, data, upload.Data())
	assert.Equal(t, "image/png", upload.ContentType())
	assert.Equal(t, "homework.png", upload.Filename())
	assert.Equal(t, len(data), upload.Size())
}

func TestNewImageUpload_EmptyData(t *testing.T) {
	_, err := NewImageUpload(nil, "image/png", "f.png")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewImageUpload_Oversized(t *testing.T) {
	data := bytes.Repeat([]byte("a"), MaxImageBytes+1)

	_, err := NewImageUpload(data, "image/jpeg", "big.jpg")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewImageUpload_ExactLimitAccepted(t *testing.T) {
	data := bytes.Repeat([]byte("a"), MaxImageBytes)

	_, err := NewImageUpload(data, "image/jpeg", "big.jpg")

	assert.NoError(t, err)
}

func TestNewImageUpload_ContentTypes(t *testing.T) {
	data := []byte("bytes")

	for _, ct := range []string{"image/png", "image/jpeg", "image/jpg"} {
		_, err := NewImageUpload(data, ct, "f")
		assert.NoError(t, err, "content type %s should be accepted", ct)
	}

	for _, ct := range []string{"", "image/gif", "application/pdf", "text/plain"} {
		_, err := NewImageUpload(data, ct, "f")
		require.Error(t, err, "content type %q should be rejected", ct)
		assert.True(t, pkgerrors.IsValidation(err))
	}
}

func TestNewImageUpload_EmptyFilenameFallback(t *testing.T) {
	upload, err := NewImageUpload([]byte("bytes"), "image/png", "")

	require.NoError(t, err)
	assert.Equal(t, "upload", upload.Filename())
}
