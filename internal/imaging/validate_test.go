package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodeTestImage(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func pngBytes(t *testing.T) []byte {
	return encodeTestImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	})
}

func TestExtensionAllowed(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"cat.jpg", true},
		{"cat.jpeg", true},
		{"cat.png", true},
		{"cat.bmp", true},
		{"CAT.PNG", true},
		{"cat.gif", false},
		{"cat.pdf", false},
		{"cat", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionAllowed(tt.filename))
		})
	}
}

func TestValidateImage(t *testing.T) {
	assert.True(t, ValidateImage(pngBytes(t)))
	assert.True(t, ValidateImage(encodeTestImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(buf, img, nil)
	})))
	assert.True(t, ValidateImage(encodeTestImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return bmp.Encode(buf, img)
	})))

	assert.False(t, ValidateImage(nil))
	assert.False(t, ValidateImage([]byte{}))
	assert.False(t, ValidateImage([]byte("not an image at all")))
}

func TestMIMEFromFilename(t *testing.T) {
	assert.Equal(t, "image/jpeg", MIMEFromFilename("a.jpg"))
	assert.Equal(t, "image/jpeg", MIMEFromFilename("a.jpeg"))
	assert.Equal(t, "image/png", MIMEFromFilename("a.PNG"))
	assert.Equal(t, "image/bmp", MIMEFromFilename("a.bmp"))

	// Unknown or missing extensions fall back to jpeg.
	assert.Equal(t, "image/jpeg", MIMEFromFilename("archive.tar.gz"))
	assert.Equal(t, "image/jpeg", MIMEFromFilename("noext"))
}
