package imaging

import (
	"bytes"
	"image"
	"mime"
	"path/filepath"
	"strings"

	// Register the decoders for every accepted upload format.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// AllowedExtensions lists the upload formats the service accepts.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// ExtensionAllowed reports whether the file's extension is one of the
// accepted image formats. The comparison is case-insensitive.
func ExtensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ValidateImage reports whether the given bytes decode as a supported image.
// Only the header is decoded, so validation stays cheap for large files.
func ValidateImage(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	_, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil
}

// MIMEFromFilename infers a MIME type from the file extension.
// Unknown or non-image extensions fall back to "image/jpeg", matching the
// behavior expected by the embedding API for data URLs.
func MIMEFromFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if typ := mime.TypeByExtension(ext); strings.HasPrefix(typ, "image/") {
		return typ
	}

	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".bmp":
		return "image/bmp"
	default:
		return "image/jpeg"
	}
}
