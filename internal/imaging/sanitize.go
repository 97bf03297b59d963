package imaging

import (
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	folderSafe   = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	filenameSafe = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
)

// containsNonASCII reports whether s has any byte outside the ASCII range.
func containsNonASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return true
		}
	}
	return false
}

// SanitizeFolderName converts a folder name into an ASCII-safe object-key
// segment. Names containing non-ASCII characters (e.g. Chinese) are replaced
// by a stable md5-derived name so uploads of the same folder land together.
func SanitizeFolderName(folder string) string {
	if folder == "" {
		return "uploads"
	}

	if containsNonASCII(folder) {
		sum := md5.Sum([]byte(folder))
		return "folder_" + hex.EncodeToString(sum[:])[:12]
	}

	sanitized := folderSafe.ReplaceAllString(folder, "_")
	if sanitized == "" {
		return "uploads"
	}
	return sanitized
}

// SanitizeFileName converts a file name into an ASCII-safe object-key
// segment, preserving the extension. Non-ASCII base names are replaced by a
// random hex name since collisions matter more than stability for files.
func SanitizeFileName(filename string) string {
	if filename == "" {
		return randomName(".jpg")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}

	base := filepath.Base(strings.TrimSuffix(filename, filepath.Ext(filename)))
	if containsNonASCII(base) {
		return randomName(ext)
	}

	sanitized := filenameSafe.ReplaceAllString(base, "_")
	if sanitized == "" {
		return randomName(ext)
	}
	return sanitized + ext
}

func randomName(ext string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16] + ext
}

// ClassID derives a stable identifier for a class name.
// The same class name always maps to the same ID.
func ClassID(className string) string {
	sum := md5.Sum([]byte(className))
	return hex.EncodeToString(sum[:])
}
