package imaging

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURL encodes image bytes as a base64 data URL suitable for passing
// inline to the multimodal API.
//
// If contentType is empty or not an image type, "image/jpeg" is assumed.
func DataURL(data []byte, contentType string) string {
	mimeType := contentType
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
