package imaging

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataURL(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	encoded := base64.StdEncoding.EncodeToString(data)

	assert.Equal(t, "data:image/png;base64,"+encoded, DataURL(data, "image/png"))

	// Non-image and empty content types degrade to jpeg.
	assert.Equal(t, "data:image/jpeg;base64,"+encoded, DataURL(data, ""))
	assert.Equal(t, "data:image/jpeg;base64,"+encoded, DataURL(data, "application/pdf"))
}
