package ocr

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageBareBase64(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	data, err := decodeImage(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestDecodeImageDataURI(t *testing.T) {
	raw := []byte("image bytes")
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
	data, err := decodeImage(uri)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestDecodeImageInvalid(t *testing.T) {
	_, err := decodeImage("not base64!!!")
	assert.Error(t, err)

	_, err = decodeImage("")
	assert.Error(t, err)
}

func TestImageFormatDetection(t *testing.T) {
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 0x4a, 0x46, 0x49, 0x46, 0x00}
	assert.Equal(t, "jpeg", imageFormat(jpeg))

	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	assert.Equal(t, "png", imageFormat(png))
}

func TestDisabledFailsOpen(t *testing.T) {
	var tr Transcriber = Disabled{}
	out := tr.Transcribe(context.Background(), "whatever")
	assert.Contains(t, out, "unavailable")
}
