package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestMatchesExtension(t *testing.T) {
	_, ok := MatchesExtension(pngHeader, ".png")
	assert.True(t, ok)

	sniffed, ok := MatchesExtension(pngHeader, ".jpg")
	assert.False(t, ok)
	assert.Equal(t, "png", sniffed)

	_, ok = MatchesExtension([]byte("plain text, nothing to see"), ".png")
	assert.True(t, ok, "unknown content is not reported")
}

func TestHeadRecorder(t *testing.T) {
	h := &HeadRecorder{}
	data := bytes.Repeat([]byte{'x'}, SniffLen-10)
	n, err := h.Write(data)
	assert.NoError(t, err)
	assert.Equal(t, len(data), n)

	n, err = h.Write(bytes.Repeat([]byte{'y'}, 100))
	assert.NoError(t, err)
	assert.Equal(t, 100, n)

	assert.Len(t, h.Bytes(), SniffLen)
	assert.Equal(t, byte('y'), h.Bytes()[SniffLen-1])
}
