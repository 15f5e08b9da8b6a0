package utils

import (
	"strings"

	"github.com/liamg/magic"
)

// SniffLen is how many leading bytes are kept for content sniffing.
const SniffLen = 512

var extAliases = map[string]string{
	"jpeg": "jpg",
	"jpe":  "jpg",
}

func canonicalExt(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if alias, ok := extAliases[ext]; ok {
		return alias
	}
	return ext
}

// SniffExtension detects the file type from its leading bytes.
func SniffExtension(head []byte) (string, error) {
	t, err := magic.Lookup(head)
	if err != nil {
		return "", err
	}
	return canonicalExt(t.Extension), nil
}

// MatchesExtension reports whether the sniffed content agrees with the expected
// extension. Unknown content is treated as a match.
func MatchesExtension(head []byte, expected string) (sniffed string, ok bool) {
	sniffed, err := SniffExtension(head)
	if err != nil || sniffed == "" {
		return "", true
	}
	return sniffed, sniffed == canonicalExt(expected)
}

// HeadRecorder is an io.Writer that keeps the first SniffLen bytes written
// through it.
type HeadRecorder struct {
	head []byte
}

func (h *HeadRecorder) Write(p []byte) (int, error) {
	if rest := SniffLen - len(h.head); rest > 0 {
		h.head = append(h.head, p[:min(rest, len(p))]...)
	}
	return len(p), nil
}

func (h *HeadRecorder) Bytes() []byte {
	return h.head
}
