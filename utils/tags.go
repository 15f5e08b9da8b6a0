package utils

import "strings"

var tagReplacer = []struct{ old, new string }{
	{" ", ", "},
	{"_", " "},
	{"(", `\(`},
	{")", `\)`},
}

// NormalizeTags turns a raw space-delimited tag string into the sidecar format:
// comma-separated, underscores as spaces and parentheses escaped.
func NormalizeTags(tagString string) string {
	for _, r := range tagReplacer {
		tagString = strings.ReplaceAll(tagString, r.old, r.new)
	}
	return tagString
}

func SidecarName(fileName string) string {
	ext := ""
	if i := strings.LastIndexByte(fileName, '.'); i > 0 {
		ext = fileName[i:]
	}
	return strings.TrimSuffix(fileName, ext) + ".txt"
}
