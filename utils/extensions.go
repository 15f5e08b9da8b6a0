package utils

import (
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

const AllExtensions = "*"

// ExtensionFilter is the allow-list applied to a post's primary file url.
type ExtensionFilter struct {
	all        bool
	extensions map[string]struct{}
}

// ParseExtensions accepts a comma separated list like ".png,.jpg" or "*".
// Only a bare "*" allows everything; inside a list it is ignored.
// Entries are matched case-insensitively and a missing leading dot is added.
func ParseExtensions(list string) *ExtensionFilter {
	f := &ExtensionFilter{extensions: make(map[string]struct{})}
	if strings.TrimSpace(list) == AllExtensions {
		f.all = true
		return f
	}
	for _, ext := range strings.Split(list, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == AllExtensions {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.extensions[ext] = struct{}{}
	}
	return f
}

func (f *ExtensionFilter) AllowsAll() bool {
	return f.all
}

func (f *ExtensionFilter) Allows(fileURL string) bool {
	if f.all {
		return true
	}
	_, ok := f.extensions[strings.ToLower(URLExt(fileURL))]
	return ok
}

func (f *ExtensionFilter) String() string {
	if f.all {
		return AllExtensions
	}
	exts := make([]string, 0, len(f.extensions))
	for ext := range f.extensions {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return strings.Join(exts, ",")
}

func urlPath(fileURL string) string {
	if u, err := url.Parse(fileURL); err == nil {
		return u.Path
	}
	return fileURL
}

// URLExt returns the extension of the url path, query and fragment excluded.
func URLExt(fileURL string) string {
	return path.Ext(FileNameOr(fileURL, ""))
}

// FileNameOr is FileNameFromURL with a fallback for unusable urls.
func FileNameOr(fileURL, fallback string) string {
	name, err := FileNameFromURL(fileURL)
	if err != nil {
		return fallback
	}
	return name
}

// FileNameFromURL returns the final path segment of a url.
func FileNameFromURL(fileURL string) (string, error) {
	p := urlPath(fileURL)
	if p == "" || strings.HasSuffix(p, "/") {
		return "", errors.Errorf("no file name in url %q", fileURL)
	}
	name := path.Base(p)
	if name == "." || name == "/" || name == ".." {
		return "", errors.Errorf("no file name in url %q", fileURL)
	}
	return name, nil
}
