package danbooru

import "fmt"

// UpstreamAPIError is an explicit failure payload returned by the API.
type UpstreamAPIError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamAPIError) Error() string {
	return "Danbooru API: " + e.Message
}

// HTTPError is a non-success status on a file download.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}
