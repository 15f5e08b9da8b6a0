package danbooru

import (
	"danbooru-scraper-go/utils"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
)

type Danbooru struct {
	httpClient     *req.Client
	downloadClient *req.Client
}

type logger struct {
	l utils.Logger
}

func (l logger) Errorf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

func (l logger) Warnf(format string, v ...any) {
	l.l.Warn(fmt.Sprintf(format, v...))
}

func (l logger) Debugf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

func NewDanbooru(l utils.Logger, baseURL string, userAgent string, timeout time.Duration) *Danbooru {
	httpClient := req.C().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetCommonHeader("user-agent", userAgent).
		SetJsonUnmarshal(json.Unmarshal).
		SetLogger(logger{l}).
		EnableDebugLog()
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}

	return &Danbooru{
		httpClient:     httpClient,
		downloadClient: httpClient.Clone().DisableAutoReadResponse().SetTimeout(0),
	}
}
