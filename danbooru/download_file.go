package danbooru

import (
	"context"
	"io"

	"github.com/go-errors/errors"
)

// DownloadFile streams the body of url into w without buffering it in memory.
func (d *Danbooru) DownloadFile(ctx context.Context, url string, w io.Writer) (int64, error) {
	r := d.downloadClient.Get(url).Do(ctx)
	if r.Err != nil {
		return 0, errors.New(r.Err)
	}
	defer r.Body.Close()

	if !r.IsSuccessState() {
		return 0, &HTTPError{StatusCode: r.StatusCode, URL: url}
	}

	n, err := io.Copy(w, r.Body)
	if err != nil {
		return n, errors.New(err)
	}
	return n, nil
}
