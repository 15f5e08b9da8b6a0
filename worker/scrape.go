package worker

import (
	"context"
	"danbooru-scraper-go/danbooru"
	"danbooru-scraper-go/storage"
	"danbooru-scraper-go/utils"
	"fmt"
	"io"
	"iter"
	"path"

	"github.com/pkg/errors"
)

type Options struct {
	MaxFileSize bool
	Extensions  *utils.ExtensionFilter
	SaveTags    bool
	TagsOnly    bool
}

// Summary keeps independent counters for images and tag files.
type Summary struct {
	Scraped     int
	SavedTags   int
	Failed      int
	Interrupted bool
}

// TransferError is a failed download or sidecar write for a single post.
type TransferError struct {
	URL  string
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("write %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("transfer %s -> %s: %s", e.URL, e.Path, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

type Downloader interface {
	DownloadFile(ctx context.Context, url string, w io.Writer) (int64, error)
}

type Scraper struct {
	client Downloader
	store  *storage.Storage
	logger utils.Logger
	out    io.Writer
	opts   Options
}

func NewScraper(client Downloader, store *storage.Storage, logger utils.Logger, out io.Writer, opts Options) *Scraper {
	if opts.Extensions == nil {
		opts.Extensions = utils.ParseExtensions(utils.DefaultExtensions)
	}
	if opts.TagsOnly {
		opts.SaveTags = true
	}
	return &Scraper{
		client: client,
		store:  store,
		logger: logger,
		out:    out,
		opts:   opts,
	}
}

// Run consumes posts until the sequence ends, fails, or ctx is cancelled.
// Only errors from the sequence itself are returned; per-post failures are
// logged and counted.
func (s *Scraper) Run(ctx context.Context, posts iter.Seq2[*danbooru.Post, error]) (summary Summary, err error) {
	for post, postErr := range posts {
		if ctx.Err() != nil {
			summary.Interrupted = true
			break
		}
		if postErr != nil {
			return summary, postErr
		}
		s.processPost(ctx, post, &summary)
	}
	if ctx.Err() != nil {
		summary.Interrupted = true
	}

	if summary.Interrupted {
		s.logger.Info("interrupted, stopping")
	}
	fmt.Fprintf(s.out, "Scraped %d files\n", summary.Scraped)
	if s.opts.SaveTags {
		fmt.Fprintf(s.out, "Saved tags for %d files\n", summary.SavedTags)
	}
	return summary, nil
}

func (s *Scraper) processPost(ctx context.Context, post *danbooru.Post, summary *Summary) {
	fileURL, ok := post.PrimaryURL()
	if !ok || !s.opts.Extensions.Allows(fileURL) {
		return
	}

	source := fileURL
	if s.opts.MaxFileSize {
		if large, ok := post.LargeURL(); ok {
			source = large
		}
	}

	name, err := utils.FileNameFromURL(source)
	if err != nil {
		s.logger.With("err", err, "post_id", post.ID).Warn("skipping post without usable file name")
		return
	}

	if !s.opts.TagsOnly && !s.store.Exists(name) {
		fmt.Fprintf(s.out, "Downloading %s\n", s.store.Path(name))
		if err = s.download(ctx, source, name); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.With("err", err, "url", source, "post_id", post.ID).Error("download failed")
			fmt.Fprintf(s.out, "Error downloading file from %s, skipping\n", source)
			summary.Failed++
		} else {
			summary.Scraped++
		}
	}

	if s.opts.SaveTags && s.saveTags(post, name, summary) {
		summary.SavedTags++
	}
}

func (s *Scraper) download(ctx context.Context, url string, name string) error {
	f, err := s.store.Create(name)
	if err != nil {
		return &TransferError{URL: url, Path: s.store.Path(name), Err: err}
	}

	head := &utils.HeadRecorder{}
	n, err := s.client.DownloadFile(ctx, url, io.MultiWriter(f, head))
	if err != nil {
		f.Abort()
		return &TransferError{URL: url, Path: s.store.Path(name), Err: err}
	}
	if err = f.Commit(); err != nil {
		return &TransferError{URL: url, Path: s.store.Path(name), Err: err}
	}

	logger := s.logger.With("url", url, "path", s.store.Path(name), "size", n)
	if sniffed, ok := utils.MatchesExtension(head.Bytes(), path.Ext(name)); !ok {
		logger.With("detected", sniffed).Warn("file content does not match its extension")
	}
	logger.Debug("downloaded file")
	return nil
}

// saveTags writes the sidecar file and reports whether one was written.
// Outside tags-only mode the image has to be on disk first.
func (s *Scraper) saveTags(post *danbooru.Post, name string, summary *Summary) bool {
	if !s.opts.TagsOnly && !s.store.Exists(name) {
		return false
	}
	tags, ok := post.Tags()
	if !ok {
		return false
	}
	sidecar := utils.SidecarName(name)
	if s.store.Exists(sidecar) {
		return false
	}

	fmt.Fprintf(s.out, "Saving tags to %s\n", s.store.Path(sidecar))
	if err := s.store.SaveText(sidecar, utils.NormalizeTags(tags)); err != nil {
		err = &TransferError{Path: s.store.Path(sidecar), Err: errors.Wrap(err, "save tags")}
		s.logger.With("err", err, "post_id", post.ID).Error("saving tags failed")
		fmt.Fprintf(s.out, "Error saving tags to %s, skipping\n", s.store.Path(sidecar))
		summary.Failed++
		return false
	}
	return true
}
