package scripts

import (
	"context"
	"danbooru-scraper-go/danbooru"
	"danbooru-scraper-go/storage"
	"danbooru-scraper-go/utils"
	"danbooru-scraper-go/worker"
	"fmt"
	"io"
	"os"
	"os/signal"

	go_console "github.com/DrSmithFr/go-console"
)

func ScrapeScript(cmd *go_console.Script) go_console.ExitCode {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts, err := optionsFromInput(cmd.Input)
	if err != nil {
		fmt.Println(err.Error())
		return go_console.ExitError
	}

	logger, err := utils.NewLogger("scrape", opts.LogDir, opts.Debug)
	if err != nil {
		fmt.Println(err.Error())
		return go_console.ExitError
	}

	if _, err = Scrape(ctx, opts, logger, os.Stdout); err != nil {
		logger.With("err", err).Debug("scrape failed")
		fmt.Println(err.Error())
		return go_console.ExitError
	}

	return go_console.ExitSuccess
}

// Scrape runs one search-and-download pass. Configuration problems are
// reported before any request is made.
func Scrape(ctx context.Context, opts utils.Options, logger utils.Logger, out io.Writer) (worker.Summary, error) {
	if err := opts.Validate(); err != nil {
		return worker.Summary{}, err
	}

	credentials, err := danbooru.NewCredentials(opts.Username, opts.ApiKey)
	if err != nil {
		return worker.Summary{}, err
	}

	tags := utils.CollapseWhitespace(opts.Tags)
	if query, err := utils.ParseTagQuery(tags); err != nil {
		logger.With("err", err, "tags", tags).Debug("tag query not understood, sending it unchanged")
	} else if credentials == nil && query.TagCount() > utils.AnonymousTagLimit {
		logger.With("tags", query.TagCount(), "limit", utils.AnonymousTagLimit).
			Warn("anonymous searches are limited in the number of tags, the api may reject this query")
	}

	store, err := storage.NewStorage(opts.Output)
	if err != nil {
		return worker.Summary{}, err
	}

	client := danbooru.NewDanbooru(logger, opts.URL, opts.UserAgent, opts.Timeout)
	stream := client.GetPosts().
		WithTags(tags).
		WithCredentials(credentials).
		WithPageLimit(opts.PageLimit).
		WithLimit(opts.Limit).
		Stream(ctx)

	extensions := utils.ParseExtensions(opts.Extensions)
	logger.With("tags", tags, "output", store.Dir(), "extensions", extensions.String(), "all_extensions", extensions.AllowsAll(), "page_limit", opts.PageLimit).
		Info("starting scrape")

	scraper := worker.NewScraper(client, store, logger, out, worker.Options{
		MaxFileSize: opts.MaxFileSize,
		Extensions:  extensions,
		SaveTags:    opts.SaveTags,
		TagsOnly:    opts.TagsOnly,
	})
	summary, err := scraper.Run(ctx, stream.All())
	logger.With(
		"pages", stream.PagesFetched(),
		"scraped", summary.Scraped,
		"saved_tags", summary.SavedTags,
		"failed", summary.Failed,
		"interrupted", summary.Interrupted,
	).Info("scrape finished")
	return summary, err
}
