package main

import (
	"danbooru-scraper-go/scripts"

	go_console "github.com/DrSmithFr/go-console"
	"github.com/DrSmithFr/go-console/input/option"
)

func main() {
	script := go_console.Command{
		Description: "Scrape content from danbooru based on tag search",
		Scripts: []*go_console.Script{
			{
				Name:        "scrape",
				Description: "Download posts matching a tag search",
				Options:     scripts.ScrapeOptions,
				Runner:      scripts.ScrapeScript,
			},
			{
				Name:        "query",
				Description: "Parse a tag search and print what will be sent",
				Options: []go_console.Option{
					{Name: "tags", Description: "Tags to search for.", Value: option.Required},
					{Name: "debug", Description: "Dump the parsed query.", Value: option.None},
				},
				Runner: scripts.QueryScript,
			},
		},
	}
	script.Run()
}
