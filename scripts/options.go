package scripts

import (
	"danbooru-scraper-go/utils"

	go_console "github.com/DrSmithFr/go-console"
	"github.com/DrSmithFr/go-console/input/option"
)

// optionSource is satisfied by the parsed console input.
type optionSource interface {
	Option(name string) string
}

var ScrapeOptions = []go_console.Option{
	{Name: "tags", Description: "Tags to search for when downloading content.", Value: option.Required},
	{Name: "output", Description: "Output directory. (default: output)", Value: option.Required},
	{Name: "url", Description: "Danbooru url to make api calls to. (default: " + utils.DefaultURL + ")", Value: option.Required},
	{Name: "page_limit", Description: "Maximum number of pages to parse through when downloading. (default: 1000)", Value: option.Required},
	{Name: "limit", Description: "Number of posts per page. (default: server default)", Value: option.Required},
	{Name: "api_key", Description: "API key, to be provided alongside a username.", Value: option.Required},
	{Name: "username", Description: "Username to log on with, to be provided alongside an api_key.", Value: option.Required},
	{Name: "max_file_size", Description: "Download the maximum available file size instead of the default size.", Value: option.None},
	{Name: "extensions", Description: "Comma-separated extensions to download, or * alone for all. (default: .png,.jpg)", Value: option.Required},
	{Name: "save_tags", Description: "Save each post's tags to a .txt file next to the image.", Value: option.None},
	{Name: "tags_only", Description: "Only save tag files, do not download images. Implies --save_tags.", Value: option.None},
	{Name: "config", Description: "YAML config file with defaults for the options above.", Value: option.Required},
	{Name: "debug", Description: "Enable debug logging.", Value: option.None},
}

func isDefined(in optionSource, name string) bool {
	return in.Option(name) == option.Defined
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// optionsFromInput resolves defaults, then the config file, then flags.
func optionsFromInput(in optionSource) (utils.Options, error) {
	opts := utils.DefaultOptions()

	if configFile := in.Option("config"); configFile != "" {
		config, err := utils.ParseConfig(configFile)
		if err != nil {
			return opts, err
		}
		opts.ApplyConfig(config)
	}

	opts.Tags = in.Option("tags")
	setString(&opts.Output, in.Option("output"))
	setString(&opts.URL, in.Option("url"))
	setString(&opts.Username, in.Option("username"))
	setString(&opts.ApiKey, in.Option("api_key"))
	setString(&opts.Extensions, in.Option("extensions"))
	if err := opts.SetPageLimit(in.Option("page_limit")); err != nil {
		return opts, err
	}
	if err := opts.SetLimit(in.Option("limit")); err != nil {
		return opts, err
	}
	opts.MaxFileSize = isDefined(in, "max_file_size")
	opts.SaveTags = isDefined(in, "save_tags")
	opts.TagsOnly = isDefined(in, "tags_only")
	opts.Debug = opts.Debug || isDefined(in, "debug")

	return opts, opts.Validate()
}
