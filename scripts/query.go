package scripts

import (
	"danbooru-scraper-go/utils"
	"fmt"
	"strings"

	go_console "github.com/DrSmithFr/go-console"
	"github.com/alecthomas/repr"
)

func QueryScript(cmd *go_console.Script) go_console.ExitCode {
	query, err := utils.ParseTagQuery(cmd.Input.Option("tags"))
	if err != nil {
		fmt.Printf("Failed to parse query: %s\n", err.Error())
		return go_console.ExitError
	}
	if query.IsEmpty() {
		fmt.Printf("Query is empty\n")
		return go_console.ExitError
	}

	fmt.Printf("Query: %s\n", query.String())
	fmt.Printf("Tags: %d\n", query.TagCount())
	if metatags := query.Metatags(); len(metatags) > 0 {
		fmt.Printf("Metatags: %s\n", strings.Join(metatags, " "))
	}
	if query.TagCount() > utils.AnonymousTagLimit {
		fmt.Printf("More than %d tags, a logged in account is required\n", utils.AnonymousTagLimit)
	}
	if isDefined(cmd.Input, "debug") {
		repr.Println(query)
	}

	return go_console.ExitSuccess
}
