package utils

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AnonymousTagLimit is the number of plain tags an anonymous search may use.
const AnonymousTagLimit = 2

type QueryTerm struct {
	Prefix  string  `parser:"@Prefix?"`
	Metatag *string `parser:"( @Metatag"`
	Tag     *string `parser:"| @Tag )"`
}

func (t *QueryTerm) Negated() bool {
	return t.Prefix == "-"
}

func (t *QueryTerm) Value() string {
	if t.Metatag != nil {
		return *t.Metatag
	}
	if t.Tag != nil {
		return *t.Tag
	}
	return ""
}

func (t *QueryTerm) String() string {
	return t.Prefix + t.Value()
}

type TagQuery struct {
	Terms []*QueryTerm `parser:"@@*"`
}

// TagCount counts plain tags. Metatags are not counted.
func (q *TagQuery) TagCount() int {
	n := 0
	for _, term := range q.Terms {
		if term.Tag != nil {
			n++
		}
	}
	return n
}

func (q *TagQuery) Metatags() []string {
	var result []string
	for _, term := range q.Terms {
		if term.Metatag != nil {
			result = append(result, term.String())
		}
	}
	return result
}

func (q *TagQuery) IsEmpty() bool {
	return len(q.Terms) == 0
}

// String renders the query with single spaces between terms.
func (q *TagQuery) String() string {
	parts := make([]string, 0, len(q.Terms))
	for _, term := range q.Terms {
		parts = append(parts, term.String())
	}
	return strings.Join(parts, " ")
}

var l = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "whitespace", Pattern: `\s+`},
	{Name: "Metatag", Pattern: `(?i)(?:rating|order|score|user|fav|ordfav|pool|date|age|id|status|filetype|source|width|height|mpixels|ratio|md5|is|has|tagcount|favcount|parent|child|limit|random|search|approver|commenter|noter|upvote|downvote):[^\s]*`},
	{Name: "Prefix", Pattern: `[-~]`},
	{Name: "Tag", Pattern: `[^\s]+`},
})
var QueryParser = participle.MustBuild[TagQuery](
	participle.Lexer(l),
)

// CollapseWhitespace trims the search and joins its words with single spaces.
// Nothing else about the search is changed.
func CollapseWhitespace(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

func ParseTagQuery(query string) (*TagQuery, error) {
	return QueryParser.ParseString("", query)
}
