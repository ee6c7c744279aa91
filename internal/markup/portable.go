package markup

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled patterns for the portable text pipeline, in application order.
var (
	brTags         = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockCloseTags = regexp.MustCompile(`(?i)</(p|div)>`)
	boldSpans      = regexp.MustCompile(`(?i)<(?:b|strong)>(.*?)</(?:b|strong)>`)
	italicSpans    = regexp.MustCompile(`(?i)<(?:i|em)>(.*?)</(?:i|em)>`)
	underlineSpans = regexp.MustCompile(`(?i)<u>(.*?)</u>`)
	multiNewlines  = regexp.MustCompile(`\n{3,}`)
)

// PortableText converts markup to plain text with lightweight emphasis
// markers: **bold**, *italic* and _underline_. Paragraphs are separated by
// one blank line.
//
// Each emphasis kind is matched once, left to right, with the shortest
// span. Nested tags of the same kind are not balanced and spans that cross
// a line break are not matched, so those tags are dropped without markers.
func PortableText(markup string) string {
	text := brTags.ReplaceAllString(markup, "\n")
	text = blockCloseTags.ReplaceAllString(text, "\n\n")

	text = boldSpans.ReplaceAllString(text, "**${1}**")
	text = italicSpans.ReplaceAllString(text, "*${1}*")
	text = underlineSpans.ReplaceAllString(text, "_${1}_")

	text = allTags.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	return strings.TrimSpace(CollapseNewlines(text))
}

// CollapseNewlines replaces every run of three or more line feeds with
// exactly two. It is idempotent.
func CollapseNewlines(s string) string {
	return multiNewlines.ReplaceAllString(s, "\n\n")
}
