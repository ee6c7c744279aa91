package markup

import (
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// TitleLength is the maximum number of characters in a derived title.
	TitleLength = 35

	// UntitledTitle is shown for documents without any text.
	UntitledTitle = "Untitled"
)

// Title returns the first non-blank line of the plain text of markup,
// trimmed and cut to TitleLength characters. Empty or whitespace-only text
// yields UntitledTitle.
func Title(markup string) string {
	var first string
	for line := range strings.Lines(PlainText(markup)) {
		if first = strings.TrimSpace(line); first != "" {
			break
		}
	}

	if r := []rune(first); len(r) > TitleLength {
		first = string(r[:TitleLength])
	}
	if first == "" {
		return UntitledTitle
	}
	return first
}

// WordCount returns the number of whitespace-separated words in the plain
// text of markup.
func WordCount(markup string) int {
	return len(strings.Fields(PlainText(markup)))
}

// WordCountLabel formats a count as "1 word" or "1,024 words".
func WordCountLabel(n int) string {
	if n == 1 {
		return "1 word"
	}
	return humanize.Comma(int64(n)) + " words"
}
