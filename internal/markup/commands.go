package markup

import (
	"strings"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

type emphasis struct {
	open, close string
	aliases     [][2]string
}

var emphases = map[domain.FormatCommand]emphasis{
	domain.FormatBold:      {open: "<b>", close: "</b>", aliases: [][2]string{{"<strong>", "</strong>"}}},
	domain.FormatItalic:    {open: "<i>", close: "</i>", aliases: [][2]string{{"<em>", "</em>"}}},
	domain.FormatUnderline: {open: "<u>", close: "</u>"},
}

// Apply runs an inline formatting command on a block.
//
// Emphasis commands toggle: when the whole block is already wrapped in the
// matching tag the wrapper is removed, otherwise it is added. Alignment
// commands replace the block's alignment; left is the default and clears
// it. Unknown commands return the block unchanged.
func Apply(b Block, cmd domain.FormatCommand) Block {
	switch cmd {
	case domain.FormatAlignLeft:
		b.Align = AlignNone
		return b
	case domain.FormatAlignCenter:
		b.Align = AlignCenter
		return b
	case domain.FormatAlignRight:
		b.Align = AlignRight
		return b
	}

	e, ok := emphases[cmd]
	if !ok {
		return b
	}
	if inner, ok := e.unwrap(b.Inner); ok {
		b.Inner = inner
		return b
	}
	b.Inner = e.open + b.Inner + e.close
	return b
}

// Wrapped reports whether the whole block is wrapped by the emphasis of cmd.
func Wrapped(b Block, cmd domain.FormatCommand) bool {
	e, ok := emphases[cmd]
	if !ok {
		return false
	}
	_, ok = e.unwrap(b.Inner)
	return ok
}

// OpenTagLen returns the length of the opening tag Apply adds for cmd.
// Alignment and unknown commands return 0.
func OpenTagLen(cmd domain.FormatCommand) int {
	return len(emphases[cmd].open)
}

func (e emphasis) unwrap(s string) (string, bool) {
	pairs := append([][2]string{{e.open, e.close}}, e.aliases...)
	lower := strings.ToLower(s)
	for _, p := range pairs {
		if len(s) >= len(p[0])+len(p[1]) && strings.HasPrefix(lower, p[0]) && strings.HasSuffix(lower, p[1]) {
			return s[len(p[0]) : len(s)-len(p[1])], true
		}
	}
	return "", false
}
