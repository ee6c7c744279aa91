package markup

import (
	"regexp"
	"strings"

	nethtml "golang.org/x/net/html"
)

// Alignment is the horizontal alignment of a block.
type Alignment string

// Available alignments. AlignNone renders without a style and displays
// left-aligned.
const (
	AlignNone   Alignment = ""
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Block is one paragraph of markup.
type Block struct {
	// Inner is the source between the container's tags, byte for byte.
	// An empty Inner is an empty line.
	Inner string

	// Align is the block's alignment.
	Align Alignment
}

// IsEmpty reports whether the block is an empty line.
func (b Block) IsEmpty() bool {
	return b.Inner == ""
}

var (
	textAlignStyle = regexp.MustCompile(`(?i)text-align\s*:\s*(left|center|right)`)
	breakOnly      = regexp.MustCompile(`(?i)^\s*<br\s*/?>\s*$`)
)

// ParseBlocks splits markup into blocks.
//
// Each top-level <div> or <p> becomes one block whose Inner is the source
// between its tags. Containers nested inside it stay part of Inner. Content
// outside any container becomes a block of its own unless it is only
// whitespace. A block containing nothing but a single <br> is an empty line.
func ParseBlocks(markup string) []Block {
	var (
		blocks []Block
		inner  strings.Builder
		loose  strings.Builder
		align  Alignment
		inside bool
		depth  int
	)

	flushLoose := func() {
		if strings.TrimSpace(loose.String()) != "" {
			blocks = append(blocks, newBlock(loose.String(), AlignNone))
		}
		loose.Reset()
	}

	z := nethtml.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == nethtml.ErrorToken {
			break
		}
		raw := string(z.Raw())

		var name string
		if tt == nethtml.StartTagToken || tt == nethtml.EndTagToken {
			n, _ := z.TagName()
			name = string(n)
		}
		container := name == "div" || name == "p"

		if !inside {
			if tt == nethtml.StartTagToken && container {
				flushLoose()
				inside, depth, align = true, 0, tagAlignment(z)
				continue
			}
			if tt == nethtml.EndTagToken && container {
				// Stray closing tag.
				continue
			}
			loose.WriteString(raw)
			continue
		}

		if container {
			switch tt {
			case nethtml.StartTagToken:
				depth++
			case nethtml.EndTagToken:
				if depth == 0 {
					blocks = append(blocks, newBlock(inner.String(), align))
					inner.Reset()
					inside = false
					continue
				}
				depth--
			}
		}
		inner.WriteString(raw)
	}

	if inside {
		blocks = append(blocks, newBlock(inner.String(), align))
	}
	flushLoose()
	return blocks
}

func newBlock(inner string, align Alignment) Block {
	if breakOnly.MatchString(inner) {
		inner = ""
	}
	return Block{Inner: inner, Align: align}
}

// tagAlignment reads the alignment of the current start tag from its style
// or align attribute.
func tagAlignment(z *nethtml.Tokenizer) Alignment {
	align := AlignNone
	for {
		key, val, more := z.TagAttr()
		switch string(key) {
		case "style":
			if m := textAlignStyle.FindStringSubmatch(string(val)); m != nil {
				align = Alignment(strings.ToLower(m[1]))
			}
		case "align":
			switch a := Alignment(strings.ToLower(strings.TrimSpace(string(val)))); a {
			case AlignLeft, AlignCenter, AlignRight:
				align = a
			}
		}
		if !more {
			return align
		}
	}
}

// RenderBlocks joins blocks back into markup. Every block becomes a <div>;
// empty lines are written as <div><br></div>. No blocks, or a single empty
// block, render as the empty string.
func RenderBlocks(blocks []Block) string {
	if len(blocks) == 0 || (len(blocks) == 1 && blocks[0].IsEmpty()) {
		return ""
	}

	var b strings.Builder
	for _, blk := range blocks {
		if blk.Align == AlignNone {
			b.WriteString("<div>")
		} else {
			b.WriteString(`<div style="text-align: `)
			b.WriteString(string(blk.Align))
			b.WriteString(`;">`)
		}
		if blk.IsEmpty() {
			b.WriteString("<br>")
		} else {
			b.WriteString(blk.Inner)
		}
		b.WriteString("</div>")
	}
	return b.String()
}
