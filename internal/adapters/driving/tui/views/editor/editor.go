// Package editor provides the writing surface: a textarea that edits the
// active document one paragraph per line.
//
// Each line holds the inner markup of one block, so inline tags such as
// <b> stay visible and editable. Block alignment is kept alongside the
// lines and survives line splits and joins.
package editor

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/markup"
)

// View is the editing surface.
type View struct {
	styles   *styles.Styles
	textarea textarea.Model

	// aligns holds one alignment per textarea line.
	aligns []markup.Alignment

	// content is the markup last loaded or produced by an edit.
	content string

	spellcheck bool
	width      int
	height     int
}

// NewView creates an empty editing surface.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Prompt = ""
	ta.Placeholder = "Start writing..."

	// Keys the shell intercepts for its own commands.
	ta.KeyMap.WordBackward = key.NewBinding(key.WithKeys("alt+left"))
	ta.KeyMap.WordForward = key.NewBinding(key.WithKeys("alt+right"))
	ta.KeyMap.CharacterBackward = key.NewBinding(key.WithKeys("left"))
	ta.KeyMap.LineNext = key.NewBinding(key.WithKeys("down"))
	ta.KeyMap.LinePrevious = key.NewBinding(key.WithKeys("up"))
	ta.KeyMap.DeleteWordForward = key.NewBinding(key.WithKeys("alt+delete"))
	ta.KeyMap.UppercaseWordForward = key.NewBinding(key.WithDisabled())
	ta.KeyMap.LowercaseWordForward = key.NewBinding(key.WithDisabled())
	ta.KeyMap.CapitalizeWordForward = key.NewBinding(key.WithDisabled())

	v := &View{
		styles:   s,
		textarea: ta,
		aligns:   []markup.Alignment{markup.AlignNone},
	}
	v.applyStyles()
	return v
}

// Init returns the cursor blink command.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// SetStyles switches the surface to s.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.applyStyles()
}

func (v *View) applyStyles() {
	st := textarea.Style{
		Base:        lipgloss.NewStyle(),
		CursorLine:  lipgloss.NewStyle(),
		EndOfBuffer: v.styles.Muted,
		Placeholder: v.styles.Muted,
		Prompt:      lipgloss.NewStyle(),
		Text:        v.styles.Normal,
	}
	v.textarea.FocusedStyle = st
	v.textarea.BlurredStyle = st
}

// SetContent shows markup. Unchanged markup is ignored so the caret stays
// where it is; new markup puts the caret at the start.
// Returns whether the surface was re-rendered.
func (v *View) SetContent(content string) bool {
	if content == v.content {
		return false
	}

	blocks := markup.ParseBlocks(content)
	lines := make([]string, 0, len(blocks))
	aligns := make([]markup.Alignment, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, flattenLine(b.Inner))
		aligns = append(aligns, b.Align)
	}
	if len(lines) == 0 {
		lines = []string{""}
		aligns = []markup.Alignment{markup.AlignNone}
	}

	v.textarea.SetValue(strings.Join(lines, "\n"))
	v.aligns = aligns
	v.content = content
	v.moveCursor(0, 0)
	return true
}

// flattenLine keeps a block on a single line. A newline inside markup
// renders as a space.
func flattenLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// Content returns the current markup.
func (v *View) Content() string {
	return v.content
}

// Update forwards input to the textarea and re-renders the markup when
// the text changed.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	before := v.textarea.Value()
	beforeLines := v.textarea.LineCount()
	beforeRow := v.textarea.Line()

	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)

	if v.textarea.Value() != before {
		v.syncAligns(beforeRow, beforeLines)
		v.content = v.render()
	}
	return v, cmd
}

// syncAligns keeps one alignment per line after the line count changed.
// A split line passes its alignment on to the new lines; joined lines
// keep the alignment of the line they were joined into.
func (v *View) syncAligns(beforeRow, beforeLines int) {
	delta := v.textarea.LineCount() - beforeLines
	switch {
	case delta > 0:
		src := min(beforeRow, len(v.aligns)-1)
		fill := make([]markup.Alignment, delta)
		if src >= 0 {
			for i := range fill {
				fill[i] = v.aligns[src]
			}
		}
		at := min(src+1, len(v.aligns))
		v.aligns = slices.Insert(v.aligns, max(at, 0), fill...)
	case delta < 0:
		from := min(v.textarea.Line()+1, len(v.aligns))
		to := min(from-delta, len(v.aligns))
		v.aligns = slices.Delete(v.aligns, from, to)
	}

	n := v.textarea.LineCount()
	for len(v.aligns) < n {
		v.aligns = append(v.aligns, markup.AlignNone)
	}
	v.aligns = v.aligns[:n]
}

// render builds markup from the lines and their alignments.
func (v *View) render() string {
	lines := strings.Split(v.textarea.Value(), "\n")
	blocks := make([]markup.Block, len(lines))
	for i, line := range lines {
		blocks[i] = markup.Block{Inner: line}
		if i < len(v.aligns) {
			blocks[i].Align = v.aligns[i]
		}
	}
	return markup.RenderBlocks(blocks)
}

// Apply runs a formatting command on the line under the caret.
// Returns whether the markup changed.
func (v *View) Apply(cmd domain.FormatCommand) bool {
	row, col := v.Cursor()
	lines := strings.Split(v.textarea.Value(), "\n")
	if row >= len(lines) || row >= len(v.aligns) {
		return false
	}

	blk := markup.Block{Inner: lines[row], Align: v.aligns[row]}
	if cmd.IsAlignment() {
		next := markup.Apply(blk, cmd)
		if next.Align == blk.Align {
			return false
		}
		v.aligns[row] = next.Align
		v.content = v.render()
		return true
	}

	wrapped := markup.Wrapped(blk, cmd)
	next := markup.Apply(blk, cmd)
	if next.Inner == blk.Inner {
		return false
	}

	// Keep the caret on the same character.
	shift := markup.OpenTagLen(cmd)
	if wrapped {
		shift = -(strings.IndexByte(blk.Inner, '>') + 1)
	}

	lines[row] = next.Inner
	v.textarea.SetValue(strings.Join(lines, "\n"))
	v.moveCursor(row, max(col+shift, 0))
	v.content = v.render()
	return true
}

// Cursor returns the caret line and column.
func (v *View) Cursor() (row, col int) {
	li := v.textarea.LineInfo()
	return v.textarea.Line(), li.StartColumn + li.ColumnOffset
}

// Alignment returns the alignment of the line under the caret.
func (v *View) Alignment() markup.Alignment {
	row := v.textarea.Line()
	if row < len(v.aligns) {
		return v.aligns[row]
	}
	return markup.AlignNone
}

// moveCursor puts the caret at row and col, clamped to the text.
// SetValue leaves the caret on the last line.
func (v *View) moveCursor(row, col int) {
	for v.textarea.Line() > row {
		prevRow, prevInfo := v.textarea.Line(), v.textarea.LineInfo()
		v.textarea.CursorUp()
		if v.textarea.Line() == prevRow && v.textarea.LineInfo().RowOffset == prevInfo.RowOffset {
			break
		}
	}
	v.textarea.SetCursor(col)
}

// SetSpellcheck records the spellcheck flag. Checking itself is not done.
func (v *View) SetSpellcheck(on bool) {
	v.spellcheck = on
}

// Spellcheck reports the spellcheck flag.
func (v *View) Spellcheck() bool {
	return v.spellcheck
}

// Focus gives the surface keyboard focus.
func (v *View) Focus() tea.Cmd {
	return v.textarea.Focus()
}

// Blur removes keyboard focus.
func (v *View) Blur() {
	v.textarea.Blur()
}

// Focused reports whether the surface has keyboard focus.
func (v *View) Focused() bool {
	return v.textarea.Focused()
}

// SetDimensions sets the size available to the surface.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.textarea.SetWidth(max(width-4, 10))
	v.textarea.SetHeight(max(height, 1))
}

// View renders the surface.
func (v *View) View() string {
	return v.styles.Editor.Render(v.textarea.View())
}
