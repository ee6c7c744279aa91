// Package preview shows the portable text export of the active document.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/styles"
)

// View renders text as markdown in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	title  string
	text   string
	width  int
	height int
}

// NewView creates an empty preview.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   22,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetContent shows text under title and scrolls back to the top.
func (v *View) SetContent(title, text string) {
	v.title = title
	v.text = text
	v.render()
	v.viewport.GotoTop()
}

// Text returns the unrendered text.
func (v *View) Text() string {
	return v.text
}

// SetStyles switches the preview to s and re-renders.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.render()
}

// SetDimensions sets the size available to the preview.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = max(width, 20)
	v.viewport.Height = max(height-2, 1)
	v.render()
}

// render writes the text into the viewport through the markdown renderer.
// Plain text is shown when rendering fails.
func (v *View) render() {
	style := styles.LightName
	if v.styles.Dark() {
		style = styles.DarkName
	}

	out := v.text
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(v.width-4, 16)),
	)
	if err == nil {
		if rendered, err := r.Render(v.text); err == nil {
			out = rendered
		}
	}
	v.viewport.SetContent(out)
}

// Update handles scrolling and leaving the preview.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, v.keymap.Back), key.Matches(msg, v.keymap.Preview):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewEditor}
			}
		case key.Matches(msg, v.keymap.Up):
			v.viewport.ScrollUp(1)
			return v, nil
		case key.Matches(msg, v.keymap.Down):
			v.viewport.ScrollDown(1)
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the preview.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Preview: " + v.title))
	b.WriteString("\n")
	b.WriteString(v.viewport.View())
	return b.String()
}
