// Package sidebar provides the sidebar view: preference toggles, the
// document history and export actions.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/markup"
)

// Width is the sidebar width in columns, border included.
const Width = 34

// ItemKind identifies what a sidebar entry does.
type ItemKind int

const (
	// ItemNew creates a document.
	ItemNew ItemKind = iota
	// ItemPreference toggles a preference.
	ItemPreference
	// ItemFullscreen toggles the alternate screen.
	ItemFullscreen
	// ItemDocument switches to a document.
	ItemDocument
	// ItemExport exports the active document.
	ItemExport
)

// Item is one selectable sidebar entry.
type Item struct {
	Kind       ItemKind
	Preference domain.Preference
	DocumentID string
	Format     domain.ExportFormat
}

// View is the sidebar view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	items      []Item
	docs       []domain.Document
	activeID   string
	prefs      domain.Preferences
	fullscreen bool
	cursor     int
	focused    bool
	height     int
}

// NewView creates a new sidebar view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	v := &View{styles: s, keymap: km, prefs: domain.DefaultPreferences()}
	v.rebuild()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetState replaces the displayed documents and preferences.
// The cursor stays on the same document when it still exists.
func (v *View) SetState(docs []domain.Document, activeID string, prefs domain.Preferences, fullscreen bool) {
	var selectedID string
	if sel, ok := v.Selected(); ok && sel.Kind == ItemDocument {
		selectedID = sel.DocumentID
	}

	v.docs = docs
	v.activeID = activeID
	v.prefs = prefs
	v.fullscreen = fullscreen
	v.rebuild()

	if selectedID != "" {
		for i, it := range v.items {
			if it.Kind == ItemDocument && it.DocumentID == selectedID {
				v.cursor = i
				return
			}
		}
	}
	v.clampCursor()
}

func (v *View) rebuild() {
	prefs := domain.AllPreferences()
	formats := domain.AllExportFormats()

	items := make([]Item, 0, 2+len(prefs)+len(v.docs)+len(formats))
	items = append(items, Item{Kind: ItemNew})
	for _, p := range prefs {
		items = append(items, Item{Kind: ItemPreference, Preference: p})
	}
	items = append(items, Item{Kind: ItemFullscreen})
	for _, d := range v.docs {
		items = append(items, Item{Kind: ItemDocument, DocumentID: d.ID})
	}
	for _, f := range formats {
		items = append(items, Item{Kind: ItemExport, Format: f})
	}
	v.items = items
}

func (v *View) clampCursor() {
	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// Update handles key presses while the sidebar has focus.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, v.keymap.Down):
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, v.keymap.Select):
		return v, v.activate()
	case key.Matches(keyMsg, v.keymap.Delete):
		if sel, ok := v.Selected(); ok && sel.Kind == ItemDocument {
			id := sel.DocumentID
			return v, func() tea.Msg {
				return messages.DocumentDeleteRequested{ID: id}
			}
		}
	}

	return v, nil
}

// activate returns the command for the item under the cursor.
func (v *View) activate() tea.Cmd {
	sel, ok := v.Selected()
	if !ok {
		return nil
	}

	var msg tea.Msg
	switch sel.Kind {
	case ItemNew:
		msg = messages.NewDocumentRequested{}
	case ItemPreference:
		msg = messages.PreferenceToggled{Preference: sel.Preference}
	case ItemFullscreen:
		msg = messages.FullscreenToggled{}
	case ItemDocument:
		msg = messages.DocumentSelected{ID: sel.DocumentID}
	case ItemExport:
		msg = messages.ExportRequested{Format: sel.Format}
	default:
		return nil
	}
	return func() tea.Msg { return msg }
}

// View renders the sidebar.
func (v *View) View() string {
	inner := Width - 3
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Blank Page"))
	b.WriteString("\n\n")

	lastKind := ItemKind(-1)
	for i, it := range v.items {
		if it.Kind != lastKind {
			if header := sectionHeader(it.Kind, lastKind); header != "" {
				b.WriteString("\n")
				b.WriteString(v.styles.Subtitle.Render(header))
				b.WriteString("\n")
			}
			lastKind = it.Kind
		}

		line := runewidth.FillRight(runewidth.Truncate(v.label(it), inner, "…"), inner)
		switch {
		case v.focused && i == v.cursor:
			line = v.styles.Selected.Render(line)
		case it.Kind == ItemDocument && it.DocumentID == v.activeID:
			line = v.styles.Active.Render(line)
		case it.Kind == ItemDocument:
			line = v.styles.Normal.Render(line)
		default:
			line = v.styles.Muted.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	style := v.styles.Sidebar.Width(Width - 1)
	if v.height > 0 {
		style = style.Height(v.height)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func sectionHeader(kind, prev ItemKind) string {
	switch kind {
	case ItemPreference:
		return "Settings"
	case ItemDocument:
		return "History"
	case ItemExport:
		return "Export"
	case ItemFullscreen:
		if prev != ItemPreference {
			return "Settings"
		}
	case ItemNew:
	}
	return ""
}

// label renders the text of an item.
func (v *View) label(it Item) string {
	switch it.Kind {
	case ItemNew:
		return "+ New document"
	case ItemPreference:
		return checkbox(v.prefs.Get(it.Preference)) + it.Preference.Description()
	case ItemFullscreen:
		return checkbox(v.fullscreen) + "Fullscreen"
	case ItemDocument:
		for _, d := range v.docs {
			if d.ID == it.DocumentID {
				marker := "  "
				if d.ID == v.activeID {
					marker = "• "
				}
				return fmt.Sprintf("%s%s  %s", marker, markup.Title(d.Content), humanize.Time(d.ModifiedAt()))
			}
		}
		return it.DocumentID
	case ItemExport:
		return "↓ " + it.Format.Filename()
	}
	return ""
}

func checkbox(on bool) string {
	if on {
		return "[x] "
	}
	return "[ ] "
}

// SetFocused gives or takes keyboard focus.
func (v *View) SetFocused(focused bool) {
	v.focused = focused
}

// Focused reports whether the sidebar has keyboard focus.
func (v *View) Focused() bool {
	return v.focused
}

// SetDimensions sets the available height.
func (v *View) SetDimensions(_, height int) {
	v.height = height
}

// Items returns the selectable entries in display order.
func (v *View) Items() []Item {
	return v.items
}

// Cursor returns the index of the highlighted item.
func (v *View) Cursor() int {
	return v.cursor
}

// Selected returns the highlighted item.
func (v *View) Selected() (Item, bool) {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return Item{}, false
	}
	return v.items[v.cursor], true
}

// SelectDocument moves the cursor to the document with id.
func (v *View) SelectDocument(id string) bool {
	for i, it := range v.items {
		if it.Kind == ItemDocument && it.DocumentID == id {
			v.cursor = i
			return true
		}
	}
	return false
}
