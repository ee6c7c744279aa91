// Package keymap defines keybindings for the TUI.
//
// Editing keys go to the writing surface; everything here is intercepted
// before it. Alt bindings are used for toggles because terminals cannot
// tell ctrl+m from enter.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit flushes pending changes and exits.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the editor or leaves the sidebar.
	Back key.Binding

	// Focus moves focus between the sidebar and the editor.
	Focus key.Binding

	// Up and Down navigate the sidebar and the preview.
	Up   key.Binding
	Down key.Binding

	// Select activates the sidebar item under the cursor.
	Select key.Binding

	// Delete removes the document under the sidebar cursor.
	Delete key.Binding

	// NewDocument creates a document and switches to it.
	NewDocument key.Binding

	// Save writes the workspace now.
	Save key.Binding

	// Preview shows the portable text rendering of the active document.
	Preview key.Binding

	// Copy puts the portable text on the clipboard.
	Copy key.Binding

	// ExportText and ExportDoc export the active document.
	ExportText key.Binding
	ExportDoc  key.Binding

	// Preference and view toggles.
	DarkMode   key.Binding
	Fullscreen key.Binding
	WordCount  key.Binding
	Spellcheck key.Binding
	AutoSave   key.Binding
	Sidebar    key.Binding

	// Inline formatting of the current line.
	Bold        key.Binding
	Italic      key.Binding
	Underline   key.Binding
	AlignLeft   key.Binding
	AlignCenter key.Binding
	AlignRight  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sidebar/editor"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete document"),
		),
		NewDocument: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy text"),
		),
		ExportText: key.NewBinding(
			key.WithKeys("alt+t"),
			key.WithHelp("alt+t", "export .txt"),
		),
		ExportDoc: key.NewBinding(
			key.WithKeys("alt+o"),
			key.WithHelp("alt+o", "export .doc"),
		),
		DarkMode: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("alt+m", "dark mode"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("alt+f"),
			key.WithHelp("alt+f", "fullscreen"),
		),
		WordCount: key.NewBinding(
			key.WithKeys("alt+w"),
			key.WithHelp("alt+w", "word count"),
		),
		Spellcheck: key.NewBinding(
			key.WithKeys("alt+s"),
			key.WithHelp("alt+s", "spellcheck"),
		),
		AutoSave: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("alt+a", "autosave"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "sidebar"),
		),
		Bold: key.NewBinding(
			key.WithKeys("alt+b"),
			key.WithHelp("alt+b", "bold"),
		),
		Italic: key.NewBinding(
			key.WithKeys("alt+i"),
			key.WithHelp("alt+i", "italic"),
		),
		Underline: key.NewBinding(
			key.WithKeys("alt+u"),
			key.WithHelp("alt+u", "underline"),
		),
		AlignLeft: key.NewBinding(
			key.WithKeys("alt+l"),
			key.WithHelp("alt+l", "align left"),
		),
		AlignCenter: key.NewBinding(
			key.WithKeys("alt+e"),
			key.WithHelp("alt+e", "align center"),
		),
		AlignRight: key.NewBinding(
			key.WithKeys("alt+r"),
			key.WithHelp("alt+r", "align right"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewDocument, k.Focus, k.Help, k.Quit}
}

// SidebarHelp returns the bindings shown while the sidebar has focus.
func (k *KeyMap) SidebarHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Delete, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewDocument, k.Save, k.Preview, k.Copy, k.ExportText, k.ExportDoc},
		{k.Bold, k.Italic, k.Underline, k.AlignLeft, k.AlignCenter, k.AlignRight},
		{k.DarkMode, k.Fullscreen, k.WordCount, k.Spellcheck, k.AutoSave, k.Sidebar},
		{k.Focus, k.Up, k.Down, k.Select, k.Delete, k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
