// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/blankpage/internal/markup"
)

// State represents the save state shown on the left of the bar.
type State string

const (
	StateReady   State = "ready"
	StatePending State = "pending"
	StateUnsaved State = "unsaved"
	StateSaved   State = "saved"
	StateError   State = "error"
	StateHelp    State = "help"
)

// Bar displays the save state, editor flags, the word count and
// keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	words     int
	showWords bool
	spell     bool
	autosave  bool
	sidebar   bool
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:    s,
		keymap:    km,
		state:     StateReady,
		showWords: true,
		autosave:  true,
		width:     80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the save state or the latest message.
func (s *Bar) renderLeft() string {
	if s.state == StateError {
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	}
	if s.message != "" {
		return s.styles.Normal.Render(s.message)
	}

	switch s.state {
	case StatePending:
		return s.styles.Muted.Render("Saving...")
	case StateUnsaved:
		return s.styles.Warning.Render("Not saved")
	case StateSaved:
		return s.styles.Success.Render("Saved")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateReady, StateError:
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders editor flags, the word count and keybinding hints.
func (s *Bar) renderRight() string {
	var parts []string

	if !s.autosave {
		parts = append(parts, s.styles.Warning.Render("autosave off"))
	}
	if s.spell {
		parts = append(parts, s.styles.Muted.Render("spellcheck"))
	}
	if s.showWords {
		parts = append(parts, s.styles.Normal.Render(markup.WordCountLabel(s.words)))
	}

	var bindings []key.Binding
	if s.sidebar {
		bindings = s.keymap.SidebarHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	parts = append(parts, s.styles.Muted.Render(strings.Join(hints, " | ")))

	return strings.Join(parts, s.styles.Muted.Render(" · "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a transient message. It replaces the state label until
// cleared.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetError shows err. A nil error clears a previous one.
func (s *Bar) SetError(err error) {
	if err == nil {
		if s.state == StateError {
			s.Clear()
		}
		return
	}
	s.state = StateError
	s.message = err.Error()
}

// SetWordCount sets the number of words in the active document.
func (s *Bar) SetWordCount(n int) {
	s.words = n
}

// WordCount returns the displayed word count.
func (s *Bar) WordCount() int {
	return s.words
}

// SetShowWordCount shows or hides the word count.
func (s *Bar) SetShowWordCount(show bool) {
	s.showWords = show
}

// SetSpellcheck shows or hides the spellcheck indicator.
func (s *Bar) SetSpellcheck(on bool) {
	s.spell = on
}

// SetAutoSave shows a warning while autosave is off.
func (s *Bar) SetAutoSave(on bool) {
	s.autosave = on
}

// SetSidebarFocused switches the hints to the sidebar bindings.
func (s *Bar) SetSidebarFocused(focused bool) {
	s.sidebar = focused
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to the ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
