package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/views/editor"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/blankpage/internal/adapters/driving/tui/views/sidebar"
	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/logger"
	"github.com/custodia-labs/blankpage/internal/markup"
)

// saveEvents is the capacity of the channel bridging save callbacks into
// the program. Events beyond it are dropped.
const saveEvents = 16

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles is shared with every view and swapped in place on theme change.
	styles *styles.Styles
	keymap *keymap.KeyMap

	editor  *editor.View
	sidebar *sidebar.View
	preview *preview.View
	status  *status.Bar

	// currentView tracks which view is shown.
	currentView messages.ViewType

	// focus is the pane receiving keys in the editor view.
	focus messages.Pane

	// editingID is the document loaded into the editor.
	editingID string

	// fullscreen tracks the alternate screen.
	fullscreen bool

	// saves carries persistence results into the program.
	saves chan error

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	prefs := ports.Preferences.Get()
	s := styles.NewStyles(styles.ThemeFor(prefs.DarkMode))
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		editor:      editor.NewView(s),
		sidebar:     sidebar.NewView(s, km),
		preview:     preview.NewView(s, km),
		status:      status.NewBar(s, km),
		currentView: messages.ViewEditor,
		focus:       messages.PaneEditor,
		fullscreen:  true,
		width:       80,
		height:      24,
	}

	if ports.Persistence != nil {
		a.saves = make(chan error, saveEvents)
		ports.Persistence.OnSave(func(err error) {
			select {
			case a.saves <- err:
			default:
			}
		})
	}

	a.editor.Focus()
	a.refresh()
	a.layout()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("Blank Page"),
		a.editor.Init(),
		a.waitForSave(),
		a.waitForConfig(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case tea.KeyMsg:
		cmd = a.handleKeyMsg(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewEditor {
			cmd = a.setFocus(messages.PaneEditor)
		}

	case messages.NewDocumentRequested:
		cmd = a.newDocument()

	case messages.DocumentSelected:
		cmd = a.switchDocument(msg.ID)

	case messages.DocumentDeleteRequested:
		a.ports.Workspace.Delete(msg.ID)
		a.markDirty()
		a.refresh()

	case messages.PreferenceToggled:
		a.togglePreference(msg.Preference)

	case messages.FullscreenToggled:
		cmd = a.toggleFullscreen()

	case messages.ExportRequested:
		cmd = a.exportCmd(msg.Format)

	case messages.Exported:
		if msg.Err != nil {
			a.setError(msg.Err)
		} else {
			a.status.SetMessage(fmt.Sprintf("Exported %s to %s", msg.Format.Filename(), msg.Location))
		}

	case messages.Saved:
		if msg.Err != nil {
			a.setError(msg.Err)
		} else {
			a.setState(status.StateSaved)
		}
		cmd = a.waitForSave()

	case messages.ConfigReloaded:
		a.status.SetMessage("Configuration reloaded")
		logger.Info("Configuration reloaded (debounce %s)", msg.Config.Debounce)
		cmd = a.waitForConfig()

	case messages.ErrorOccurred:
		a.setError(msg.Err)

	case messages.Quit:
		return a, a.quit()

	default:
		// Blink and other internal messages.
		switch a.currentView {
		case messages.ViewEditor:
			a.editor, cmd = a.editor.Update(msg)
		case messages.ViewPreview:
			a.preview, cmd = a.preview.Update(msg)
		case messages.ViewHelp:
		}
	}

	a.syncSaveState()
	return a, cmd
}

// handleKeyMsg routes a key press.
//
//nolint:gocyclo,funlen // one branch per binding
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	km := a.keymap

	if key.Matches(msg, km.Quit) {
		return a.quit()
	}

	switch a.currentView {
	case messages.ViewHelp:
		if key.Matches(msg, km.Back) || key.Matches(msg, km.Help) {
			a.currentView = messages.ViewEditor
			return a.setFocus(a.focus)
		}
		return nil
	case messages.ViewPreview:
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return cmd
	case messages.ViewEditor:
	}

	switch {
	case key.Matches(msg, km.Help):
		a.currentView = messages.ViewHelp
		return nil
	case key.Matches(msg, km.NewDocument):
		return a.newDocument()
	case key.Matches(msg, km.Save):
		return a.saveCmd()
	case key.Matches(msg, km.Preview):
		a.openPreview()
		return nil
	case key.Matches(msg, km.Copy):
		return a.copyCmd()
	case key.Matches(msg, km.ExportText):
		return a.exportCmd(domain.ExportFormatText)
	case key.Matches(msg, km.ExportDoc):
		return a.exportCmd(domain.ExportFormatRichDocument)
	case key.Matches(msg, km.DarkMode):
		a.togglePreference(domain.PreferenceDarkMode)
		return nil
	case key.Matches(msg, km.WordCount):
		a.togglePreference(domain.PreferenceWordCount)
		return nil
	case key.Matches(msg, km.Spellcheck):
		a.togglePreference(domain.PreferenceSpellCheck)
		return nil
	case key.Matches(msg, km.AutoSave):
		a.togglePreference(domain.PreferenceAutoSave)
		return nil
	case key.Matches(msg, km.Sidebar):
		a.togglePreference(domain.PreferenceSidebarCollapsed)
		return nil
	case key.Matches(msg, km.Fullscreen):
		return a.toggleFullscreen()
	case key.Matches(msg, km.Focus):
		if a.focus == messages.PaneEditor && !a.sidebarCollapsed() {
			return a.setFocus(messages.PaneSidebar)
		}
		return a.setFocus(messages.PaneEditor)
	}

	if a.focus == messages.PaneSidebar {
		if key.Matches(msg, km.Back) {
			return a.setFocus(messages.PaneEditor)
		}
		var cmd tea.Cmd
		a.sidebar, cmd = a.sidebar.Update(msg)
		return cmd
	}

	if fc, ok := a.formatCommand(msg); ok {
		if a.editor.Apply(fc) {
			a.commitEdit()
		}
		return nil
	}

	before := a.editor.Content()
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	if a.editor.Content() != before {
		a.commitEdit()
	}
	return cmd
}

// formatCommand maps a key press to an inline formatting command.
func (a *App) formatCommand(msg tea.KeyMsg) (domain.FormatCommand, bool) {
	km := a.keymap
	switch {
	case key.Matches(msg, km.Bold):
		return domain.FormatBold, true
	case key.Matches(msg, km.Italic):
		return domain.FormatItalic, true
	case key.Matches(msg, km.Underline):
		return domain.FormatUnderline, true
	case key.Matches(msg, km.AlignLeft):
		return domain.FormatAlignLeft, true
	case key.Matches(msg, km.AlignCenter):
		return domain.FormatAlignCenter, true
	case key.Matches(msg, km.AlignRight):
		return domain.FormatAlignRight, true
	}
	return "", false
}

// commitEdit stores the editor's markup as the active document's content.
func (a *App) commitEdit() {
	if a.ports.Workspace.UpdateContent(a.editingID, a.editor.Content()) {
		a.markDirty()
	}
	a.refresh()
}

func (a *App) newDocument() tea.Cmd {
	a.ports.Workspace.Create()
	a.markDirty()
	a.refresh()
	a.status.SetMessage("New document")
	a.currentView = messages.ViewEditor
	return a.setFocus(messages.PaneEditor)
}

func (a *App) switchDocument(id string) tea.Cmd {
	if !a.ports.Workspace.Switch(id) {
		a.setError(fmt.Errorf("switch to %q: %w", id, domain.ErrNotFound))
		return nil
	}
	a.refresh()
	return a.setFocus(messages.PaneEditor)
}

// togglePreference flips pref and applies it to the views.
func (a *App) togglePreference(pref domain.Preference) {
	value, err := a.ports.Preferences.Toggle(a.ctx, pref)
	if err != nil {
		a.setError(err)
		return
	}
	logger.Debug("Preference %s set to %t", pref, value)

	switch pref {
	case domain.PreferenceDarkMode:
		*a.styles = *styles.NewStyles(styles.ThemeFor(value))
		a.editor.SetStyles(a.styles)
		a.preview.SetStyles(a.styles)
	case domain.PreferenceSidebarCollapsed:
		if value && a.focus == messages.PaneSidebar {
			a.setFocus(messages.PaneEditor)
		}
		a.layout()
	}
	a.refresh()
}

func (a *App) toggleFullscreen() tea.Cmd {
	a.fullscreen = !a.fullscreen
	a.refresh()
	if a.fullscreen {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

// openPreview shows the portable text of the active document.
func (a *App) openPreview() {
	active := a.ports.Workspace.Active()
	exp, err := a.ports.Export.Render(domain.ExportFormatText, active.Content)
	if err != nil {
		a.setError(err)
		return
	}
	a.preview.SetContent(markup.Title(active.Content), exp.Content)
	a.currentView = messages.ViewPreview
	a.editor.Blur()
}

func (a *App) exportCmd(format domain.ExportFormat) tea.Cmd {
	export := a.ports.Export
	ctx := a.ctx
	return func() tea.Msg {
		loc, err := export.ExportActive(ctx, format)
		return messages.Exported{Format: format, Location: loc, Err: err}
	}
}

func (a *App) copyCmd() tea.Cmd {
	clip := a.ports.Clipboard
	if clip == nil {
		a.setError(ErrClipboardUnavailable)
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		loc, err := clip.ExportActive(ctx, domain.ExportFormatText)
		return messages.Exported{Format: domain.ExportFormatText, Location: loc, Err: err}
	}
}

func (a *App) saveCmd() tea.Cmd {
	p := a.ports.Persistence
	if p == nil {
		a.setError(ErrPersistenceUnavailable)
		return nil
	}
	a.setState(status.StatePending)
	ctx := a.ctx
	return func() tea.Msg {
		return messages.Saved{Err: p.Save(ctx)}
	}
}

// waitForSave returns a command yielding the next persistence result.
func (a *App) waitForSave() tea.Cmd {
	if a.saves == nil {
		return nil
	}
	saves := a.saves
	return func() tea.Msg {
		return messages.Saved{Err: <-saves}
	}
}

// waitForConfig returns a command yielding the next configuration reload.
func (a *App) waitForConfig() tea.Cmd {
	events := a.ports.ConfigEvents
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-events
		if !ok {
			return nil
		}
		return messages.ConfigReloaded{Config: cfg}
	}
}

// quit writes pending changes and stops the program.
func (a *App) quit() tea.Cmd {
	if a.ports.Persistence != nil {
		if err := a.ports.Persistence.Flush(a.ctx); err != nil {
			logger.Warn("Failed to save on quit: %v", err)
		}
	}
	return tea.Quit
}

// markDirty records an unsaved change in the status bar.
func (a *App) markDirty() {
	if a.ports.Persistence == nil {
		return
	}
	a.status.SetMessage("")
	if a.ports.Preferences.Get().AutoSave {
		a.setState(status.StatePending)
	} else {
		a.setState(status.StateUnsaved)
	}
}

// syncSaveState settles a pending state once no write is scheduled.
// Writes of unchanged documents are skipped without a save event.
func (a *App) syncSaveState() {
	p := a.ports.Persistence
	if p == nil || a.status.State() != status.StatePending {
		return
	}
	if !p.Pending() && a.ports.Preferences.Get().AutoSave {
		a.setState(status.StateSaved)
	}
}

// setState shows a save state, replacing a shown error.
func (a *App) setState(st status.State) {
	a.status.SetError(nil)
	a.status.SetState(st)
}

func (a *App) setError(err error) {
	a.err = err
	logger.Warn("%v", err)
	a.status.SetError(err)
}

// setFocus moves keyboard focus to pane.
func (a *App) setFocus(pane messages.Pane) tea.Cmd {
	if pane == messages.PaneSidebar && a.sidebarCollapsed() {
		pane = messages.PaneEditor
	}
	a.focus = pane
	a.sidebar.SetFocused(pane == messages.PaneSidebar)
	a.status.SetSidebarFocused(pane == messages.PaneSidebar)
	if pane == messages.PaneEditor {
		return a.editor.Focus()
	}
	a.sidebar.SelectDocument(a.editingID)
	a.editor.Blur()
	return nil
}

func (a *App) sidebarCollapsed() bool {
	return a.ports.Preferences.Get().SidebarCollapsed
}

// refresh copies the workspace and preferences into the views.
func (a *App) refresh() {
	ws := a.ports.Workspace
	prefs := a.ports.Preferences.Get()
	active := ws.Active()

	a.editor.SetContent(active.Content)
	a.editingID = active.ID
	a.editor.SetSpellcheck(prefs.SpellCheck)

	a.sidebar.SetState(ws.Documents(), active.ID, prefs, a.fullscreen)

	a.status.SetWordCount(markup.WordCount(active.Content))
	a.status.SetShowWordCount(prefs.ShowWordCount)
	a.status.SetSpellcheck(prefs.SpellCheck)
	a.status.SetAutoSave(prefs.AutoSave)
}

// layout sizes the views to the terminal.
func (a *App) layout() {
	bodyHeight := max(a.height-1, 1)
	a.status.SetWidth(a.width)
	a.preview.SetDimensions(a.width, bodyHeight)

	editorWidth := a.width
	if !a.sidebarCollapsed() {
		a.sidebar.SetDimensions(sidebar.Width, bodyHeight)
		editorWidth -= sidebar.Width + 1
	}
	// One line is taken by the document header.
	a.editor.SetDimensions(max(editorWidth, 10), max(bodyHeight-1, 1))
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewHelp:
		body = a.viewHelp()
	case messages.ViewPreview:
		body = a.preview.View()
	case messages.ViewEditor:
		body = a.viewEditor()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, a.status.View())
}

// viewEditor renders the sidebar and the writing surface side by side.
func (a *App) viewEditor() string {
	active := a.ports.Workspace.Active()
	header := a.styles.Title.Render(markup.Title(active.Content))
	if align := a.editor.Alignment(); align != markup.AlignNone {
		header += a.styles.Muted.Render(" · " + string(align))
	}

	surface := lipgloss.JoinVertical(lipgloss.Left, "  "+header, a.editor.View())
	if a.sidebarCollapsed() {
		return surface
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), surface)
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	titles := []string{"Documents", "Formatting", "Settings", "Navigation"}
	for i, group := range a.keymap.FullHelp() {
		if i < len(titles) {
			b.WriteString(a.styles.Subtitle.Render(titles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to editor"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Focus returns the pane that receives keys.
func (a *App) Focus() messages.Pane {
	return a.focus
}

// Fullscreen reports whether the alternate screen is in use.
func (a *App) Fullscreen() bool {
	return a.fullscreen
}

// Styles returns the styles shared by the views.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Editor returns the writing surface.
func (a *App) Editor() *editor.View {
	return a.editor
}

// Sidebar returns the sidebar.
func (a *App) Sidebar() *sidebar.View {
	return a.sidebar
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}
