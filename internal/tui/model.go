// Package tui is the interactive terminal host: a text buffer, one tab per
// transform group and the undo history of a single engine session.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	"github.com/msto63/wandler/foundation/utils/stringx"
	"github.com/msto63/wandler/internal/engine"
	"github.com/msto63/wandler/internal/transform"
	"github.com/msto63/wandler/pkg/core/logging"
)

// pane identifies the component that receives keys
type pane int

const (
	paneEditor pane = iota
	paneList
	panePattern
	paneReplacement
)

const listWidth = 34

// Config holds TUI settings
type Config struct {
	StartTab  string
	ShowHelp  bool
	Clipboard bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		StartTab:  string(transform.GroupMisc),
		ShowHelp:  true,
		Clipboard: true,
	}
}

// Model is the Bubbletea model of the converter
type Model struct {
	// State
	width    int
	height   int
	focus    pane
	group    int
	cursors  []int
	showHelp bool
	status   string
	err      error

	// Session
	engine *engine.Engine
	groups []transform.Group
	logger *logging.Logger

	// Components
	editor      textarea.Model
	pattern     textinput.Model
	replacement textinput.Model
	help        help.Model
	keys        keyMap

	// Clipboard access, nil when disabled
	readClipboard  func() (string, error)
	writeClipboard func(string) error
}

// New creates the model for one engine session
func New(eng *engine.Engine, cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste text, then pick a transform..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(60)
	ta.SetHeight(12)
	// Paste replaces the whole buffer and is recorded in the history
	ta.KeyMap.Paste.SetEnabled(false)
	ta.Focus()

	pi := textinput.New()
	pi.Placeholder = "regular expression, e.g. (?i)(\\w+)@example"
	pi.Prompt = ""

	ri := textinput.New()
	ri.Placeholder = "replacement, e.g. $1"
	ri.Prompt = ""

	groups := eng.Catalog().Groups()
	m := Model{
		focus:       paneEditor,
		cursors:     make([]int, len(groups)),
		showHelp:    cfg.ShowHelp,
		engine:      eng,
		groups:      groups,
		logger:      logging.New("tui").WithSession(eng.ID()),
		editor:      ta,
		pattern:     pi,
		replacement: ri,
		help:        help.New(),
		keys:        defaultKeyMap(),
	}
	for i, g := range groups {
		if string(g) == cfg.StartTab {
			m.group = i
		}
	}
	if cfg.Clipboard {
		m.readClipboard = clipboard.ReadAll
		m.writeClipboard = clipboard.WriteAll
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Buffer returns the current text
func (m Model) Buffer() string {
	return m.editor.Value()
}

// SetBuffer replaces the text without recording history
func (m *Model) SetBuffer(s string) {
	m.editor.SetValue(s)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case clipboardReadMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.engine.RecordBeforeMutation(m.editor.Value())
		m.editor.SetValue(msg.text)
		m.ok(fmt.Sprintf("Pasted %d characters", len([]rune(msg.text))))
		return m, nil

	case clipboardWrittenMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.ok(fmt.Sprintf("Copied %d characters", msg.chars))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Undo):
		m.undo()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyBuffer()

	case key.Matches(msg, m.keys.Paste):
		return m, m.pasteBuffer()

	case key.Matches(msg, m.keys.Clear):
		if m.editor.Value() != "" {
			m.engine.RecordBeforeMutation(m.editor.Value())
			m.editor.Reset()
			m.ok("Cleared")
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NextGroup):
		return m.switchGroup(1)

	case key.Matches(msg, m.keys.PrevGroup):
		return m.switchGroup(-1)

	case key.Matches(msg, m.keys.NextPane):
		return m.cyclePane(1)

	case key.Matches(msg, m.keys.PrevPane):
		return m.cyclePane(-1)
	}

	switch m.focus {
	case paneList:
		entries := m.entries()
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursors[m.group] > 0 {
				m.cursors[m.group]--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursors[m.group] < len(entries)-1 {
				m.cursors[m.group]++
			}
		case msg.Type == tea.KeyLeft:
			return m.switchGroup(-1)
		case msg.Type == tea.KeyRight:
			return m.switchGroup(1)
		case key.Matches(msg, m.keys.Apply):
			m.apply()
		}
		return m, nil

	case panePattern, paneReplacement:
		if key.Matches(msg, m.keys.Apply) {
			m.apply()
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

// updateFocused forwards a message to the focused input component
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case paneEditor:
		m.editor, cmd = m.editor.Update(msg)
	case panePattern:
		m.pattern, cmd = m.pattern.Update(msg)
	case paneReplacement:
		m.replacement, cmd = m.replacement.Update(msg)
	}
	return m, cmd
}

// apply runs the selected transform on the buffer
func (m *Model) apply() {
	entries := m.entries()
	if len(entries) == 0 {
		return
	}
	entry := entries[m.cursors[m.group]]

	args := transform.Args{}
	if entry.NeedsPattern {
		args.Pattern = m.pattern.Value()
		args.Replacement = m.replacement.Value()
	}

	out, err := m.engine.Apply(entry.ID, m.editor.Value(), args)
	if err != nil {
		m.fail(err)
		return
	}
	if !out.Applied {
		if entry.NeedsPattern {
			m.warn("Enter a pattern first")
		} else {
			m.warn("Nothing to transform")
		}
		return
	}

	m.editor.SetValue(out.Text)
	m.ok("Applied " + entry.Label)
}

func (m *Model) undo() {
	prev, ok := m.engine.Undo()
	if !ok {
		m.warn("Nothing to undo")
		return
	}
	m.editor.SetValue(prev)
	m.ok("Undone")
}

func (m Model) copyBuffer() tea.Cmd {
	if m.writeClipboard == nil {
		return clipboardDisabled
	}
	text := m.editor.Value()
	write := m.writeClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return clipboardWrittenMsg{err: clipboardError(err, "copy")}
		}
		return clipboardWrittenMsg{chars: len([]rune(text))}
	}
}

func (m Model) pasteBuffer() tea.Cmd {
	if m.readClipboard == nil {
		return clipboardDisabled
	}
	read := m.readClipboard
	return func() tea.Msg {
		text, err := read()
		if err != nil {
			return clipboardReadMsg{err: clipboardError(err, "paste")}
		}
		return clipboardReadMsg{text: text}
	}
}

func clipboardDisabled() tea.Msg {
	return clipboardWrittenMsg{err: mdwerror.New("clipboard is disabled in the configuration").
		WithCode(mdwerror.CodeClipboard)}
}

func clipboardError(err error, op string) error {
	return mdwerror.Wrap(err, op+" failed").
		WithCode(mdwerror.CodeClipboard).
		WithOperation("tui." + op)
}

func (m Model) switchGroup(delta int) (tea.Model, tea.Cmd) {
	n := len(m.groups)
	if n == 0 {
		return m, nil
	}
	m.group = (m.group + delta + n) % n
	m.err = nil
	m.status = ""

	// The regex inputs only exist on the regex tab
	if !m.isRegexTab() && (m.focus == panePattern || m.focus == paneReplacement) {
		return m.setFocus(paneList)
	}
	return m, nil
}

func (m Model) cyclePane(delta int) (tea.Model, tea.Cmd) {
	panes := []pane{paneEditor, paneList}
	if m.isRegexTab() {
		panes = append(panes, panePattern, paneReplacement)
	}
	idx := 0
	for i, p := range panes {
		if p == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(panes)) % len(panes)
	return m.setFocus(panes[idx])
}

func (m Model) setFocus(p pane) (tea.Model, tea.Cmd) {
	m.focus = p
	m.editor.Blur()
	m.pattern.Blur()
	m.replacement.Blur()

	var cmd tea.Cmd
	switch p {
	case paneEditor:
		cmd = m.editor.Focus()
	case panePattern:
		cmd = m.pattern.Focus()
	case paneReplacement:
		cmd = m.replacement.Focus()
	}
	return m, cmd
}

func (m Model) entries() []transform.Entry {
	if len(m.groups) == 0 {
		return nil
	}
	return m.engine.Catalog().ByGroup(m.groups[m.group])
}

func (m Model) isRegexTab() bool {
	for _, e := range m.entries() {
		if e.NeedsPattern {
			return true
		}
	}
	return false
}

func (m *Model) ok(status string) {
	m.err = nil
	m.status = status
}

func (m *Model) warn(status string) {
	m.err = nil
	m.status = "! " + status
}

func (m *Model) fail(err error) {
	m.logger.Debug("operation failed", "error", err)
	m.err = err
	m.status = ""
}

func (m *Model) resize() {
	w := m.width - listWidth - 6
	if w < 20 {
		w = 20
	}
	m.editor.SetWidth(w)

	h := m.height - 10
	if m.isRegexTab() {
		h -= 3
	}
	if h < 3 {
		h = 3
	}
	m.editor.SetHeight(h)
	m.pattern.Width = w - 14
	m.replacement.Width = w - 14
	m.help.Width = m.width
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("wandler"))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render("naming convention converter"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	list := m.renderList()
	right := m.renderEditor()
	if m.isRegexTab() {
		right = lipgloss.JoinVertical(lipgloss.Left, right, m.renderRegexInputs())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, right))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		if m.isRegexTab() {
			b.WriteString(RenderHelp(transform.RegexHelp))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.groups))
	for i, g := range m.groups {
		if i == m.group {
			tabs[i] = ActiveTabStyle.Render(g.Title())
		} else {
			tabs[i] = TabStyle.Render(g.Title())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderList() string {
	var lines []string
	entries := m.entries()
	for i, e := range entries {
		if i == m.cursors[m.group] {
			lines = append(lines, SelectedMenuItemStyle.Render("▸ "+e.Label))
		} else {
			lines = append(lines, MenuItemStyle.Render(e.Label))
		}
	}
	if len(entries) > 0 {
		desc := entries[m.cursors[m.group]].Description
		lines = append(lines, "", DescriptionStyle.Render(stringx.Truncate(desc, 3*listWidth, "…")))
	}

	style := BoxStyle
	if m.focus == paneList {
		style = FocusedBoxStyle
	}
	return style.Width(listWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderEditor() string {
	style := BoxStyle
	if m.focus == paneEditor {
		style = FocusedBoxStyle
	}
	return style.Render(m.editor.View())
}

func (m Model) renderRegexInputs() string {
	label := func(p pane, text string) string {
		if m.focus == p {
			return FocusedInputLabelStyle.Render(text)
		}
		return InputLabelStyle.Render(text)
	}
	rows := []string{
		label(panePattern, "Find") + m.pattern.View(),
		label(paneReplacement, "Replace with") + m.replacement.View(),
	}

	style := BoxStyle
	if m.focus == panePattern || m.focus == paneReplacement {
		style = FocusedBoxStyle
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) renderStatus() string {
	var undo string
	if m.engine.CanUndo() {
		undo = StatusOKStyle.Render(fmt.Sprintf("undo: %d", m.engine.Depth()))
	} else {
		undo = StatusWarnStyle.Render("undo: none")
	}

	var msg string
	switch {
	case m.err != nil:
		msg = RenderError(stringx.FirstLine(m.err.Error()))
	case strings.HasPrefix(m.status, "! "):
		msg = StatusWarnStyle.Render(strings.TrimPrefix(m.status, "! "))
	case m.status != "":
		msg = StatusOKStyle.Render(m.status)
	}

	chars := fmt.Sprintf("%d chars", len([]rune(m.editor.Value())))
	return StatusBarStyle.Render(strings.Join([]string{undo, chars, msg}, "  │  "))
}

// Run starts the converter TUI
func Run(eng *engine.Engine, cfg Config, initial string) error {
	m := New(eng, cfg)
	m.SetBuffer(initial)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
