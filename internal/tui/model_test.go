package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	"github.com/msto63/wandler/internal/engine"
	"github.com/msto63/wandler/internal/transform"
	"github.com/msto63/wandler/pkg/core/logging"
)

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyUndo     = tea.KeyMsg{Type: tea.KeyCtrlZ}
	keyCopy     = tea.KeyMsg{Type: tea.KeyCtrlY}
	keyPaste    = tea.KeyMsg{Type: tea.KeyCtrlV}
	keyClear    = tea.KeyMsg{Type: tea.KeyCtrlL}
	keyNextTab  = tea.KeyMsg{Type: tea.KeyCtrlRight}
	keyPrevTab  = tea.KeyMsg{Type: tea.KeyCtrlLeft}
	keyHelp     = tea.KeyMsg{Type: tea.KeyF1}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T, startTab string) Model {
	t.Helper()
	eng := engine.New(engine.WithLogger(logging.Discard()))
	cfg := DefaultConfig()
	cfg.StartTab = startTab
	m := New(eng, cfg)
	m.logger = logging.Discard()
	m.readClipboard = func() (string, error) { return "", nil }
	m.writeClipboard = func(string) error { return nil }
	return m
}

// send feeds messages through Update and returns the model and last command
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

// selectEntry moves the list cursor of the current tab onto id
func selectEntry(t *testing.T, m Model, id transform.ID) Model {
	t.Helper()
	for i, e := range m.entries() {
		if e.ID == id {
			m.cursors[m.group] = i
			return m
		}
	}
	t.Fatalf("%s is not on tab %s", id, m.groups[m.group])
	return m
}

func TestNew_StartTab(t *testing.T) {
	tests := []struct {
		tab  string
		want transform.Group
	}{
		{"misc", transform.GroupMisc},
		{"sql", transform.GroupSQL},
		{"regex", transform.GroupRegex},
		{"unknown", transform.GroupMisc},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			m := newModel(t, tt.tab)
			if got := m.groups[m.group]; got != tt.want {
				t.Errorf("start tab = %q, want %q", got, tt.want)
			}
			if m.focus != paneEditor {
				t.Errorf("focus = %v, want editor", m.focus)
			}
		})
	}
}

func TestModel_ApplyAndUndo(t *testing.T) {
	m := newModel(t, "misc")
	m.SetBuffer("hello big world")
	m, _ = send(t, m, keyTab)
	if m.focus != paneList {
		t.Fatalf("focus after tab = %v, want list", m.focus)
	}

	m = selectEntry(t, m, transform.IDSpacesToCamel)
	m, _ = send(t, m, keyEnter)
	if m.Buffer() != "helloBigWorld" {
		t.Fatalf("Buffer() = %q, want helloBigWorld", m.Buffer())
	}

	m = selectEntry(t, m, transform.IDCamelToUpperSnake)
	m, _ = send(t, m, keyEnter)
	if m.Buffer() != "HELLO_BIG_WORLD" || m.engine.Depth() != 2 {
		t.Fatalf("Buffer() = %q depth %d", m.Buffer(), m.engine.Depth())
	}
	if !strings.Contains(m.View(), "undo: 2") {
		t.Error("View() does not show the undo depth")
	}

	m, _ = send(t, m, keyUndo)
	if m.Buffer() != "helloBigWorld" {
		t.Errorf("after undo Buffer() = %q", m.Buffer())
	}
	m, _ = send(t, m, keyUndo)
	if m.Buffer() != "hello big world" || m.engine.CanUndo() {
		t.Errorf("after second undo Buffer() = %q, CanUndo = %v", m.Buffer(), m.engine.CanUndo())
	}

	m, _ = send(t, m, keyUndo)
	if m.Buffer() != "hello big world" || m.status != "! Nothing to undo" {
		t.Errorf("undo on empty history: buffer %q, status %q", m.Buffer(), m.status)
	}
	if !strings.Contains(m.View(), "undo: none") {
		t.Error("View() does not show the empty history")
	}
}

func TestModel_ListNavigation(t *testing.T) {
	m := newModel(t, "case")
	m, _ = send(t, m, keyTab, keyUp)
	if m.cursors[m.group] != 0 {
		t.Errorf("cursor moved above the first entry: %d", m.cursors[m.group])
	}

	n := len(m.entries())
	for i := 0; i < n+3; i++ {
		m, _ = send(t, m, keyDown)
	}
	if m.cursors[m.group] != n-1 {
		t.Errorf("cursor = %d, want last entry %d", m.cursors[m.group], n-1)
	}

	m, _ = send(t, m, typed("k"))
	if m.cursors[m.group] != n-2 {
		t.Errorf("k moved cursor to %d, want %d", m.cursors[m.group], n-2)
	}
}

func TestModel_EmptyBufferIsIgnored(t *testing.T) {
	m := newModel(t, "case")
	m, _ = send(t, m, keyTab)
	m = selectEntry(t, m, transform.IDUppercase)
	m, _ = send(t, m, keyEnter)

	if m.engine.Depth() != 0 || m.Buffer() != "" {
		t.Errorf("transform on empty buffer recorded history: depth %d", m.engine.Depth())
	}
	if m.status != "! Nothing to transform" {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_EditorReceivesTyping(t *testing.T) {
	m := newModel(t, "misc")
	m, _ = send(t, m, typed("jk"))
	if m.Buffer() != "jk" {
		t.Errorf("Buffer() = %q, want typed text", m.Buffer())
	}
	if m.engine.Depth() != 0 {
		t.Error("typing must not record history")
	}
}

func TestModel_Regex(t *testing.T) {
	m := newModel(t, "regex")
	m.SetBuffer("abc123def45")

	m, _ = send(t, m, keyTab, keyTab)
	if m.focus != panePattern {
		t.Fatalf("focus = %v, want pattern", m.focus)
	}
	m, _ = send(t, m, keyEnter)
	if m.engine.Depth() != 0 || m.status != "! Enter a pattern first" {
		t.Errorf("empty pattern: depth %d, status %q", m.engine.Depth(), m.status)
	}

	m, _ = send(t, m, typed("[0-9]+"), keyTab, typed("#"))
	if m.focus != paneReplacement {
		t.Fatalf("focus = %v, want replacement", m.focus)
	}
	m, _ = send(t, m, keyEnter)
	if m.Buffer() != "abc#def#" {
		t.Errorf("Buffer() = %q, want abc#def#", m.Buffer())
	}

	m, _ = send(t, m, keyTab)
	if m.focus != paneEditor {
		t.Errorf("focus after cycling = %v, want editor", m.focus)
	}

	view := m.View()
	if !strings.Contains(view, "(?i)") {
		t.Error("regex tab help does not describe the inline flags")
	}
}

func TestModel_InvalidRegex(t *testing.T) {
	m := newModel(t, "regex")
	m.SetBuffer("abc")
	m, _ = send(t, m, keyShiftTab, keyShiftTab)
	if m.focus != panePattern {
		t.Fatalf("focus = %v, want pattern", m.focus)
	}
	m, _ = send(t, m, typed("("), keyEnter)

	if !transform.IsInvalidPattern(m.err) {
		t.Fatalf("err = %v, want INVALID_PATTERN", m.err)
	}
	if m.Buffer() != "abc" || m.engine.Depth() != 0 {
		t.Errorf("failed regex changed state: %q depth %d", m.Buffer(), m.engine.Depth())
	}
	if !strings.Contains(m.View(), "Invalid Regex") {
		t.Error("View() does not show the regex error")
	}
}

func TestModel_SwitchGroup(t *testing.T) {
	m := newModel(t, "misc")

	m, _ = send(t, m, keyPrevTab)
	if m.groups[m.group] != transform.GroupRegex {
		t.Errorf("previous tab from misc = %q, want regex", m.groups[m.group])
	}

	m, _ = send(t, m, keyTab, keyTab)
	if m.focus != panePattern {
		t.Fatalf("focus = %v, want pattern", m.focus)
	}
	m, _ = send(t, m, keyNextTab)
	if m.groups[m.group] != transform.GroupMisc {
		t.Errorf("next tab from regex = %q, want misc", m.groups[m.group])
	}
	if m.focus != paneList {
		t.Errorf("focus after leaving regex tab = %v, want list", m.focus)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.groups[m.group] != transform.GroupCase {
		t.Errorf("right arrow in list = %q, want case", m.groups[m.group])
	}
}

func TestModel_Paste(t *testing.T) {
	m := newModel(t, "misc")
	m.SetBuffer("before")
	m.readClipboard = func() (string, error) { return "from clipboard", nil }

	m, cmd := send(t, m, keyPaste)
	if cmd == nil {
		t.Fatal("paste returned no command")
	}
	m, _ = send(t, m, cmd())

	if m.Buffer() != "from clipboard" || m.engine.Depth() != 1 {
		t.Fatalf("after paste: %q depth %d", m.Buffer(), m.engine.Depth())
	}
	m, _ = send(t, m, keyUndo)
	if m.Buffer() != "before" {
		t.Errorf("undo after paste = %q, want before", m.Buffer())
	}
}

func TestModel_Copy(t *testing.T) {
	m := newModel(t, "misc")
	m.SetBuffer("größe")
	var copied string
	m.writeClipboard = func(s string) error { copied = s; return nil }

	m, cmd := send(t, m, keyCopy)
	m, _ = send(t, m, cmd())

	if copied != "größe" {
		t.Errorf("clipboard = %q", copied)
	}
	if m.status != "Copied 5 characters" {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_ClipboardErrors(t *testing.T) {
	m := newModel(t, "misc")
	m.readClipboard = func() (string, error) { return "", errors.New("no xclip") }

	m, cmd := send(t, m, keyPaste)
	m, _ = send(t, m, cmd())
	if !mdwerror.HasCode(m.err, mdwerror.CodeClipboard) {
		t.Errorf("err = %v, want CLIPBOARD", m.err)
	}
	if m.engine.Depth() != 0 {
		t.Error("failed paste recorded history")
	}

	cfg := DefaultConfig()
	cfg.Clipboard = false
	disabled := New(engine.New(engine.WithLogger(logging.Discard())), cfg)
	disabled.logger = logging.Discard()
	disabled, cmd = send(t, disabled, keyCopy)
	disabled, _ = send(t, disabled, cmd())
	if !mdwerror.HasCode(disabled.err, mdwerror.CodeClipboard) {
		t.Errorf("disabled clipboard err = %v, want CLIPBOARD", disabled.err)
	}
}

func TestModel_Clear(t *testing.T) {
	m := newModel(t, "misc")
	m, _ = send(t, m, keyClear)
	if m.engine.Depth() != 0 {
		t.Error("clearing an empty buffer recorded history")
	}

	m.SetBuffer("text")
	m, _ = send(t, m, keyClear)
	if m.Buffer() != "" || m.engine.Depth() != 1 {
		t.Errorf("after clear: %q depth %d", m.Buffer(), m.engine.Depth())
	}
	m, _ = send(t, m, keyUndo)
	if m.Buffer() != "text" {
		t.Errorf("undo after clear = %q", m.Buffer())
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newModel(t, "regex")
	if !m.showHelp {
		t.Fatal("help should be shown by default")
	}
	m, _ = send(t, m, keyHelp)
	if m.showHelp || strings.Contains(m.View(), "(?m)") {
		t.Error("help still shown after toggle")
	}
	m, _ = send(t, m, keyHelp)
	if !m.showHelp {
		t.Error("help not shown after second toggle")
	}
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		t.Run(k.String(), func(t *testing.T) {
			_, cmd := send(t, newModel(t, "misc"), k)
			if cmd == nil {
				t.Fatal("quit key returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key did not quit")
			}
		})
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newModel(t, "misc")
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	if m.editor.Width() <= 0 {
		t.Error("editor width not set")
	}
}
