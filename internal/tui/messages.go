package tui

// Message types for tea.Cmd async operations

// clipboardReadMsg carries the clipboard content requested by the paste key
type clipboardReadMsg struct {
	text string
	err  error
}

// clipboardWrittenMsg reports the result of the copy key
type clipboardWrittenMsg struct {
	chars int
	err   error
}
