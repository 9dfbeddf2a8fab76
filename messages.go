package main

import tea "github.com/charmbracelet/bubbletea"

// ─── Messages ────────────────────────────────────────────────────────────────
//
// All messages are internal to the Update loop. Async tea.Cmd functions
// (in commands.go) produce these; Update handles them. Messages with an
// `id` field use generation counters to ignore stale timers.

// fileChangedMsg is sent by the fsnotify watcher after debounce, when the
// list file was modified by someone other than this session.
type fileChangedMsg struct{}

// noticeMsg shows a transient message in the status bar.
type noticeMsg struct {
	text string
}

type noticeClearMsg struct {
	id int
}

func noticeCmd(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}
