package main

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ─── Clipboard ───────────────────────────────────────────────────────────────

// The system clipboard is an optional capability. When it is unavailable
// (headless session, no xclip/xsel on Linux), copy and paste fall back to an
// internal single-item buffer and surface a transient notice instead of
// failing the command.

const clipboardNotice = "system clipboard unavailable, using internal buffer"

// clipboardAvailable probes for a usable system clipboard.
func clipboardAvailable() bool {
	return !clipboard.Unsupported
}

// copySelection duplicates the first selected item into the internal buffer
// and, when the system clipboard is available, copies the display text of
// the whole selection.
func copySelection(items todoList, sel *cursor, buffer *todoItem) tea.Cmd {
	*buffer = items[sel.first()].clone()
	if !clipboardAvailable() {
		return noticeCmd(clipboardNotice)
	}
	texts := make([]string, 0, sel.len())
	for _, pos := range sel.positions() {
		texts = append(texts, items[pos].text)
	}
	if err := clipboard.WriteAll(strings.Join(texts, "\n")); err != nil {
		return noticeCmd("clipboard: " + err.Error())
	}
	return noticeCmd("copied")
}

// pasteAfter inserts clipboard content below position. Content matching the
// internal buffer's text pastes the buffered item verbatim, preserving its
// marker and color; anything else becomes fresh unchecked items, one per
// line. Without a system clipboard the buffered item is pasted directly.
func pasteAfter(items todoList, position int, buffer todoItem) (todoList, tea.Cmd) {
	if !clipboardAvailable() {
		return items.insert(position+1, buffer.clone()), noticeCmd(clipboardNotice)
	}
	pasted, err := clipboard.ReadAll()
	if err != nil {
		return items.insert(position+1, buffer.clone()), noticeCmd("clipboard: " + err.Error())
	}
	if pasted == buffer.text {
		return items.insert(position+1, buffer.clone()), nil
	}
	lines := strings.Split(strings.TrimSpace(pasted), "\n")
	for i, line := range lines {
		items = items.insert(position+1+i, newItem(markerUnchecked, 0, line))
	}
	return items, nil
}
