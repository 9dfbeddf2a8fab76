package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m *model, keys ...tea.KeyMsg) {
	t.Helper()
	for _, k := range keys {
		m2, _ := m.Update(k)
		*m = m2.(model)
	}
}

// pressGet returns the last command so tests can assert on tea.Quit.
func pressGet(t *testing.T, m *model, k tea.KeyMsg) tea.Cmd {
	t.Helper()
	m2, cmd := m.Update(k)
	*m = m2.(model)
	return cmd
}

func typeString(t *testing.T, m *model, s string) {
	t.Helper()
	for _, r := range s {
		press(t, m, keyRune(r))
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// testModel builds a model over a real temp file with autosave on.
func testModel(t *testing.T, lines ...string) model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.txt")
	store := &diskList{path: path}
	items := listFromLines(t, lines...)
	if err := store.write(items); err != nil {
		t.Fatal(err)
	}
	m := newModel(items, store, newDefaultConfig(), nil)
	m2, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m2.(model)
}

func fileContent(t *testing.T, m *model) string {
	t.Helper()
	data, err := os.ReadFile(m.store.path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestNavigation(t *testing.T) {
	m := testModel(t, "- a", "- b", "- c")
	press(t, &m, keyRune('j'), keyRune('j'))
	if m.sel.first() != 2 {
		t.Errorf("after jj: %d", m.sel.first())
	}
	press(t, &m, keyRune('j')) // clamped
	if m.sel.first() != 2 {
		t.Errorf("moved past bottom: %d", m.sel.first())
	}
	press(t, &m, keyRune('g'))
	if m.sel.first() != 0 {
		t.Errorf("after g: %d", m.sel.first())
	}
	press(t, &m, keyRune('G'))
	if m.sel.first() != 2 {
		t.Errorf("after G: %d", m.sel.first())
	}
}

func TestToggleWritesThrough(t *testing.T) {
	m := testModel(t, "- task")
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.items[0].toggled() {
		t.Fatal("item not toggled")
	}
	if got := fileContent(t, &m); got != "+ task" {
		t.Errorf("autosaved content = %q", got)
	}
}

func TestMultiselectToggle(t *testing.T) {
	m := testModel(t, "- a", "- b", "- c")
	press(t, &m, keyRune('J'), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.items[0].toggled() || !m.items[1].toggled() || m.items[2].toggled() {
		t.Errorf("toggled wrong rows: %q", m.items.encode())
	}
}

func TestDeleteSelection(t *testing.T) {
	m := testModel(t, "- a", "- b", "- c", "- d")
	press(t, &m, keyRune('j'), keyRune('J'), keyRune('d'))
	if m.items.encode() != "- a\n- d" {
		t.Errorf("after delete: %q", m.items.encode())
	}
	if m.sel.first() != 1 || m.sel.len() != 1 {
		t.Errorf("cursor after delete: [%d,%d)", m.sel.start, m.sel.stop)
	}
}

func TestDeleteLastItemLeavesEmptyList(t *testing.T) {
	m := testModel(t, "- only")
	press(t, &m, keyRune('d'))
	if len(m.items) != 0 {
		t.Errorf("items left: %q", m.items.encode())
	}
	// Keys on an empty list must not panic.
	press(t, &m, keyRune('j'), keyRune('k'), tea.KeyMsg{Type: tea.KeyEnter}, keyRune('d'))
}

func TestUndoRedoKeys(t *testing.T) {
	m := testModel(t, "- a", "- b")
	press(t, &m, keyRune('d'))
	if m.items.encode() != "- b" {
		t.Fatalf("after delete: %q", m.items.encode())
	}
	press(t, &m, keyRune('u'))
	if m.items.encode() != "- a\n- b" {
		t.Errorf("after undo: %q", m.items.encode())
	}
	press(t, &m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.items.encode() != "- b" {
		t.Errorf("after redo: %q", m.items.encode())
	}
	// Undo also rolls the file back under autosave.
	press(t, &m, keyRune('u'))
	if got := fileContent(t, &m); got != "- a\n- b" {
		t.Errorf("file after undo = %q", got)
	}
}

func TestEditFlow(t *testing.T) {
	m := testModel(t, "- old text")
	press(t, &m, keyRune('e'))
	if m.mode != modeEdit {
		t.Fatal("edit mode not entered")
	}
	m.input.SetValue("new text")
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.items[0].text != "new text" || m.mode != modeList {
		t.Errorf("after edit: %q mode %d", m.items[0].text, m.mode)
	}
}

func TestEditEscRestores(t *testing.T) {
	m := testModel(t, "- keep me")
	press(t, &m, keyRune('e'))
	m.input.SetValue("discarded")
	press(t, &m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.items[0].text != "keep me" {
		t.Errorf("esc committed the edit: %q", m.items[0].text)
	}
}

func TestNewItemFlow(t *testing.T) {
	m := testModel(t, "  - parent task")
	press(t, &m, keyRune('i'))
	if m.mode != modeEdit || len(m.items) != 2 {
		t.Fatalf("mode %d items %d", m.mode, len(m.items))
	}
	// New item inherits the current item's indentation.
	if m.items[1].indent != 2 {
		t.Errorf("new item indent = %d", m.items[1].indent)
	}
	typeString(t, &m, "child")
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.items.encode() != "  - parent task\n  - child" {
		t.Errorf("after insert: %q", m.items.encode())
	}
}

func TestNewItemEscRemovesIt(t *testing.T) {
	m := testModel(t, "- a")
	press(t, &m, keyRune('i'), tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.items) != 1 {
		t.Errorf("aborted insert left %d items", len(m.items))
	}
}

func TestInsertBlankLine(t *testing.T) {
	m := testModel(t, "- a", "- b")
	press(t, &m, keyRune('o'))
	if m.items.encode() != "- a\n\n- b" {
		t.Errorf("after o: %q", m.items.encode())
	}
	if m.sel.first() != 1 {
		t.Errorf("cursor not on blank: %d", m.sel.first())
	}
}

func TestDuplicate(t *testing.T) {
	m := testModel(t, "+2 important")
	press(t, &m, keyRune('D'))
	if m.items.encode() != "+2 important\n+2 important" {
		t.Errorf("after duplicate: %q", m.items.encode())
	}
}

func TestIndentKeys(t *testing.T) {
	m := testModel(t, "- a", "- b")
	press(t, &m, tea.KeyMsg{Type: tea.KeyTab})
	if m.items[0].indent != 2 {
		t.Errorf("indent = %d", m.items[0].indent)
	}
	press(t, &m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.items[0].indent != 0 {
		t.Errorf("dedent = %d", m.items[0].indent)
	}
}

func TestMoveItem(t *testing.T) {
	m := testModel(t, "- a", "- b", "- c")
	press(t, &m, tea.KeyMsg{Type: tea.KeyCtrlJ})
	if m.items.encode() != "- b\n- a\n- c" {
		t.Errorf("after move down: %q", m.items.encode())
	}
	if m.sel.first() != 1 {
		t.Errorf("selection did not follow: %d", m.sel.first())
	}
	press(t, &m, tea.KeyMsg{Type: tea.KeyCtrlK})
	if m.items.encode() != "- a\n- b\n- c" {
		t.Errorf("after move up: %q", m.items.encode())
	}
}

func TestCountJump(t *testing.T) {
	m := testModel(t, "- a", "- b", "- c", "- d", "- e", "- f")
	press(t, &m, keyRune('3'), keyRune('j'))
	if m.sel.first() != 3 {
		t.Errorf("3j: %d", m.sel.first())
	}
	press(t, &m, keyRune('2'), keyRune('k'))
	if m.sel.first() != 1 {
		t.Errorf("2k: %d", m.sel.first())
	}
	press(t, &m, keyRune('5'), keyRune('g'))
	if m.sel.first() != 4 {
		t.Errorf("5g: %d", m.sel.first())
	}
	// Counts clamp rather than overshoot.
	press(t, &m, keyRune('9'), keyRune('9'), keyRune('j'))
	if m.sel.first() != 5 {
		t.Errorf("99j: %d", m.sel.first())
	}
}

func TestCountJumpAborts(t *testing.T) {
	m := testModel(t, "- a", "- b", "- c")
	// A non-terminal key cancels the pending count with no other effect.
	press(t, &m, keyRune('2'), keyRune('d'))
	if len(m.items) != 3 {
		t.Errorf("abort key still executed: %q", m.items.encode())
	}
	if m.pending != "" {
		t.Errorf("pending not cleared: %q", m.pending)
	}
	press(t, &m, keyRune('j'))
	if m.sel.first() != 1 {
		t.Errorf("normal keys broken after abort: %d", m.sel.first())
	}
}

func TestCountJumpMultiselect(t *testing.T) {
	m := testModel(t, "- a", "- b", "- c", "- d", "- e")
	press(t, &m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true}, keyRune('j'))
	if m.sel.first() != 0 || m.sel.len() != 4 {
		t.Errorf("alt+3 j: [%d,%d)", m.sel.start, m.sel.stop)
	}
}

func TestSearch(t *testing.T) {
	m := testModel(t, "- apples", "- bread", "- apple pie", "- milk")
	press(t, &m, keyRune('/'))
	if m.mode != modeSearch {
		t.Fatal("search mode not entered")
	}
	typeString(t, &m, "apple")
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.sel.first() != 0 {
		t.Errorf("first match: %d", m.sel.first())
	}
	press(t, &m, keyRune('n'))
	if m.sel.first() != 2 {
		t.Errorf("next match: %d", m.sel.first())
	}
	press(t, &m, keyRune('n')) // wraps around
	if m.sel.first() != 0 {
		t.Errorf("wrapped match: %d", m.sel.first())
	}
}

func TestSearchIsForwardOnly(t *testing.T) {
	m := testModel(t, "- x", "- apple", "- zzz")
	press(t, &m, keyRune('G'), keyRune('/'))
	typeString(t, &m, "apple")
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter})
	// The only match lies behind the cursor; the scan does not wrap and
	// the cursor resets to the top.
	if m.sel.first() != 0 {
		t.Errorf("forward-miss cursor: %d, want 0", m.sel.first())
	}
	// Repeating the search from the top finds the match.
	press(t, &m, keyRune('n'))
	if m.sel.first() != 1 {
		t.Errorf("next match: %d, want 1", m.sel.first())
	}
}

func TestSearchNoMatchResetsToTop(t *testing.T) {
	m := testModel(t, "- a", "- b", "- c")
	press(t, &m, keyRune('j'), keyRune('/'))
	typeString(t, &m, "zzz")
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.sel.first() != 0 {
		t.Errorf("no-match cursor: %d", m.sel.first())
	}
}

func TestColorMenu(t *testing.T) {
	m := testModel(t, "- plain")
	press(t, &m, keyRune('c'))
	if m.mode != modeColor {
		t.Fatal("color menu not opened")
	}
	press(t, &m, keyRune('3'))
	if m.items[0].color != colorItemYellow || m.mode != modeList {
		t.Errorf("color = %v mode %d", m.items[0].color, m.mode)
	}
	if got := fileContent(t, &m); got != "-3 plain" {
		t.Errorf("saved content = %q", got)
	}
}

func TestColorMenuWraps(t *testing.T) {
	m := testModel(t, "- plain")
	press(t, &m, keyRune('c'))
	// Opens preselecting the item's current color, White.
	if m.menuCursor != 6 {
		t.Fatalf("menu cursor = %d", m.menuCursor)
	}
	press(t, &m, keyRune('j')) // past White wraps to Red
	if m.menuCursor != 0 {
		t.Errorf("menu cursor after wrap down = %d", m.menuCursor)
	}
	press(t, &m, keyRune('k'))
	if m.menuCursor != 6 {
		t.Errorf("menu cursor after wrap up = %d", m.menuCursor)
	}
}

func TestSortMenu(t *testing.T) {
	m := testModel(t, "- zebra", "- apple")
	press(t, &m, keyRune('s'), tea.KeyMsg{Type: tea.KeyEnter})
	if m.items.encode() != "- apple\n- zebra" {
		t.Errorf("after sort: %q", m.items.encode())
	}
	// The selection was on "zebra" and follows it.
	if m.sel.first() != 1 {
		t.Errorf("selection after sort: %d", m.sel.first())
	}
}

func TestExternalChangeReloads(t *testing.T) {
	m := testModel(t, "- mine")
	if err := os.WriteFile(m.store.path, []byte("- theirs"), 0o644); err != nil {
		t.Fatal(err)
	}
	m2, _ := m.Update(fileChangedMsg{})
	m = m2.(model)
	if m.items.encode() != "- theirs" {
		t.Errorf("not reloaded: %q", m.items.encode())
	}
}

func TestMutationAfterExternalChangeDropsCommand(t *testing.T) {
	m := testModel(t, "- mine")
	if err := os.WriteFile(m.store.path, []byte("- theirs"), 0o644); err != nil {
		t.Fatal(err)
	}
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter})
	// Last writer wins: the toggle is dropped and the external content loaded.
	if m.items.encode() != "- theirs" {
		t.Errorf("after stale toggle: %q", m.items.encode())
	}
	if got := fileContent(t, &m); got != "- theirs" {
		t.Errorf("file clobbered: %q", got)
	}
}

func TestManualWriteWhenAutosaveOff(t *testing.T) {
	m := testModel(t, "- task")
	m.cfg.Autosave = false
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := fileContent(t, &m); got != "- task" {
		t.Fatalf("wrote despite autosave off: %q", got)
	}
	if !m.dirty {
		t.Fatal("not marked dirty")
	}
	press(t, &m, keyRune('w'))
	if got := fileContent(t, &m); got != "+ task" {
		t.Errorf("after w: %q", got)
	}
	if m.dirty {
		t.Error("still dirty after write")
	}
}

func TestQuitConfirmWhenDirty(t *testing.T) {
	m := testModel(t, "- task")
	m.cfg.Autosave = false
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter}, keyRune('q'))
	if m.mode != modeConfirmQuit {
		t.Fatal("no confirmation for unsaved changes")
	}
	press(t, &m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Fatal("esc did not cancel")
	}
	press(t, &m, keyRune('q'))
	cmd := pressGet(t, &m, keyRune('y'))
	if !isQuit(cmd) {
		t.Error("y did not quit")
	}
	if got := fileContent(t, &m); got != "+ task" {
		t.Errorf("y did not write: %q", got)
	}
}

func TestQuitCleanExitsImmediately(t *testing.T) {
	m := testModel(t, "- task")
	if cmd := pressGet(t, &m, keyRune('q')); !isQuit(cmd) {
		t.Error("clean q did not quit")
	}
}

func TestSelectAllKey(t *testing.T) {
	m := testModel(t, "- a", "- b", "- c")
	press(t, &m, keyRune('a'))
	if m.sel.len() != 3 {
		t.Errorf("select all: [%d,%d)", m.sel.start, m.sel.stop)
	}
}

func TestHelpModal(t *testing.T) {
	m := testModel(t, "- a")
	press(t, &m, keyRune('?'))
	if m.mode != modeHelp {
		t.Fatal("help not opened")
	}
	if !strings.Contains(m.View(), "─") {
		t.Error("help overlay not rendered")
	}
	press(t, &m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Error("help not dismissed")
	}
}

func TestViewRendersWindow(t *testing.T) {
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = "- item " + string(rune('a'+i%26))
	}
	m := testModel(t, lines...)
	press(t, &m, keyRune('G'))
	out := m.View()
	if !strings.Contains(out, "item") {
		t.Error("list body missing")
	}
	// The header names the file.
	if !strings.Contains(out, "todo.txt") {
		t.Error("header missing filename")
	}
}

func TestDemoModelHasNoStore(t *testing.T) {
	m := newModel(demoList(), nil, newDefaultConfig(), nil)
	m2, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = m2.(model)
	press(t, &m, tea.KeyMsg{Type: tea.KeyEnter}, keyRune('d'), keyRune('u'))
	if len(m.items) == 0 {
		t.Error("demo list empty after edits")
	}
	if !strings.Contains(m.View(), "demo") {
		t.Error("demo banner missing")
	}
}
