package main

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
	"github.com/fsnotify/fsnotify"
)

// ─── Key Map ─────────────────────────────────────────────────────────────────

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	GrowUp    key.Binding
	GrowDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Toggle    key.Binding
	New       key.Binding
	Blank     key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Duplicate key.Binding
	Indent    key.Binding
	Dedent    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Color     key.Binding
	Sort      key.Binding
	Search    key.Binding
	NextMatch key.Binding
	Copy      key.Binding
	Paste     key.Binding
	Undo      key.Binding
	Redo      key.Binding
	SelectAll key.Binding
	Magnify   key.Binding
	Picker    key.Binding
	Write     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "navigate")),
		Down:      key.NewBinding(key.WithKeys("j", "down")),
		GrowUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("J/K", "multiselect")),
		GrowDown:  key.NewBinding(key.WithKeys("J", "shift+down")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g/G", "top/bottom")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end")),
		Toggle:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle")),
		New:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "new item")),
		Blank:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "blank line")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Duplicate: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "duplicate")),
		Indent:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Dedent:    key.NewBinding(key.WithKeys("shift+tab")),
		MoveUp:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+j/k", "move item")),
		MoveDown:  key.NewBinding(key.WithKeys("ctrl+j")),
		Color:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextMatch: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Paste:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "redo")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Magnify:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "magnify")),
		Picker:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "switch file")),
		Write:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.New, k.Edit, k.Delete, k.Color, k.Search, k.Undo, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.New, k.Blank, k.Edit, k.Delete, k.Duplicate, k.Indent, k.MoveUp, k.Color, k.Sort},
		{k.Up, k.GrowUp, k.Top, k.Search, k.Copy, k.Paste, k.Undo, k.Redo, k.SelectAll, k.Quit},
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

const noticeTimeout = 3 * time.Second

// uiMode selects which surface currently owns keyboard input.
type uiMode int

const (
	modeList uiMode = iota
	modeEdit
	modeSearch
	modeColor
	modeSort
	modePicker
	modeHelp
	modeMagnify
	modeConfirmQuit
)

type model struct {
	// Layout
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool // true after first WindowSizeMsg

	// List data
	cfg     config
	store   *diskList // nil in demo mode
	watcher *fsnotify.Watcher
	items   todoList
	sel     *cursor
	history *undoRedo
	copied  todoItem // internal clipboard fallback buffer
	dirty   bool

	// Modals and transient state
	mode         uiMode
	input        textinput.Model
	editIndex    int
	adding       bool // editing a just-inserted item; esc removes it
	menuCursor   int
	pickerFiles  []listFile
	modalView    viewport.Model
	glamourStyle string

	// Pending multi-key sequences
	pending      string // accumulated digits of a relative jump
	pendingMulti bool   // extend the selection instead of collapsing it
	lastSearch   string

	// Status bar
	notice   string
	noticeID int
}

func newModel(items todoList, store *diskList, cfg config, watcher *fsnotify.Watcher) model {
	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorDim)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(colorDim)
	h.Styles.FullKey = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Width(10)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(colorFull)
	h.Styles.FullSeparator = lipgloss.NewStyle()

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0

	style := "dark"
	if !lipgloss.HasDarkBackground() {
		style = "light"
	}

	hist := newUndoRedo()
	hist.record(items, 0)

	return model{
		keys:         newKeyMap(),
		help:         h,
		cfg:          cfg,
		store:        store,
		watcher:      watcher,
		items:        items,
		sel:          newCursor(0),
		history:      hist,
		input:        ti,
		modalView:    viewport.New(0, 0),
		glamourStyle: style,
	}
}

func (m model) Init() tea.Cmd {
	if m.watcher != nil && m.store != nil {
		return watchFile(m.watcher, m.store.path)
	}
	return nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func (m *model) clampCursor() {
	n := len(m.items)
	if n == 0 {
		m.sel.setTo(0)
		return
	}
	if m.sel.stop > n {
		m.sel.stop = n
	}
	if m.sel.start >= m.sel.stop {
		m.sel.setToClamp(m.sel.start, n)
	}
}

// setNotice shows a transient status bar message that auto-clears.
func (m *model) setNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeID++
	id := m.noticeID
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return noticeClearMsg{id: id}
	})
}

// reloadFromDisk discards the in-memory list and re-reads the file. Used
// when an external writer changed the backing store: last writer wins, and
// in-flight edits are not merged.
func (m *model) reloadFromDisk() tea.Cmd {
	items, err := m.store.read()
	if err != nil {
		return m.setNotice("reload failed: " + err.Error())
	}
	m.items = items
	m.clampCursor()
	m.history.record(m.items, m.sel.first())
	m.dirty = false
	return m.setNotice("file changed on disk, reloaded")
}

// mutate runs op as one atomic editing command: freshness check first (a
// detected external change reloads and drops the command), then cursor
// clamping, a history snapshot, and a write when autosave is enabled.
func (m *model) mutate(op func() tea.Cmd) tea.Cmd {
	if m.store != nil && m.store.externallyChanged() {
		return m.reloadFromDisk()
	}
	extra := op()
	m.clampCursor()
	m.history.record(m.items, m.sel.first())
	return tea.Batch(extra, m.persist())
}

// persist writes through on autosave, or marks the session dirty.
func (m *model) persist() tea.Cmd {
	if m.store == nil {
		return nil
	}
	if !m.cfg.Autosave {
		m.dirty = true
		return nil
	}
	if err := m.store.write(m.items); err != nil {
		return m.setNotice(err.Error())
	}
	return nil
}

func (m *model) writeNow() tea.Cmd {
	if m.store == nil {
		return m.setNotice("demo mode, nothing written")
	}
	if err := m.store.write(m.items); err != nil {
		return m.setNotice(err.Error())
	}
	m.dirty = false
	return m.setNotice("written " + contractHome(m.store.path))
}

func (m *model) currentItem() *todoItem {
	return &m.items[m.sel.first()]
}

// ─── Editing operations ──────────────────────────────────────────────────────

func (m *model) toggleSelection() tea.Cmd {
	return m.mutate(func() tea.Cmd {
		for _, pos := range m.sel.positions() {
			m.items[pos].toggle()
		}
		return nil
	})
}

func (m *model) deleteSelection() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	return m.mutate(func() tea.Cmd {
		for range m.sel.deletable() {
			m.items = m.items.remove(m.sel.first())
		}
		m.sel.setToClamp(m.sel.first(), len(m.items))
		return nil
	})
}

func (m *model) duplicateCurrent() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	return m.mutate(func() tea.Cmd {
		m.items = m.items.insert(m.sel.first()+1, m.currentItem().clone())
		return nil
	})
}

func (m *model) insertBlank() tea.Cmd {
	return m.mutate(func() tea.Cmd {
		at := 0
		if len(m.items) > 0 {
			at = m.sel.last() + 1
		}
		m.items = m.items.insert(at, newItem(markerUnchecked, 0, ""))
		m.sel.setTo(at)
		return nil
	})
}

func (m *model) indentSelection(out bool) tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	return m.mutate(func() tea.Cmd {
		for _, pos := range m.sel.positions() {
			if out {
				m.items[pos].dedentBy(m.cfg.IndentUnit)
			} else {
				m.items[pos].indentBy(m.cfg.IndentUnit)
			}
		}
		return nil
	})
}

// moveSelection reorders the selected block one row up or down; the
// selection slides along with the moved items.
func (m *model) moveSelection(up bool) tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	return m.mutate(func() tea.Cmd {
		if up {
			if m.sel.first() == 0 {
				return nil
			}
			above := m.items[m.sel.first()-1]
			m.items = m.items.remove(m.sel.first() - 1)
			m.items = m.items.insert(m.sel.last(), above)
			m.sel.slideUp()
			return nil
		}
		if m.sel.last() >= len(m.items)-1 {
			return nil
		}
		below := m.items[m.sel.stop]
		m.items = m.items.remove(m.sel.stop)
		m.items = m.items.insert(m.sel.first(), below)
		m.sel.slideDown(len(m.items))
		return nil
	})
}

func (m *model) startEdit(adding bool) tea.Cmd {
	if len(m.items) == 0 && !adding {
		return nil
	}
	if adding {
		at := 0
		indent := 0
		if len(m.items) > 0 {
			at = m.sel.last() + 1
			indent = m.currentItem().indent
		}
		m.items = m.items.insert(at, newItem(markerUnchecked, indent, ""))
		m.sel.setTo(at)
	}
	m.mode = modeEdit
	m.adding = adding
	m.editIndex = m.sel.first()
	m.input.SetValue(m.items[m.editIndex].text)
	m.input.CursorEnd()
	m.input.Focus()
	return textinput.Blink
}

func (m *model) finishEdit(commit bool) tea.Cmd {
	m.mode = modeList
	m.input.Blur()
	if !commit {
		if m.adding {
			m.items = m.items.remove(m.editIndex)
			m.sel.setToClamp(m.editIndex, len(m.items))
		}
		return nil
	}
	text := m.input.Value()
	return m.mutate(func() tea.Cmd {
		m.items[m.editIndex].setText(text)
		return nil
	})
}

func (m *model) applyUndoRedo(redo bool) tea.Cmd {
	var (
		items todoList
		sel   int
		ok    bool
	)
	if redo {
		items, sel, ok = m.history.redo()
	} else {
		items, sel, ok = m.history.undo()
	}
	if !ok {
		if redo {
			return m.setNotice("nothing to redo")
		}
		return m.setNotice("nothing to undo")
	}
	m.items = items
	m.sel.setToClamp(sel, max(len(m.items), 1))
	return m.persist()
}

// runSearch repositions the cursor on the first item at or after `from`
// whose text contains the query. The scan is forward-only: a miss resets
// the cursor to the top even when a match exists before `from`.
func (m *model) runSearch(query string, from int) tea.Cmd {
	m.lastSearch = query
	if idx := m.items.searchFrom(from, query); idx >= 0 {
		m.sel.setTo(idx)
		return nil
	}
	m.sel.setTo(0)
	return m.setNotice("no match for " + strconv.Quote(query))
}

// nextMatch repeats the last search from just past the cursor, wrapping to
// the top when the tail has no match.
func (m *model) nextMatch() tea.Cmd {
	if idx := m.items.searchFrom(m.sel.first()+1, m.lastSearch); idx >= 0 {
		m.sel.setTo(idx)
		return nil
	}
	if idx := m.items.searchFrom(0, m.lastSearch); idx >= 0 {
		m.sel.setTo(idx)
		return nil
	}
	return m.setNotice("no match for " + strconv.Quote(m.lastSearch))
}

// applyJump resolves a completed digit sequence. Relative jumps move by the
// accumulated count; g/G jump to the absolute line. The multi flag extends
// the selection step by step instead of collapsing it.
func (m *model) applyJump(total int, terminal string) {
	n := len(m.items)
	if n == 0 {
		return
	}
	var target int
	switch terminal {
	case "k":
		target = m.sel.first() - total
	case "j":
		target = m.sel.first() + total
	case "g", "G":
		target = total - 1
	}
	if m.pendingMulti {
		m.sel.multiselectTo(clamp(target, 0, n), n)
		return
	}
	m.sel.setToClamp(target, n)
}

func (m *model) openFilePicker() tea.Cmd {
	if m.store == nil {
		return m.setNotice("demo mode, file switching disabled")
	}
	if m.cfg.ListsGlob == "" {
		return m.setNotice("no lists_glob configured, run ndo --setup")
	}
	files := resolveListFiles(m.cfg.ListsGlob)
	if len(files) == 0 {
		return m.setNotice("no files match " + m.cfg.ListsGlob)
	}
	m.pickerFiles = files
	m.menuCursor = 0
	m.mode = modePicker
	return nil
}

// switchFile saves any pending edits, then re-targets the session at a new
// list file: fresh store, fresh history, cursor at the top.
func (m *model) switchFile(path string) tea.Cmd {
	if m.dirty {
		if err := m.store.write(m.items); err != nil {
			return m.setNotice(err.Error())
		}
		m.dirty = false
	}
	store := &diskList{path: path}
	items, err := store.read()
	if err != nil {
		return m.setNotice(err.Error())
	}
	var watchCmd tea.Cmd
	if m.watcher != nil {
		_ = m.watcher.Remove(filepath.Dir(m.store.path))
		if err := m.watcher.Add(filepath.Dir(path)); err == nil {
			watchCmd = watchFile(m.watcher, path)
		}
	}
	m.store = store
	m.items = items
	m.sel = newCursor(0)
	m.history = newUndoRedo()
	m.history.record(m.items, 0)
	return tea.Batch(watchCmd, m.setNotice("opened "+contractHome(path)))
}

func (m *model) openMagnify() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	text := m.currentItem().text
	if text == "" {
		return m.setNotice("nothing to magnify")
	}
	banner := figure.NewFigure(text, "", true).String()
	if m.width > 0 && lipgloss.Width(banner) > m.width-4 {
		return m.setNotice("terminal too narrow to magnify")
	}
	m.sizeModal()
	m.modalView.SetContent(banner)
	m.modalView.GotoTop()
	m.mode = modeMagnify
	return nil
}

func (m *model) openHelp() {
	m.sizeModal()
	m.modalView.SetContent(renderHelp(m.glamourStyle, m.modalView.Width))
	m.modalView.GotoTop()
	m.mode = modeHelp
}

func (m *model) sizeModal() {
	w := m.width - 8
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	m.modalView.Width = w
	m.modalView.Height = h
}

// ─── Key Handling ────────────────────────────────────────────────────────────

// handleListKey processes keys in the normal list mode. Digit sequences are
// consumed before anything else: once a jump is pending, every key either
// extends it, completes it, or aborts it with no other effect.
func (m *model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()

	if m.pending != "" {
		switch {
		case len(s) == 1 && s[0] >= '0' && s[0] <= '9':
			m.pending += s
			return nil
		case s == "j" || s == "k" || s == "g" || s == "G":
			total, _ := strconv.Atoi(m.pending)
			m.applyJump(total, s)
		}
		m.pending = ""
		m.pendingMulti = false
		return nil
	}

	if msg.Alt && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
		m.pending = string(msg.Runes)
		m.pendingMulti = true
		return nil
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.pending = s
		m.pendingMulti = false
		return nil
	}

	n := len(m.items)
	if s == "alt+g" {
		m.sel.multiselectTop()
		return nil
	}
	if s == "alt+G" {
		m.sel.multiselectBottom(n)
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.Quit):
		if m.dirty && m.store != nil {
			m.mode = modeConfirmQuit
			return nil
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.openHelp()
	case key.Matches(msg, m.keys.Up):
		if n > 0 {
			m.sel.singleUp(n)
		}
	case key.Matches(msg, m.keys.Down):
		if n > 0 {
			m.sel.singleDown(n)
		}
	case key.Matches(msg, m.keys.GrowUp):
		m.sel.multiselectUp()
	case key.Matches(msg, m.keys.GrowDown):
		m.sel.multiselectDown(n)
	case key.Matches(msg, m.keys.Top):
		if n > 0 {
			m.sel.toTop()
		}
	case key.Matches(msg, m.keys.Bottom):
		if n > 0 {
			m.sel.toBottom(n)
		}
	case key.Matches(msg, m.keys.Toggle):
		if n > 0 {
			return m.toggleSelection()
		}
	case key.Matches(msg, m.keys.New):
		return m.startEdit(true)
	case key.Matches(msg, m.keys.Blank):
		return m.insertBlank()
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit(false)
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelection()
	case key.Matches(msg, m.keys.Duplicate):
		return m.duplicateCurrent()
	case key.Matches(msg, m.keys.Indent):
		return m.indentSelection(false)
	case key.Matches(msg, m.keys.Dedent):
		return m.indentSelection(true)
	case key.Matches(msg, m.keys.MoveUp):
		return m.moveSelection(true)
	case key.Matches(msg, m.keys.MoveDown):
		return m.moveSelection(false)
	case key.Matches(msg, m.keys.Color):
		if n > 0 {
			m.menuCursor = int(m.currentItem().color) - 1
			m.mode = modeColor
		}
	case key.Matches(msg, m.keys.Sort):
		if n > 0 {
			m.menuCursor = 0
			m.mode = modeSort
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.input.SetValue("")
		m.input.Focus()
		return textinput.Blink
	case key.Matches(msg, m.keys.NextMatch):
		if m.lastSearch != "" && n > 0 {
			return m.nextMatch()
		}
	case key.Matches(msg, m.keys.Copy):
		if n > 0 {
			return copySelection(m.items, m.sel, &m.copied)
		}
	case key.Matches(msg, m.keys.Paste):
		return m.mutate(func() tea.Cmd {
			at := -1
			if len(m.items) > 0 {
				at = m.sel.first()
			}
			var cmd tea.Cmd
			before := len(m.items)
			m.items, cmd = pasteAfter(m.items, at, m.copied)
			if len(m.items) > before {
				m.sel.singleDown(len(m.items))
			}
			return cmd
		})
	case key.Matches(msg, m.keys.Undo):
		return m.applyUndoRedo(false)
	case key.Matches(msg, m.keys.Redo):
		return m.applyUndoRedo(true)
	case key.Matches(msg, m.keys.SelectAll):
		if n > 0 {
			m.sel.selectAll(n)
		}
	case key.Matches(msg, m.keys.Magnify):
		return m.openMagnify()
	case key.Matches(msg, m.keys.Picker):
		return m.openFilePicker()
	case key.Matches(msg, m.keys.Write):
		return m.writeNow()
	}
	return nil
}

// handleMenuKey drives the color and sort menus: j/k with wraparound for
// the color menu, clamped for the rest, enter applies, q/esc cancels.
func (m *model) handleMenuKey(msg tea.KeyMsg, length int, wrap bool, apply func(choice int) tea.Cmd) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "q", "esc":
		m.mode = modeList
		return nil
	case "j", "down":
		m.menuCursor++
	case "k", "up":
		m.menuCursor--
	case "g", "home":
		m.menuCursor = 0
	case "G", "end":
		m.menuCursor = length - 1
	case "enter":
		m.mode = modeList
		return apply(m.menuCursor)
	default:
		return nil
	}
	if wrap {
		m.menuCursor = overflow(m.menuCursor, 0, length)
	} else {
		m.menuCursor = clamp(m.menuCursor, 0, length)
	}
	return nil
}

func (m *model) handleColorKey(msg tea.KeyMsg) tea.Cmd {
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '7' {
		m.menuCursor = int(s[0] - '1')
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	}
	return m.handleMenuKey(msg, 7, true, func(choice int) tea.Cmd {
		color := itemColor(choice + 1)
		return m.mutate(func() tea.Cmd {
			for _, pos := range m.sel.positions() {
				m.items[pos].setColor(color)
			}
			return nil
		})
	})
}

func (m *model) handleSortKey(msg tea.KeyMsg) tea.Cmd {
	return m.handleMenuKey(msg, len(sortMethodNames), false, func(choice int) tea.Cmd {
		return m.mutate(func() tea.Cmd {
			var idx int
			m.items, idx = sortListBy(sortMethod(choice), m.items, m.sel.first())
			m.sel.setTo(idx)
			return nil
		})
	})
}

func (m *model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	return m.handleMenuKey(msg, len(m.pickerFiles), false, func(choice int) tea.Cmd {
		return m.switchFile(m.pickerFiles[choice].path)
	})
}

func (m *model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		if m.mode == modeEdit {
			return m.finishEdit(false)
		}
		m.mode = modeList
		m.input.Blur()
		return nil
	case tea.KeyEnter:
		if m.mode == modeEdit {
			return m.finishEdit(true)
		}
		m.mode = modeList
		m.input.Blur()
		query := m.input.Value()
		if query == "" {
			return nil
		}
		return m.runSearch(query, m.sel.first())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "q", "esc", "?", "b", "enter":
		m.mode = modeList
	case "j", "down":
		m.modalView.LineDown(1)
	case "k", "up":
		m.modalView.LineUp(1)
	case " ", "pgdown":
		m.modalView.HalfViewDown()
	case "B", "pgup":
		m.modalView.HalfViewUp()
	}
	return nil
}

func (m *model) handleConfirmQuitKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		if err := m.store.write(m.items); err != nil {
			m.mode = modeList
			return m.setNotice(err.Error())
		}
		return tea.Quit
	case "n":
		return tea.Quit
	case "esc":
		m.mode = modeList
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

// ─── Update ──────────────────────────────────────────────────────────────────

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		switch m.mode {
		case modeEdit, modeSearch:
			cmd = m.handleInputKey(msg)
		case modeColor:
			cmd = m.handleColorKey(msg)
		case modeSort:
			cmd = m.handleSortKey(msg)
		case modePicker:
			cmd = m.handlePickerKey(msg)
		case modeHelp, modeMagnify:
			cmd = m.handleModalKey(msg)
		case modeConfirmQuit:
			cmd = m.handleConfirmQuitKey(msg)
		default:
			cmd = m.handleListKey(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.sizeModal()
		if m.mode == modeHelp {
			m.modalView.SetContent(renderHelp(m.glamourStyle, m.modalView.Width))
		}
		return m, nil

	case fileChangedMsg:
		var cmds []tea.Cmd
		if m.store != nil && m.store.externallyChanged() {
			cmds = append(cmds, m.reloadFromDisk())
		}
		if m.watcher != nil && m.store != nil {
			cmds = append(cmds, watchFile(m.watcher, m.store.path))
		}
		return m, tea.Batch(cmds...)

	case noticeMsg:
		return m, m.setNotice(msg.text)

	case noticeClearMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// ─── Small helpers ───────────────────────────────────────────────────────────

// overflow wraps n into [minimum, maximum) instead of clamping at the ends.
func overflow(n, minimum, maximum int) int {
	if n >= maximum {
		return minimum + (n - maximum)
	}
	if n < minimum {
		return maximum - (minimum - n)
	}
	return n
}

