package main

// ─── Undo / Redo ─────────────────────────────────────────────────────────────

// restorable is one history entry: a value snapshot of the whole list in its
// encoded form, plus the selected index at that moment. Items are pure value
// data, so the encoded text is enough to rebuild them exactly.
type restorable struct {
	content  string
	selected int
}

func snapshot(items todoList, selected int) restorable {
	return restorable{content: items.encode(), selected: selected}
}

// restore rebuilds the item list from the snapshot.
func (r restorable) restore() (todoList, int) {
	items, err := decodeList(r.content)
	if err != nil {
		// snapshots are codec output and always decode
		return todoList{}, 0
	}
	return items, r.selected
}

// undoRedo is a linear history with a single moving index. Recording after
// an undo truncates the now-unreachable redo tail before appending.
type undoRedo struct {
	history []restorable
	index   int
}

func newUndoRedo() *undoRedo {
	return &undoRedo{index: -1}
}

// record appends a snapshot and moves the index to the new tail. Recording
// the state already at the index is a no-op, so navigations that change
// nothing do not pollute the history.
func (u *undoRedo) record(items todoList, selected int) {
	entry := snapshot(items, selected)
	if u.index >= 0 && u.history[u.index].content == entry.content {
		return
	}
	u.history = append(u.history[:u.index+1], entry)
	u.index = len(u.history) - 1
}

// undo steps back one entry and returns it. At the earliest entry (or with
// an empty history) it returns the current state unchanged.
func (u *undoRedo) undo() (todoList, int, bool) {
	if u.index <= 0 {
		if u.index < 0 {
			return nil, 0, false
		}
		items, sel := u.history[u.index].restore()
		return items, sel, false
	}
	u.index--
	items, sel := u.history[u.index].restore()
	return items, sel, true
}

// redo steps forward one entry and returns it; a no-op at the tail.
func (u *undoRedo) redo() (todoList, int, bool) {
	if u.index >= len(u.history)-1 {
		if u.index < 0 {
			return nil, 0, false
		}
		items, sel := u.history[u.index].restore()
		return items, sel, false
	}
	u.index++
	items, sel := u.history[u.index].restore()
	return items, sel, true
}
