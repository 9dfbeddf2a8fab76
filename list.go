package main

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// ─── List ────────────────────────────────────────────────────────────────────

// todoList is the ordered sequence of items, the unit of persistence and of
// undo snapshots. Insertion order is display order; duplicates are legal.
type todoList []todoItem

// decodeList parses whole-file content, one item per line. The first
// rejected line fails the entire load. An empty file is an empty list.
func decodeList(content string) (todoList, error) {
	if content == "" {
		return todoList{}, nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	items := make(todoList, 0, len(lines))
	for i, line := range lines {
		it, err := parseItem(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// encode joins every item's serialized line with newlines.
func (l todoList) encode() string {
	lines := make([]string, len(l))
	for i, it := range l {
		lines[i] = it.raw
	}
	return strings.Join(lines, "\n")
}

func (l todoList) clone() todoList {
	out := make(todoList, len(l))
	copy(out, l)
	return out
}

// insert places an item at position i, shifting the tail down.
func (l todoList) insert(i int, it todoItem) todoList {
	l = append(l, todoItem{})
	copy(l[i+1:], l[i:])
	l[i] = it
	return l
}

// remove deletes the item at position i.
func (l todoList) remove(i int) todoList {
	return append(l[:i], l[i+1:]...)
}

// searchFrom scans display text linearly from position start for the first
// item containing query. Returns the matching index, or -1.
func (l todoList) searchFrom(start int, query string) int {
	for i := start; i < len(l); i++ {
		if strings.Contains(l[i].text, query) {
			return i
		}
	}
	return -1
}

// ─── Disk storage ────────────────────────────────────────────────────────────

// lastSelfWrite tracks when we last wrote the list file ourselves. The file
// watcher checks this to skip events caused by our own writes.
var lastSelfWrite atomic.Int64

// diskList persists the list as newline-separated encoded items, written
// wholesale. It remembers the raw content it last read or wrote so that an
// external modification of the file can be detected by comparison before
// the next mutating command applies.
type diskList struct {
	path        string
	lastContent string
}

// read loads and decodes the whole file. A missing file is created empty,
// matching the behavior of opening a fresh list.
func (d *diskList) read() (todoList, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", d.path, err)
		}
		if err := os.WriteFile(d.path, nil, 0o644); err != nil {
			return nil, fmt.Errorf("create %s: %w", d.path, err)
		}
		data = nil
	}
	items, err := decodeList(string(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", d.path, err)
	}
	d.lastContent = string(data)
	return items, nil
}

// write encodes and overwrites the whole file.
func (d *diskList) write(items todoList) error {
	content := items.encode()
	lastSelfWrite.Store(time.Now().UnixMilli())
	if err := os.WriteFile(d.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	d.lastContent = content
	return nil
}

// externallyChanged reports whether the backing file's content differs from
// what this session last read or wrote. Decoded comparison is not needed:
// the raw text is the canonical persisted form.
func (d *diskList) externallyChanged() bool {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return false
	}
	return string(data) != d.lastContent
}
