package main

import (
	"sort"
	"strconv"
)

// ─── Sorting ─────────────────────────────────────────────────────────────────

// A section is a top-level item (indent 0) together with every following
// indented item, the unit the sort reorders as a whole.

type sortMethod int

const (
	sortAlphabetical sortMethod = iota
	sortCompleted
	sortColor
)

var sortMethodNames = []string{"Alphabetical", "Completed", "Color"}

func (m sortMethod) String() string {
	return sortMethodNames[m]
}

// key derives the sort key of a section from its first item.
func (m sortMethod) key(section todoList) string {
	head := section[0]
	switch m {
	case sortCompleted:
		if head.toggled() {
			return "1"
		}
		return "0"
	case sortColor:
		return strconv.Itoa(int(head.color))
	default:
		return head.text
	}
}

// indentedSections splits the list into sections. Leading indented items
// before the first top-level item form their own section.
func indentedSections(items todoList) []todoList {
	var sections []todoList
	var section todoList
	for _, it := range items {
		if it.indent > 0 && len(section) > 0 {
			section = append(section, it)
			continue
		}
		if len(section) > 0 {
			sections = append(sections, section)
		}
		section = todoList{it}
	}
	if len(section) > 0 {
		sections = append(sections, section)
	}
	return sections
}

// sortListBy stably sorts the sections by the method's key and flattens
// them back. The returned index relocates the previously selected item by
// identity, not by its old numeric position.
func sortListBy(method sortMethod, items todoList, selected int) (todoList, int) {
	if len(items) == 0 {
		return items, selected
	}
	sections := indentedSections(items)

	// Find which section holds the selection, and where in it.
	sectionIdx, offset := 0, 0
	pos := 0
	for i, s := range sections {
		if selected < pos+len(s) {
			sectionIdx = i
			offset = selected - pos
			break
		}
		pos += len(s)
	}

	order := make([]int, len(sections))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return method.key(sections[order[a]]) < method.key(sections[order[b]])
	})

	sorted := make(todoList, 0, len(items))
	newSelected := selected
	for _, idx := range order {
		if idx == sectionIdx {
			newSelected = len(sorted) + offset
		}
		sorted = append(sorted, sections[idx]...)
	}
	return sorted, newSelected
}
