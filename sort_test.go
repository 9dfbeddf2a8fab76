package main

import "testing"

func TestIndentedSections(t *testing.T) {
	items := listFromLines(t,
		"- b task",
		"  - b child",
		"- a task",
		"  + a child",
		"  - a grandchild",
		"- c task",
	)
	sections := indentedSections(items)
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(sections))
	}
	if len(sections[0]) != 2 || len(sections[1]) != 3 || len(sections[2]) != 1 {
		t.Errorf("section sizes = %d/%d/%d", len(sections[0]), len(sections[1]), len(sections[2]))
	}
}

func TestSortAlphabeticalKeepsChildren(t *testing.T) {
	items := listFromLines(t,
		"- banana",
		"  - peel",
		"- apple",
		"  - core",
	)
	sorted, sel := sortListBy(sortAlphabetical, items, 0)
	want := "- apple\n  - core\n- banana\n  - peel"
	if sorted.encode() != want {
		t.Errorf("sorted = %q, want %q", sorted.encode(), want)
	}
	// The selection was on "banana"; it follows the item, not the position.
	if sel != 2 {
		t.Errorf("relocated selection = %d, want 2", sel)
	}
}

func TestSortCompletedPutsOpenFirst(t *testing.T) {
	items := listFromLines(t,
		"+ done one",
		"- open one",
		"+ done two",
		"- open two",
	)
	sorted, _ := sortListBy(sortCompleted, items, 0)
	want := "- open one\n- open two\n+ done one\n+ done two"
	if sorted.encode() != want {
		t.Errorf("sorted = %q, want %q", sorted.encode(), want)
	}
}

func TestSortByColor(t *testing.T) {
	items := listFromLines(t,
		"-4 blue",
		"-1 red",
		"-2 green",
	)
	sorted, _ := sortListBy(sortColor, items, 0)
	want := "-1 red\n-2 green\n-4 blue"
	if sorted.encode() != want {
		t.Errorf("sorted = %q, want %q", sorted.encode(), want)
	}
}

func TestSortIsStableAndIdempotent(t *testing.T) {
	items := listFromLines(t,
		"- open a",
		"+ done",
		"- open b",
	)
	once, sel := sortListBy(sortCompleted, items, 2)
	twice, sel2 := sortListBy(sortCompleted, once, sel)
	if once.encode() != twice.encode() {
		t.Errorf("sort not idempotent: %q vs %q", once.encode(), twice.encode())
	}
	if once[sel].text != "open b" || twice[sel2].text != "open b" {
		t.Errorf("selection lost its item: %q / %q", once[sel].text, twice[sel2].text)
	}
}

func TestSortEmptyList(t *testing.T) {
	sorted, sel := sortListBy(sortAlphabetical, todoList{}, 0)
	if len(sorted) != 0 || sel != 0 {
		t.Errorf("empty sort: len=%d sel=%d", len(sorted), sel)
	}
}

func TestSortLeadingIndentedItems(t *testing.T) {
	// Indented items before any top-level item form their own section.
	items := listFromLines(t,
		"  - orphan",
		"- zebra",
		"- apple",
	)
	sorted, _ := sortListBy(sortAlphabetical, items, 0)
	if len(sorted) != 3 {
		t.Fatalf("lost items: %d", len(sorted))
	}
}
