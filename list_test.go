package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeListRoundTrip(t *testing.T) {
	content := "- one\n  + two\n3 heading\n\n- last"
	items, err := decodeList(content)
	if err != nil {
		t.Fatalf("decodeList: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("decoded %d items, want 5", len(items))
	}
	if items.encode() != content {
		t.Errorf("round trip = %q, want %q", items.encode(), content)
	}
}

func TestDecodeListTrailingNewline(t *testing.T) {
	items, err := decodeList("- one\n- two\n")
	if err != nil {
		t.Fatalf("decodeList: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("decoded %d items, want 2", len(items))
	}
}

func TestDecodeListReportsLineNumber(t *testing.T) {
	_, err := decodeList("- fine\n- also fine\n+9 broken")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name line 3", err)
	}
}

func TestDecodeEmpty(t *testing.T) {
	items, err := decodeList("")
	if err != nil || len(items) != 0 {
		t.Errorf("empty decode: %v items, err %v", len(items), err)
	}
}

func TestInsertRemove(t *testing.T) {
	items := listFromLines(t, "- a", "- c")
	items = items.insert(1, newItem(markerUnchecked, 0, "b"))
	if items.encode() != "- a\n- b\n- c" {
		t.Fatalf("insert: %q", items.encode())
	}
	items = items.remove(0)
	if items.encode() != "- b\n- c" {
		t.Fatalf("remove: %q", items.encode())
	}
	items = items.insert(len(items), newItem(markerChecked, 0, "d"))
	if items.encode() != "- b\n- c\n+ d" {
		t.Fatalf("append: %q", items.encode())
	}
}

func TestSearchFrom(t *testing.T) {
	items := listFromLines(t, "- alpha", "- beta", "- alphabet")
	if got := items.searchFrom(0, "alpha"); got != 0 {
		t.Errorf("searchFrom(0) = %d", got)
	}
	if got := items.searchFrom(1, "alpha"); got != 2 {
		t.Errorf("searchFrom(1) = %d", got)
	}
	if got := items.searchFrom(0, "gamma"); got != -1 {
		t.Errorf("no match = %d", got)
	}
}

func TestDiskListReadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	d := &diskList{path: path}
	items, err := d.read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("fresh list has %d items", len(items))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestDiskListWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	d := &diskList{path: path}
	items := listFromLines(t, "- one", "  + two")
	if err := d.write(items); err != nil {
		t.Fatalf("write: %v", err)
	}
	d2 := &diskList{path: path}
	back, err := d2.read()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if back.encode() != items.encode() {
		t.Errorf("read back = %q, want %q", back.encode(), items.encode())
	}
}

func TestExternallyChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.txt")
	d := &diskList{path: path}
	if err := d.write(listFromLines(t, "- mine")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if d.externallyChanged() {
		t.Error("changed right after own write")
	}
	if err := os.WriteFile(path, []byte("- someone else's"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !d.externallyChanged() {
		t.Error("external write not detected")
	}
	if _, err := d.read(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if d.externallyChanged() {
		t.Error("still flagged after reload")
	}
}

func TestDecodeListFatalOnFirstBadLine(t *testing.T) {
	d := &diskList{path: filepath.Join(t.TempDir(), "todo.txt")}
	if err := os.WriteFile(d.path, []byte("- ok\n0 nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := d.read(); err == nil {
		t.Error("corrupt file loaded without error")
	}
}
