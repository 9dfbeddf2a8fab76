package main

import (
	"errors"
	"fmt"
	"strings"
)

// ─── Types ───────────────────────────────────────────────────────────────────

// errInvalidFormat is returned by parseItem for lines the grammar rejects.
// A whole-file load fails on the first invalid line rather than dropping it.
var errInvalidFormat = errors.New("invalid format")

type itemMarker int

const (
	markerNone itemMarker = iota
	markerUnchecked
	markerChecked
)

func (m itemMarker) String() string {
	switch m {
	case markerUnchecked:
		return "-"
	case markerChecked:
		return "+"
	default:
		return ""
	}
}

// itemColor is one of the seven ANSI-style item colors. White is the
// default and is omitted from the serialized form.
type itemColor int

const (
	colorItemRed itemColor = iota + 1
	colorItemGreen
	colorItemYellow
	colorItemBlue
	colorItemMagenta
	colorItemCyan
	colorItemWhite
)

var colorNames = []string{"Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "White"}

// todoItem is one line of the list: indentation, an optional completion
// marker, an optional color, and free text. The canonical serialized line is
// cached in raw and re-derived by every mutator.
type todoItem struct {
	indent int
	marker itemMarker
	color  itemColor
	text   string
	raw    string
}

// ─── Decoding ────────────────────────────────────────────────────────────────

// parseItem decodes a persisted line.
//
// Grammar, left to right: a leading space run (the indent), an optional '-'
// or '+' marker, an optional color digit 1-7 that must be followed by a
// space, an optional separator space, then the remaining text verbatim.
// An empty line decodes to the blank-row placeholder (unchecked, no text).
//
// Text beginning with a digit and a space is indistinguishable from an
// explicit color; it is deliberately read as a color for compatibility with
// existing files.
func parseItem(line string) (todoItem, error) {
	if line == "" {
		return todoItem{marker: markerUnchecked, color: colorItemWhite}, nil
	}
	indent := len(line) - len(strings.TrimLeft(line, " "))
	p := indent
	marker := markerNone
	if p < len(line) {
		switch line[p] {
		case '-':
			marker = markerUnchecked
			p++
		case '+':
			marker = markerChecked
			p++
		}
	}
	color := colorItemWhite
	if p+1 < len(line) && line[p] >= '0' && line[p] <= '9' && line[p+1] == ' ' {
		d := itemColor(line[p] - '0')
		if d < colorItemRed || d > colorItemWhite {
			return todoItem{}, fmt.Errorf("%w: color %d out of range", errInvalidFormat, d)
		}
		color = d
		p += 2
	}
	if p < len(line) && line[p] == ' ' {
		p++
	}
	return todoItem{
		indent: indent,
		marker: marker,
		color:  color,
		text:   line[p:],
		raw:    line,
	}, nil
}

// newItem builds an item directly from display text, as used for fresh rows
// and pasted lines.
func newItem(marker itemMarker, indent int, text string) todoItem {
	it := todoItem{indent: indent, marker: marker, color: colorItemWhite, text: text}
	it.raw = it.encode()
	return it
}

// ─── Encoding ────────────────────────────────────────────────────────────────

// encode serializes the item back to its canonical line form. The marker is
// omitted when absent or when the text is empty (blank rows carry no box),
// the color digit is omitted when white, and a single separator space is
// written only when a marker or color preceded the text.
func (t todoItem) encode() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", t.indent))
	writeMarker := t.marker != markerNone && t.text != ""
	writeColor := t.color != colorItemWhite
	if writeMarker {
		b.WriteString(t.marker.String())
	}
	if writeColor {
		b.WriteByte(byte('0' + t.color))
	}
	if writeMarker || writeColor {
		b.WriteByte(' ')
	}
	b.WriteString(t.text)
	return b.String()
}

// ─── Mutators ────────────────────────────────────────────────────────────────

func (t *todoItem) toggle() {
	switch t.marker {
	case markerChecked:
		t.marker = markerUnchecked
	case markerUnchecked:
		t.marker = markerChecked
	}
	t.raw = t.encode()
}

func (t todoItem) toggled() bool {
	return t.marker == markerChecked
}

func (t *todoItem) setText(text string) {
	t.text = text
	t.raw = t.encode()
}

func (t *todoItem) setColor(c itemColor) {
	t.color = c
	t.raw = t.encode()
}

func (t *todoItem) indentBy(unit int) {
	t.indent += unit
	t.raw = t.encode()
}

func (t *todoItem) dedentBy(unit int) {
	if t.indent >= unit {
		t.indent -= unit
		t.raw = t.encode()
	}
}

// clone returns an independent copy, re-parsed from the serialized form the
// same way a pasted line would be.
func (t todoItem) clone() todoItem {
	it, err := parseItem(t.raw)
	if err != nil {
		// raw is codec output, which is always re-parseable
		return t
	}
	return it
}

// box returns the rendered checkbox prefix for the item, or "" for notes.
func (t todoItem) box(simple bool) string {
	if simple {
		switch t.marker {
		case markerChecked:
			return "[x] "
		case markerUnchecked:
			return "[ ] "
		}
		return ""
	}
	switch t.marker {
	case markerChecked:
		return "☑  "
	case markerUnchecked:
		return "☐  "
	}
	return ""
}
