package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─── Colors ──────────────────────────────────────────────────────────────────

var (
	colorBlack   = lipgloss.Color("0")
	colorAccent  = lipgloss.Color("5")  // magenta — brand, keys, menu cursor
	colorDim     = lipgloss.Color("8")  // gray — gutter, secondary text
	colorFull    = lipgloss.Color("7")  // white — full help descriptions
	colorYellow  = lipgloss.Color("11") // dirty marker
	colorMagenta = lipgloss.Color("13") // status bar messages
)

// itemColorValues maps the seven item colors onto ANSI terminal colors.
var itemColorValues = map[itemColor]lipgloss.Color{
	colorItemRed:     lipgloss.Color("1"),
	colorItemGreen:   lipgloss.Color("2"),
	colorItemYellow:  lipgloss.Color("3"),
	colorItemBlue:    lipgloss.Color("4"),
	colorItemMagenta: lipgloss.Color("5"),
	colorItemCyan:    lipgloss.Color("6"),
	colorItemWhite:   lipgloss.Color("7"),
}

// ─── Styles ──────────────────────────────────────────────────────────────────

var (
	brandStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle    = lipgloss.NewStyle().Foreground(colorDim)
	dirtyStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	gutterStyle    = lipgloss.NewStyle().Foreground(colorDim)
	helpTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	modalBoxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 3)
	statusTextStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMagenta)
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	menuDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

func truncateForWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	limit := maxWidth - 1
	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if width+rw > limit {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + "…"
}

// ─── Rows ────────────────────────────────────────────────────────────────────

// renderRow draws one list line: optional relative line number gutter,
// indentation, checkbox, then the text in its item color. Selected rows are
// drawn reversed.
func (m *model) renderRow(index int, gutterW int) string {
	it := m.items[index]
	selected := m.sel.contains(index)

	var gutter string
	if m.cfg.RelativeLines {
		n := index - m.sel.first()
		if n < 0 {
			n = -n
		}
		label := fmt.Sprintf("%*d ", gutterW, n)
		if index == m.sel.first() {
			label = fmt.Sprintf("%*d ", gutterW, index+1)
		}
		gutter = gutterStyle.Render(label)
	}

	style := lipgloss.NewStyle().Foreground(itemColorValues[it.color])
	if it.toggled() && m.cfg.Strikethrough {
		style = style.Strikethrough(true)
	}
	if selected {
		style = style.Reverse(true)
	}

	body := strings.Repeat(" ", it.indent) + it.box(m.cfg.SimpleBoxes) + it.text
	return gutter + style.Render(truncateForWidth(body, m.width-lipgloss.Width(gutter)))
}

// ─── View ────────────────────────────────────────────────────────────────────

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := " " + brandStyle.Render("ndo")
	switch {
	case m.store == nil:
		header += headerStyle.Render("  demo list, nothing is written to disk")
	default:
		header += headerStyle.Render("  "+contractHome(m.store.path))
		if m.dirty {
			header += dirtyStyle.Render(" *")
		}
	}

	bodyH := m.height - 2 // header and status bar
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	n := len(m.items)
	if n == 0 {
		hint := lipgloss.NewStyle().Foreground(colorDim).
			Width(m.width).Align(lipgloss.Center).
			Render("Empty list\n\ni  add an item\n?  keybindings")
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, hint)
	} else {
		gutterW := len(fmt.Sprint(n))
		start, end, _ := visibleWindow(bodyH, n, m.sel.first(), -1)
		rows := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, m.renderRow(i, gutterW))
		}
		for len(rows) < bodyH {
			rows = append(rows, "")
		}
		body = strings.Join(rows, "\n")
	}

	base := header + "\n" + body + "\n" + m.statusBar()

	switch m.mode {
	case modeColor:
		return m.overlay(m.colorMenuView())
	case modeSort:
		return m.overlay(m.sortMenuView())
	case modePicker:
		return m.overlay(m.pickerView())
	case modeHelp:
		return m.overlay(m.modalWithFooter("Keybindings", "q/esc dismiss  ·  j/k or space/B scroll"))
	case modeMagnify:
		return m.overlay(m.modalWithFooter("Magnify", "q/esc dismiss"))
	case modeConfirmQuit:
		return m.overlay(m.confirmQuitView())
	}
	return base
}

func (m *model) statusBar() string {
	switch {
	case m.mode == modeEdit:
		return " " + statusTextStyle.Render("edit:") + " " + m.input.View()
	case m.mode == modeSearch:
		return " " + statusTextStyle.Render("/") + m.input.View()
	case m.pending != "":
		label := m.pending
		if m.pendingMulti {
			label = "alt+" + label
		}
		return " " + statusTextStyle.Render(label) +
			menuDimStyle.Render("  j/k relative · g/G absolute · other key cancels")
	case m.notice != "":
		return " " + statusTextStyle.Render(truncateForWidth(m.notice, m.width-1))
	}
	return " " + m.help.ShortHelpView(m.keys.ShortHelp())
}

// ─── Modals ──────────────────────────────────────────────────────────────────

func (m *model) overlay(content string) string {
	modalMaxW := m.width - 4
	if modalMaxW > 76 {
		modalMaxW = 76
	}
	if modalMaxW < 20 {
		modalMaxW = 20
	}
	overlay := modalBoxStyle.MaxWidth(modalMaxW).Render(
		lipgloss.NewStyle().MaxWidth(modalMaxW - 8).Render(content),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(colorBlack),
	)
}

func (m *model) modalWithFooter(title, footer string) string {
	return helpTitleStyle.Render(title) + "\n" +
		m.modalView.View() + "\n" +
		menuDimStyle.Render(footer)
}

// menuLines renders a vertical pick list with the cursor row marked.
func (m *model) menuLines(title string, lines []string) string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render(title))
	b.WriteByte('\n')
	for i, line := range lines {
		if i == m.menuCursor {
			b.WriteString(menuCursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}
	b.WriteString(menuDimStyle.Render("j/k move · enter select · q cancel"))
	return b.String()
}

func (m *model) colorMenuView() string {
	lines := make([]string, 0, len(colorNames))
	for i, name := range colorNames {
		c := itemColor(i + 1)
		lines = append(lines, lipgloss.NewStyle().Foreground(itemColorValues[c]).
			Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	return m.menuLines("Color", lines)
}

func (m *model) sortMenuView() string {
	return m.menuLines("Sort by", sortMethodNames)
}

func (m *model) pickerView() string {
	lines := make([]string, 0, len(m.pickerFiles))
	for _, f := range m.pickerFiles {
		label := contractHome(f.path)
		if !f.created.IsZero() {
			label += menuDimStyle.Render("  " + f.created.Format("2006-01-02"))
		}
		lines = append(lines, label)
	}
	return m.menuLines("Switch list", lines)
}

func (m *model) confirmQuitView() string {
	return helpTitleStyle.Render("Unsaved changes") + "\n" +
		"Write " + contractHome(m.store.path) + " before quitting?\n\n" +
		menuCursorStyle.Render("y") + menuDimStyle.Render(" write and quit   ") +
		menuCursorStyle.Render("n") + menuDimStyle.Render(" quit without writing   ") +
		menuCursorStyle.Render("esc") + menuDimStyle.Render(" cancel")
}
