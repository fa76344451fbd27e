package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	uicore "engagedeck/modules/ui/core"
)

// Fallback terminal dimensions when size detection fails.
const (
	DefaultWidth  = 120
	DefaultHeight = 40
)

// TerminalSize returns the current terminal dimensions, falling back
// to sensible defaults when stdout is not a terminal.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// Renderer draws dashboard trees. Plain mode drops all styling and
// borders become plain ASCII-safe box drawing, for non-color
// terminals and SVG text extraction.
type Renderer struct {
	Plain bool
}

// New creates a renderer. Styling is enabled only when the terminal
// supports it and plain is false.
func New(plain bool) *Renderer {
	return &Renderer{Plain: plain || !ColorEnabled()}
}

// Render draws the tree into a width x height block. Content that does
// not fit its region is clipped; short content is padded.
func (r *Renderer) Render(n *uicore.Node, width, height int) string {
	return r.fit(r.renderNode(n, width, height), width, height)
}

// RenderBlock draws a single node at the given width with its natural
// height, for snapshot and card export.
func (r *Renderer) RenderBlock(n *uicore.Node, width int) string {
	return r.renderNode(n, width, 0)
}

func (r *Renderer) renderNode(n *uicore.Node, width, height int) string {
	switch {
	case n.Table != nil:
		return r.renderTable(n.Table, width, height)
	case n.Panel != nil:
		return r.renderPanel(n.Panel, width, height)
	case n.Text != nil:
		return r.renderText(n.Text, width, height)
	case n.Row:
		return r.renderRow(n.Children, width, height)
	default:
		return r.renderColumn(n.Children, width, height)
	}
}

// renderColumn stacks children vertically. Fixed-size children get
// exactly their rows; the rest share the remainder by weight.
func (r *Renderer) renderColumn(children []*uicore.Node, width, height int) string {
	if len(children) == 0 {
		return ""
	}

	heights := make([]int, len(children))
	if height > 0 {
		remaining := height
		totalWeight := 0
		for i, c := range children {
			if c.Size > 0 {
				heights[i] = c.Size
				remaining -= c.Size
			} else {
				totalWeight += c.Weight()
			}
		}
		if remaining < 0 {
			remaining = 0
		}
		used := 0
		lastFlex := -1
		for i, c := range children {
			if c.Size > 0 {
				continue
			}
			heights[i] = remaining * c.Weight() / totalWeight
			used += heights[i]
			lastFlex = i
		}
		// Leftover rows from integer division go to the last flex child.
		if lastFlex >= 0 {
			heights[lastFlex] += remaining - used
		}
	}

	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = r.fitWidth(r.renderNode(c, width, heights[i]), width, heights[i])
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderRow places children side by side, splitting the width by
// weight.
func (r *Renderer) renderRow(children []*uicore.Node, width, height int) string {
	if len(children) == 0 {
		return ""
	}

	totalWeight := 0
	for _, c := range children {
		totalWeight += c.Weight()
	}
	widths := make([]int, len(children))
	used := 0
	for i, c := range children {
		widths[i] = width * c.Weight() / totalWeight
		used += widths[i]
	}
	widths[len(widths)-1] += width - used

	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = r.fitWidth(r.renderNode(c, widths[i], height), widths[i], height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderText(lines []uicore.Line, width, height int) string {
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, r.paintLine(l))
	}
	return strings.Join(rendered, "\n")
}

func (r *Renderer) renderPanel(p *uicore.Panel, width, height int) string {
	innerWidth := width - 4 // border + padding
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	if p.Title != "" {
		title := p.Title
		if !r.Plain {
			title = lipgloss.NewStyle().Bold(true).Foreground(AccentColor(p.Border)).Render(title)
		}
		lines = append(lines, title)
	}
	for _, l := range p.Lines {
		text := r.paintLine(l)
		if p.Center {
			text = lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, text)
		}
		lines = append(lines, text)
	}

	content := strings.Join(lines, "\n")
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !r.Plain {
		style = style.BorderForeground(AccentColor(p.Border))
	}
	if width > 2 {
		style = style.Width(width - 2)
	}
	if height > 2 {
		style = style.Height(height - 2)
		content = clipLines(content, height-2)
	}

	rendered := style.Render(content)
	if p.Subtitle != "" && width > 6 {
		rendered = r.embedSubtitle(rendered, p, width)
	}
	return rendered
}

// embedSubtitle writes the subtitle into the panel's bottom border, so
// it costs no content row inside fixed-height regions.
func (r *Renderer) embedSubtitle(rendered string, p *uicore.Panel, width int) string {
	lines := strings.Split(rendered, "\n")
	if len(lines) < 2 {
		return rendered
	}

	sub := " " + p.Subtitle + " "
	if limit := width - 4; lipgloss.Width(sub) > limit {
		sub = truncate(sub, limit)
	}
	dashes := width - 3 - lipgloss.Width(sub)
	left := "╰" + strings.Repeat("─", dashes)
	right := "─╯"
	if r.Plain {
		lines[len(lines)-1] = left + sub + right
	} else {
		border := lipgloss.NewStyle().Foreground(AccentColor(p.Border))
		lines[len(lines)-1] = border.Render(left) + SubtitleStyle.Render(sub) + border.Render(right)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderTable(t *uicore.Table, width, height int) string {
	widths := columnWidths(t, width)

	var out []string
	if t.Title != "" {
		title := t.Title
		if !r.Plain {
			title = lipgloss.NewStyle().Bold(true).Foreground(AccentColor(t.Border)).Render(title)
		}
		out = append(out, lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	}

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = pad(truncate(col.Title, widths[i]), widths[i], col.AlignRight)
		if !r.Plain {
			header[i] = TableHeaderStyle.Render(header[i])
		}
	}
	out = append(out, " "+strings.Join(header, "  "))

	// The rule line carries the same leading space as the rows, so the
	// rule itself is one short of the row width.
	ruleWidth := tableWidth(widths) - 1
	if width > 0 && ruleWidth > width-1 {
		ruleWidth = width - 1
	}
	if ruleWidth < 0 {
		ruleWidth = 0
	}
	rule := strings.Repeat("─", ruleWidth)
	if !r.Plain {
		rule = lipgloss.NewStyle().Foreground(AccentColor(t.Border)).Render(rule)
	}
	out = append(out, " "+rule)

	for _, row := range t.Rows {
		out = append(out, r.renderTableRow(t, row, widths)...)
	}

	content := strings.Join(out, "\n")
	if height > 0 {
		content = clipLines(content, height)
	}
	return content
}

// renderTableRow renders one logical row, which spans multiple screen
// lines when any cell contains newlines.
func (r *Renderer) renderTableRow(t *uicore.Table, row []uicore.Cell, widths []int) []string {
	cellLines := make([][]string, len(row))
	rowHeight := 1
	for i, cell := range row {
		cellLines[i] = strings.Split(cell.Text, "\n")
		if len(cellLines[i]) > rowHeight {
			rowHeight = len(cellLines[i])
		}
	}

	lines := make([]string, rowHeight)
	for ln := 0; ln < rowHeight; ln++ {
		parts := make([]string, len(row))
		for i := range row {
			text := ""
			if ln < len(cellLines[i]) {
				text = cellLines[i][ln]
			}
			alignRight := i < len(t.Columns) && t.Columns[i].AlignRight
			part := pad(truncate(text, widths[i]), widths[i], alignRight)
			if !r.Plain && row[i].Color != "" {
				part = lipgloss.NewStyle().Foreground(LineColor(row[i].Color)).Render(part)
			}
			parts[i] = part
		}
		lines[ln] = " " + strings.Join(parts, "  ")
	}
	return lines
}

func (r *Renderer) paintLine(l uicore.Line) string {
	if r.Plain || (l.Color == "" && !l.Bold) {
		return l.Text
	}
	style := lipgloss.NewStyle().Bold(l.Bold)
	if l.Color != "" {
		style = style.Foreground(LineColor(l.Color))
	}
	return style.Render(l.Text)
}

// columnWidths sizes columns to their content, then shrinks the widest
// columns until the table fits the available width.
func columnWidths(t *uicore.Table, width int) []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = lipgloss.Width(col.Title)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			for _, line := range strings.Split(cell.Text, "\n") {
				if w := lipgloss.Width(line); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	if width <= 0 {
		return widths
	}
	for tableWidth(widths) > width {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 3 {
			break
		}
		widths[widest]--
	}
	return widths
}

// tableWidth is the rendered width of a row: leading space plus
// two-space gaps between columns.
func tableWidth(widths []int) int {
	total := 1
	for i, w := range widths {
		if i > 0 {
			total += 2
		}
		total += w
	}
	return total
}

func (r *Renderer) fit(content string, width, height int) string {
	if height > 0 {
		content = clipLines(content, height)
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}

func (r *Renderer) fitWidth(content string, width, height int) string {
	if height > 0 {
		content = clipLines(content, height)
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, content)
}

func clipLines(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	return strings.Join(lines[:height], "\n")
}

func pad(s string, width int, alignRight bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if alignRight {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
