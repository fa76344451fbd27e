package core

// ColorTag is a semantic color name resolved to a concrete style by
// the renderer. Accent tags pick border/title colors; status tags
// ("green", "red", ...) come from StatusColor.
type ColorTag string

const (
	AccentCyan   ColorTag = "cyan"
	AccentPurple ColorTag = "purple"
	AccentGreen  ColorTag = "green"
	AccentAmber  ColorTag = "amber"
)

// Column describes a table column header.
type Column struct {
	Title      string
	AlignRight bool
}

// Cell is one table cell with an optional color tag.
type Cell struct {
	Text  string
	Color string
}

// Table is a titled, bordered grid of cells.
type Table struct {
	Title   string
	Border  ColorTag
	Columns []Column
	Rows    [][]Cell
}

// Line is one line of panel or text content.
type Line struct {
	Text  string
	Color string
	Bold  bool
}

// Panel is a titled, bordered block of lines.
type Panel struct {
	Title    string
	Subtitle string
	Border   ColorTag
	Center   bool
	Lines    []Line
}

// Node is one region of the dashboard layout. A node either carries
// content (exactly one of Table, Panel, Text) or splits into children.
// Size fixes the region's height in rows; zero means it flexes by
// Ratio (treated as 1 when unset).
type Node struct {
	Name     string
	Size     int
	Ratio    int
	Row      bool // children side by side instead of stacked
	Children []*Node

	Table *Table
	Panel *Panel
	Text  []Line // bare text content, no border
}

// Weight returns the node's flex ratio, defaulting to 1.
func (n *Node) Weight() int {
	if n.Ratio <= 0 {
		return 1
	}
	return n.Ratio
}

// Find returns the named descendant, or nil. Depth first.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
