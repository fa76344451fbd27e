package render

import (
	"strings"
	"testing"
	"time"

	"engagedeck/modules/core/state"
	uicore "engagedeck/modules/ui/core"
)

var testNow = time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC)

func plainRenderer() *Renderer {
	return &Renderer{Plain: true}
}

func TestRenderFillsExactDimensions(t *testing.T) {
	root := uicore.Compose(state.Sample(testNow), testNow)
	out := plainRenderer().Render(root, 120, 40)

	lines := strings.Split(out, "\n")
	if len(lines) != 40 {
		t.Fatalf("height = %d, want 40", len(lines))
	}
	for i, line := range lines {
		if w := len([]rune(line)); w > 120 {
			t.Errorf("line %d width = %d, exceeds 120", i, w)
		}
	}
}

func TestRenderContainsAllPanelTitles(t *testing.T) {
	root := uicore.Compose(state.Sample(testNow), testNow)
	out := plainRenderer().Render(root, 160, 60)

	for _, title := range []string{
		"Automation", "Segments", "Creation Studio", "Videos", "Strategies",
		"Analytics & A/B Tests", "Connectors", "Backend Services", "Databases",
		"Feedback & Surveys", "Today's Focus",
	} {
		if !strings.Contains(out, title) {
			t.Errorf("output missing %q", title)
		}
	}
	if !strings.Contains(out, "Acme Components") {
		t.Error("output missing business name")
	}
	if !strings.Contains(out, "Quick Actions:") {
		t.Error("output missing quick actions strip")
	}
}

func TestRenderTableColumnsAlign(t *testing.T) {
	tbl := &uicore.Table{
		Title:   "T",
		Columns: []uicore.Column{{Title: "Name"}, {Title: "N", AlignRight: true}},
		Rows: [][]uicore.Cell{
			{{Text: "a"}, {Text: "1"}},
			{{Text: "bb"}, {Text: "22"}},
		},
	}
	out := plainRenderer().RenderBlock(&uicore.Node{Table: tbl}, 0)
	lines := strings.Split(out, "\n")
	// Title, header, rule, two rows.
	if len(lines) != 5 {
		t.Fatalf("lines = %d: %q", len(lines), out)
	}
	if !strings.HasSuffix(strings.TrimRight(lines[3], " "), " 1") {
		t.Errorf("right-aligned cell: %q", lines[3])
	}
}

func TestRenderTableMultilineCells(t *testing.T) {
	st := state.Sample(testNow)
	out := plainRenderer().RenderBlock(&uicore.Node{Table: uicore.SegmentTable(st)}, 100)
	if !strings.Contains(out, "• Created < 30 days") || !strings.Contains(out, "• Matches ICP industries") {
		t.Errorf("criteria bullets should span lines:\n%s", out)
	}
}

func TestRenderTableShrinksToWidth(t *testing.T) {
	st := state.Sample(testNow)
	out := plainRenderer().RenderBlock(&uicore.Node{Table: uicore.CampaignTable(st)}, 60)
	for _, line := range strings.Split(out, "\n") {
		if w := len([]rune(line)); w > 60 {
			t.Errorf("line exceeds width %d: %q", w, line)
		}
	}
}

func TestRenderTableHeaderShrinksWithColumn(t *testing.T) {
	tbl := &uicore.Table{
		Title:   "Wide",
		Columns: []uicore.Column{{Title: "An Extremely Long Column Title"}, {Title: "N"}},
		Rows:    [][]uicore.Cell{{{Text: "x"}, {Text: "1"}}},
	}
	out := plainRenderer().RenderBlock(&uicore.Node{Table: tbl}, 20)
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if w := len([]rune(line)); w > 20 {
			t.Errorf("line %d width = %d, exceeds 20: %q", i, w, line)
		}
	}
	// Header keeps the truncation marker instead of overflowing.
	if !strings.Contains(lines[1], "…") {
		t.Errorf("header should be truncated: %q", lines[1])
	}
}

func TestRenderTableRuleMatchesRowWidth(t *testing.T) {
	tbl := &uicore.Table{
		Columns: []uicore.Column{{Title: "A"}, {Title: "B"}},
		Rows:    [][]uicore.Cell{{{Text: "aa"}, {Text: "bb"}}},
	}
	out := plainRenderer().RenderBlock(&uicore.Node{Table: tbl}, 0)
	lines := strings.Split(out, "\n")
	// Header, rule, one row.
	if len(lines) != 3 {
		t.Fatalf("lines = %d: %q", len(lines), out)
	}
	rowWidth := len([]rune(lines[2]))
	if w := len([]rune(lines[1])); w != rowWidth {
		t.Errorf("rule width = %d, row width = %d", w, rowWidth)
	}
}

func TestRenderRowSplitsByRatio(t *testing.T) {
	n := &uicore.Node{
		Row: true,
		Children: []*uicore.Node{
			{Ratio: 70, Text: []uicore.Line{{Text: "L"}}},
			{Ratio: 30, Text: []uicore.Line{{Text: "R"}}},
		},
	}
	out := plainRenderer().Render(n, 100, 1)
	// The right child starts at column 70.
	idx := strings.IndexRune(strings.Split(out, "\n")[0], 'R')
	if idx < 70 || idx > 99 {
		t.Errorf("right region starts at %d, want >= 70", idx)
	}
}

func TestRenderPanelSubtitleInBottomBorder(t *testing.T) {
	p := &uicore.Panel{
		Border:   uicore.AccentAmber,
		Center:   true,
		Subtitle: "You • Updated Mar 14, 2026 10:05",
		Lines:    []uicore.Line{{Text: "banner", Bold: true}},
	}
	out := plainRenderer().Render(&uicore.Node{Panel: p}, 80, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("height = %d, want 3", len(lines))
	}

	last := strings.TrimRight(lines[2], " ")
	if !strings.Contains(last, "Updated Mar 14, 2026 10:05") {
		t.Errorf("subtitle missing from bottom border: %q", last)
	}
	if !strings.HasPrefix(last, "╰") || !strings.HasSuffix(last, "╯") {
		t.Errorf("bottom border corners lost: %q", last)
	}
	if w := len([]rune(last)); w != 80 {
		t.Errorf("bottom border width = %d, want 80", w)
	}
}

func TestRenderDashboardShowsHeaderSubtitle(t *testing.T) {
	root := uicore.Compose(state.Sample(testNow), testNow)
	out := plainRenderer().Render(root, 120, 40)
	if !strings.Contains(out, "Updated Mar 14, 2026 10:05") {
		t.Error("header subtitle should survive the 3-row header region")
	}
}

func TestRenderPanelHasBorderAndTitle(t *testing.T) {
	p := &uicore.Panel{Title: "Focus", Border: uicore.AccentAmber, Lines: []uicore.Line{{Text: "hello"}}}
	out := plainRenderer().RenderBlock(&uicore.Node{Panel: p}, 30)
	if !strings.Contains(out, "Focus") || !strings.Contains(out, "hello") {
		t.Errorf("panel content missing:\n%s", out)
	}
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╰") {
		t.Errorf("panel should have rounded border:\n%s", out)
	}
}

func TestPlainOutputHasNoEscapes(t *testing.T) {
	root := uicore.Compose(state.Sample(testNow), testNow)
	out := plainRenderer().Render(root, 120, 40)
	if strings.Contains(out, "\x1b[") {
		t.Error("plain render must not emit ANSI escapes")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("got %q", got)
	}
	if got := truncate("ab", 4); got != "ab" {
		t.Errorf("got %q", got)
	}
}
