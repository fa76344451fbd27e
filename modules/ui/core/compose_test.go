package core

import (
	"strings"
	"testing"
	"time"

	"engagedeck/modules/core/plan"
	"engagedeck/modules/core/state"
)

var testNow = time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC)

func TestComposeTopology(t *testing.T) {
	root := Compose(state.Sample(testNow), testNow)

	header := root.Find("header")
	if header == nil || header.Size != 3 || header.Panel == nil {
		t.Fatal("header must be a 3-row panel")
	}
	qa := root.Find("quick_actions")
	if qa == nil || qa.Size != 1 || len(qa.Text) != 1 {
		t.Fatal("quick actions must be a single text row")
	}
	footer := root.Find("footer")
	if footer == nil || footer.Size != 6 {
		t.Fatal("footer must be fixed at 6 rows")
	}

	body := root.Find("body")
	if body == nil || !body.Row || body.Size != 0 {
		t.Fatal("body must be a flexible row split")
	}

	for _, name := range []string{
		"campaigns", "segments", "templates", "videos", "strategies", "analytics",
		"connectors", "backend", "databases", "feedback", "actions",
	} {
		if root.Find(name) == nil {
			t.Errorf("missing region %q", name)
		}
	}

	// Strategies and analytics share a horizontal split on the right.
	sa := root.Find("strategies_analytics")
	if sa == nil || !sa.Row || len(sa.Children) != 2 {
		t.Error("strategies/analytics must split horizontally")
	}
}

func TestComposeSampleContent(t *testing.T) {
	st := state.Sample(testNow)
	root := Compose(st, testNow)

	campaigns := root.Find("campaigns").Table
	if campaigns.Title != "Automation" || len(campaigns.Rows) != 3 {
		t.Errorf("campaigns = %q with %d rows", campaigns.Title, len(campaigns.Rows))
	}
	if len(campaigns.Columns) != 7 {
		t.Errorf("campaign columns = %d, want 7", len(campaigns.Columns))
	}

	segments := root.Find("segments").Table
	if segments.Title != "Segments" || len(segments.Rows) != 3 {
		t.Errorf("segments = %q with %d rows", segments.Title, len(segments.Rows))
	}
	// 23/34 rounds to 68%.
	if got := segments.Rows[0][3].Text; got != "68% nurtured" {
		t.Errorf("progress = %q", got)
	}

	header := root.Find("header").Panel
	if !strings.Contains(header.Lines[0].Text, "Acme Components") {
		t.Errorf("header = %q", header.Lines[0].Text)
	}
	if !strings.Contains(header.Subtitle, "Updated Mar 14, 2026 10:05") {
		t.Errorf("header subtitle = %q", header.Subtitle)
	}
}

func TestQuickActionsHasSixEntries(t *testing.T) {
	if len(QuickActionLabels) != 6 {
		t.Fatalf("quick actions = %d, want 6", len(QuickActionLabels))
	}
	text := QuickActions()[0].Text
	for _, label := range QuickActionLabels {
		if !strings.Contains(text, label) {
			t.Errorf("strip missing %q", label)
		}
	}
}

func TestStatusCellsAreTitledAndColored(t *testing.T) {
	st := state.Sample(testNow)
	campaigns := CampaignTable(st)

	// Sample campaign 0 is "scheduled".
	cell := campaigns.Rows[0][6]
	if cell.Text != "Scheduled" || cell.Color != "cyan" {
		t.Errorf("status cell = %+v", cell)
	}

	backend := BackendTable(st)
	cell = backend.Rows[1][1]
	if cell.Text != "Degraded" || cell.Color != "yellow" {
		t.Errorf("degraded cell = %+v", cell)
	}
}

func TestActionsPanelSortsAndFlags(t *testing.T) {
	st := &state.State{Actions: []state.ActionItem{
		{Title: "Later", Due: "2026-03-20"},
		{Title: "No date"},
		{Title: "Today task", Due: "2026-03-14"},
		{Title: "Tomorrow task", Due: "2026-03-15"},
	}}
	p := ActionsPanel(st, testNow)
	if len(p.Lines) != 4 {
		t.Fatalf("lines = %d", len(p.Lines))
	}

	if !strings.HasPrefix(p.Lines[0].Text, "🔴 ") || p.Lines[0].Color != "red" {
		t.Errorf("today line = %+v", p.Lines[0])
	}
	if !strings.HasPrefix(p.Lines[1].Text, "🟡 ") || p.Lines[1].Color != "yellow" {
		t.Errorf("tomorrow line = %+v", p.Lines[1])
	}
	if !strings.Contains(p.Lines[2].Text, "Later") {
		t.Errorf("dated line out of order: %+v", p.Lines[2])
	}
	if !strings.Contains(p.Lines[3].Text, "No date") || !strings.Contains(p.Lines[3].Text, Placeholder) {
		t.Errorf("undated line must sort last with placeholder: %+v", p.Lines[3])
	}
}

func TestActionsPanelEmpty(t *testing.T) {
	p := ActionsPanel(&state.State{}, testNow)
	if len(p.Lines) != 1 || p.Lines[0].Text != "You're all set for today." {
		t.Errorf("empty panel = %+v", p.Lines)
	}
}

func TestAnalyticsPanelDeltas(t *testing.T) {
	st := state.Sample(testNow)
	p := AnalyticsPanel(st)

	if got := p.Lines[0].Text; got != "Open rate: 46.0% (+64% vs avg)" {
		t.Errorf("open rate line = %q", got)
	}
	if got := p.Lines[3].Text; got != "Conversions this week: 5" {
		t.Errorf("conversions line = %q", got)
	}
	// Two A/B tests plus their heading.
	if len(p.Lines) != 7 {
		t.Errorf("lines = %d, want 7", len(p.Lines))
	}
	if got := p.Lines[5].Text; got != " • CTA copy winner: Book a call (+12.0%)" {
		t.Errorf("ab test line = %q", got)
	}
}

func TestAnalyticsPanelNoBenchmarks(t *testing.T) {
	st := &state.State{Analytics: state.Analytics{OpenRate: 0.3}}
	p := AnalyticsPanel(st)
	if got := p.Lines[0].Text; got != "Open rate: 30.0%" {
		t.Errorf("line = %q, want no delta without benchmark", got)
	}
}

func TestConnectorTableLegacyFallback(t *testing.T) {
	st := state.Sample(testNow)
	st.Connectors = nil
	tbl := ConnectorTable(st)
	if len(tbl.Rows) != 3 || tbl.Rows[0][0].Text != "CRM (HubSpot)" {
		t.Errorf("legacy fallback rows = %+v", tbl.Rows)
	}
	// Legacy entries carry no last_sync.
	if tbl.Rows[0][2].Text != Placeholder {
		t.Errorf("last sync = %q, want placeholder", tbl.Rows[0][2].Text)
	}
}

func TestComposeCreativeStudioSplit(t *testing.T) {
	p := plan.Match("demo video", nil)
	root := ComposeCreativeStudio("demo video", p)

	studio := root.Find("studio")
	magic := root.Find("automagic")
	if studio == nil || magic == nil {
		t.Fatal("missing creative regions")
	}
	if studio.Ratio != 70 || magic.Ratio != 30 {
		t.Errorf("split = %d/%d, want 70/30", studio.Ratio, magic.Ratio)
	}
	if studio.Panel.Title != "Creation Studio" || magic.Panel.Title != "Auto-magic Status" {
		t.Errorf("titles = %q / %q", studio.Panel.Title, magic.Panel.Title)
	}

	var found bool
	for _, l := range magic.Panel.Lines {
		if strings.Contains(l.Text, "Demo_video") {
			found = true
		}
	}
	if !found {
		t.Error("auto-magic panel should name the matched rule")
	}
}

func TestBriefOrderAndLimit(t *testing.T) {
	st := state.Sample(testNow)
	st.Actions = append(st.Actions, state.ActionItem{Title: "Fourth", Due: "2026-03-20"})
	lines := Brief(st, testNow)

	var actionLines []string
	for _, l := range lines {
		if strings.HasPrefix(l.Text, "  🔴") || strings.HasPrefix(l.Text, "  •") {
			actionLines = append(actionLines, l.Text)
		}
	}
	if len(actionLines) != 3 {
		t.Fatalf("brief actions = %d, want 3", len(actionLines))
	}
	if !strings.Contains(actionLines[0], "A/B test CTA for New Leads") {
		t.Errorf("due-soonest should lead: %q", actionLines[0])
	}
	if !strings.HasPrefix(actionLines[0], "  🔴") {
		t.Errorf("today action should be flagged: %q", actionLines[0])
	}

	joined := strings.Join(flatten(lines), "\n")
	if !strings.Contains(joined, "Acme Components - Morning Brief") {
		t.Error("brief missing banner")
	}
	if !strings.Contains(joined, "Open rate: 46.0%") {
		t.Error("brief missing metrics")
	}
	if !strings.Contains(joined, "Conversions this week: 5") {
		t.Error("brief missing conversions")
	}
}

func TestBriefEmptyActions(t *testing.T) {
	st := state.Sample(testNow)
	st.Actions = nil
	joined := strings.Join(flatten(Brief(st, testNow)), "\n")
	if !strings.Contains(joined, "You're all set for today!") {
		t.Error("brief should celebrate an empty action list")
	}
}

func flatten(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}
