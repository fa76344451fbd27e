package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"engagedeck/modules/core/state"
)

// fallbackBusinessName is used when the profile has no business name.
const fallbackBusinessName = "B2B Dashboard"

// Header builds the top banner panel.
func Header(st *state.State, now time.Time) *Panel {
	business := st.Profile.BusinessName
	if business == "" {
		business = fallbackBusinessName
	}
	owner := st.Profile.Owner
	if owner == "" {
		owner = "Owner"
	}
	return &Panel{
		Title:    "",
		Border:   AccentAmber,
		Center:   true,
		Subtitle: fmt.Sprintf("%s • Updated %s", owner, now.Format(HeaderTimeLayout)),
		Lines: []Line{
			{Text: fmt.Sprintf("✦ %s • B2B Engagement Command Center", business), Bold: true},
		},
	}
}

// QuickActionLabels are the entries of the quick actions strip, in
// display order.
var QuickActionLabels = []string{
	"[1] New Campaign",
	"[2] Export Report",
	"[3] Sync All",
	"[4] Reset Data",
	"[5] View Templates",
	"[6] Export Cards",
}

// QuickActions builds the one-line shortcut strip under the header.
func QuickActions() []Line {
	return []Line{
		{Text: "Quick Actions: " + strings.Join(QuickActionLabels, "  "), Color: "cyan", Bold: true},
	}
}

// CampaignTable builds the campaign automation table.
func CampaignTable(st *state.State) *Table {
	t := &Table{
		Title:  "Automation",
		Border: AccentCyan,
		Columns: []Column{
			{Title: "Name"}, {Title: "Segment"}, {Title: "Trigger"}, {Title: "Channel"},
			{Title: "Template"}, {Title: "Next"}, {Title: "Status"},
		},
	}
	for _, c := range st.Campaigns {
		t.Rows = append(t.Rows, []Cell{
			{Text: orPlaceholder(c.Name)},
			{Text: orPlaceholder(c.Segment)},
			{Text: orPlaceholder(c.Trigger)},
			{Text: orPlaceholder(c.Channel)},
			{Text: orPlaceholder(c.Template)},
			{Text: orPlaceholder(c.NextSend)},
			statusCell(c.Status),
		})
	}
	return t
}

// SegmentTable builds the audience segments table.
func SegmentTable(st *state.State) *Table {
	t := &Table{
		Title:  "Segments",
		Border: AccentPurple,
		Columns: []Column{
			{Title: "Name"}, {Title: "Criteria"},
			{Title: "Size", AlignRight: true}, {Title: "Progress", AlignRight: true},
		},
	}
	for _, seg := range st.Segments {
		bullets := make([]string, 0, len(seg.Criteria))
		for _, c := range seg.Criteria {
			bullets = append(bullets, "• "+c)
		}
		t.Rows = append(t.Rows, []Cell{
			{Text: orPlaceholder(seg.Name)},
			{Text: strings.Join(bullets, "\n")},
			{Text: strconv.Itoa(seg.Size)},
			{Text: FormatProgress(seg.Nurtured, seg.Size)},
		})
	}
	return t
}

// TemplateTable builds the content templates table.
func TemplateTable(st *state.State) *Table {
	t := &Table{
		Title:  "Creation Studio",
		Border: AccentGreen,
		Columns: []Column{
			{Title: "Template"}, {Title: "Medium"}, {Title: "Purpose"}, {Title: "Updated"},
		},
	}
	for _, tmpl := range st.Templates {
		t.Rows = append(t.Rows, []Cell{
			{Text: orPlaceholder(tmpl.Name)},
			{Text: orPlaceholder(tmpl.Medium)},
			{Text: orPlaceholder(tmpl.Purpose)},
			{Text: orPlaceholder(tmpl.LastUpdated)},
		})
	}
	return t
}

// StrategyTable builds the marketing frameworks table. Every strategy
// is always available, so the status column is constant.
func StrategyTable(st *state.State) *Table {
	t := &Table{
		Title:  "Strategies",
		Border: AccentGreen,
		Columns: []Column{
			{Title: "Strategy"}, {Title: "Description"}, {Title: "Best Segments"}, {Title: "Status"},
		},
	}
	for _, s := range st.Strategies {
		display := s.FullName
		if display == "" {
			display = orPlaceholder(s.Name)
		}
		t.Rows = append(t.Rows, []Cell{
			{Text: display},
			{Text: orPlaceholder(s.Description)},
			{Text: strings.Join(s.BestForSegments, ", ")},
			{Text: "Available", Color: "green"},
		})
	}
	return t
}

// VideoTable builds the generated videos table.
func VideoTable(st *state.State) *Table {
	t := &Table{
		Title:  "Videos",
		Border: AccentAmber,
		Columns: []Column{
			{Title: "Template"}, {Title: "Duration"}, {Title: "Status"},
			{Title: "Generated"}, {Title: "Path"},
		},
	}
	for _, v := range st.Videos {
		duration := Placeholder
		if v.Duration > 0 {
			duration = fmt.Sprintf("%ds", v.Duration)
		}
		t.Rows = append(t.Rows, []Cell{
			{Text: orPlaceholder(v.Template)},
			{Text: duration},
			statusCell(v.Status),
			{Text: orPlaceholder(v.Generated)},
			{Text: orPlaceholder(v.OutputPath)},
		})
	}
	return t
}

// ConnectorTable builds the external connectors table, falling back to
// the legacy integrations collection for older state files.
func ConnectorTable(st *state.State) *Table {
	t := &Table{
		Title:  "Connectors",
		Border: AccentCyan,
		Columns: []Column{
			{Title: "System"}, {Title: "Status"}, {Title: "Last Sync"}, {Title: "Detail"},
		},
	}
	for _, c := range st.ActiveConnectors() {
		t.Rows = append(t.Rows, []Cell{
			{Text: orPlaceholder(c.Name)},
			statusCell(c.Status),
			{Text: orPlaceholder(c.LastSync)},
			{Text: orPlaceholder(c.Detail)},
		})
	}
	return t
}

// BackendTable builds the backend services table.
func BackendTable(st *state.State) *Table {
	t := &Table{
		Title:  "Backend Services",
		Border: AccentPurple,
		Columns: []Column{
			{Title: "Service"}, {Title: "Status"},
			{Title: "Latency (ms)", AlignRight: true}, {Title: "Errors"}, {Title: "Version"},
		},
	}
	for _, svc := range st.Backend {
		latency := Placeholder
		if svc.LatencyMS > 0 {
			latency = strconv.Itoa(svc.LatencyMS)
		}
		t.Rows = append(t.Rows, []Cell{
			{Text: orPlaceholder(svc.Service)},
			statusCell(svc.Status),
			{Text: latency},
			{Text: orPlaceholder(svc.ErrorRate)},
			{Text: orPlaceholder(svc.Version)},
		})
	}
	return t
}

// DatabaseTable builds the datastores table.
func DatabaseTable(st *state.State) *Table {
	t := &Table{
		Title:  "Databases",
		Border: AccentGreen,
		Columns: []Column{
			{Title: "Name"}, {Title: "Role"}, {Title: "Status"},
			{Title: "Storage (GB)", AlignRight: true}, {Title: "Connections", AlignRight: true},
		},
	}
	for _, db := range st.Databases {
		t.Rows = append(t.Rows, []Cell{
			{Text: orPlaceholder(db.Name)},
			{Text: orPlaceholder(db.Role)},
			statusCell(db.Status),
			{Text: strconv.FormatFloat(db.StorageGB, 'g', -1, 64)},
			{Text: strconv.Itoa(db.Connections)},
		})
	}
	return t
}

// FeedbackTable builds the surveys table.
func FeedbackTable(st *state.State) *Table {
	t := &Table{
		Title:  "Feedback & Surveys",
		Border: AccentCyan,
		Columns: []Column{
			{Title: "Name"}, {Title: "Question"}, {Title: "Last Sent"},
			{Title: "Responses", AlignRight: true},
		},
	}
	for _, f := range st.Feedback {
		t.Rows = append(t.Rows, []Cell{
			{Text: orPlaceholder(f.Name)},
			{Text: orPlaceholder(f.Question)},
			{Text: orPlaceholder(f.LastSent)},
			{Text: strconv.Itoa(f.Responses)},
		})
	}
	return t
}

// AnalyticsPanel builds the engagement metrics panel with benchmark
// deltas and A/B test outcomes.
func AnalyticsPanel(st *state.State) *Panel {
	a := st.Analytics
	b := st.Benchmarks

	lines := []Line{
		{Text: fmt.Sprintf("Open rate: %s%s", FormatPct(a.OpenRate), DeltaIndicator(a.OpenRate, b.OpenRate))},
		{Text: fmt.Sprintf("Click rate: %s%s", FormatPct(a.ClickRate), DeltaIndicator(a.ClickRate, b.ClickRate))},
		{Text: fmt.Sprintf("Reply rate: %s%s", FormatPct(a.ReplyRate), DeltaIndicator(a.ReplyRate, b.ReplyRate))},
		{Text: fmt.Sprintf("Conversions this week: %d", a.Conversions)},
	}
	if len(a.ABTests) > 0 {
		lines = append(lines, Line{Text: "A/B tests:"})
		for _, test := range a.ABTests {
			lines = append(lines, Line{
				Text: fmt.Sprintf(" • %s winner: %s (+%s)",
					orPlaceholder(test.Name), orPlaceholder(test.Winner), FormatPct(test.Uplift)),
			})
		}
	}
	return &Panel{Title: "Analytics & A/B Tests", Border: AccentAmber, Lines: lines}
}

// SortActions returns the actions ordered by due date, soonest first.
// Items without a parseable due date sort after every dated item; the
// order among themselves is preserved.
func SortActions(actions []state.ActionItem) []state.ActionItem {
	sorted := make([]state.ActionItem, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, iok := ParseDate(sorted[i].Due)
		dj, jok := ParseDate(sorted[j].Due)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return di.Before(dj)
	})
	return sorted
}

// ActionsPanel builds the Today's Focus panel, due-soonest first.
// Items due today are flagged red, tomorrow yellow.
func ActionsPanel(st *state.State, now time.Time) *Panel {
	p := &Panel{Title: "Today's Focus", Border: AccentAmber}
	if len(st.Actions) == 0 {
		p.Lines = []Line{{Text: "You're all set for today."}}
		return p
	}

	today := now.Format(DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(DateLayout)
	for _, item := range SortActions(st.Actions) {
		title := item.Title
		if title == "" {
			title = "Untitled"
		}
		due := orPlaceholder(item.Due)
		color := "white"
		prefix := ""
		switch item.Due {
		case today:
			color, prefix = "red", "🔴 "
		case tomorrow:
			color, prefix = "yellow", "🟡 "
		}
		p.Lines = append(p.Lines, Line{
			Text:  fmt.Sprintf("%s• %s (due %s)", prefix, title, due),
			Color: color,
		})
	}
	return p
}

func statusCell(status string) Cell {
	if status == "" {
		status = "unknown"
	}
	return Cell{Text: TitleWord(status), Color: StatusColor(status)}
}
