package core

import (
	"fmt"
	"time"

	"engagedeck/modules/core/plan"
	"engagedeck/modules/core/state"
)

// Compose assembles the full dashboard tree. The topology is fixed:
//
//	header (3 rows)
//	quick actions (1 row)
//	body (flex)
//	  left:  campaigns / segments
//	  right: templates / videos / (strategies | analytics)
//	footer (6 rows)
//	  top:    connectors | backend | databases
//	  bottom: feedback | actions
func Compose(st *state.State, now time.Time) *Node {
	return &Node{
		Name: "root",
		Children: []*Node{
			{Name: "header", Size: 3, Panel: Header(st, now)},
			{Name: "quick_actions", Size: 1, Text: QuickActions()},
			{
				Name: "body",
				Row:  true,
				Children: []*Node{
					{
						Name: "left",
						Children: []*Node{
							{Name: "campaigns", Table: CampaignTable(st)},
							{Name: "segments", Table: SegmentTable(st)},
						},
					},
					{
						Name: "right",
						Children: []*Node{
							{Name: "templates", Table: TemplateTable(st)},
							{Name: "videos", Table: VideoTable(st)},
							{
								Name: "strategies_analytics",
								Row:  true,
								Children: []*Node{
									{Name: "strategies", Table: StrategyTable(st)},
									{Name: "analytics", Panel: AnalyticsPanel(st)},
								},
							},
						},
					},
				},
			},
			{
				Name: "footer",
				Size: 6,
				Children: []*Node{
					{
						Name: "footer_top",
						Row:  true,
						Children: []*Node{
							{Name: "connectors", Table: ConnectorTable(st)},
							{Name: "backend", Table: BackendTable(st)},
							{Name: "databases", Table: DatabaseTable(st)},
						},
					},
					{
						Name: "footer_bottom",
						Row:  true,
						Children: []*Node{
							{Name: "feedback", Table: FeedbackTable(st)},
							{Name: "actions", Panel: ActionsPanel(st, now)},
						},
					},
				},
			},
		},
	}
}

// ComposeCreativeStudio assembles the creative mode view: a 70/30
// split of the editable studio outline and the auto-configured plan.
func ComposeCreativeStudio(idea string, p plan.AutoPlan) *Node {
	studio := &Panel{
		Title:  "Creation Studio",
		Border: AccentCyan,
		Lines: []Line{
			{Text: "Your Creative Idea:", Color: "cyan", Bold: true},
			{Text: "  " + idea},
			{},
			{Text: "Script (editable):", Color: "green", Bold: true},
			{Text: "  → Opening hook: Grab attention in first 3 seconds"},
			{Text: "  → Problem statement: What pain point are we solving?"},
			{Text: "  → Solution demo: Show the product in action"},
			{Text: "  → Call to action: Book a demo / Start trial"},
			{},
			{Text: "Thumbnails:", Color: "purple", Bold: true},
			{Text: "  [Thumbnail A] Bold text with product screenshot"},
			{Text: "  [Thumbnail B] Face + emotion-driven design"},
			{},
			{Text: "Voiceover:", Color: "amber", Bold: true},
			{Text: "  Professional voice (auto-generated available)"},
			{},
			{Text: "Actions:", Color: "green", Bold: true},
			{Text: "  [Launch] Deploy campaign (segments, timing, syncs handled)"},
			{Text: "  [Preview] See how it looks across channels"},
			{Text: "  [Edit] Modify script, thumbnails, or voiceover"},
		},
	}

	auto := &Panel{
		Title:  "Auto-magic Status",
		Border: AccentAmber,
		Lines: []Line{
			{Text: "Rule Matched:", Color: "purple", Bold: true},
			{Text: "  " + p.RuleMatched},
			{},
			{Text: "Auto-handled:", Color: "green", Bold: true},
		},
	}
	if len(p.AutoHandled) > 0 {
		for _, item := range p.AutoHandled {
			auto.Lines = append(auto.Lines, Line{Text: "  ✓ " + item})
		}
	} else {
		auto.Lines = append(auto.Lines, Line{Text: "  (none)"})
	}
	auto.Lines = append(auto.Lines,
		Line{},
		Line{Text: "Status:", Color: "amber", Bold: true},
		Line{Text: "  ✓ Segments configured"},
		Line{Text: "  ✓ Scheduling ready"},
		Line{Text: "  ✓ Syncs prepared"},
		Line{Text: "  → Ready to launch!"},
	)

	return &Node{
		Name: "creative",
		Children: []*Node{
			{
				Name: "creative_header",
				Size: 3,
				Panel: &Panel{
					Border: AccentAmber,
					Center: true,
					Lines:  []Line{{Text: "✦ Creative Mode • Easy Campaign Creation", Bold: true}},
				},
			},
			{
				Name: "creative_body",
				Row:  true,
				Children: []*Node{
					{Name: "studio", Ratio: 70, Panel: studio},
					{Name: "automagic", Ratio: 30, Panel: auto},
				},
			},
		},
	}
}

// Brief builds the compact morning brief as an ordered line sequence:
// banner, up to three due-soonest actions, then the top metrics.
func Brief(st *state.State, now time.Time) []Line {
	business := st.Profile.BusinessName
	if business == "" {
		business = fallbackBusinessName
	}

	lines := []Line{
		{Text: fmt.Sprintf("✦ %s - Morning Brief", business), Color: "cyan", Bold: true},
		{Text: now.Format(BriefTimeLayout), Color: "muted"},
		{},
		{Text: "Today's Focus:", Color: "yellow", Bold: true},
	}

	if len(st.Actions) == 0 {
		lines = append(lines, Line{Text: "  ✓ You're all set for today!"})
	} else {
		today := now.Format(DateLayout)
		sorted := SortActions(st.Actions)
		if len(sorted) > 3 {
			sorted = sorted[:3]
		}
		for _, item := range sorted {
			title := item.Title
			if title == "" {
				title = "Untitled"
			}
			marker := "•"
			if item.Due == today {
				marker = "🔴"
			}
			lines = append(lines, Line{Text: fmt.Sprintf("  %s %s", marker, title)})
		}
	}

	a := st.Analytics
	b := st.Benchmarks
	lines = append(lines,
		Line{},
		Line{Text: "Top Metrics:", Color: "green", Bold: true},
		Line{Text: fmt.Sprintf("  📧 Open rate: %s%s", FormatPct(a.OpenRate), DeltaIndicator(a.OpenRate, b.OpenRate))},
		Line{Text: fmt.Sprintf("  👆 Click rate: %s%s", FormatPct(a.ClickRate), DeltaIndicator(a.ClickRate, b.ClickRate))},
		Line{Text: fmt.Sprintf("  🎯 Conversions this week: %d", a.Conversions)},
	)
	return lines
}
