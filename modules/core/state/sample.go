package state

import "time"

const dateLayout = "2006-01-02"

// Sample returns the canned demo record the tool falls back to when no
// state file exists or the existing one cannot be parsed. Relative
// dates are anchored on now.
func Sample(now time.Time) *State {
	today := now.Format(dateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(dateLayout)

	return &State{
		Profile: Profile{BusinessName: "Acme Components", Owner: "You"},
		Segments: []Segment{
			{
				Name:     "New Leads",
				Criteria: []string{"Created < 30 days", "Matches ICP industries"},
				Size:     34,
				Nurtured: 23,
			},
			{
				Name:     "Active Customers",
				Criteria: []string{"Touched product in last 14 days"},
				Size:     18,
				Nurtured: 15,
			},
			{
				Name:     "Dormant Accounts",
				Criteria: []string{"No activity > 30 days"},
				Size:     12,
				Nurtured: 5,
			},
		},
		Campaigns: []Campaign{
			{
				Name:     "Onboarding Drip",
				Segment:  "New Leads",
				Trigger:  "Sign-up form",
				Channel:  "Email",
				Template: "Welcome Series",
				Status:   "scheduled",
				NextSend: tomorrow,
			},
			{
				Name:     "Win-back Sequence",
				Segment:  "Dormant Accounts",
				Trigger:  "Inactivity 30d",
				Channel:  "Email",
				Template: "Re-engagement",
				Status:   "ready",
				NextSend: tomorrow,
			},
			{
				Name:     "Post-demo Follow-up",
				Segment:  "Active Customers",
				Trigger:  "Demo completed",
				Channel:  "Email + Call task",
				Template: "Demo Recap",
				Status:   "running",
				NextSend: today,
			},
		},
		Templates: []Template{
			{Name: "Welcome Series", Medium: "Email", Purpose: "Onboarding", LastUpdated: today},
			{Name: "Re-engagement", Medium: "Email", Purpose: "Win-back", LastUpdated: today},
			{Name: "Product Tour Deck", Medium: "Presentation", Purpose: "Sales enablement", LastUpdated: today},
		},
		QuickTemplates: []QuickTemplate{
			{Name: "Demo Follow-up", Copy: "Thanks for the demo! Here's what we discussed...", Purpose: "Post-demo nurture"},
			{Name: "Quarterly Business Review", Copy: "Let's review your progress this quarter...", Purpose: "Customer success"},
			{Name: "Feature Announcement", Copy: "We've just launched a new feature...", Purpose: "Product updates"},
			{Name: "Case Study Request", Copy: "Your success story would inspire others...", Purpose: "Social proof"},
			{Name: "Renewal Reminder", Copy: "Your subscription renews soon...", Purpose: "Retention"},
			{Name: "Webinar Invitation", Copy: "Join us for an exclusive webinar...", Purpose: "Education"},
			{Name: "Free Trial Ending", Copy: "Your trial ends in 3 days...", Purpose: "Conversion"},
			{Name: "Welcome to Beta", Copy: "You're in! Here's how to get started...", Purpose: "Beta onboarding"},
			{Name: "Referral Request", Copy: "Know someone who'd benefit?", Purpose: "Growth"},
			{Name: "Survey Request", Copy: "Help us improve with 2 quick questions...", Purpose: "Feedback"},
			{Name: "Holiday Greeting", Copy: "Happy holidays from our team...", Purpose: "Relationship building"},
			{Name: "Product Update Digest", Copy: "Here's what's new this month...", Purpose: "Engagement"},
		},
		Benchmarks: Benchmarks{
			OpenRate:  0.28,
			ClickRate: 0.15,
			ReplyRate: 0.10,
			Industry:  "B2B SaaS",
		},
		Integrations: []Connector{
			{Name: "CRM (HubSpot)", Status: "connected", Detail: "API token valid"},
			{Name: "Email (SendGrid)", Status: "connected", Detail: "Sender verified"},
			{Name: "Social (LinkedIn)", Status: "pending", Detail: "OAuth to finish"},
		},
		Connectors: []Connector{
			{Name: "HubSpot contacts", Status: "connected", LastSync: today, Detail: "Contacts + deals"},
			{Name: "LinkedIn Ads", Status: "pending", LastSync: "—", Detail: "Finish OAuth to pull audiences"},
			{Name: "SendGrid events", Status: "connected", LastSync: today, Detail: "Bounces + clicks ingested"},
		},
		Backend: []BackendService{
			{Service: "Engagement API", Status: "healthy", LatencyMS: 180, ErrorRate: "0.2%", Version: "v1.4.2"},
			{Service: "Automation Worker", Status: "degraded", LatencyMS: 420, ErrorRate: "1.1%", Version: "v1.3.9"},
		},
		Databases: []Database{
			{Name: "Postgres", Role: "Primary", Status: "healthy", StorageGB: 12.4, Connections: 58},
			{Name: "Redis", Role: "Cache", Status: "healthy", StorageGB: 1.1, Connections: 14},
		},
		Analytics: Analytics{
			OpenRate:    0.46,
			ClickRate:   0.23,
			ReplyRate:   0.14,
			Conversions: 5,
			ABTests: []ABTest{
				{Name: "CTA copy", Winner: "Book a call", Uplift: 0.12},
				{Name: "Send time", Winner: "09:00", Uplift: 0.08},
			},
		},
		Feedback: []FeedbackForm{
			{Name: "Post-demo pulse", Question: "How clear was the value prop?", LastSent: today, Responses: 12},
			{Name: "Onboarding check-in", Question: "Did you activate the core workflow?", LastSent: today, Responses: 8},
		},
		Actions: []ActionItem{
			{Title: "A/B test CTA for New Leads", Due: today, Owner: "You"},
			{Title: "Send nurture to Dormant Accounts", Due: tomorrow, Owner: "You"},
			{Title: "Sync CRM deal stages", Due: tomorrow, Owner: "You"},
		},
		Strategies: []Strategy{
			{
				Name:            "ABM",
				FullName:        "Account-Based Marketing",
				Description:     "Target high-value accounts with personalized campaigns",
				Steps:           []string{"Identify target accounts", "Personalize content", "Multi-channel outreach", "Measure engagement"},
				Channels:        []string{"Email", "LinkedIn", "Call"},
				BestForSegments: []string{"New Leads", "Active Customers"},
			},
			{
				Name:            "AIDA",
				FullName:        "Attention-Interest-Desire-Action",
				Description:     "Classic content funnel framework",
				Steps:           []string{"Grab attention", "Build interest", "Create desire", "Drive action"},
				Channels:        []string{"Email", "Social", "Ads"},
				BestForSegments: []string{"All"},
			},
			{
				Name:            "RACE",
				FullName:        "Reach-Act-Convert-Engage",
				Description:     "Omnichannel planning framework",
				Steps:           []string{"Reach new audience", "Act/Interact", "Convert to leads", "Engage long-term"},
				Channels:        []string{"Social", "Email", "Website"},
				BestForSegments: []string{"New Leads", "Dormant Accounts"},
			},
			{
				Name:            "7Ps",
				FullName:        "7Ps Marketing Mix",
				Description:     "Holistic B2B planning framework",
				Steps:           []string{"Product", "Price", "Place", "Promotion", "People", "Process", "Physical Evidence"},
				Channels:        []string{"All"},
				BestForSegments: []string{"Active Customers"},
			},
		},
		Videos: []Video{
			{
				Template:   "Product Tour Deck",
				OutputPath: "data/videos/product_tour.mp4",
				Duration:   45,
				Status:     "ready",
				Generated:  "2025-12-20",
			},
		},
		AutomationRules: map[string]RuleConfig{
			"SMB_CTO":    {Segment: "Tech Leads", Cadence: "0-3-7", Channel: "Email+LinkedIn"},
			"Enterprise": {Segment: "VP Sales", Cadence: "0-5-14-30", ABTests: 3},
			"Demo_video": {Variants: 2, Length: 90, Format: "MP4 vertical"},
		},
	}
}
