package state

// Profile identifies the business the dashboard belongs to.
type Profile struct {
	BusinessName string `json:"business_name,omitempty"`
	Owner        string `json:"owner,omitempty"`
}

// Segment is a named audience slice with qualifying criteria and
// nurture progress. Invariant: Nurtured <= Size.
type Segment struct {
	Name     string   `json:"name"`
	Criteria []string `json:"criteria,omitempty"`
	Size     int      `json:"size"`
	Nurtured int      `json:"nurtured"`
}

// Campaign is a scheduled or running outreach action tied to a segment,
// channel, and template. Status drives the display color; unknown
// statuses fall back to the neutral default.
type Campaign struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Segment  string `json:"segment,omitempty"`
	Trigger  string `json:"trigger,omitempty"`
	Channel  string `json:"channel,omitempty"`
	Template string `json:"template,omitempty"`
	Status   string `json:"status,omitempty"`
	NextSend string `json:"next_send,omitempty"` // YYYY-MM-DD
}

// Template is a reusable content asset.
type Template struct {
	Name        string `json:"name"`
	Medium      string `json:"medium,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
}

// QuickTemplate is a one-line canned message.
type QuickTemplate struct {
	Name    string `json:"name"`
	Copy    string `json:"copy,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// Strategy is a named marketing framework with ordered steps and
// applicable channels. Steps and Channels may be empty; consumers must
// degrade gracefully.
type Strategy struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name,omitempty"`
	Description     string   `json:"description,omitempty"`
	Steps           []string `json:"steps,omitempty"`
	Channels        []string `json:"channels,omitempty"` // may contain the "All" sentinel
	BestForSegments []string `json:"best_for_segments,omitempty"`
}

// Connector is an external system integration status record. Older
// state files track these under the legacy "integrations" key, whose
// entries have no last_sync.
type Connector struct {
	Name     string `json:"name"`
	Status   string `json:"status,omitempty"`
	LastSync string `json:"last_sync,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// BackendService is a monitored service row.
type BackendService struct {
	Service   string `json:"service"`
	Status    string `json:"status,omitempty"`
	LatencyMS int    `json:"latency_ms,omitempty"`
	ErrorRate string `json:"error_rate,omitempty"`
	Version   string `json:"version,omitempty"`
}

// Database is a monitored datastore row.
type Database struct {
	Name        string  `json:"name"`
	Role        string  `json:"role,omitempty"`
	Status      string  `json:"status,omitempty"`
	StorageGB   float64 `json:"storage_gb,omitempty"`
	Connections int     `json:"connections,omitempty"`
}

// FeedbackForm is a survey with a response count.
type FeedbackForm struct {
	Name      string `json:"name"`
	Question  string `json:"question,omitempty"`
	LastSent  string `json:"last_sent,omitempty"`
	Responses int    `json:"responses,omitempty"`
}

// ActionItem is a to-do with an optional due date. A missing or
// unparseable due date sorts after every dated item.
type ActionItem struct {
	Title string `json:"title"`
	Due   string `json:"due,omitempty"` // YYYY-MM-DD
	Owner string `json:"owner,omitempty"`
}

// ABTest is a completed experiment summary.
type ABTest struct {
	Name   string  `json:"name"`
	Winner string  `json:"winner,omitempty"`
	Uplift float64 `json:"uplift,omitempty"`
}

// Analytics holds the current engagement rates.
type Analytics struct {
	OpenRate    float64  `json:"open_rate,omitempty"`
	ClickRate   float64  `json:"click_rate,omitempty"`
	ReplyRate   float64  `json:"reply_rate,omitempty"`
	Conversions int      `json:"conversions,omitempty"`
	ABTests     []ABTest `json:"ab_tests,omitempty"`
}

// Benchmarks holds industry reference rates. A rate of zero means the
// benchmark is absent and no comparison is shown.
type Benchmarks struct {
	OpenRate  float64 `json:"open_rate,omitempty"`
	ClickRate float64 `json:"click_rate,omitempty"`
	ReplyRate float64 `json:"reply_rate,omitempty"`
	Industry  string  `json:"industry,omitempty"`
}

// Video is a generated clip record, keyed by output path.
type Video struct {
	ID         string `json:"id,omitempty"`
	Template   string `json:"template"`
	OutputPath string `json:"output_path"`
	Duration   int    `json:"duration,omitempty"` // seconds
	Status     string `json:"status,omitempty"`
	Generated  string `json:"generated,omitempty"` // YYYY-MM-DD
}

// RuleConfig is the persisted configuration of an automation rule.
// Keyword sets are not persisted; they live next to the built-in rule
// definitions in core/plan.
type RuleConfig struct {
	Segment  string `json:"segment,omitempty"`
	Cadence  string `json:"cadence,omitempty"`
	Channel  string `json:"channel,omitempty"`
	ABTests  int    `json:"ab_tests,omitempty"`
	Variants int    `json:"variants,omitempty"`
	Length   int    `json:"length,omitempty"` // seconds
	Format   string `json:"format,omitempty"`
}

// State is the full persisted record. Absent keys unmarshal to empty
// collections; nothing here is required to be present.
type State struct {
	Profile        Profile          `json:"profile,omitempty"`
	Segments       []Segment        `json:"segments,omitempty"`
	Campaigns      []Campaign       `json:"campaigns,omitempty"`
	Templates      []Template       `json:"templates,omitempty"`
	QuickTemplates []QuickTemplate  `json:"quick_templates,omitempty"`
	Benchmarks     Benchmarks       `json:"benchmarks,omitempty"`
	// Integrations is the legacy key older state files used before
	// "connectors" existed; both are preserved on save.
	Integrations    []Connector           `json:"integrations,omitempty"`
	Connectors      []Connector           `json:"connectors,omitempty"`
	Backend         []BackendService      `json:"backend,omitempty"`
	Databases       []Database            `json:"databases,omitempty"`
	Analytics       Analytics             `json:"analytics,omitempty"`
	Feedback        []FeedbackForm        `json:"feedback,omitempty"`
	Actions         []ActionItem          `json:"actions,omitempty"`
	Strategies      []Strategy            `json:"strategies,omitempty"`
	Videos          []Video               `json:"videos,omitempty"`
	AutomationRules map[string]RuleConfig `json:"automation_rules,omitempty"`
}

// ActiveConnectors resolves the connector collection, preferring the
// modern key and falling back to the legacy integrations key.
func (s *State) ActiveConnectors() []Connector {
	if s.Connectors != nil {
		return s.Connectors
	}
	return s.Integrations
}

// FindStrategy looks a strategy up by short name or full name.
func (s *State) FindStrategy(name string) *Strategy {
	for i := range s.Strategies {
		if s.Strategies[i].Name == name || s.Strategies[i].FullName == name {
			return &s.Strategies[i]
		}
	}
	return nil
}

// FindSegment looks a segment up by name.
func (s *State) FindSegment(name string) *Segment {
	for i := range s.Segments {
		if s.Segments[i].Name == name {
			return &s.Segments[i]
		}
	}
	return nil
}

// FindTemplate looks a template up by name.
func (s *State) FindTemplate(name string) *Template {
	for i := range s.Templates {
		if s.Templates[i].Name == name {
			return &s.Templates[i]
		}
	}
	return nil
}

// StrategyNames returns the short names of all strategies, in order.
func (s *State) StrategyNames() []string {
	names := make([]string, 0, len(s.Strategies))
	for _, st := range s.Strategies {
		names = append(names, st.Name)
	}
	return names
}

// SegmentNames returns all segment names, in order.
func (s *State) SegmentNames() []string {
	names := make([]string, 0, len(s.Segments))
	for _, seg := range s.Segments {
		names = append(names, seg.Name)
	}
	return names
}

// TemplateNames returns all template names, in order.
func (s *State) TemplateNames() []string {
	names := make([]string, 0, len(s.Templates))
	for _, t := range s.Templates {
		names = append(names, t.Name)
	}
	return names
}

// UpsertVideo updates the video record with the same output path in
// place, or appends a new one. Returns true when an existing record was
// replaced.
func (s *State) UpsertVideo(v Video) bool {
	for i := range s.Videos {
		if s.Videos[i].OutputPath == v.OutputPath {
			if v.ID == "" {
				v.ID = s.Videos[i].ID
			}
			s.Videos[i] = v
			return true
		}
	}
	s.Videos = append(s.Videos, v)
	return false
}
