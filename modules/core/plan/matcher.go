package plan

import (
	"fmt"
	"strings"

	"engagedeck/modules/core/state"
)

// Defaults used when no rule matches or a matched rule leaves a field
// unset.
const (
	DefaultPhrase  = "General campaign"
	defaultSegment = "General Audience"
	defaultCadence = "0-7"
	defaultChannel = "Email"
)

// AutoPlan is the campaign configuration derived from a creative idea.
type AutoPlan struct {
	Phrase      string   `json:"phrase"`
	RuleMatched string   `json:"rule_matched"`
	Segment     string   `json:"segment"`
	Cadence     string   `json:"cadence"`
	Channel     string   `json:"channel"`
	Variants    int      `json:"variants"`
	ABTests     int      `json:"ab_tests,omitempty"`
	Length      int      `json:"length,omitempty"` // seconds
	Format      string   `json:"format,omitempty"`
	AutoHandled []string `json:"auto_handled"`
}

// Match scores the phrase against every rule's keywords and returns the
// plan built from the best-scoring rule's config. Scoring is
// case-insensitive substring containment, one point per keyword. Rules
// scoring zero are out; ties break to the lexicographically smallest
// rule name so the result is deterministic. An empty or all-whitespace
// phrase is replaced by DefaultPhrase, and no match at all yields the
// default plan.
func Match(phrase string, overrides map[string]state.RuleConfig) AutoPlan {
	if strings.TrimSpace(phrase) == "" {
		phrase = DefaultPhrase
	}
	lower := strings.ToLower(phrase)

	// Rules come back sorted by name, so replacing only on a strictly
	// higher score makes ties resolve to the smallest name.
	rules := Rules(overrides)
	var best *Rule
	bestScore := 0
	for i := range rules {
		score := 0
		for _, kw := range rules[i].Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = &rules[i]
			bestScore = score
		}
	}

	if best == nil {
		return AutoPlan{
			Phrase:      phrase,
			RuleMatched: "Default",
			Segment:     defaultSegment,
			Cadence:     defaultCadence,
			Channel:     defaultChannel,
			Variants:    1,
			AutoHandled: []string{"Segment selection", "Basic scheduling"},
		}
	}

	cfg := best.Config
	p := AutoPlan{
		Phrase:      phrase,
		RuleMatched: best.Name,
		Segment:     cfg.Segment,
		Cadence:     cfg.Cadence,
		Channel:     cfg.Channel,
		Variants:    cfg.Variants,
		ABTests:     cfg.ABTests,
		Length:      cfg.Length,
		Format:      cfg.Format,
	}
	if p.Segment == "" {
		p.Segment = defaultSegment
	}
	if p.Cadence == "" {
		p.Cadence = defaultCadence
	}
	if p.Channel == "" {
		p.Channel = defaultChannel
	}
	if p.Variants == 0 {
		p.Variants = 1
	}
	p.AutoHandled = autoHandled(p)
	return p
}

// autoHandled lists the fields the plan configured automatically, in a
// fixed display order. Zero values are skipped.
func autoHandled(p AutoPlan) []string {
	type field struct {
		label  string
		value  string
		suffix string
	}
	fields := []field{
		{"Segment", p.Segment, ""},
		{"Cadence", p.Cadence, ""},
		{"Channel", p.Channel, ""},
		{"A/B tests", intOrEmpty(p.ABTests), " variants"},
		{"Creative variants", intOrEmpty(p.Variants), ""},
		{"Video length", intOrEmpty(p.Length), "s"},
		{"Format", p.Format, ""},
	}

	var handled []string
	for _, f := range fields {
		if f.value != "" {
			handled = append(handled, fmt.Sprintf("%s: %s%s", f.label, f.value, f.suffix))
		}
	}
	return handled
}

func intOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}
