package plan

import (
	"sort"

	"engagedeck/modules/core/state"
)

// Rule pairs an automation rule's trigger keywords with its campaign
// configuration. Keeping both in one place avoids the keyword set and
// the config drifting apart when rules change.
type Rule struct {
	Name     string
	Keywords []string
	Config   state.RuleConfig
}

// builtinRules are the rules shipped with the tool. The persisted
// automation_rules map overrides a rule's config by name; keywords are
// always taken from here.
var builtinRules = []Rule{
	{
		Name:     "SMB_CTO",
		Keywords: []string{"smb", "cto", "tech lead", "technical", "small business", "medium business"},
		Config:   state.RuleConfig{Segment: "Tech Leads", Cadence: "0-3-7", Channel: "Email+LinkedIn"},
	},
	{
		Name:     "Enterprise",
		Keywords: []string{"enterprise", "vp", "sales", "large", "corporation"},
		Config:   state.RuleConfig{Segment: "VP Sales", Cadence: "0-5-14-30", ABTests: 3},
	},
	{
		Name:     "Demo_video",
		Keywords: []string{"demo", "video", "presentation", "recording", "mp4"},
		Config:   state.RuleConfig{Variants: 2, Length: 90, Format: "MP4 vertical"},
	},
}

// Rules returns the effective rule set: the built-in rules with their
// configs replaced by any same-named entry in overrides. Rules present
// only in overrides have no keywords and therefore never match; they
// are ignored.
func Rules(overrides map[string]state.RuleConfig) []Rule {
	rules := make([]Rule, len(builtinRules))
	copy(rules, builtinRules)
	for i := range rules {
		if cfg, ok := overrides[rules[i].Name]; ok {
			rules[i].Config = cfg
		}
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Name < rules[j].Name })
	return rules
}
