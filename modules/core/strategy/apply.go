// Package strategy turns a marketing framework into concrete campaign
// records for a target segment.
package strategy

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"engagedeck/modules/core/state"
)

// OmniChannel is the sentinel channel value meaning "every channel".
// It is part of the persisted state contract, so it stays a plain
// string in the data; code should compare through IsOmni.
const OmniChannel = "All"

// IsOmni reports whether ch is the omnichannel sentinel.
func IsOmni(ch string) bool {
	return ch == OmniChannel
}

const fallbackChannel = "Email"

// pickChannel selects a concrete channel from a strategy's channel
// list. The first non-omni channel wins; a list of only omni markers
// keeps the marker; an empty list falls back to Email.
func pickChannel(channels []string) string {
	for _, ch := range channels {
		if !IsOmni(ch) {
			return ch
		}
	}
	if len(channels) > 0 {
		return channels[0]
	}
	return fallbackChannel
}

// Apply creates a campaign for the first step of the named strategy,
// targeted at the named segment, and appends it to st. The strategy
// may be addressed by short or full name. A strategy with no steps is
// a validation error and leaves st untouched.
func Apply(st *state.State, strategyName, segmentName string, now time.Time) (*state.Campaign, error) {
	strat := st.FindStrategy(strategyName)
	if strat == nil {
		return nil, state.NewNotFound("strategy", strategyName, st.StrategyNames())
	}

	if st.FindSegment(segmentName) == nil {
		return nil, state.NewNotFound("segment", segmentName, st.SegmentNames())
	}

	if len(strat.Steps) == 0 {
		return nil, fmt.Errorf("strategy %q has no steps to generate campaigns from", strat.Name)
	}

	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	campaign := state.Campaign{
		ID:       uuid.New().String(),
		Name:     fmt.Sprintf("%s: %s", strat.Name, strat.Steps[0]),
		Segment:  segmentName,
		Trigger:  fmt.Sprintf("Strategy: %s", strat.Name),
		Channel:  pickChannel(strat.Channels),
		Template: fmt.Sprintf("%s Template", strat.Name),
		Status:   "ready",
		NextSend: tomorrow,
	}

	st.Campaigns = append(st.Campaigns, campaign)
	return &st.Campaigns[len(st.Campaigns)-1], nil
}
