package strategy

import (
	"errors"
	"strings"
	"testing"
	"time"

	"engagedeck/modules/core/state"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func TestApplyCreatesCampaignFromFirstStep(t *testing.T) {
	st := state.Sample(testNow)
	before := len(st.Campaigns)

	c, err := Apply(st, "ABM", "New Leads", testNow)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(st.Campaigns) != before+1 {
		t.Fatalf("campaigns = %d, want %d", len(st.Campaigns), before+1)
	}

	if c.Name != "ABM: Identify target accounts" {
		t.Errorf("name = %q", c.Name)
	}
	if c.Segment != "New Leads" {
		t.Errorf("segment = %q", c.Segment)
	}
	if c.Trigger != "Strategy: ABM" {
		t.Errorf("trigger = %q", c.Trigger)
	}
	if c.Channel != "Email" {
		t.Errorf("channel = %q, want first concrete channel Email", c.Channel)
	}
	if c.Template != "ABM Template" {
		t.Errorf("template = %q", c.Template)
	}
	if c.Status != "ready" {
		t.Errorf("status = %q", c.Status)
	}
	if c.NextSend != "2026-03-15" {
		t.Errorf("next_send = %q, want tomorrow", c.NextSend)
	}
	if c.ID == "" {
		t.Error("campaign should get an id")
	}
}

func TestApplyResolvesFullName(t *testing.T) {
	st := state.Sample(testNow)
	c, err := Apply(st, "Account-Based Marketing", "New Leads", testNow)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if c.Trigger != "Strategy: ABM" {
		t.Errorf("trigger = %q, want short name in trigger", c.Trigger)
	}
}

func TestApplyOmniOnlyChannelKeepsMarker(t *testing.T) {
	st := state.Sample(testNow)
	// 7Ps declares channels: ["All"].
	c, err := Apply(st, "7Ps", "Active Customers", testNow)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !IsOmni(c.Channel) {
		t.Errorf("channel = %q, want omni marker preserved", c.Channel)
	}
}

func TestApplyUnknownStrategy(t *testing.T) {
	st := state.Sample(testNow)
	before := len(st.Campaigns)

	_, err := Apply(st, "SWOT", "New Leads", testNow)
	var nf *state.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Kind != "strategy" {
		t.Errorf("kind = %q", nf.Kind)
	}
	if !strings.Contains(err.Error(), "ABM") {
		t.Errorf("error should list valid strategies: %v", err)
	}
	if len(st.Campaigns) != before {
		t.Error("failed apply must not mutate state")
	}
}

func TestApplyUnknownSegment(t *testing.T) {
	st := state.Sample(testNow)
	_, err := Apply(st, "ABM", "Churned", testNow)
	var nf *state.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Kind != "segment" {
		t.Errorf("kind = %q", nf.Kind)
	}
}

func TestApplyEmptyStepsIsError(t *testing.T) {
	st := state.Sample(testNow)
	st.Strategies = append(st.Strategies, state.Strategy{Name: "Empty", Channels: []string{"Email"}})
	before := len(st.Campaigns)

	_, err := Apply(st, "Empty", "New Leads", testNow)
	if err == nil {
		t.Fatal("want error for strategy without steps")
	}
	if len(st.Campaigns) != before {
		t.Error("no campaign should be created")
	}
}

func TestPickChannel(t *testing.T) {
	cases := []struct {
		channels []string
		want     string
	}{
		{[]string{"Email", "LinkedIn"}, "Email"},
		{[]string{"All", "Social"}, "Social"},
		{[]string{"All"}, "All"},
		{nil, "Email"},
	}
	for _, tc := range cases {
		if got := pickChannel(tc.channels); got != tc.want {
			t.Errorf("pickChannel(%v) = %q, want %q", tc.channels, got, tc.want)
		}
	}
}
