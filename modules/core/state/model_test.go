package state

import (
	"testing"
	"time"
)

func TestActiveConnectorsPrefersModernKey(t *testing.T) {
	st := Sample(time.Now())
	got := st.ActiveConnectors()
	if len(got) != 3 || got[0].Name != "HubSpot contacts" {
		t.Errorf("expected connectors key to win, got %+v", got)
	}

	st.Connectors = nil
	got = st.ActiveConnectors()
	if len(got) != 3 || got[0].Name != "CRM (HubSpot)" {
		t.Errorf("expected legacy integrations fallback, got %+v", got)
	}
}

func TestFindStrategyByShortAndFullName(t *testing.T) {
	st := Sample(time.Now())
	if s := st.FindStrategy("RACE"); s == nil || s.FullName != "Reach-Act-Convert-Engage" {
		t.Errorf("short name lookup failed: %+v", s)
	}
	if s := st.FindStrategy("7Ps Marketing Mix"); s == nil || s.Name != "7Ps" {
		t.Errorf("full name lookup failed: %+v", s)
	}
	if s := st.FindStrategy("nope"); s != nil {
		t.Errorf("unknown name should return nil, got %+v", s)
	}
}

func TestUpsertVideo(t *testing.T) {
	st := Sample(time.Now())
	count := len(st.Videos)

	replaced := st.UpsertVideo(Video{Template: "Welcome Series", OutputPath: "out/a.mp4", Duration: 10})
	if replaced || len(st.Videos) != count+1 {
		t.Fatalf("append: replaced=%v videos=%d", replaced, len(st.Videos))
	}

	st.Videos[count].ID = "vid-1"
	replaced = st.UpsertVideo(Video{Template: "Re-engagement", OutputPath: "out/a.mp4", Duration: 10})
	if !replaced || len(st.Videos) != count+1 {
		t.Fatalf("update: replaced=%v videos=%d", replaced, len(st.Videos))
	}
	if st.Videos[count].Template != "Re-engagement" {
		t.Errorf("template = %q", st.Videos[count].Template)
	}
	if st.Videos[count].ID != "vid-1" {
		t.Errorf("existing id should survive upsert, got %q", st.Videos[count].ID)
	}
}

func TestSampleDatesAnchorOnNow(t *testing.T) {
	now := time.Date(2027, 1, 31, 23, 0, 0, 0, time.UTC)
	st := Sample(now)

	if st.Actions[0].Due != "2027-01-31" {
		t.Errorf("today action due = %q", st.Actions[0].Due)
	}
	if st.Actions[1].Due != "2027-02-01" {
		t.Errorf("tomorrow action due = %q (month rollover)", st.Actions[1].Due)
	}
	if st.Campaigns[0].NextSend != "2027-02-01" {
		t.Errorf("scheduled campaign next_send = %q", st.Campaigns[0].NextSend)
	}
}
