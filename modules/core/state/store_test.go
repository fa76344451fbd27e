package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func TestLoadMissingFileResetsToSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStore(path)

	st, err := store.Load(testNow)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Campaigns) != 3 || len(st.Segments) != 3 || len(st.Strategies) != 4 {
		t.Errorf("sample shape wrong: %d campaigns, %d segments, %d strategies",
			len(st.Campaigns), len(st.Segments), len(st.Strategies))
	}

	// Reset also persists the sample.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file should exist after reset: %v", err)
	}
}

func TestLoadCorruptFileResetsToSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	st, err := NewStore(path).Load(testNow)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Profile.BusinessName != "Acme Components" {
		t.Errorf("expected sample profile, got %q", st.Profile.BusinessName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Error("state file should be valid JSON after recovery")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStore(path)

	original := Sample(testNow)
	original.Campaigns[0].Status = "paused"
	original.AutomationRules["SMB_CTO"] = RuleConfig{Segment: "Founders", Cadence: "0-1"}
	if err := store.Save(original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(testNow)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Error("round trip changed state")
	}
}

func TestLoadAbsentKeysYieldEmptyCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte(`{"profile":{"business_name":"Solo"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	st, err := NewStore(path).Load(testNow)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Profile.BusinessName != "Solo" {
		t.Errorf("profile = %q", st.Profile.BusinessName)
	}
	if len(st.Campaigns) != 0 || len(st.Segments) != 0 || len(st.AutomationRules) != 0 {
		t.Error("absent keys should load as empty collections")
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "state.json")
	if err := NewStore(path).Save(Sample(testNow)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file missing: %v", err)
	}
}

func TestConcurrentSaveLastWriterWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStore(path)

	a := Sample(testNow)
	a.Profile.Owner = "Writer A"
	b := Sample(testNow)
	b.Profile.Owner = "Writer B"

	if err := store.Save(a); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(b); err != nil {
		t.Fatal(err)
	}

	st, err := store.Load(testNow)
	if err != nil {
		t.Fatal(err)
	}
	if st.Profile.Owner != "Writer B" {
		t.Errorf("owner = %q, want last writer", st.Profile.Owner)
	}
}
