package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"engagedeck/modules/core/state"
)

// testStore points the global context at a fresh temp state file.
func testStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	globalContext = &AppContext{Store: state.NewStore(path)}
	t.Cleanup(func() { globalContext = nil })
	return path
}

func TestCampaignAddRequiresAllFields(t *testing.T) {
	path := testStore(t)

	err := campaignAddCommand([]string{"--name", "Orphan"})
	if err == nil {
		t.Fatal("expected an error for an incomplete campaign")
	}

	// The first line names every missing flag and only those.
	firstLine := strings.SplitN(err.Error(), "\n", 2)[0]
	for _, flag := range []string{"--segment", "--trigger", "--channel", "--template"} {
		if !strings.Contains(firstLine, flag) {
			t.Errorf("error should name %s: %q", flag, firstLine)
		}
	}
	if strings.Contains(firstLine, "--name") {
		t.Errorf("--name was provided and must not be listed: %q", firstLine)
	}

	// Validation failure must not touch the store.
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("state file written despite validation failure")
	}
}

func TestCampaignAddListsEveryMissingFlag(t *testing.T) {
	testStore(t)

	err := campaignAddCommand(nil)
	if err == nil {
		t.Fatal("expected an error with no flags at all")
	}
	firstLine := strings.SplitN(err.Error(), "\n", 2)[0]
	for _, flag := range []string{"--name", "--segment", "--trigger", "--channel", "--template"} {
		if !strings.Contains(firstLine, flag) {
			t.Errorf("error should name %s: %q", flag, firstLine)
		}
	}
}

func TestCampaignAddPersistsCompleteCampaign(t *testing.T) {
	path := testStore(t)

	err := campaignAddCommand([]string{
		"--name", "Q2 Push",
		"--segment", "New Leads",
		"--trigger", "Manual",
		"--channel", "Email",
		"--template", "Welcome Series",
	})
	if err != nil {
		t.Fatalf("campaignAddCommand: %v", err)
	}

	st, err := state.NewStore(path).Load(time.Now())
	if err != nil {
		t.Fatal(err)
	}
	var added *state.Campaign
	for i := range st.Campaigns {
		if st.Campaigns[i].Name == "Q2 Push" {
			added = &st.Campaigns[i]
		}
	}
	if added == nil {
		t.Fatal("campaign not persisted")
	}
	if added.Status != "scheduled" {
		t.Errorf("status = %q, want scheduled default", added.Status)
	}
	if added.NextSend == "" || added.ID == "" {
		t.Errorf("next send/id not defaulted: %+v", added)
	}
}

func TestCampaignAddRejectsUnknownStatus(t *testing.T) {
	path := testStore(t)

	err := campaignAddCommand([]string{
		"--name", "Bad", "--segment", "s", "--trigger", "t",
		"--channel", "c", "--template", "tpl", "--status", "exploded",
	})
	if err == nil || !strings.Contains(err.Error(), "invalid status") {
		t.Fatalf("err = %v, want invalid status", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("state file written despite invalid status")
	}
}
