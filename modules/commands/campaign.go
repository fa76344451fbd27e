package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"engagedeck/modules/core/state"
	"engagedeck/modules/core/strategy"
)

// campaignCommand dispatches campaign sub-commands
func campaignCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if len(args) == 0 {
		return fmt.Errorf("sub-command is required\nUsage: engagedeck campaign <add|list> [flags]")
	}

	switch args[0] {
	case "add":
		return campaignAddCommand(args[1:])
	case "list":
		return campaignListCommand(args[1:])
	default:
		return fmt.Errorf("unknown sub-command: %s", args[0])
	}
}

// campaignAddCommand appends a campaign to the state file
func campaignAddCommand(args []string) error {
	campaign := state.Campaign{
		ID:     uuid.New().String(),
		Status: "scheduled",
	}

	for i := 0; i < len(args); i++ {
		flag := args[i]
		if i+1 >= len(args) {
			break
		}
		value := args[i+1]
		switch flag {
		case "--name":
			campaign.Name = value
		case "--segment":
			campaign.Segment = value
		case "--trigger":
			campaign.Trigger = value
		case "--channel":
			campaign.Channel = value
		case "--template":
			campaign.Template = value
		case "--status":
			campaign.Status = value
		case "--next-send":
			campaign.NextSend = value
		default:
			continue
		}
		i++
	}

	if missing := missingCampaignFields(campaign); len(missing) > 0 {
		return fmt.Errorf("missing required flags: %s\nUsage: engagedeck campaign add --name <name> --segment <segment> --trigger <trigger> --channel <channel> --template <template> [flags]",
			strings.Join(missing, ", "))
	}
	if !validCampaignStatus(campaign.Status) {
		return fmt.Errorf("invalid status %q (valid: scheduled, ready, running, paused)", campaign.Status)
	}
	if campaign.NextSend == "" {
		campaign.NextSend = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", campaign.NextSend); err != nil {
		return fmt.Errorf("invalid --next-send %q, expected YYYY-MM-DD", campaign.NextSend)
	}

	ctx := GetContext()
	st, err := ctx.Store.Load(time.Now())
	if err != nil {
		return err
	}

	st.Campaigns = append(st.Campaigns, campaign)
	if err := ctx.Store.Save(st); err != nil {
		return err
	}

	fmt.Printf("✓ Added campaign %q (next send %s)\n", campaign.Name, campaign.NextSend)
	return nil
}

// missingCampaignFields lists the required campaign flags that are
// still unset, in flag order.
func missingCampaignFields(c state.Campaign) []string {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "--name")
	}
	if c.Segment == "" {
		missing = append(missing, "--segment")
	}
	if c.Trigger == "" {
		missing = append(missing, "--trigger")
	}
	if c.Channel == "" {
		missing = append(missing, "--channel")
	}
	if c.Template == "" {
		missing = append(missing, "--template")
	}
	return missing
}

// validCampaignStatus reports whether status is one a new campaign may
// carry.
func validCampaignStatus(status string) bool {
	switch status {
	case "scheduled", "ready", "running", "paused":
		return true
	}
	return false
}

// campaignListCommand prints campaigns, optionally as JSON
func campaignListCommand(args []string) error {
	asJSON := false
	for _, arg := range args {
		if arg == "--json" {
			asJSON = true
		}
	}

	st, err := GetContext().Store.Load(time.Now())
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(st.Campaigns, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal campaigns: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(st.Campaigns) == 0 {
		fmt.Println("No campaigns configured.")
		return nil
	}
	for _, c := range st.Campaigns {
		fmt.Printf("  %-28s %-18s %-10s next %s\n", c.Name, c.Segment, c.Status, c.NextSend)
	}
	return nil
}

// strategyCommand dispatches strategy sub-commands
func strategyCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if len(args) == 0 {
		return fmt.Errorf("sub-command is required\nUsage: engagedeck strategy <list|apply> [flags]")
	}

	switch args[0] {
	case "list":
		return strategyListCommand(args[1:])
	case "apply":
		return strategyApplyCommand(args[1:])
	default:
		return fmt.Errorf("unknown sub-command: %s", args[0])
	}
}

// strategyListCommand prints the available frameworks
func strategyListCommand(args []string) error {
	st, err := GetContext().Store.Load(time.Now())
	if err != nil {
		return err
	}

	for _, s := range st.Strategies {
		fmt.Printf("  %-6s %-35s %s\n", s.Name, s.FullName, s.Description)
	}
	return nil
}

// strategyApplyCommand generates campaigns from a strategy for a segment
func strategyApplyCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("strategy name is required\nUsage: engagedeck strategy apply <name> --segment <segment>")
	}

	strategyName := args[0]
	segmentName := ""
	for i := 1; i < len(args); i++ {
		if args[i] == "--segment" && i+1 < len(args) {
			segmentName = args[i+1]
			i++
		}
	}
	if segmentName == "" {
		return fmt.Errorf("--segment is required\nUsage: engagedeck strategy apply <name> --segment <segment>")
	}

	ctx := GetContext()
	now := time.Now()
	st, err := ctx.Store.Load(now)
	if err != nil {
		return err
	}

	campaign, err := strategy.Apply(st, strategyName, segmentName, now)
	if err != nil {
		return err
	}
	if err := ctx.Store.Save(st); err != nil {
		return err
	}

	applied := st.FindStrategy(strategyName)
	display := strategyName
	if applied != nil && applied.FullName != "" {
		display = applied.FullName
	}
	fmt.Printf("✓ Applied strategy '%s' to segment '%s'\n", display, segmentName)
	fmt.Printf("  Generated 1 campaign(s): %s\n", campaign.Name)
	return nil
}
