package commands

import (
	"engagedeck/modules/core/state"
	"engagedeck/modules/platform/capabilities"
	"engagedeck/modules/platform/config"
)

// AppContext holds application-wide context
type AppContext struct {
	Config     *config.Config
	ConfigPath string
	Store      *state.Store
}

var globalContext *AppContext

// InitContext initializes the application context
func InitContext() error {
	if globalContext != nil {
		return nil
	}

	cfg := config.GetGlobal()
	configPath := config.GetGlobalPath()

	globalContext = &AppContext{
		Config:     cfg,
		ConfigPath: configPath,
		Store:      state.NewStore(cfg.Settings.DataPath),
	}

	return nil
}

// GetContext returns the global application context
func GetContext() *AppContext {
	return globalContext
}

// newCapabilityService builds a capability detector honoring any
// configured executable paths.
func newCapabilityService() *capabilities.Service {
	cfg := config.GetGlobal()
	if cfg.Settings == nil || cfg.Settings.Executables == nil {
		return capabilities.NewService()
	}
	return capabilities.NewServiceWithConfig(&capabilities.ConfiguredPaths{
		FFmpeg:  cfg.Settings.Executables.FFmpeg,
		FFprobe: cfg.Settings.Executables.FFprobe,
	})
}

// registerDashboardCommands registers dashboard rendering commands
func registerDashboardCommands() {
	RegisterCommand(&Command{
		Name:        "dashboard",
		Aliases:     []string{"dash"},
		Category:    "Dashboard",
		Description: "Render the full engagement dashboard",
		Usage:       "engagedeck dashboard [--plain] [--width <cols>]",
		Examples: []string{
			"engagedeck dashboard",
			"engagedeck dashboard --plain",
			"engagedeck dash --width 160",
		},
		Handler: dashboardCommand,
		Order:   10,
	})

	RegisterCommand(&Command{
		Name:        "brief",
		Category:    "Dashboard",
		Description: "Show the compact morning brief",
		Usage:       "engagedeck brief",
		Examples: []string{
			"engagedeck brief",
		},
		Handler: briefCommand,
		Order:   11,
	})

	RegisterCommand(&Command{
		Name:        "watch",
		Aliases:     []string{"w"},
		Category:    "Dashboard",
		Description: "Live dashboard that refreshes as state changes",
		Usage:       "engagedeck watch [--refresh <ms>]",
		Examples: []string{
			"engagedeck watch",
			"engagedeck watch --refresh 2000",
		},
		Handler: watchCommand,
		Order:   12,
	})

	RegisterCommand(&Command{
		Name:        "snapshot",
		Category:    "Dashboard",
		Description: "Export the dashboard as an SVG snapshot",
		Usage:       "engagedeck snapshot [--output <path>]",
		Examples: []string{
			"engagedeck snapshot",
			"engagedeck snapshot --output docs/dashboard.svg",
		},
		Handler: snapshotCommand,
		Order:   13,
	})

	RegisterCommand(&Command{
		Name:        "cards",
		Category:    "Dashboard",
		Description: "Export individual SVG status cards",
		Usage:       "engagedeck cards [--dir <path>]",
		Examples: []string{
			"engagedeck cards",
			"engagedeck cards --dir docs",
		},
		Handler: cardsCommand,
		Order:   14,
	})
}

// registerCampaignCommands registers campaign and strategy commands
func registerCampaignCommands() {
	RegisterCommand(&Command{
		Name:        "campaign",
		Aliases:     []string{"camp"},
		Category:    "Campaigns",
		Description: "Manage outreach campaigns",
		Usage:       "engagedeck campaign <subcommand> [flags]",
		SubCommands: []SubCommand{
			{Name: "add", Description: "Add a campaign"},
			{Name: "list", Description: "List campaigns"},
		},
		Examples: []string{
			"engagedeck campaign add --name 'Q2 Push' --segment 'New Leads'",
			"engagedeck campaign list --json",
		},
		Handler: campaignCommand,
		Order:   20,
	})

	RegisterCommand(&Command{
		Name:        "strategy",
		Aliases:     []string{"strat"},
		Category:    "Campaigns",
		Description: "Apply marketing frameworks to segments",
		Usage:       "engagedeck strategy <subcommand> [flags]",
		SubCommands: []SubCommand{
			{Name: "list", Description: "List available strategies"},
			{Name: "apply", Description: "Generate campaigns from a strategy"},
		},
		Examples: []string{
			"engagedeck strategy list",
			"engagedeck strategy apply ABM --segment 'New Leads'",
		},
		Handler: strategyCommand,
		Order:   21,
	})
}

// registerCreativeCommands registers creative mode commands
func registerCreativeCommands() {
	RegisterCommand(&Command{
		Name:        "creative",
		Category:    "Creative",
		Description: "Plan a campaign from a creative idea",
		Usage:       "engagedeck creative [idea...]",
		Examples: []string{
			"engagedeck creative",
			"engagedeck creative demo video for the CTO",
		},
		Handler: creativeCommand,
		Order:   30,
	})

	RegisterCommand(&Command{
		Name:        "video",
		Category:    "Creative",
		Description: "Generate marketing video clips",
		Usage:       "engagedeck video generate --template <name> --output <path>",
		SubCommands: []SubCommand{
			{Name: "generate", Description: "Render a clip from a template"},
			{Name: "list", Description: "List generated videos"},
		},
		Examples: []string{
			"engagedeck video generate --template 'Welcome Series' --output data/videos/welcome.mp4",
			"engagedeck video list",
		},
		Handler: videoCommand,
		Order:   31,
	})
}

// registerDataCommands registers state management commands
func registerDataCommands() {
	RegisterCommand(&Command{
		Name:        "reset",
		Category:    "Data",
		Description: "Replace the state file with sample data",
		Usage:       "engagedeck reset",
		Examples: []string{
			"engagedeck reset",
		},
		Handler: resetCommand,
		Order:   40,
	})

	RegisterCommand(&Command{
		Name:        "doctor",
		Category:    "Data",
		Description: "Check external tools, config, and host resources",
		Usage:       "engagedeck doctor",
		Examples: []string{
			"engagedeck doctor",
		},
		Handler: doctorCommand,
		Order:   41,
	})
}

// registerInterfaceCommands registers interactive surfaces
func registerInterfaceCommands() {
	RegisterCommand(&Command{
		Name:        "shell",
		Aliases:     []string{"sh"},
		Category:    "Interface",
		Description: "Start interactive shell",
		Usage:       "engagedeck shell",
		Examples: []string{
			"engagedeck shell",
			"engagedeck sh",
		},
		Handler: shellCommand,
		Order:   50,
	})
}
