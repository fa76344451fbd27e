package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	uicore "engagedeck/modules/ui/core"
	"engagedeck/modules/ui/render"
	"engagedeck/modules/ui/tui"
)

// dashboardCommand renders the full dashboard once and exits
func dashboardCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	plain := false
	width, height := render.TerminalSize()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--plain":
			plain = true
		case "--width":
			if i+1 < len(args) {
				if w, err := strconv.Atoi(args[i+1]); err == nil && w > 0 {
					width = w
				}
				i++
			}
		}
	}

	now := time.Now()
	st, err := GetContext().Store.Load(now)
	if err != nil {
		return err
	}

	r := render.New(plain)
	fmt.Println(r.Render(uicore.Compose(st, now), width, height-1))
	return nil
}

// briefCommand prints the compact morning brief
func briefCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	now := time.Now()
	st, err := GetContext().Store.Load(now)
	if err != nil {
		return err
	}

	r := render.New(false)
	width, _ := render.TerminalSize()

	fmt.Println()
	for i, line := range uicore.Brief(st, now) {
		text := line.Text
		if !r.Plain {
			style := lipgloss.NewStyle().Bold(line.Bold)
			if line.Color != "" {
				style = style.Foreground(render.LineColor(line.Color))
			}
			text = style.Render(text)
		}
		// The banner and timestamp are centered, the rest left-aligned.
		if i < 2 {
			text = lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
		}
		fmt.Println(text)
	}
	return nil
}

// watchCommand runs the live dashboard until the user quits
func watchCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := GetContext()
	refreshMS := ctx.Config.Settings.RefreshRate

	for i := 0; i < len(args); i++ {
		if args[i] == "--refresh" && i+1 < len(args) {
			if ms, err := strconv.Atoi(args[i+1]); err == nil && ms >= 100 {
				refreshMS = ms
			}
			i++
		}
	}

	return tui.Run(ctx.Store, time.Duration(refreshMS)*time.Millisecond)
}

// snapshotCommand exports the dashboard as a single SVG
func snapshotCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := GetContext()
	output := ctx.Config.Settings.SnapshotPath

	for i := 0; i < len(args); i++ {
		if args[i] == "--output" && i+1 < len(args) {
			output = args[i+1]
			i++
		}
	}

	now := time.Now()
	st, err := ctx.Store.Load(now)
	if err != nil {
		return err
	}

	if err := render.ExportSnapshot(st, now, output); err != nil {
		return err
	}
	fmt.Printf("✓ Exported dashboard snapshot to %s\n", output)
	return nil
}

// cardsCommand exports per-panel SVG status cards
func cardsCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := GetContext()
	dir := ctx.Config.Settings.CardsDir

	for i := 0; i < len(args); i++ {
		if args[i] == "--dir" && i+1 < len(args) {
			dir = args[i+1]
			i++
		}
	}

	now := time.Now()
	st, err := ctx.Store.Load(now)
	if err != nil {
		return err
	}

	paths, err := render.ExportCards(st, now, dir)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Exported %d status cards to %s/\n", len(paths), dir)
	return nil
}
