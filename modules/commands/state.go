package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"engagedeck/modules/platform/system"
)

// resetCommand replaces the state file with the sample record
func resetCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := GetContext()
	if _, err := ctx.Store.Reset(time.Now()); err != nil {
		return err
	}
	fmt.Printf("✓ Reset state to sample data (%s)\n", ctx.Store.Path())
	return nil
}

// doctorCommand reports tool availability, paths, and host resources
func doctorCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := GetContext()

	fmt.Println("Paths:")
	configPath := ctx.ConfigPath
	if configPath == "" {
		configPath = "(defaults, no file)"
	}
	fmt.Printf("  config: %s\n", configPath)
	fmt.Printf("  state:  %s (%s)\n", ctx.Store.Path(), stateWritability(ctx.Store.Path()))
	fmt.Println()

	fmt.Println("External tools:")
	caps := newCapabilityService()
	for _, line := range caps.Summary() {
		fmt.Printf("  %s\n", line)
	}
	if missing := caps.MissingSummary(); missing != "" {
		fmt.Printf("  (video generation needs: %s)\n", missing)
	}
	fmt.Println()

	m := system.Collect(filepath.Dir(ctx.Store.Path()))
	fmt.Println("Host:")
	fmt.Printf("  cpu:    %.1f%% of %d cores\n", m.CPUPercent, m.NumCPU)
	fmt.Printf("  memory: %.1f/%.1f GB (%.0f%%)\n", m.MemUsedGB, m.MemTotalGB, m.MemPercent)
	fmt.Printf("  load:   %.2f %.2f %.2f\n", m.LoadAvg1, m.LoadAvg5, m.LoadAvg15)
	fmt.Printf("  disk:   %.1f GB free of %.1f GB\n", m.DiskFreeGB, m.DiskTotalGB)
	return nil
}

// stateWritability probes whether the state file location accepts
// writes.
func stateWritability(path string) string {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "not writable"
	}
	probe := filepath.Join(dir, ".engagedeck_probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return "not writable"
	}
	os.Remove(probe)
	return "writable"
}
