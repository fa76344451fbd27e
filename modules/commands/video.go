package commands

import (
	"context"
	"fmt"
	"time"

	"engagedeck/modules/core/video"
	"engagedeck/modules/platform/capabilities"
)

// videoCommand dispatches video sub-commands
func videoCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if len(args) == 0 {
		return fmt.Errorf("sub-command is required\nUsage: engagedeck video <generate|list> [flags]")
	}

	switch args[0] {
	case "generate":
		return videoGenerateCommand(args[1:])
	case "list":
		return videoListCommand(args[1:])
	default:
		return fmt.Errorf("unknown sub-command: %s", args[0])
	}
}

// videoGenerateCommand renders a clip from a template
func videoGenerateCommand(args []string) error {
	templateName := ""
	output := ""
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--template":
			if i+1 < len(args) {
				templateName = args[i+1]
				i++
			}
		case "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		}
	}
	if templateName == "" || output == "" {
		return fmt.Errorf("--template and --output are required\nUsage: engagedeck video generate --template <name> --output <path>")
	}

	caps := newCapabilityService()
	enc := video.NewFFmpegEncoder(caps.Path(capabilities.CapFFmpeg))
	if !enc.Available() {
		return fmt.Errorf("ffmpeg is not installed; run 'engagedeck doctor' for details")
	}

	ctx := GetContext()
	now := time.Now()
	st, err := ctx.Store.Load(now)
	if err != nil {
		return err
	}

	rec, err := video.Generate(context.Background(), st, enc, templateName, output, now)
	if err != nil {
		return err
	}
	if err := ctx.Store.Save(st); err != nil {
		return err
	}

	fmt.Printf("✓ Generated video from template '%s' to '%s' (%ds)\n", rec.Template, rec.OutputPath, rec.Duration)
	return nil
}

// videoListCommand prints generated video records
func videoListCommand(args []string) error {
	st, err := GetContext().Store.Load(time.Now())
	if err != nil {
		return err
	}

	if len(st.Videos) == 0 {
		fmt.Println("No videos generated yet.")
		return nil
	}
	for _, v := range st.Videos {
		fmt.Printf("  %-24s %4ds  %-8s %s\n", v.Template, v.Duration, v.Status, v.OutputPath)
	}
	return nil
}
