// Package video produces short title-card clips from templates.
package video

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Clip describes the rendered output.
const (
	ClipDurationSeconds = 10
	ClipWidth           = 1280
	ClipHeight          = 720
	ClipFPS             = 24
)

// Encoder renders a title-card clip to a file. The command layer uses
// the ffmpeg implementation; tests substitute a fake.
type Encoder interface {
	Encode(ctx context.Context, title, outputPath string) error
	Available() bool
}

// FFmpegEncoder renders clips by shelling out to ffmpeg.
type FFmpegEncoder struct {
	// Path is the ffmpeg executable. Empty means look it up on PATH.
	Path string
}

// NewFFmpegEncoder creates an encoder using the given ffmpeg path, or
// PATH lookup when empty.
func NewFFmpegEncoder(path string) *FFmpegEncoder {
	return &FFmpegEncoder{Path: path}
}

func (e *FFmpegEncoder) executable() (string, error) {
	if e.Path != "" {
		return e.Path, nil
	}
	return exec.LookPath("ffmpeg")
}

// Available reports whether ffmpeg can be found.
func (e *FFmpegEncoder) Available() bool {
	_, err := e.executable()
	return err == nil
}

// Encode renders a white-on-black title card clip. The title is drawn
// centered over a solid background for the full clip duration.
func (e *FFmpegEncoder) Encode(ctx context.Context, title, outputPath string) error {
	bin, err := e.executable()
	if err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}

	drawtext := fmt.Sprintf(
		"drawtext=text='%s':fontcolor=white:fontsize=50:x=(w-text_w)/2:y=(h-text_h)/2",
		escapeDrawtext(title),
	)

	args := []string{
		"-y",
		"-f", "lavfi",
		"-i", fmt.Sprintf("color=c=black:s=%dx%d:d=%d", ClipWidth, ClipHeight, ClipDurationSeconds),
		"-vf", drawtext,
		"-r", fmt.Sprintf("%d", ClipFPS),
		"-c:v", "libx264",
		"-an",
		outputPath,
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// escapeDrawtext escapes the characters ffmpeg's drawtext filter
// treats specially.
func escapeDrawtext(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
		`%`, `\%`,
	)
	return r.Replace(s)
}
