package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"engagedeck/modules/core/state"
)

// Generate renders a clip for the named template to outputPath and
// records it in st. Re-generating to the same output path updates the
// existing record instead of appending a duplicate. On encode failure
// nothing is recorded.
func Generate(ctx context.Context, st *state.State, enc Encoder, templateName, outputPath string, now time.Time) (*state.Video, error) {
	tmpl := st.FindTemplate(templateName)
	if tmpl == nil {
		return nil, state.NewNotFound("template", templateName, st.TemplateNames())
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	title := fmt.Sprintf("%s\n\nGenerated by EngageDeck", tmpl.Name)
	if err := enc.Encode(ctx, title, outputPath); err != nil {
		return nil, err
	}

	// ID is left empty so an upsert over an existing record keeps its
	// original ID; only genuinely new records get one.
	rec := state.Video{
		Template:   tmpl.Name,
		OutputPath: outputPath,
		Duration:   ClipDurationSeconds,
		Status:     "ready",
		Generated:  now.Format("2006-01-02"),
	}
	st.UpsertVideo(rec)
	for i := range st.Videos {
		if st.Videos[i].OutputPath == outputPath {
			if st.Videos[i].ID == "" {
				st.Videos[i].ID = uuid.New().String()
			}
			return &st.Videos[i], nil
		}
	}
	return nil, fmt.Errorf("video record for %s missing after upsert", outputPath)
}
