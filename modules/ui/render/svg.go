package render

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"engagedeck/modules/core/state"
	uicore "engagedeck/modules/ui/core"
)

// SVG text grid geometry, tuned for a 14px monospace font.
const (
	svgCharWidth  = 8.4
	svgLineHeight = 18
	svgPadding    = 20
	svgFontSize   = 14
)

const cardTimestampLayout = "20060102_150405"

// ExportSVG writes pre-rendered plain text as a monospace SVG document
// with a title watermark. Styling is not carried over; the export is a
// faithful text snapshot.
func ExportSVG(content, title, path string) error {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	maxWidth := 0
	for _, line := range lines {
		if w := len([]rune(line)); w > maxWidth {
			maxWidth = w
		}
	}

	width := float64(maxWidth)*svgCharWidth + 2*svgPadding
	height := float64(len(lines)+2)*svgLineHeight + 2*svgPadding

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&b, `  <rect width="100%%" height="100%%" fill="#0b1220"/>`+"\n")
	fmt.Fprintf(&b, `  <text x="%d" y="%d" font-family="monospace" font-size="%d" font-weight="bold" fill="#38bdf8">%s</text>`+"\n",
		svgPadding, svgPadding+svgLineHeight, svgFontSize, html.EscapeString(title))
	for i, line := range lines {
		if line == "" {
			continue
		}
		y := svgPadding + (i+3)*svgLineHeight
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-family="monospace" font-size="%d" xml:space="preserve" fill="#e2e8f0">%s</text>`+"\n",
			svgPadding, y, svgFontSize, html.EscapeString(line))
	}
	b.WriteString("</svg>\n")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

// ExportSnapshot renders the full dashboard in plain mode and writes
// it to path as an SVG snapshot.
func ExportSnapshot(st *state.State, now time.Time, path string) error {
	r := &Renderer{Plain: true}
	content := r.Render(uicore.Compose(st, now), DefaultWidth, DefaultHeight)
	title := businessTitle(st) + " - Dashboard"
	return ExportSVG(content, title, path)
}

// ExportCards writes one SVG card per headline panel (campaigns,
// analytics, segments, today's focus) into dir, with a shared
// timestamp in the file names. It returns the written paths.
func ExportCards(st *state.State, now time.Time, dir string) ([]string, error) {
	r := &Renderer{Plain: true}
	business := businessTitle(st)
	ts := now.Format(cardTimestampLayout)

	cards := []struct {
		slug  string
		title string
		node  *uicore.Node
	}{
		{"campaigns", "Campaigns", &uicore.Node{Table: uicore.CampaignTable(st)}},
		{"analytics", "Analytics", &uicore.Node{Panel: uicore.AnalyticsPanel(st)}},
		{"segments", "Segments", &uicore.Node{Table: uicore.SegmentTable(st)}},
		{"actions", "Today's Focus", &uicore.Node{Panel: uicore.ActionsPanel(st, now)}},
	}

	paths := make([]string, 0, len(cards))
	for _, card := range cards {
		path := filepath.Join(dir, fmt.Sprintf("card_%s_%s.svg", card.slug, ts))
		content := r.RenderBlock(card.node, DefaultWidth)
		if err := ExportSVG(content, fmt.Sprintf("%s - %s", business, card.title), path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func businessTitle(st *state.State) string {
	if st.Profile.BusinessName != "" {
		return st.Profile.BusinessName
	}
	return "B2B Dashboard"
}
