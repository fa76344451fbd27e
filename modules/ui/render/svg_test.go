package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"engagedeck/modules/core/state"
)

func TestExportSVGEscapesAndTitles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := ExportSVG("a < b & c", "Acme <Co> - Campaigns", path); err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if !strings.HasPrefix(svg, "<svg") {
		t.Error("missing svg root element")
	}
	if !strings.Contains(svg, "Acme &lt;Co&gt; - Campaigns") {
		t.Error("title not escaped")
	}
	if !strings.Contains(svg, "a &lt; b &amp; c") {
		t.Error("content not escaped")
	}
}

func TestExportSnapshotWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "dashboard_snapshot.svg")
	st := state.Sample(testNow)
	if err := ExportSnapshot(st, testNow, path); err != nil {
		t.Fatalf("ExportSnapshot: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if !strings.Contains(svg, "Acme Components - Dashboard") {
		t.Error("snapshot missing watermark title")
	}
	if !strings.Contains(svg, "Automation") {
		t.Error("snapshot missing dashboard content")
	}
}

func TestExportCardsWritesFour(t *testing.T) {
	dir := t.TempDir()
	st := state.Sample(testNow)

	paths, err := ExportCards(st, testNow, dir)
	if err != nil {
		t.Fatalf("ExportCards: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("cards = %d, want 4", len(paths))
	}

	for _, slug := range []string{"campaigns", "analytics", "segments", "actions"} {
		matches, _ := filepath.Glob(filepath.Join(dir, "card_"+slug+"_*.svg"))
		if len(matches) != 1 {
			t.Errorf("card %q: %d files", slug, len(matches))
		}
	}

	data, err := os.ReadFile(paths[3])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Acme Components - Today&#39;s Focus") {
		t.Errorf("actions card title wrong:\n%s", data)
	}
}
