package core

import "testing"

func TestFormatPctRoundsHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.46, "46.0%"},
		{0.285, "28.5%"},
		{0.2846, "28.5%"},
		{0.0625, "6.3%"}, // exact half rounds up, not to even
		{0.2844, "28.4%"},
		{0, "0.0%"},
		{1, "100.0%"},
	}
	for _, tc := range cases {
		if got := FormatPct(tc.in); got != tc.want {
			t.Errorf("FormatPct(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatProgress(t *testing.T) {
	if got := FormatProgress(23, 34); got != "68% nurtured" {
		t.Errorf("got %q", got)
	}
	if got := FormatProgress(1, 2); got != "50% nurtured" {
		t.Errorf("got %q", got)
	}
	if got := FormatProgress(0, 0); got != Placeholder {
		t.Errorf("zero-size segment should render placeholder, got %q", got)
	}
}

func TestDeltaIndicator(t *testing.T) {
	// 0.46 vs 0.28 is +64.28...%, rounds to +64.
	if got := DeltaIndicator(0.46, 0.28); got != " (+64% vs avg)" {
		t.Errorf("got %q", got)
	}
	if got := DeltaIndicator(0.10, 0.15); got != " (-33% vs avg)" {
		t.Errorf("got %q", got)
	}
	if got := DeltaIndicator(0.28, 0.28); got != "" {
		t.Errorf("exact-zero delta should render nothing, got %q", got)
	}
	if got := DeltaIndicator(0.46, 0); got != "" {
		t.Errorf("missing benchmark should render nothing, got %q", got)
	}
}

func TestStatusColor(t *testing.T) {
	cases := map[string]string{
		"running":     "green",
		"Running":     "green",
		"scheduled":   "cyan",
		"ready":       "yellow",
		"paused":      "red",
		"connected":   "green",
		"healthy":     "green",
		"degraded":    "yellow",
		"maintenance": "magenta",
		"pending":     "yellow",
		"offline":     "red",
		"failed":      "red",
		"mystery":     "white",
		"":            "white",
	}
	for status, want := range cases {
		if got := StatusColor(status); got != want {
			t.Errorf("StatusColor(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if d, ok := ParseDate("2026-03-14"); !ok || d.Day() != 14 {
		t.Errorf("valid date rejected: %v %v", d, ok)
	}
	for _, bad := range []string{"", Placeholder, "03/14/2026", "2026-13-40", "soon"} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestTitleWord(t *testing.T) {
	if got := TitleWord("running"); got != "Running" {
		t.Errorf("got %q", got)
	}
	if got := TitleWord("in progress"); got != "In Progress" {
		t.Errorf("got %q", got)
	}
}
