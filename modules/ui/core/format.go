// Package core builds the renderable dashboard tree from application
// state. It owns the layout topology and all row/line formatting;
// actual drawing happens in ui/render.
package core

import (
	"fmt"
	"math"
	"time"
)

// Placeholder stands in for any missing string field.
const Placeholder = "—"

// DateLayout is the date format used throughout the state record.
const DateLayout = "2006-01-02"

// HeaderTimeLayout formats the header timestamp, e.g. "Mar 14, 2026 10:05".
const HeaderTimeLayout = "Jan 02, 2006 15:04"

// BriefTimeLayout formats the morning-brief timestamp.
const BriefTimeLayout = "January 02, 2006 15:04"

// roundHalfUp rounds to the nearest integer with ties going away from
// zero, so 0.5 -> 1 and -0.5 -> -1.
func roundHalfUp(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v + 0.5)
	}
	return math.Floor(v + 0.5)
}

// FormatPct renders a 0..1 rate as a percentage with one decimal,
// rounding half up: 0.285 -> "28.5%", 0.2846 -> "28.5%".
func FormatPct(value float64) string {
	return fmt.Sprintf("%.1f%%", roundHalfUp(value*1000)/10)
}

// FormatProgress renders a nurture ratio as "N% nurtured" with a whole
// percentage, rounding half up. A segment of size zero has no defined
// progress and renders as the placeholder.
func FormatProgress(nurtured, size int) string {
	if size <= 0 {
		return Placeholder
	}
	pct := roundHalfUp(float64(nurtured) / float64(size) * 100)
	return fmt.Sprintf("%.0f%% nurtured", pct)
}

// DeltaIndicator renders the relative difference of rate against
// benchmark as e.g. " (+64% vs avg)". A zero benchmark means no
// comparison, and an exactly-zero delta shows nothing.
func DeltaIndicator(rate, benchmark float64) string {
	if benchmark <= 0 {
		return ""
	}
	diff := (rate - benchmark) / benchmark * 100
	if diff == 0 {
		return ""
	}
	return fmt.Sprintf(" (%+.0f%% vs avg)", roundHalfUp(diff))
}

// StatusColor maps a status word to its display color tag. Unknown
// statuses fall back to white. Matching is case-insensitive.
func StatusColor(status string) string {
	switch lowerASCII(status) {
	case "running", "connected", "healthy":
		return "green"
	case "scheduled":
		return "cyan"
	case "ready", "degraded", "pending":
		return "yellow"
	case "paused", "offline", "failed":
		return "red"
	case "maintenance":
		return "magenta"
	default:
		return "white"
	}
}

// TitleWord capitalizes the first letter of each space-separated word,
// for status display ("running" -> "Running").
func TitleWord(s string) string {
	out := []byte(s)
	upNext := true
	for i := 0; i < len(out); i++ {
		c := out[i]
		if c == ' ' {
			upNext = true
			continue
		}
		if upNext && c >= 'a' && c <= 'z' {
			out[i] = c - 'a' + 'A'
		}
		upNext = false
	}
	return string(out)
}

func lowerASCII(s string) string {
	out := []byte(s)
	for i := 0; i < len(out); i++ {
		if out[i] >= 'A' && out[i] <= 'Z' {
			out[i] += 'a' - 'A'
		}
	}
	return string(out)
}

// ParseDate parses a YYYY-MM-DD date strictly. ok is false for empty,
// placeholder, or malformed input.
func ParseDate(s string) (time.Time, bool) {
	if s == "" || s == Placeholder {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// orPlaceholder substitutes the placeholder for empty strings.
func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
