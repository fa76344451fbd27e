// Package render draws the dashboard tree to the terminal and exports
// it as SVG snapshots.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	uicore "engagedeck/modules/ui/core"
)

// Color palette
var (
	ColorAccentCyan   = lipgloss.Color("#38bdf8")
	ColorAccentPurple = lipgloss.Color("#a78bfa")
	ColorAccentGreen  = lipgloss.Color("#22c55e")
	ColorAccentAmber  = lipgloss.Color("#f59e0b")
	ColorText         = lipgloss.Color("#e2e8f0")
	ColorMuted        = lipgloss.Color("#cbd5e1")
	ColorBg           = lipgloss.Color("#0b1220")
	ColorBgAlt        = lipgloss.Color("#11192d")

	ColorGreen   = lipgloss.Color("10")
	ColorYellow  = lipgloss.Color("11")
	ColorRed     = lipgloss.Color("9")
	ColorCyan    = lipgloss.Color("14")
	ColorMagenta = lipgloss.Color("13")
	ColorWhite   = lipgloss.Color("15")
)

// accentColors resolves the semantic accent tags used by the tree.
var accentColors = map[uicore.ColorTag]lipgloss.Color{
	uicore.AccentCyan:   ColorAccentCyan,
	uicore.AccentPurple: ColorAccentPurple,
	uicore.AccentGreen:  ColorAccentGreen,
	uicore.AccentAmber:  ColorAccentAmber,
}

// lineColors resolves the per-line and per-cell color names.
var lineColors = map[string]lipgloss.Color{
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"red":     ColorRed,
	"cyan":    ColorCyan,
	"magenta": ColorMagenta,
	"white":   ColorWhite,
	"muted":   ColorMuted,
	"purple":  ColorAccentPurple,
	"amber":   ColorAccentAmber,
}

// Base styles
var (
	HeaderTextStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)
)

// AccentColor returns the lipgloss color for an accent tag, defaulting
// to cyan for unknown tags.
func AccentColor(tag uicore.ColorTag) lipgloss.Color {
	if c, ok := accentColors[tag]; ok {
		return c
	}
	return ColorAccentCyan
}

// LineColor returns the lipgloss color for a line/cell color name.
func LineColor(name string) lipgloss.Color {
	if c, ok := lineColors[name]; ok {
		return c
	}
	return ColorWhite
}

// ColorEnabled reports whether the terminal supports color output at
// all. Callers fall back to plain rendering when it does not.
func ColorEnabled() bool {
	return termenv.ColorProfile() != termenv.Ascii
}
