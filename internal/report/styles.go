// Package report renders pipeline output as styled terminal tables, bar
// charts and CSV exports. It consumes only the plain model rows; the core
// stages know nothing about rendering.
package report

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#5FAFD7")
	// DecreaseColor marks January-lower-than-December values, the expected
	// direction in this data.
	DecreaseColor = lipgloss.Color("#4ECDC4")
	// IncreaseColor marks values that rose over the holidays.
	IncreaseColor = lipgloss.Color("#FF6B6B")
	// SubtleColor is used for less prominent elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// HeaderStyle is used for table header cells.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#333"))

	// CellStyle formats table cells with padding.
	CellStyle = lipgloss.NewStyle().
			PaddingRight(2)

	// DecreaseStyle formats negative differences.
	DecreaseStyle = lipgloss.NewStyle().
			Foreground(DecreaseColor)

	// IncreaseStyle formats positive differences.
	IncreaseStyle = lipgloss.NewStyle().
			Foreground(IncreaseColor)

	// SubtleStyle formats missing values and footnotes.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BarStyle colors the chart bars.
	BarStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)
