package sheet

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	sheetColor   = lipgloss.Color("236") // Dark gray

	// Background app text behind the sheet
	stageStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// Drag handle row
	handleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Background(sheetColor).
			Align(lipgloss.Center)

	handleActiveStyle = handleStyle.
				Foreground(accentColor).
				Bold(true)

	// Sheet body
	sheetStyle = lipgloss.NewStyle().
			Background(sheetColor).
			PaddingLeft(1).
			PaddingRight(1)

	// Footer status line
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	footerPhaseStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// backdropStyle dims the stage text as the backdrop opacity rises.
func backdropStyle(opacity float64) lipgloss.Style {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	// 252 is near white, 238 near black on the 256-color grayscale ramp.
	shade := 252 - int(opacity*14)
	return stageStyle.Foreground(lipgloss.Color(strconv.Itoa(shade)))
}
