package sheet

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const handleGlyph = "━━━━━━"

// View renders the stage, the sheet over it and the footer.
func (m Model) View() string {
	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left,
		m.renderStage(),
		m.renderFooter(),
	))
}

func (m Model) renderStage() string {
	height := m.stageHeight()
	top := m.sheetTop()
	if !m.ctl.State().Visible || top > height {
		top = height
	}

	var rows []string
	if top > 0 {
		rows = append(rows, m.renderBackground(top))
	}
	if top < height {
		rows = append(rows, m.renderHandle())
	}
	if contentHeight := height - top - handleRows; contentHeight > 0 {
		body := sheetStyle.
			Width(m.width).
			Height(contentHeight).
			MaxHeight(contentHeight).
			Render(m.content.View())
		rows = append(rows, m.zones.Mark(m.contentID, body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderBackground(rows int) string {
	lines := make([]string, rows)
	if rows > 1 {
		lines[1] = "snapsheet"
	}
	if rows > 3 {
		lines[3] = "o open · c close · 1-9 snap · drag the handle · q quit"
	}
	return backdropStyle(m.ctl.Backdrop()).
		Width(m.width).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderHandle() string {
	style := handleStyle
	if m.touch.active {
		style = handleActiveStyle
	}
	return m.zones.Mark(m.handleID, style.Width(m.width).Render(handleGlyph))
}

func (m Model) renderFooter() string {
	if m.errMsg != "" {
		return errorStyle.Width(m.width).MaxHeight(footerRows).Render(m.errMsg)
	}

	s := m.ctl.State()
	status := fmt.Sprintf(" index %d · offset %.1f · backdrop %.0f%%", s.ActiveIndex, s.Position, s.Backdrop*100)
	if last := m.activity.last(); last != "" {
		status += " · " + last
	}
	return footerStyle.Width(m.width).MaxHeight(footerRows).Render(footerPhaseStyle.Render(s.Phase.String()) + status)
}
