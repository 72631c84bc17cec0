package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"lunaphase/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	fullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	newStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cellStyle  = lipgloss.NewStyle().Width(6).Align(lipgloss.Right)
	headStyle  = cellStyle.Bold(true).Foreground(lipgloss.Color("245"))
)

// symbol is a one-rune glyph for each phase.
func symbol(p domain.Phase) string {
	switch p {
	case domain.NewMoon:
		return "🌑"
	case domain.WaxingCrescent:
		return "🌒"
	case domain.FirstQuarter:
		return "🌓"
	case domain.WaxingGibbous:
		return "🌔"
	case domain.FullMoon:
		return "🌕"
	case domain.WaningGibbous:
		return "🌖"
	case domain.LastQuarter:
		return "🌗"
	case domain.WaningCrescent:
		return "🌘"
	default:
		return "?"
	}
}

// bar draws illumination as a 20-cell gauge.
func bar(percent float64) string {
	const cells = 20
	n := int(percent/100*cells + 0.5)
	if n < 0 {
		n = 0
	}
	if n > cells {
		n = cells
	}
	return strings.Repeat("█", n) + strings.Repeat("░", cells-n)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

// renderReport formats a report as a small labelled block.
func renderReport(r domain.Report) string {
	s := r.Snapshot
	name := s.Phase().String()
	switch {
	case s.IsFullMoon():
		name = fullStyle.Render(name)
	case s.IsNewMoon():
		name = newStyle.Render(name)
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s  %s", symbol(s.Phase()), s.Date())),
		row("Phase", name),
		row("Illumination", fmt.Sprintf("%s %s%%", bar(s.IlluminationPercent()), humanize.FtoaWithDigits(s.IlluminationPercent(), 1))),
		row("Phase angle", humanize.FtoaWithDigits(s.PhaseAngle(), 1)+"°"),
	}
	if next, ok := s.NextPhase(); ok {
		d, _ := s.NextPhaseDate()
		lines = append(lines, row("Next", fmt.Sprintf("%s on %s (%s)", next, d, domain.RelativeDays(s.DaysUntilNextPhase()))))
	}
	if r.Image != "" {
		lines = append(lines, row("Image", r.Image))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
