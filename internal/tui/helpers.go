package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/athleten/pkg/domain"
)

// raceDate renders the day of a race, or the raw start date if it does not parse.
func raceDate(r domain.RaceResult) string {
	t, err := r.Start()
	if err != nil {
		return r.StartDate
	}
	return t.Format("2006-01-02")
}

// padRight pads s with spaces to width display cells, truncating if longer.
func padRight(s string, width int) string {
	s = truncStr(s, width)
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// centerLine pads s on the left so it sits centered in width.
func centerLine(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
