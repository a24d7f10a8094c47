package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Palette: lake water for chrome, medal metals for results.
const (
	colorWater   = lipgloss.Color("#12324a")
	colorWake    = lipgloss.Color("#2f7fa8")
	colorSurface = lipgloss.Color("#5ec8f0")
	colorFoam    = lipgloss.Color("#e4e4ec")
	colorText    = lipgloss.Color("#c0c4d0")
	colorMuted   = lipgloss.Color("#8890a0")
	colorFaint   = lipgloss.Color("#505868")
	colorGold    = lipgloss.Color("#d4a844")
	colorBronze  = lipgloss.Color("#c07a3a")
	colorGreen   = lipgloss.Color("#4ade80")
	colorRed     = lipgloss.Color("#b45555")
)

// The header logo rows one stroke per cycle: a blade sweeps across
// ATHLETEN on the drive and drifts back, dimmer, on the recovery.
const (
	driveFrames    = 6
	recoveryFrames = 12 // 1:2 stroke ratio
)

type strokeTickMsg time.Time

func strokeTickCmd() tea.Cmd {
	return tea.Tick(90*time.Millisecond, func(t time.Time) tea.Msg {
		return strokeTickMsg(t)
	})
}

var (
	logoStill = lipgloss.NewStyle().Foreground(colorWater).Bold(true)
	logoWake  = lipgloss.NewStyle().Foreground(colorWake).Bold(true)
	logoBlade = lipgloss.NewStyle().Foreground(colorSurface).Bold(true)
	logoCatch = lipgloss.NewStyle().Foreground(colorFoam).Bold(true)
)

// bladePosition returns where the blade is along a word of n letters and
// whether it is in the water (drive) at this frame.
func bladePosition(frame, n int) (float64, bool) {
	last := float64(n - 1)
	f := frame % (driveFrames + recoveryFrames)
	if f < 0 {
		f += driveFrames + recoveryFrames
	}
	if f < driveFrames {
		return last * float64(f) / float64(driveFrames-1), true
	}
	r := f - driveFrames
	return last * (1 - float64(r)/float64(recoveryFrames-1)), false
}

// renderLogo draws the letter-spaced ATHLETEN wordmark for frame.
func renderLogo(frame int) string {
	const word = "ATHLETEN"
	pos, drive := bladePosition(frame, len(word))

	var b strings.Builder
	for i, r := range word {
		if i > 0 {
			b.WriteString("  ")
		}
		style := logoStill
		switch d := math.Abs(float64(i) - pos); {
		case d < 0.5 && drive:
			style = logoCatch
		case d < 0.5, d < 1.5 && drive:
			style = logoBlade
		case d < 2.5:
			style = logoWake
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

var (
	dimStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Foreground(colorFoam).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(colorText)
	metaStyle     = lipgloss.NewStyle().Foreground(colorFaint)
	accentStyle   = lipgloss.NewStyle().Foreground(colorSurface)
	statusStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	nationStyle   = lipgloss.NewStyle().Foreground(colorGold).Bold(true)

	helpKeyStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	helpLabelStyle = lipgloss.NewStyle().Foreground(colorFaint)

	sectionHeaderStyle    = lipgloss.NewStyle().Foreground(colorWake).Bold(true)
	inputPromptStyle      = lipgloss.NewStyle().Foreground(colorSurface).Bold(true)
	inputPlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#343c4a"))
	selectedRowBg         = lipgloss.NewStyle().Background(colorWater)
)

// rankStyle colors a finishing position: medals get their metal.
func rankStyle(rank int) lipgloss.Style {
	switch rank {
	case 1:
		return lipgloss.NewStyle().Foreground(colorGold).Bold(true)
	case 2:
		return lipgloss.NewStyle().Foreground(colorText).Bold(true)
	case 3:
		return lipgloss.NewStyle().Foreground(colorBronze).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorMuted)
	}
}

// NationBadge returns a colored badge for an IOC code, e.g. "[CZE]".
func NationBadge(code string) string {
	if code == "" {
		return ""
	}
	return nationStyle.Render("[" + code + "]")
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

var helpItems = []helpItem{
	{"World Rowing", "worldrowing.com", "https://worldrowing.com"},
	{"Results", "worldrowing.com/events", "https://worldrowing.com/events/"},
}

// helpView renders the help overlay with a cursor over the links.
func helpView(cursor int) string {
	title := logoBlade.Render("A T H L E T E N")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSurface)
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	commands := []struct{ cmd, desc string }{
		{"athleten", "Search athletes (interactive TUI)"},
		{"athleten login", "Authenticate in the browser"},
		{"athleten logout", "Clear your session"},
		{"athleten search", "Search from the command line"},
		{"athleten options", "Print the filter taxonomy"},
		{"athleten version", "Show version"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", title)

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems {
		label := cmdStyle.Render(fmt.Sprintf("%-20s", item.label))
		prefix := "    "
		if i == cursor {
			label = cursorStyle.Render(fmt.Sprintf("%-20s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
