package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/athleten/internal/store"
	"github.com/naveenspark/athleten/pkg/domain"
)

// detailModel renders the athlete record table.
type detailModel struct {
	store   *store.Store
	options domain.FilterOptions
	athlete domain.Athlete
	loaded  bool
	scroll  int
	width   int
	height  int
}

func newDetailModel(st *store.Store) detailModel {
	return detailModel{store: st, options: st.FilterOptions()}
}

// reload picks up the current dataset record.
func (m detailModel) reload() detailModel {
	m.athlete, m.loaded = m.store.TableData()
	m.scroll = 0
	return m
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.scroll < len(m.athlete.RaceList)-1 {
				m.scroll++
			}
		case "k", "up":
			if m.scroll > 0 {
				m.scroll--
			}
		case "g":
			m.scroll = 0
		}
	}
	return m, nil
}

func (m detailModel) View() string {
	if !m.loaded {
		return "\n " + dimStyle.Render("no athlete data")
	}
	a := m.athlete
	var b strings.Builder

	nation := a.NationIOC
	if name, ok := m.options.NationName(a.NationIOC); ok && name != "" {
		nation = name
	}
	fmt.Fprintf(&b, " %s %s  %s\n", selectedStyle.Render(a.FullName()), NationBadge(a.NationIOC), dimStyle.Render(nation))
	fmt.Fprintf(&b, " %s\n\n", metaStyle.Render(fmt.Sprintf("born %s · %s · %d cm · %d kg · %s · %s",
		a.DateOfBirth, a.Gender, a.Height, a.Weight, a.Discipline, a.CurrentBoatClass)))

	row := func(label, value string) {
		fmt.Fprintf(&b, "   %s %s\n", metaStyle.Render(padRight(label, 18)), normalStyle.Render(value))
	}
	fmt.Fprintf(&b, " %s\n", sectionHeaderStyle.Render("RECORD"))
	row("races", fmt.Sprintf("%d", a.NumberOfRaces))
	row("medals", fmt.Sprintf("%d  %s %s %s", a.MedalsTotal,
		rankStyle(1).Render(fmt.Sprintf("%dG", a.MedalsGold)),
		rankStyle(2).Render(fmt.Sprintf("%dS", a.MedalsSilver)),
		rankStyle(3).Render(fmt.Sprintf("%dB", a.MedalsBronze))))
	row("final A / final B", fmt.Sprintf("%d / %d", a.PlacementsFinalA, a.PlacementsFinalB))
	row("best time", domain.FormatRaceTime(a.BestTimeBoatClass))
	row("best time (cycle)", domain.FormatRaceTime(a.BestTimeBoatClassCurrentOZ))

	fmt.Fprintf(&b, "\n %s\n", sectionHeaderStyle.Render(fmt.Sprintf("RACES (%d)", len(a.RaceList))))
	if len(a.RaceList) == 0 {
		b.WriteString("   " + dimStyle.Render("no races") + "\n")
		return b.String()
	}
	fmt.Fprintf(&b, "   %s %s %s %s %s\n",
		metaStyle.Render(padRight("date", 11)),
		metaStyle.Render(padRight("race", 26)),
		metaStyle.Render(padRight("boat class", 18)),
		metaStyle.Render(padRight("rank", 5)),
		metaStyle.Render("venue"))
	for i := m.scroll; i < len(a.RaceList); i++ {
		r := a.RaceList[i]
		fmt.Fprintf(&b, "   %s %s %s %s %s\n",
			dimStyle.Render(padRight(raceDate(r), 11)),
			normalStyle.Render(padRight(r.RaceName, 26)),
			dimStyle.Render(padRight(r.BoatClass, 18)),
			rankStyle(r.Rank).Render(padRight(fmt.Sprintf("%d", r.Rank), 5)),
			dimStyle.Render(r.Venue))
	}
	return b.String()
}

func (m detailModel) helpKeys() string {
	return helpEntry("j/k", "scroll") + "  " + helpEntry("esc", "back") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
}
