package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/athleten/internal/store"
	"github.com/naveenspark/athleten/pkg/domain"
)

type searchField int

const (
	fieldName searchField = iota
	fieldNation
	fieldBoatClass
	fieldCompetition
	fieldRank
	fieldYearFrom
	fieldYearTo
	numSearchFields
)

var searchLabels = [numSearchFields]string{"name", "nation", "boat class", "competition", "rank", "born from", "born to"}

// -- messages --

type searchDoneMsg struct {
	err error
}

type clipboardMsg struct {
	name string
	err  error
}

// showDetailMsg opens the athlete detail view.
type showDetailMsg struct{}

// -- model --

type searchModel struct {
	store     *store.Store
	options   domain.FilterOptions
	nations   []string
	classes   []domain.BoatClass
	text      [numSearchFields]string // name and birth years
	picks     [numSearchFields]int    // select fields; 0 = any
	focus     searchField
	editing   bool // form has focus; false = navigating results
	results   []string
	cursor    int
	status    string
	err       string
	searching bool
	width     int
	height    int
}

func newSearchModel(st *store.Store) searchModel {
	opts := st.FilterOptions()
	return searchModel{
		store:   st,
		options: opts,
		nations: opts.NationCodes(),
		classes: opts.BoatClass.All(),
		editing: true,
	}
}

func (m searchModel) Init() tea.Cmd {
	return nil
}

// visibleFields lists the fields shown for the current filter state.
func (m searchModel) visibleFields() []searchField {
	if !m.store.FilterState() {
		return []searchField{fieldName}
	}
	fields := make([]searchField, 0, numSearchFields)
	for f := searchField(0); f < numSearchFields; f++ {
		fields = append(fields, f)
	}
	return fields
}

// choices returns the labels a select field cycles through.
func (m searchModel) choices(f searchField) []string {
	switch f {
	case fieldNation:
		out := make([]string, len(m.nations))
		for i, code := range m.nations {
			name, _ := m.options.NationName(code)
			out[i] = strings.TrimSpace(code + " " + name)
		}
		return out
	case fieldBoatClass:
		out := make([]string, len(m.classes))
		for i, bc := range m.classes {
			out[i] = bc.Code + " " + bc.Name
		}
		return out
	case fieldCompetition:
		out := make([]string, len(m.options.CompetitionCategoryIDs))
		for i, c := range m.options.CompetitionCategoryIDs {
			out[i] = c.DisplayName
		}
		return out
	case fieldRank:
		return m.options.Ranks
	}
	return nil
}

func isSelectField(f searchField) bool {
	return f == fieldNation || f == fieldBoatClass || f == fieldCompetition || f == fieldRank
}

// form builds the search form from the current inputs.
func (m searchModel) form() domain.SearchForm {
	form := domain.SearchForm{Name: strings.TrimSpace(m.text[fieldName])}
	if p := m.picks[fieldNation]; p > 0 {
		form.Nation = m.nations[p-1]
	}
	if p := m.picks[fieldBoatClass]; p > 0 {
		form.BoatClass = m.classes[p-1].Code
	}
	if p := m.picks[fieldCompetition]; p > 0 {
		form.CompetitionCategoryID = m.options.CompetitionCategoryIDs[p-1].ID
	}
	if p := m.picks[fieldRank]; p > 0 {
		form.Ranks = []string{m.options.Ranks[p-1]}
	}
	form.BirthYearFrom, _ = strconv.Atoi(m.text[fieldYearFrom]) //nolint:errcheck // empty means unset
	form.BirthYearTo, _ = strconv.Atoi(m.text[fieldYearTo])     //nolint:errcheck // empty means unset
	return form
}

func (m searchModel) Update(msg tea.Msg) (searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case searchDoneMsg:
		m.searching = false
		if msg.err != nil {
			m.err = "search failed: " + msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.results = m.store.PreviewAthleteResults()
		m.cursor = 0
		m.status = fmt.Sprintf("%d athletes", len(m.results))
		if len(m.results) > 0 {
			m.editing = false
		}

	case clipboardMsg:
		if msg.err != nil {
			m.err = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied " + msg.name
		}

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		return m.updateResults(msg)
	}
	return m, nil
}

func (m searchModel) toggleFilter() searchModel {
	m.store.SetFilterState(m.store.FilterState())
	if !m.store.FilterState() {
		m.focus = fieldName
	}
	return m
}

func (m searchModel) moveFocus(delta int) searchModel {
	fields := m.visibleFields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.focus = fields[idx]
	return m
}

func (m searchModel) updateForm(msg tea.KeyMsg) (searchModel, tea.Cmd) {
	m.err = ""
	if msg.Paste {
		if m.focus == fieldName {
			m.text[fieldName] = insertText(m.text[fieldName], string(msg.Runes))
		}
		return m, nil
	}
	key := msg.String()
	switch key {
	case "ctrl+f":
		return m.toggleFilter(), nil
	case "tab", "down":
		return m.moveFocus(1), nil
	case "shift+tab", "up":
		return m.moveFocus(-1), nil
	case "enter":
		return m.search()
	case "ctrl+s":
		return m.postForm()
	case "esc":
		if len(m.results) > 0 {
			m.editing = false
		}
		return m, nil
	}

	switch {
	case isSelectField(m.focus):
		n := len(m.choices(m.focus)) + 1
		switch key {
		case "right", "l", " ":
			m.picks[m.focus] = (m.picks[m.focus] + 1) % n
		case "left", "h":
			m.picks[m.focus] = (m.picks[m.focus] - 1 + n) % n
		case "backspace":
			m.picks[m.focus] = 0
		}
	case m.focus == fieldYearFrom || m.focus == fieldYearTo:
		m.text[m.focus] = editDigits(m.text[m.focus], key, 4)
	default:
		m.text[m.focus] = editRune(m.text[m.focus], key)
	}
	return m, nil
}

func (m searchModel) updateResults(msg tea.KeyMsg) (searchModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "f":
		return m.toggleFilter(), nil
	case "/", "i", "esc":
		m.editing = true
	case "c":
		if m.cursor < len(m.results) {
			name := m.results[m.cursor]
			return m, func() tea.Msg {
				return clipboardMsg{name: name, err: clipboard.WriteAll(name)}
			}
		}
	case "enter":
		return m, func() tea.Msg { return showDetailMsg{} }
	}
	return m, nil
}

func (m searchModel) search() (searchModel, tea.Cmd) {
	m.searching = true
	m.status = ""
	st := m.store
	form := m.form()
	return m, func() tea.Msg {
		return searchDoneMsg{err: st.PostSearchAthlete(context.Background(), form)}
	}
}

// postForm sends the form in the background. Nothing is reported back.
func (m searchModel) postForm() (searchModel, tea.Cmd) {
	st := m.store
	form := m.form()
	return m, func() tea.Msg {
		st.PostFormData(context.Background(), form)
		return nil
	}
}

func (m searchModel) View() string {
	var b strings.Builder

	filterLabel := "filters hidden"
	if m.store.FilterState() {
		filterLabel = "filters shown"
	}
	fmt.Fprintf(&b, " %s\n\n", sectionHeaderStyle.Render("SEARCH · "+filterLabel))

	for _, f := range m.visibleFields() {
		cursor := " "
		style := metaStyle
		if m.editing && f == m.focus {
			cursor = inputPromptStyle.Render(">")
			style = selectedStyle
		}
		var value string
		if isSelectField(f) {
			value = dimStyle.Render("any")
			if p := m.picks[f]; p > 0 {
				value = normalStyle.Render(m.choices(f)[p-1])
			}
			if m.editing && f == m.focus {
				value += metaStyle.Render("  (h/l to cycle)")
			}
		} else {
			value = normalStyle.Render(m.text[f])
			if m.editing && f == m.focus {
				value += accentStyle.Render("█")
			} else if m.text[f] == "" && f == fieldName {
				value = inputPlaceholderStyle.Render("first or last name...")
			}
		}
		fmt.Fprintf(&b, " %s %s %s\n", cursor, style.Render(padRight(searchLabels[f], 12)), value)
	}

	b.WriteString("\n")
	switch {
	case m.searching:
		b.WriteString(" " + dimStyle.Render("searching...") + "\n")
	case m.err != "":
		b.WriteString(" " + errorStyle.Render(m.err) + "\n")
	case m.status != "":
		b.WriteString(" " + statusStyle.Render(m.status) + "\n")
	}

	if len(m.results) > 0 {
		fmt.Fprintf(&b, "\n %s\n", sectionHeaderStyle.Render("PREVIEW"))
		for i, name := range m.results {
			line := "   " + normalStyle.Render(name)
			if !m.editing && i == m.cursor {
				line = selectedRowBg.Render(" " + accentStyle.Render(">") + " " + selectedStyle.Render(name))
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// helpKeys returns the help bar entries for the current mode.
func (m searchModel) helpKeys() string {
	if m.editing {
		return helpEntry("tab", "next") + "  " + helpEntry("enter", "search") + "  " +
			helpEntry("ctrl+f", "filters") + "  " + helpEntry("ctrl+s", "send") + "  " + helpEntry("esc", "results")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "athlete") + "  " + helpEntry("c", "copy") + "  " +
		helpEntry("f", "filters") + "  " + helpEntry("/", "edit") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
}
