package tui

import (
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/athleten/internal/browser"
	"github.com/naveenspark/athleten/internal/store"
)

type view int

const (
	viewSearch view = iota
	viewDetail
	viewAuth
)

// Routes understood by NavigateMsg besides the auth route.
const (
	RouteSearch  = "/search"
	RouteAthlete = "/athlete"
)

// NavigateMsg switches the app to the view registered for Route.
type NavigateMsg struct {
	Route string
}

// ProgramNavigator delivers navigation requests to a running program.
// Requests made before Attach are dropped.
type ProgramNavigator struct {
	mu sync.Mutex
	p  *tea.Program
}

// Attach sets the program that receives NavigateMsg.
func (n *ProgramNavigator) Attach(p *tea.Program) {
	n.mu.Lock()
	n.p = p
	n.mu.Unlock()
}

// Navigate sends a NavigateMsg for route.
func (n *ProgramNavigator) Navigate(route string) {
	n.mu.Lock()
	p := n.p
	n.mu.Unlock()
	if p != nil {
		p.Send(NavigateMsg{Route: route})
	}
}

// App is the root Bubbletea model.
type App struct {
	store      *store.Store
	version    string
	authRoute  string
	view       view
	search     searchModel
	detail     detailModel
	helpOpen   bool
	helpCursor int
	width      int
	height     int
	frame      int // logo stroke frame
}

// NewApp creates a new TUI application over st. authRoute is the route the
// HTTP client navigates to when the session expires.
func NewApp(st *store.Store, version, authRoute string) App {
	return App{
		store:     st,
		version:   version,
		authRoute: authRoute,
		search:    newSearchModel(st),
		detail:    newDetailModel(st),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.search.Init(), strokeTickCmd())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + status(1) + help(1) = 5 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 5}
		a.search, _ = a.search.Update(bodyMsg)
		a.detail, _ = a.detail.Update(bodyMsg)
		return a, nil

	case strokeTickMsg:
		a.frame++
		return a, strokeTickCmd()

	case NavigateMsg:
		return a.navigate(msg.Route), nil

	case showDetailMsg:
		return a.navigate(RouteAthlete), nil

	case tea.KeyMsg:
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				browser.Open(helpItems[a.helpCursor].url) //nolint:errcheck // best-effort browser open
			}
			return a, nil
		}

		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global keys (only when not typing into the form)
		if !a.isEditing() {
			switch msg.String() {
			case "h":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "q":
				return a, tea.Quit
			case "1":
				return a.navigate(RouteSearch), nil
			case "2":
				return a.navigate(RouteAthlete), nil
			case "esc":
				if a.view != viewSearch {
					return a.navigate(RouteSearch), nil
				}
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewSearch:
		a.search, cmd = a.search.Update(msg)
	case viewDetail:
		a.detail, cmd = a.detail.Update(msg)
	}
	return a, cmd
}

// navigate switches views by route. Unknown routes are ignored.
func (a App) navigate(route string) App {
	switch route {
	case a.authRoute:
		a.view = viewAuth
		a.helpOpen = false
	case RouteSearch, "/":
		a.view = viewSearch
	case RouteAthlete:
		a.view = viewDetail
		a.detail = a.detail.reload()
	}
	return a
}

func (a App) isEditing() bool {
	return a.view == viewSearch && a.search.editing
}

func (a App) View() string {
	header := centerLine(renderLogo(a.frame), a.width) + "\n"
	if a.version != "" {
		header += centerLine(metaStyle.Render(a.version), a.width)
	}

	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Search", viewSearch},
		{"2", "Athlete", viewDetail},
	}
	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		cell := centerLine(label, colWidth)
		if w := lipgloss.Width(cell); w < colWidth {
			cell += strings.Repeat(" ", colWidth-w)
		}
		tabBar.WriteString(cell)
	}

	var body, help string
	switch a.view {
	case viewSearch:
		body = a.search.View()
		help = " " + a.search.helpKeys()
	case viewDetail:
		body = a.detail.View()
		help = " " + a.detail.helpKeys()
	case viewAuth:
		body = authView(a.authRoute)
		help = " " + helpEntry("esc", "back") + "  " + helpEntry("q", "quit")
	}

	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	statusBar := " " + metaStyle.Render("filters off")
	if a.store.FilterState() {
		statusBar = " " + accentStyle.Render("filters on")
	}

	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, tabBar.String(), body, statusBar, help)
}

func authView(route string) string {
	var b strings.Builder
	b.WriteString("\n " + errorStyle.Render("Your session has expired.") + " " + metaStyle.Render(route) + "\n\n")
	b.WriteString(" " + normalStyle.Render("Run ") + accentStyle.Render("athleten login") + normalStyle.Render(" to sign in again.") + "\n")
	return b.String()
}
