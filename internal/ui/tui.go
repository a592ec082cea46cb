// Package ui provides the interactive search interface: a query box over a
// scrollable ranked result list, themed from the config file.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"localsearch/internal/config"
)

// Controller is the UI-facing surface of the application core.
type Controller interface {
	// Search returns document paths ranked by descending relevance.
	Search(terms []string) []string
	// Reindex rebuilds the index from the configured roots and returns the
	// new document count. Blocking; the UI runs it off the update loop.
	Reindex() (int, error)
	// DocumentCount reports the current index size.
	DocumentCount() int
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run starts the interactive search UI and blocks until it exits.
func Run(ctrl Controller, theme config.Theme) error {
	p := tea.NewProgram(New(ctrl, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// reindexDoneMsg reports a completed background reindex.
type reindexDoneMsg struct {
	docs int
	err  error
}

// Model is the Bubble Tea model for the search UI.
type Model struct {
	ctrl   Controller
	styles Styles

	input    textinput.Model
	viewport viewport.Model

	results   []string
	cursor    int
	status    string
	lastQuery string
	indexing  bool
	ready     bool
}

// New creates the search UI model.
func New(ctrl Controller, theme config.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a query and press enter"
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		ctrl:     ctrl,
		styles:   NewStyles(theme),
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   fmt.Sprintf("%d documents indexed. / focuses the query box, ctrl+r reindexes.", ctrl.DocumentCount()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.viewport.Width = max(20, msg.Width)
		// Title, summary, query box frame, and status line are reserved.
		_, qh := m.styles.QueryBox.GetFrameSize()
		m.viewport.Height = max(3, msg.Height-qh-4)
		m.viewport.SetContent(m.renderResults())
		return m, nil

	case reindexDoneMsg:
		m.indexing = false
		if msg.err != nil {
			m.status = "Reindex failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("Reindexed %d documents.", msg.docs)
		}
		m.results = nil
		m.cursor = 0
		m.viewport.SetContent(m.renderResults())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "ctrl+r":
			if m.indexing {
				return m, nil
			}
			m.indexing = true
			m.status = "Reindexing..."
			ctrl := m.ctrl
			return m, func() tea.Msg {
				docs, err := ctrl.Reindex()
				return reindexDoneMsg{docs: docs, err: err}
			}
		case "esc":
			m.input.Blur()
			return m, nil
		case "/":
			if !m.input.Focused() {
				m.input.Focus()
				return m, textinput.Blink
			}
		case "q":
			if !m.input.Focused() {
				return m, tea.Quit
			}
		case "enter":
			if m.indexing {
				m.status = "Reindex in progress, hold on."
				return m, nil
			}
			query := strings.TrimSpace(m.input.Value())
			terms := strings.Fields(query)
			m.results = m.ctrl.Search(terms)
			m.cursor = 0
			m.lastQuery = query
			if len(m.results) == 0 {
				m.status = fmt.Sprintf("No results for %q.", query)
			} else {
				m.status = fmt.Sprintf("%d results for %q.", len(m.results), query)
			}
			m.viewport.SetContent(m.renderResults())
			m.viewport.GotoTop()
			return m, nil
		case "down":
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := m.styles.Title.Render("local search")
	queryStyle := m.styles.QueryBox
	if m.input.Focused() {
		queryStyle = m.styles.QueryFocused
	}
	query := queryStyle.Width(max(20, m.viewport.Width-2)).Render(m.input.View())
	status := m.styles.Status.Render(m.status)

	return title + "\n" + query + "\n" + m.viewport.View() + "\n" + status
}

// renderResults renders the ranked result list with the cursor row
// highlighted.
func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return m.styles.Summary.Render("No results yet.")
	}
	var b strings.Builder
	for i, path := range m.results {
		style := m.styles.Result
		if i == m.cursor {
			style = m.styles.ResultSelected
		}
		b.WriteString(style.Render(fmt.Sprintf("%3d. %s", i+1, path)))
		b.WriteByte('\n')
	}
	return b.String()
}
