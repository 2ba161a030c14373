package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/crewlane/crewlane/internal/cli/formatter"
	"github.com/crewlane/crewlane/internal/contract"
)

type boardKeyMap struct {
	Filter key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter user")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type boardLoadedMsg struct {
	resp *contract.BoardResponse
}

type boardErrMsg struct {
	err error
}

// boardModel is the scrollable full-screen board. The viewport holds the
// rendered gantt; "/" narrows the board to one user without losing the
// shared window.
type boardModel struct {
	app  *App
	req  contract.BoardRequest
	keys boardKeyMap

	viewport  viewport.Model
	filter    textinput.Model
	filtering bool
	ready     bool

	resp *contract.BoardResponse
	err  error
}

func newBoardModel(app *App, req contract.BoardRequest) *boardModel {
	ti := textinput.New()
	ti.Placeholder = "user name or ID"
	ti.Prompt = "filter: "
	ti.CharLimit = 64

	return &boardModel{
		app:    app,
		req:    req,
		keys:   defaultBoardKeys(),
		filter: ti,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.loadBoard()
}

func (m *boardModel) loadBoard() tea.Cmd {
	req := m.req
	return func() tea.Msg {
		resp, err := m.app.Board.GetBoard(context.Background(), req)
		if err != nil {
			return boardErrMsg{err: err}
		}
		return boardLoadedMsg{resp: resp}
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refreshContent()
		return m, nil

	case boardLoadedMsg:
		m.resp = msg.resp
		m.err = nil
		m.refreshContent()
		return m, nil

	case boardErrMsg:
		m.err = msg.err
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				m.req.UserFilter = strings.TrimSpace(m.filter.Value())
				return m, m.loadBoard()
			case "esc":
				m.filtering = false
				m.filter.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Reload):
			return m, m.loadBoard()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *boardModel) refreshContent() {
	if !m.ready {
		return
	}
	switch {
	case m.err != nil:
		m.viewport.SetContent(formatter.StyleRed.Render("error: " + m.err.Error()))
	case m.resp == nil:
		m.viewport.SetContent(formatter.Dim("loading..."))
	default:
		m.viewport.SetContent(formatter.FormatBoard(m.resp))
	}
}

func (m *boardModel) View() string {
	if !m.ready {
		return "loading..."
	}

	header := formatter.StyleHeader.Render("crewlane board")
	if m.req.UserFilter != "" {
		header += formatter.Dim("  filtered: ") + formatter.StyleGreen.Render(m.req.UserFilter)
	}

	footer := formatter.Dim("/ filter user · r reload · ↑/↓ scroll · q quit")
	if m.filtering {
		footer = m.filter.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), footer)
}
