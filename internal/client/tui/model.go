package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/viewstate"
)

// Dashboard is what the TUI needs from dashboard.Dashboard.
type Dashboard interface {
	State() viewstate.State
	NextPage(ctx context.Context) viewstate.State
	PrevPage(ctx context.Context) viewstate.State
	ChangeFilter(ctx context.Context, field models.FilterField, text string) viewstate.State
	ClearFilter(ctx context.Context) viewstate.State
	Reload(ctx context.Context) viewstate.State
	Delete(ctx context.Context, id int64) models.Outcome
	DismissNotice()
	Logout(ctx context.Context) models.Outcome
}

// refreshMsg is sent when a dashboard call has settled.
type refreshMsg struct{}

// loggedOutMsg ends the program after a successful logout.
type loggedOutMsg struct{}

// Model is the bubbletea model of the users dashboard.
type Model struct {
	ctx   context.Context
	dash  Dashboard
	keys  KeyMap
	theme Theme

	state  viewstate.State
	cursor int

	filterActive bool
	filterField  models.FilterField
	input        textinput.Model

	// pendingDelete is the row waiting for the confirmation key.
	pendingDelete *models.User

	width     int
	height    int
	loggedOut bool
}

// NewModel builds the model over a mounted dashboard.
func NewModel(ctx context.Context, d Dashboard) Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "search"
	input.CharLimit = 100
	input.Cursor.SetMode(cursor.CursorStatic)

	st := d.State()
	field := st.Query.Field
	if field == models.FilterNone {
		field = models.FilterEmail
	}
	input.SetValue(st.Query.Text)

	return Model{
		ctx:         ctx,
		dash:        d,
		keys:        DefaultKeyMap,
		theme:       DefaultTheme,
		state:       st,
		filterField: field,
		input:       input,
		width:       100,
	}
}

// LoggedOut reports whether the program ended with a logout.
func (m Model) LoggedOut() bool { return m.loggedOut }

// Init implements tea.Model. The dashboard is mounted before the program
// starts, so there is nothing to fetch.
func (m Model) Init() tea.Cmd {
	return nil
}

// call runs f off the event loop and asks for a refresh when it returns.
func (m Model) call(f func(ctx context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		f(ctx)
		return refreshMsg{}
	}
}

func (m Model) logout() tea.Cmd {
	ctx, d := m.ctx, m.dash
	return func() tea.Msg {
		if d.Logout(ctx).OK() {
			return loggedOutMsg{}
		}
		return refreshMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case refreshMsg:
		m.refresh()
		return m, nil

	case loggedOutMsg:
		m.loggedOut = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.pendingDelete != nil {
			return m.handleConfirmKeys(msg)
		}
		if m.filterActive {
			return m.handleFilterKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

// refresh re-reads the dashboard and keeps the cursor on the page.
func (m *Model) refresh() {
	m.state = m.dash.State()
	if m.cursor >= len(m.state.Items) {
		m.cursor = len(m.state.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (models.User, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Items) {
		return models.User{}, false
	}
	return m.state.Items[m.cursor], true
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.state.View()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevPage):
		m.cursor = 0
		return m, m.call(func(ctx context.Context) { m.dash.PrevPage(ctx) })

	case key.Matches(msg, m.keys.NextPage):
		m.cursor = 0
		return m, m.call(func(ctx context.Context) { m.dash.NextPage(ctx) })

	case key.Matches(msg, m.keys.Reload):
		return m, m.call(func(ctx context.Context) { m.dash.Reload(ctx) })

	case key.Matches(msg, m.keys.Dismiss):
		m.dash.DismissNotice()
		m.refresh()

	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()

	case key.Matches(msg, m.keys.FilterActivate):
		if view.CanFilter {
			m.filterActive = true
			m.input.Focus()
		}

	case key.Matches(msg, m.keys.Delete):
		if u, ok := m.selected(); ok && view.CanDelete {
			m.pendingDelete = &u
		}
	}
	return m, nil
}

// handleConfirmKeys waits for the delete confirmation. Any other key
// cancels.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	u := *m.pendingDelete
	m.pendingDelete = nil
	if !key.Matches(msg, m.keys.ConfirmDelete) {
		return m, nil
	}
	return m, m.call(func(ctx context.Context) { m.dash.Delete(ctx, u.ID) })
}

// handleFilterKeys routes keystrokes to the search input. Every change of
// the text or the field issues a load of the first page.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.FilterClear):
		if m.input.Value() != "" {
			m.input.SetValue("")
			return m, m.call(func(ctx context.Context) { m.dash.ClearFilter(ctx) })
		}
		m.filterActive = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.FilterConfirm):
		m.filterActive = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.FilterField):
		m.filterField = m.filterField.Next()
		if m.filterField == models.FilterNone {
			m.filterField = models.FilterEmail
		}
		if m.input.Value() == "" {
			return m, nil
		}
		return m, m.search()
	}

	before := m.input.Value()
	m.input, _ = m.input.Update(msg)
	if m.input.Value() == before {
		return m, nil
	}
	m.cursor = 0
	return m, m.search()
}

func (m Model) search() tea.Cmd {
	field, text := m.filterField, m.input.Value()
	if text == "" {
		return m.call(func(ctx context.Context) { m.dash.ClearFilter(ctx) })
	}
	return m.call(func(ctx context.Context) { m.dash.ChangeFilter(ctx, field, text) })
}

// Run starts the program on the terminal and blocks until the user quits
// or logs out.
func Run(ctx context.Context, d Dashboard) error {
	program := tea.NewProgram(NewModel(ctx, d), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
