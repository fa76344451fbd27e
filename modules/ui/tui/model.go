package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"engagedeck/modules/core/state"
	uicore "engagedeck/modules/ui/core"
	"engagedeck/modules/ui/render"
)

// tickMsg triggers a periodic state reload
type tickMsg time.Time

// Model is the Bubble Tea model for watch mode
type Model struct {
	store    *state.Store
	renderer *render.Renderer
	refresh  time.Duration
	keys     KeyMap
	help     help.Model

	state       *state.State
	err         error
	lastRefresh time.Time

	width    int
	height   int
	ready    bool
	showHelp bool
}

// NewModel creates the watch mode model
func NewModel(store *state.Store, refresh time.Duration) *Model {
	if refresh < 100*time.Millisecond {
		refresh = 100 * time.Millisecond
	}
	return &Model{
		store:    store,
		renderer: render.New(false),
		refresh:  refresh,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.reload, m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// reload reads the state file again
func (m *Model) reload() tea.Msg {
	st, err := m.store.Load(time.Now())
	if err != nil {
		return err
	}
	return st
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.reload
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}

	case tickMsg:
		return m, tea.Batch(m.reload, m.tick())

	case *state.State:
		m.state = msg
		m.err = nil
		m.lastRefresh = time.Now()
		return m, nil

	case error:
		m.err = msg
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if !m.ready || m.state == nil {
		return "Loading dashboard..."
	}

	statusHeight := 1
	dashboard := m.renderer.Render(
		uicore.Compose(m.state, time.Now()),
		m.width,
		m.height-statusHeight,
	)

	return lipgloss.JoinVertical(lipgloss.Left, dashboard, m.statusLine())
}

func (m *Model) statusLine() string {
	if m.showHelp {
		return m.help.View(m.keys)
	}
	status := fmt.Sprintf("watch • refreshed %s • ? for keys", m.lastRefresh.Format("15:04:05"))
	if m.err != nil {
		status = fmt.Sprintf("watch • reload failed: %v", m.err)
	}
	return render.SubtitleStyle.Render(status)
}
