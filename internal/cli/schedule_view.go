package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/drillrota/internal/cli/formatter"
	"github.com/alexanderramin/drillrota/internal/contract"
	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// scheduleLoadedMsg carries a freshly computed schedule. The view swaps its
// whole response on receipt, never a partial one. seq identifies the load
// that produced it; results of superseded loads are dropped.
type scheduleLoadedMsg struct {
	seq  int
	resp *contract.ScheduleResponse
	err  error
}

type scheduleKeyMap struct {
	Preset key.Binding
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

func defaultScheduleKeyMap() scheduleKeyMap {
	return scheduleKeyMap{
		Preset: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "preset")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k scheduleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Preset, k.Up, k.Down, k.Quit}
}

func (k scheduleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Preset}, {k.Up, k.Down, k.Top, k.Bottom}, {k.Quit}}
}

// scheduleViewport returns a viewport whose scroll keys are limited so that
// letters stay free for view shortcuts.
func scheduleViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return vp
}

// scheduleView is the bubbletea model behind 'drillrota view'.
type scheduleView struct {
	app        *App
	presets    []domain.Preset
	cfg        domain.ScheduleConfig
	presetName string
	daysPerRow int

	resp *contract.ScheduleResponse
	err  error
	// seq is bumped on every load; only the latest one may land.
	seq int

	vp       viewport.Model
	keys     scheduleKeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

func newScheduleView(app *App, presets []domain.Preset, cfg domain.ScheduleConfig, presetName string) scheduleView {
	rows := app.Display.DaysPerRow
	if rows <= 0 {
		rows = formatter.DefaultDaysPerRow
	}
	return scheduleView{
		app:        app,
		presets:    presets,
		cfg:        cfg,
		presetName: presetName,
		daysPerRow: rows,
		vp:         scheduleViewport(),
		keys:       defaultScheduleKeyMap(),
		help:       help.New(),
	}
}

func (m scheduleView) loadCmd() tea.Cmd {
	app, cfg, name, seq := m.app, m.cfg, m.presetName, m.seq
	return func() tea.Msg {
		req := contract.NewScheduleRequest(cfg)
		req.Preset = name
		resp, err := app.Schedules.Generate(context.Background(), req)
		return scheduleLoadedMsg{seq: seq, resp: resp, err: err}
	}
}

func (m scheduleView) Init() tea.Cmd {
	return m.loadCmd()
}

func (m scheduleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-chromeHeight, 1)
		m.refreshContent()
		return m, nil

	case scheduleLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.resp, m.err = msg.resp, msg.err
		m.refreshContent()
		m.vp.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Preset):
			idx := int(msg.String()[0] - '1')
			if idx >= len(m.presets) {
				return m, nil
			}
			p := m.presets[idx]
			m.cfg, m.presetName = p.Config, p.Name
			m.seq++
			return m, m.loadCmd()
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.vp.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// chromeHeight is the number of lines taken by the header and footer.
const chromeHeight = 4

func (m *scheduleView) refreshContent() {
	switch {
	case m.err != nil:
		m.vp.SetContent(formatter.StyleRed.Render("Error: " + m.err.Error()))
	case m.resp != nil:
		m.vp.SetContent(formatter.FormatSchedule(m.resp, m.daysPerRow))
	default:
		m.vp.SetContent(formatter.Dim("Computing schedule..."))
	}
}

func (m scheduleView) View() string {
	if m.quitting {
		return ""
	}

	title := formatter.StyleHeader.Render("DRILLROTA")
	label := domain.PresetLabel(m.cfg)
	if m.presetName != "" {
		label = m.presetName + "  " + formatter.Dim(label)
	}
	rule := formatter.Dim(strings.Repeat("─", max(m.width, 20)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n%s\n", title, label, rule)
	b.WriteString(m.vp.View())
	b.WriteString("\n" + rule + "\n")
	b.WriteString(m.presetHints() + "  " + m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

// presetHints lists the numbered presets, highlighting the active one.
func (m scheduleView) presetHints() string {
	n := min(len(m.presets), 9)
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		hint := fmt.Sprintf("%d:%s", i+1, m.presets[i].Name)
		if strings.EqualFold(m.presets[i].Name, m.presetName) {
			parts = append(parts, formatter.StyleGreen.Render(hint))
			continue
		}
		parts = append(parts, formatter.Dim(hint))
	}
	return strings.Join(parts, " ")
}
