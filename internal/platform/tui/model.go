package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-layers/internal/automata"
	"github.com/vovakirdan/tui-layers/internal/core"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Options configures the TUI beyond the runtime config.
type Options struct {
	Theme  Theme
	Logger *log.Logger
}

// Model is the Bubble Tea model for the layers view.
type Model struct {
	layers   *automata.LayerSet
	screen   *core.Screen
	config   core.RuntimeConfig
	theme    Theme
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	stats    core.RunStats
	autoplay bool
	tickSeq  int // Bumped every time autoplay starts
	width    int
	height   int
	quitting bool
}

// NewModel creates a new model over layers. cfg.Seed must be the seed the
// layers' source was built from; it is only recorded.
func NewModel(layers *automata.LayerSet, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := CompositeSize(layers)
	return Model{
		layers: layers,
		screen: core.NewScreen(w, h),
		config: cfg,
		theme:  opts.Theme,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		stats: core.RunStats{
			Mode:      "tui",
			Seed:      cfg.Seed,
			StartedAt: time.Now(),
		},
		autoplay: cfg.Autoplay,
	}
}

// Init resets the layers and starts autoplay if configured.
func (m Model) Init() tea.Cmd {
	m.layers.Reset()
	if m.autoplay {
		return tickCmd(m.config.TickRate, m.tickSeq)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.finish()
		m.logger.Debug("quit", "ticks", m.stats.Ticks, "resets", m.stats.Resets)
		return m, tea.Quit

	case core.ActionTick:
		m.layers.Tick()
		m.stats.Ticks++

	case core.ActionReset:
		m.layers.Reset()
		m.stats.Resets++

	case core.ActionAutoplay:
		m.autoplay = !m.autoplay
		m.logger.Debug("autoplay toggled", "on", m.autoplay)
		if m.autoplay {
			m.tickSeq++
			return m, tickCmd(m.config.TickRate, m.tickSeq)
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleTick advances the layers while autoplay is on.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.autoplay || msg.Seq != m.tickSeq {
		return m, nil
	}
	m.layers.Tick()
	m.stats.Ticks++
	return m, tickCmd(m.config.TickRate, m.tickSeq)
}

// finish fills in the end-of-run statistics.
func (m *Model) finish() {
	m.stats.Population = m.layers.Population()
	m.stats.Duration = time.Since(m.stats.StartedAt)
}

// tooSmall reports whether the known terminal size cannot fit the composite.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+4
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height()+4, m.width, m.height,
		))
	}

	var b strings.Builder

	mode := "paused"
	if m.autoplay {
		mode = fmt.Sprintf("autoplay %d/s", m.config.TickRate)
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("LAYERS  generation %d  (%s)", m.layers.Generation(), mode)))
	b.WriteString("\n")

	Paint(m.screen, m.layers, m.config.Delimiter, m.theme)
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(m.populationLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// populationLine lists the live cells of each layer under its glyph.
func (m Model) populationLine() string {
	parts := make([]string, m.layers.Len())
	for k, n := range m.layers.Population() {
		parts[k] = fmt.Sprintf("%c %d", m.layers.Layer(k).Glyph(), n)
	}
	return strings.Join(parts, "  ")
}

// Stats returns the statistics collected so far.
func (m Model) Stats() core.RunStats {
	return m.stats
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(layers *automata.LayerSet, cfg core.RuntimeConfig, opts Options) (core.RunStats, error) {
	model := NewModel(layers, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return model.Stats(), err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return model.Stats(), nil
	}
	if !m.quitting {
		m.finish()
	}
	return m.Stats(), nil
}
