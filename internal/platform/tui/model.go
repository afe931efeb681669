package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/sim"
	"github.com/tilemine/tilemine/internal/storage"
	"github.com/tilemine/tilemine/internal/theme"
)

// Options bundles everything needed to start a sandbox session in the
// terminal.
type Options struct {
	Runtime core.RuntimeConfig
	Sim     sim.Params
	Theme   theme.Theme
	Store   *storage.Store
}

// Model is the Bubble Tea model driving one sandbox session.
type Model struct {
	session  *sim.Session
	screen   *core.Screen
	renderer *Renderer
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     *holdSet

	themes   []theme.Theme
	themeIdx int

	// cursor is the world tile under the mouse, valid once the first
	// motion event arrives.
	cursorX    int
	cursorY    int
	haveCursor bool

	jumpQueued bool
	lastSpace  time.Time
	showHelp   bool

	quitting   bool
	statsSaved bool
}

// NewModel creates a session model from the given options.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	params := opts.Sim
	params.World.Seed = cfg.Seed

	catalog := theme.Catalog()
	themeIdx := 0
	for i, t := range catalog {
		if t.Name == opts.Theme.Name {
			themeIdx = i
			break
		}
	}

	session := sim.NewSession(theme.BuildPalette(catalog[themeIdx].BaseHue), params)

	return Model{
		session:  session,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(catalog[themeIdx]),
		store:    opts.Store,
		config:   cfg,
		keys:     NewKeyMapper(),
		held:     newHoldSet(),
		themes:   catalog,
		themeIdx: themeIdx,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}

	if slot := m.keys.SlotKey(msg); slot >= 0 {
		m.session.Inventory().Select(slot)
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveStats()
		m.quitting = true
		return m, tea.Quit
	}

	now := time.Now()
	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionCrouch:
		m.held.Press(action, now)
	case core.ActionJump:
		// A quick second tap flips flight mode instead of jumping again.
		if !m.lastSpace.IsZero() && now.Sub(m.lastSpace) <= doubleTapWindow {
			m.session.ToggleFlight()
			m.lastSpace = time.Time{}
			m.jumpQueued = false
		} else {
			m.jumpQueued = true
			m.lastSpace = now
		}
	case core.ActionToggleFlight:
		m.session.ToggleFlight()
	case core.ActionCycleTheme:
		m.cycleTheme()
	case core.ActionNextSlot:
		m.session.Inventory().Next()
	case core.ActionPrevSlot:
		m.session.Inventory().Prev()
	}

	return m, nil
}

// handleMouse tracks the crosshair and applies block edits.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cam := cameraFor(m.session.Player(), m.screen.Width(), m.screen.Height())
	tx, ty := cam.screenToTile(msg.X, msg.Y)

	// Keep the crosshair within reach of the player.
	px, py := m.session.Player().Tile()
	m.cursorX, m.cursorY = sim.ClampToBuildRadius(px, py, tx, ty, m.session.BuildRadius())
	m.haveCursor = true

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.session.Place(m.cursorX, m.cursorY)
	case tea.MouseButtonRight:
		m.session.Remove(m.cursorX, m.cursorY)
	case tea.MouseButtonWheelUp:
		m.session.Inventory().Prev()
	case tea.MouseButtonWheelDown:
		m.session.Inventory().Next()
	}

	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Frame(time.Now())
	if m.jumpQueued {
		frame.Set(core.ActionJump)
		m.jumpQueued = false
	}

	dt := 1.0 / float64(m.config.TickRate)
	m.session.Step(frameIntent(frame), dt)

	return m, tickCmd(m.config.TickRate)
}

// cycleTheme advances to the next theme and rethemes the world in place.
func (m *Model) cycleTheme() {
	m.themeIdx = (m.themeIdx + 1) % len(m.themes)
	next := m.themes[m.themeIdx]
	m.renderer.SetTheme(next)
	m.session.Retheme(theme.BuildPalette(next.BaseHue))
}

// saveStats persists the session summary. Best effort: the session ends
// either way.
func (m *Model) saveStats() {
	if m.store == nil || m.statsSaved {
		return
	}
	stats := m.session.Stats()
	if stats.Ticks == 0 {
		return
	}

	//nolint:errcheck // Best-effort save on exit
	m.store.SaveSession(storage.SessionRecord{
		Seed:          m.session.World().Seed(),
		Theme:         m.renderer.Theme().Name,
		Ticks:         stats.Ticks,
		BlocksPlaced:  stats.BlocksPlaced,
		BlocksRemoved: stats.BlocksRemoved,
		MaxDistance:   stats.MaxDistance,
		CreatedAt:     time.Now(),
	})
	m.statsSaved = true
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.session, m.cursorX, m.cursorY, m.haveCursor, m.showHelp)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
