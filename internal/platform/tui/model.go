package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chaosflap/internal/core"
	"github.com/vovakirdan/chaosflap/internal/game"
	"github.com/vovakirdan/chaosflap/internal/storage"
)

// Model is the Bubble Tea model running the game loop. It owns the engine,
// the cell buffer, and the per-tick input frame, and persists finished runs.
type Model struct {
	eng        *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	logger     *log.Logger
	quitting   bool
	runSaved   bool // Whether the current game over has been persisted
}

// NewModel creates a new Bubble Tea model around a fresh engine. The best
// score on record is seeded into the engine so a first-session record does
// not trigger the record-break event spuriously.
func NewModel(eng *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	eng.Reset(cfg.Seed)

	if store != nil {
		if best, err := store.HighScore(); err == nil {
			eng.SetBestScore(best)
		}
	}

	return Model{
		eng:        eng,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "chaosflap",
		}),
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

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in fixed
// world units, so resizing only rescales the rendering.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick applies the accumulated input frame and runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionToggleChaos) {
		m.eng.ToggleChaos()
	}
	if m.inputFrame.Has(core.ActionCycleCurve) {
		m.eng.CycleCurve()
	}
	if m.inputFrame.Has(core.ActionImpulse) {
		if m.eng.Status() == game.StatusOver {
			m.runSaved = false // Impulse restarts: a new run begins
		}
		m.eng.Impulse()
	}
	m.inputFrame.Clear()

	m.eng.Step()

	// Persist the finished run once, best-effort
	if m.eng.Status() == game.StatusOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished game. Failures are logged, never fatal.
func (m *Model) saveRun() {
	if m.store == nil || m.eng.Score() == 0 {
		return
	}

	cfg := m.eng.Config()
	run := storage.Run{
		Score: m.eng.Score(),
		Ticks: m.eng.Tick(),
		Curve: cfg.Physics.MotionCurve,
		Chaos: cfg.Chaos.Enabled,
		Seed:  m.config.Seed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.eng.Snapshot().Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".chaosflap", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("chaosflap_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.eng.Snapshot().Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(eng *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(eng, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
