package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/forest-escape/internal/core"
	"github.com/vovakirdan/forest-escape/internal/forest"
)

// noticeTicks is how many ticks a transient notice stays on screen.
const noticeTicks = 3

// GameModel is the Bubble Tea model that drives one forest.Session.
// Ticks and key presses arrive on the same update loop, so the session
// only ever sees one caller.
type GameModel struct {
	session    *forest.Session
	loop       int64
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	paused     bool
	notice     string
	noticeTTL  int
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for session. The screen leaves one row for the help bar.
func NewGameModel(session *forest.Session, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		session: session,
		loop:    newLoopID(),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.loop, m.config.TickInterval)
}

// Update handles messages and advances the session.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionPause:
		if m.session.Status() == forest.StatusRunning {
			m.paused = !m.paused
		}

	case core.ActionRestart:
		m.restart()

	case core.ActionConfirm:
		if m.session.Status() == forest.StatusCleared {
			m.restart()
		}
	}

	if !action.IsMove() || m.paused {
		return m, nil
	}
	if dir, ok := Direction(action); ok {
		if _, ev := m.session.MovePlayer(dir); ev.Kind != forest.EventNone {
			m.handleEvent(ev)
		}
	}

	return m, nil
}

// handleTick advances the clock unless paused. The tick loop keeps
// running across pauses and restarts.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if !m.paused {
		if ev := m.session.Tick(); ev.Kind != forest.EventNone {
			m.handleEvent(ev)
		}
		if m.noticeTTL > 0 {
			m.noticeTTL--
			if m.noticeTTL == 0 {
				m.notice = ""
			}
		}
	}

	return m, tickCmd(m.loop, m.config.TickInterval)
}

func (m *GameModel) handleEvent(ev forest.Event) {
	switch ev.Kind {
	case forest.EventCaught:
		m.setNotice(fmt.Sprintf("A wolf caught you! Lives left: %d", ev.Lives))
		m.logger.Debug("player caught", "player", m.session.PlayerName(), "lives", ev.Lives)

	case forest.EventLevelCleared, forest.EventGameOver:
		m.notice, m.noticeTTL = "", 0
		m.logger.Info("run finished",
			"player", ev.Result.PlayerName,
			"level", ev.Result.LevelName,
			"outcome", ev.Result.Outcome,
			"mushrooms", ev.Result.Mushrooms,
			"ticks", ev.Result.ElapsedTicks,
		)
	}
}

func (m *GameModel) setNotice(text string) {
	m.notice = text
	m.noticeTTL = noticeTicks
}

func (m *GameModel) restart() {
	m.session.Restart()
	m.paused = false
	m.notice, m.noticeTTL = "", 0
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	forest.Render(m.session, m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".forest", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	name := strings.ReplaceAll(strings.ToLower(m.session.LevelName()), " ", "")
	filename := fmt.Sprintf("%s_%s.txt", name, time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.setNotice("Screenshot saved")
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	forest.Render(m.session, m.screen)
	switch {
	case m.paused:
		forest.Overlay(m.screen, "PAUSED", "P: resume")
	case m.notice != "":
		m.screen.DrawTextCentered(m.screen.Height()-1, m.notice)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns the session being played.
func (m GameModel) Session() *forest.Session {
	return m.session
}

// Paused reports whether the clock is stopped.
func (m GameModel) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays session in a standalone program until the user quits.
func Run(session *forest.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(session, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
