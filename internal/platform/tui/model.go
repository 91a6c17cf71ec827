package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rps/internal/config"
	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/rps"
	"github.com/vovakirdan/tui-rps/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config  config.RPSConfig
	Store   *storage.Store // Optional round journal
	Logger  *log.Logger    // Optional; discards when nil
	Session string         // Player name or SSH user, recorded in the journal
}

// Model is the Bubble Tea model for the Rock-Paper-Scissors game screen.
type Model struct {
	game    *rps.Game
	store   *storage.Store
	logger  *log.Logger
	session string
	gameID  string

	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	styles Styles

	cursor   int        // Focused move control
	last     *rps.Round // Most recent round of the current game
	quitting bool

	// Filled when the game ends
	history table.Model
	tally   storage.Tally
	best    int
	hasBest bool
}

// NewModel creates a new game model and starts the first game.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:    rps.New(opts.Config.GameRules(), cfg.Seed),
		store:   opts.Store,
		logger:  logger,
		session: opts.Session,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		styles:  NewStyles(opts.Config.Theme),
	}
	m.startJournal()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// The game-over box only offers Restart; move choices are ignored.
	if m.game.IsGameOver() {
		switch {
		case action == core.ActionConfirm || action == core.ActionRestart:
			m = m.restart()
		case action.IsMove():
			m.logger.Debug("move ignored after game over", "game", m.gameID, "action", action)
		}
		return m, nil
	}

	switch action {
	case core.ActionLeft:
		m.cursor = (m.cursor + len(rps.Moves()) - 1) % len(rps.Moves())
	case core.ActionRight:
		m.cursor = (m.cursor + 1) % len(rps.Moves())
	case core.ActionConfirm:
		m = m.play(rps.Moves()[m.cursor])
	case core.ActionRock:
		m = m.play(rps.Rock)
	case core.ActionPaper:
		m = m.play(rps.Paper)
	case core.ActionScissors:
		m = m.play(rps.Scissors)
	}

	return m, nil
}

// play resolves one player move and journals it.
func (m Model) play(move rps.Move) Model {
	round, err := m.game.Play(move)
	if err != nil {
		m.logger.Warn("move rejected", "game", m.gameID, "move", move, "error", err)
		return m
	}
	m.last = &round

	m.logger.Info("round played",
		"game", m.gameID,
		"round", round.Number,
		"goal", rps.Prompt(round.MustWin),
		"computer", round.ComputerMove,
		"player", round.PlayerMove,
		"outcome", round.Outcome,
		"score", round.ScoreAfter,
	)

	if m.store != nil {
		if err := m.store.SaveRound(m.gameID, round); err != nil {
			m.logger.Warn("could not journal round", "game", m.gameID, "error", err)
		}
	}

	if m.game.IsGameOver() {
		m = m.finish()
	}
	return m
}

// finish records the final score and prepares the game-over box.
func (m Model) finish() Model {
	score := m.game.Score()
	m.logger.Info("game over", "game", m.gameID, "session", m.session, "score", score)

	rounds := m.game.History()
	m.tally = tallyRounds(rounds)
	m.hasBest = false

	if m.store != nil {
		if err := m.store.FinishGame(m.gameID, score); err != nil {
			m.logger.Warn("could not journal game", "game", m.gameID, "error", err)
		}
		if journaled, err := m.store.Rounds(m.gameID); err == nil && len(journaled) == len(rounds) {
			rounds = journaled
		}
		if t, err := m.store.Tally(m.gameID); err == nil && t.Rounds() == len(rounds) {
			m.tally = t
		}
		if best, ok, err := m.store.BestScore(); err == nil && ok {
			m.best = best
			m.hasBest = true
		}
	}

	m.history = newHistoryTable(rounds)
	return m
}

// restart resets the game after game over and opens a new journal entry.
func (m Model) restart() Model {
	if err := m.game.Reset(); err != nil {
		m.logger.Warn("restart rejected", "game", m.gameID, "error", err)
		return m
	}
	m.last = nil
	m.cursor = 0
	m.startJournal()
	return m
}

// startJournal assigns a new game ID and records the game start.
func (m *Model) startJournal() {
	m.gameID = uuid.NewString()
	m.logger.Info("game started",
		"game", m.gameID,
		"session", m.session,
		"goal", rps.Prompt(m.game.MustWin()),
		"computer", m.game.ComputerMove(),
	)
	if m.store == nil {
		return
	}
	if err := m.store.StartGame(m.gameID, m.session); err != nil {
		m.logger.Warn("could not journal game start", "game", m.gameID, "error", err)
	}
}

// tallyRounds counts outcomes without the journal.
func tallyRounds(rounds []rps.Round) storage.Tally {
	var t storage.Tally
	for _, r := range rounds {
		switch r.Outcome {
		case rps.Win:
			t.Wins++
		case rps.Lose:
			t.Losses++
		default:
			t.Ties++
		}
	}
	return t
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.game.IsGameOver() {
		return m.place(m.gameOverView())
	}
	return m.place(m.playView())
}

// place centers content on the screen.
func (m Model) place(content string) string {
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// playView renders score, prompt, computer move and the move controls.
func (m Model) playView() string {
	s := m.styles
	state := m.game.State()

	status := s.Muted.Render("Pick the move that makes you " + strings.ToLower(rps.Prompt(m.game.MustWin())) + ".")
	if m.last != nil {
		status = s.lastRound(*m.last)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render("R O C K   P A P E R   S C I S S O R S"),
		"",
		s.Score.Render(fmt.Sprintf("Score: %d", state.Score))+
			s.Muted.Render(fmt.Sprintf("    Round %d/%d", state.RoundsPlayed+1, state.MaxRounds)),
		"",
		s.objective(m.game.MustWin()),
		s.Computer.Render(m.game.ComputerMove().String()),
		"",
		s.buttons(m.cursor),
		"",
		status,
		"",
		m.help.View(m.keys),
	)
}

// gameOverView renders the modal end-of-game box.
func (m Model) gameOverView() string {
	s := m.styles

	lines := []string{
		s.Title.Render("Game Over"),
		"",
		s.Score.Render(fmt.Sprintf("Your final score: %d", m.game.Score())),
		s.Muted.Render(fmt.Sprintf("Wins %d  Losses %d  Ties %d", m.tally.Wins, m.tally.Losses, m.tally.Ties)),
	}
	if m.hasBest {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("Best this session: %d", m.best)))
	}
	lines = append(lines,
		"",
		m.history.View(),
		"",
		s.Focused.Render("Restart"),
	)

	box := s.Modal.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.JoinVertical(lipgloss.Center, box, "", m.help.View(m.keys))
}

// GameState returns the engine summary (for the platform and tests).
func (m Model) GameState() core.GameState {
	return m.game.State()
}

// GameID returns the journal ID of the current game.
func (m Model) GameID() string {
	return m.gameID
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
