package app

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"go-quiz/internal/api"
	"go-quiz/internal/battle"
	"go-quiz/internal/bridge"
	"go-quiz/internal/reporting"
	"go-quiz/internal/theme"
	"go-quiz/internal/tracking"
)

var ErrMultiplayerUnavailable = errors.New("multiplayer is not available yet")

// Deps are the collaborators of the screen controller.
type Deps struct {
	Service  api.Service
	Tracker  tracking.Tracker
	Pixel    tracking.Tracker
	Reporter reporting.Reporter
	Bridge   bridge.Bridge
	Logger   *zap.Logger

	// QuestionTime is the countdown per question; zero disables it.
	QuestionTime time.Duration
}

// Model is the quiz screen controller. It owns the battle reducer state and
// applies one action at a time from the bubbletea event loop.
type Model struct {
	deps    Deps
	ctx     context.Context
	router  *Router
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	palette theme.Palette

	loading bool
	alert   string

	user      *api.User
	gameMode  api.GameMode
	gameType  api.GameType
	gameTypes []api.GameType
	cursor    int

	battle    battle.State
	startSeq  int
	answering bool
	timeLeft  int
	timerSeq  int

	results    *battle.Battle
	scoreboard []api.ScoreboardEntry
}

func New(ctx context.Context, deps Deps) *Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Tracker == nil {
		deps.Tracker = tracking.Nop{}
	}
	if deps.Pixel == nil {
		deps.Pixel = tracking.Nop{}
	}
	if deps.Reporter == nil {
		deps.Reporter = reporting.NewLog(deps.Logger, false)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		deps:     deps,
		ctx:      ctx,
		keys:     newKeyMap(),
		help:     help.New(),
		spinner:  sp,
		palette:  theme.For(theme.BrightLight),
		loading:  true,
		gameMode: api.ModeSingle,
	}
	m.router = newRouter(deps.Logger.Named("router"), m.discardBattle)
	return m
}

// Screen returns the active screen.
func (m *Model) Screen() Screen {
	return m.router.Screen()
}

func (m *Model) Init() tea.Cmd {
	m.deps.Tracker.ReachGoal(tracking.GoalOpenApp, nil)
	return tea.Batch(
		m.spinner.Tick,
		m.initBridge,
		m.waitForBridge,
		m.fetchUser(true),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case bridgeMsg:
		if msg.Type == bridge.UpdateConfig {
			m.palette = theme.For(theme.Parse(msg.Scheme))
		}
		return m, m.waitForBridge

	case userMsg:
		// The popout is cleared whether or not the fetch succeeded.
		m.loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		u := msg.user
		m.user = &u
		if msg.initial {
			m.deps.Tracker.Identify(u.ID, u.VKID)
		}

	case gameTypesMsg:
		m.loading = false
		m.gameTypes = msg
		m.cursor = 0

	case battleStartedMsg:
		// Only the latest start request seeds the battle screen.
		if msg.seq != m.startSeq || m.Screen() != ScreenBattle {
			return m, nil
		}
		m.loading = false
		return m, m.dispatch(battle.SetBattle{Battle: msg.battle})

	case answerMsg:
		if !m.playing(msg.battleID) {
			return m, nil
		}
		m.answering = false
		return m, m.dispatch(battle.UpdateQuestion{Question: msg.question})

	case battleFinishedMsg:
		b := battle.Battle(msg)
		if m.Screen() != ScreenBattle || !m.playing(b.ID) {
			return m, nil
		}
		m.loading = false
		m.results = &b
		if err := m.router.Go(m.ctx, evFinishBattle); err != nil {
			return m, m.fail(err)
		}
		m.deps.Tracker.ReachGoal(tracking.GoalFinishGame, nil)
		m.deps.Pixel.ReachGoal(tracking.GoalConversion, nil)
		return m, m.fetchUser(false)

	case scoreboardMsg:
		m.loading = false
		m.scoreboard = msg

	case TickMsg:
		return m, m.handleTick(msg)

	case errMsg:
		m.loading = false
		m.answering = false
		return m, m.fail(msg.err)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	// Any key dismisses the alert popout.
	if m.alert != "" {
		m.alert = ""
		return nil
	}
	if m.loading {
		return nil
	}
	if key.Matches(msg, m.keys.Tab) {
		if m.Screen() == ScreenScoreboard {
			return m.goHome()
		}
		return m.openScoreboard()
	}

	switch m.Screen() {
	case ScreenHome:
		switch {
		case key.Matches(msg, m.keys.Single):
			return m.chooseGameType(api.ModeSingle)
		case key.Matches(msg, m.keys.Multi):
			return m.chooseGameType(api.ModeMulti)
		case key.Matches(msg, m.keys.Scoreboard):
			return m.openScoreboard()
		}

	case ScreenChooseGameType:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, len(m.gameTypes))
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, len(m.gameTypes))
		case key.Matches(msg, m.keys.Select):
			if len(m.gameTypes) > 0 {
				return m.startBattle(m.gameTypes[m.cursor])
			}
		case key.Matches(msg, m.keys.Back):
			return m.goHome()
		}

	case ScreenBattle:
		return m.handleBattleKey(msg)

	case ScreenResults:
		switch {
		case key.Matches(msg, m.keys.Retry):
			return m.startBattle(m.gameType)
		case key.Matches(msg, m.keys.Back):
			return m.goHome()
		}

	case ScreenScoreboard:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return tea.Batch(m.spinner.Tick, m.fetchScoreboard)
		case key.Matches(msg, m.keys.Back):
			return m.goHome()
		}
	}
	return nil
}

func (m *Model) handleBattleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Back) {
		return m.chooseGameType(m.gameMode)
	}

	q := m.battle.ActiveQuestion
	if q == nil || m.answering {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if !q.Answered() {
			m.moveCursor(-1, len(q.Options))
		}
	case key.Matches(msg, m.keys.Down):
		if !q.Answered() {
			m.moveCursor(1, len(q.Options))
		}
	case key.Matches(msg, m.keys.Select):
		if !q.Answered() {
			if len(q.Options) == 0 {
				return nil
			}
			return m.submitAnswer(q.Options[m.cursor], false)
		}
		return m.advance()
	}
	return nil
}

func (m *Model) handleTick(msg TickMsg) tea.Cmd {
	if msg.seq != m.timerSeq || m.Screen() != ScreenBattle || m.answering {
		return nil
	}
	if q := m.battle.ActiveQuestion; q == nil || q.Answered() {
		return nil
	}
	m.timeLeft--
	if m.timeLeft <= 0 {
		m.timeLeft = 0
		return m.submitAnswer("", true)
	}
	return tickCmd(m.timerSeq)
}

// dispatch applies a battle action. Failures are reported and leave the state untouched.
func (m *Model) dispatch(a battle.Action) tea.Cmd {
	next, err := battle.Reduce(m.battle, a)
	if err != nil {
		return m.fail(err)
	}

	prev := m.battle.ActiveQuestion
	m.battle = next

	q := next.ActiveQuestion
	if q == nil {
		return nil
	}
	if q.Answered() {
		m.stopTimer()
		return nil
	}
	// A new active question resets the selection and the countdown.
	if prev == nil || prev.ID != q.ID {
		m.cursor = 0
		return m.startTimer()
	}
	return nil
}

// advance moves to the next question, or finishes the battle on the last one.
func (m *Model) advance() tea.Cmd {
	if m.battle.HasNextQuestion {
		return m.dispatch(battle.GoToNextQuestion{})
	}
	if !m.battle.Finished() || m.battle.Battle == nil {
		return nil
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.finishBattleCmd(m.battle.Battle.ID))
}

func (m *Model) submitAnswer(answer string, timedOut bool) tea.Cmd {
	b, q := m.battle.Battle, m.battle.ActiveQuestion
	if b == nil || q == nil {
		return nil
	}
	req := api.AnswerRequest{Answer: answer, TimedOut: timedOut}
	if m.deps.QuestionTime > 0 {
		req.SecondsLeft = m.timeLeft
	}
	m.answering = true
	m.stopTimer()
	return m.answerCmd(b.ID, q.ID, req)
}

func (m *Model) chooseGameType(mode api.GameMode) tea.Cmd {
	m.gameMode = mode
	if err := m.router.Go(m.ctx, evChooseGameType); err != nil {
		return m.fail(err)
	}
	m.cursor = 0
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.fetchGameTypes)
}

func (m *Model) startBattle(t api.GameType) tea.Cmd {
	m.gameType = t
	m.deps.Tracker.ReachGoal(tracking.GoalStartGame, map[string]string{
		"type": string(t),
		"mode": string(m.gameMode),
	})
	if m.gameMode != api.ModeSingle {
		return m.fail(ErrMultiplayerUnavailable)
	}
	if err := m.router.Go(m.ctx, evStartBattle); err != nil {
		return m.fail(err)
	}
	m.results = nil
	m.loading = true
	m.startSeq++
	return tea.Batch(m.spinner.Tick, m.startBattleCmd(t))
}

// playing reports whether id is the battle on screen.
func (m *Model) playing(id int) bool {
	return m.battle.Battle != nil && m.battle.Battle.ID == id
}

func (m *Model) goHome() tea.Cmd {
	if err := m.router.Go(m.ctx, evGoHome); err != nil {
		return m.fail(err)
	}
	return nil
}

func (m *Model) openScoreboard() tea.Cmd {
	if err := m.router.Go(m.ctx, evOpenScoreboard); err != nil {
		return m.fail(err)
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.fetchScoreboard)
}

func (m *Model) startTimer() tea.Cmd {
	m.timerSeq++
	if m.deps.QuestionTime <= 0 {
		return nil
	}
	m.timeLeft = int(m.deps.QuestionTime / time.Second)
	return tickCmd(m.timerSeq)
}

func (m *Model) stopTimer() {
	m.timerSeq++
}

func (m *Model) discardBattle() {
	m.stopTimer()
	m.battle = battle.State{}
	m.answering = false
	m.cursor = 0
}

func (m *Model) moveCursor(delta, n int) {
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

// fail reports err and shows it in the alert popout.
func (m *Model) fail(err error) tea.Cmd {
	m.deps.Reporter.Report(err)
	m.deps.Logger.Warn("action failed", zap.Error(err), zap.String("screen", string(m.Screen())))
	m.alert = err.Error()
	return nil
}
