package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go-quiz/internal/api"
	"go-quiz/internal/battle"
	"go-quiz/internal/bridge"
)

type userMsg struct {
	user    api.User
	initial bool
	err     error
}

type gameTypesMsg []api.GameType

// battleStartedMsg answers the start request numbered seq.
type battleStartedMsg struct {
	seq    int
	battle battle.Battle
}

type answerMsg struct {
	battleID int
	question battle.Question
}

type battleFinishedMsg battle.Battle

type scoreboardMsg []api.ScoreboardEntry

type bridgeMsg bridge.Event

type errMsg struct{ err error }

// TickMsg counts down the active question. Ticks from an older timer are ignored.
type TickMsg struct {
	seq int
}

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{seq: seq}
	})
}

func (m *Model) initBridge() tea.Msg {
	if err := m.deps.Bridge.Init(m.ctx); err != nil {
		return errMsg{err}
	}
	return nil
}

func (m *Model) waitForBridge() tea.Msg {
	ev, ok := <-m.deps.Bridge.Events()
	if !ok {
		return nil
	}
	return bridgeMsg(ev)
}

// fetchUser loads the user. On the initial request notifications are
// blocked on the backend when the host platform has them disabled.
func (m *Model) fetchUser(initial bool) tea.Cmd {
	svc, br, ctx := m.deps.Service, m.deps.Bridge, m.ctx
	return func() tea.Msg {
		u, err := svc.FetchUser(ctx)
		if err != nil {
			return userMsg{initial: initial, err: err}
		}
		if initial && u.NotificationsStatus == api.NotificationsAllow && !br.NotificationsEnabled() {
			u, err = svc.BlockNotifications(ctx)
		}
		return userMsg{user: u, initial: initial, err: err}
	}
}

func (m *Model) fetchGameTypes() tea.Msg {
	types, err := m.deps.Service.GameTypes(m.ctx)
	if err != nil {
		return errMsg{err}
	}
	return gameTypesMsg(types)
}

func (m *Model) startBattleCmd(t api.GameType) tea.Cmd {
	svc, ctx, seq := m.deps.Service, m.ctx, m.startSeq
	return func() tea.Msg {
		b, err := svc.StartBattle(ctx, t)
		if err != nil {
			return errMsg{err}
		}
		return battleStartedMsg{seq: seq, battle: b}
	}
}

func (m *Model) answerCmd(battleID, questionID int, req api.AnswerRequest) tea.Cmd {
	svc, ctx := m.deps.Service, m.ctx
	return func() tea.Msg {
		q, err := svc.Answer(ctx, battleID, questionID, req)
		if err != nil {
			return errMsg{err}
		}
		return answerMsg{battleID: battleID, question: q}
	}
}

func (m *Model) finishBattleCmd(battleID int) tea.Cmd {
	svc, ctx := m.deps.Service, m.ctx
	return func() tea.Msg {
		b, err := svc.GetBattle(ctx, battleID)
		if err != nil {
			return errMsg{err}
		}
		return battleFinishedMsg(b)
	}
}

func (m *Model) fetchScoreboard() tea.Msg {
	entries, err := m.deps.Service.Scoreboard(m.ctx)
	if err != nil {
		return errMsg{err}
	}
	return scoreboardMsg(entries)
}
