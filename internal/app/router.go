package app

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// Screen is a panel of the quiz client.
type Screen string

const (
	ScreenHome           Screen = "home"
	ScreenChooseGameType Screen = "choose-game-type"
	ScreenBattle         Screen = "battle"
	ScreenResults        Screen = "results"
	ScreenScoreboard     Screen = "scoreboard"
)

// Router events.
const (
	evChooseGameType = "chooseGameType"
	evStartBattle    = "startBattle"
	evFinishBattle   = "finishBattle"
	evGoHome         = "goHome"
	evOpenScoreboard = "openScoreboard"
)

// Router moves between screens.
type Router struct {
	fsm *fsm.FSM
}

func newRouter(logger *zap.Logger, onLeaveBattle func()) *Router {
	return &Router{
		fsm: fsm.NewFSM(
			string(ScreenHome),
			getScreenTransitions(),
			getScreenCallbacks(logger, onLeaveBattle),
		),
	}
}

// Screen returns the current screen.
func (r *Router) Screen() Screen {
	return Screen(r.fsm.Current())
}

// Can reports whether event is allowed from the current screen.
func (r *Router) Can(event string) bool {
	return r.fsm.Can(event)
}

// Go fires event. Staying on the same screen is not an error.
func (r *Router) Go(ctx context.Context, event string) error {
	err := r.fsm.Event(ctx, event)
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return nil
	}
	return err
}

func getScreenTransitions() []fsm.EventDesc {
	home := string(ScreenHome)
	choose := string(ScreenChooseGameType)
	play := string(ScreenBattle)
	results := string(ScreenResults)
	scoreboard := string(ScreenScoreboard)

	return fsm.Events{
		{Name: evChooseGameType, Src: []string{home, play, results}, Dst: choose},
		{Name: evStartBattle, Src: []string{choose, results}, Dst: play},
		{Name: evFinishBattle, Src: []string{play}, Dst: results},
		{Name: evGoHome, Src: []string{home, choose, play, results, scoreboard}, Dst: home},
		{Name: evOpenScoreboard, Src: []string{home, choose, play, results, scoreboard}, Dst: scoreboard},
	}
}

func getScreenCallbacks(logger *zap.Logger, onLeaveBattle func()) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			logger.Debug("screen changed", zap.String("from", e.Src), zap.String("to", e.Dst), zap.String("event", e.Event))
		},
		// The battle is discarded when its screen unmounts.
		"leave_" + string(ScreenBattle): func(_ context.Context, e *fsm.Event) {
			if onLeaveBattle != nil {
				onLeaveBattle()
			}
		},
	}
}
