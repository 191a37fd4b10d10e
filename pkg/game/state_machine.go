package game

import (
	"log"

	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// transitions lists the legal moves between session states.
var transitions = map[types.SessionState][]types.SessionState{
	types.StateTitle:         {types.StateLevelSelect, types.StateDebugMenu},
	types.StateLevelSelect:   {types.StatePlaying, types.StateTitle},
	types.StatePlaying:       {types.StatePaused, types.StateAbilitySelect, types.StateDebugMenu, types.StateGameOver, types.StateVictory, types.StateLevelSelect},
	types.StatePaused:        {types.StatePlaying, types.StateTitle},
	types.StateAbilitySelect: {types.StatePlaying},
	types.StateDebugMenu:     {types.StatePlaying, types.StateTitle},
	types.StateGameOver:      {types.StatePlaying, types.StateTitle, types.StateLevelSelect},
	types.StateVictory:       {types.StateTitle, types.StateLevelSelect},
}

// StateMachine holds the coarse navigation state of a session and rejects
// transitions that are not in the table above.
type StateMachine struct {
	current  types.SessionState
	previous types.SessionState
	onChange func(from, to types.SessionState)
}

// NewStateMachine starts at the title screen.
func NewStateMachine() *StateMachine {
	return &StateMachine{current: types.StateTitle, previous: types.StateTitle}
}

// Current returns the active state.
func (sm *StateMachine) Current() types.SessionState {
	return sm.current
}

// Previous returns the state that was active before the last transition.
func (sm *StateMachine) Previous() types.SessionState {
	return sm.previous
}

// OnChange installs a hook called after every successful transition.
func (sm *StateMachine) OnChange(fn func(from, to types.SessionState)) {
	sm.onChange = fn
}

// CanTransition reports whether moving to `to` is legal from the current state.
func (sm *StateMachine) CanTransition(to types.SessionState) bool {
	for _, s := range transitions[sm.current] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves to `to` if legal and reports whether it did.
func (sm *StateMachine) Transition(to types.SessionState) bool {
	if !sm.CanTransition(to) {
		log.Printf("[StateMachine] Rejected transition %s -> %s", sm.current, to)
		return false
	}
	from := sm.current
	sm.previous = from
	sm.current = to
	if sm.onChange != nil {
		sm.onChange(from, to)
	}
	return true
}
