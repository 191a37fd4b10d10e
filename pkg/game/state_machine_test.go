package game

import (
	"testing"

	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

func TestStateMachine_Transitions(t *testing.T) {
	tests := []struct {
		name string
		path []types.SessionState
		want []bool
	}{
		{
			name: "normal play",
			path: []types.SessionState{types.StateLevelSelect, types.StatePlaying, types.StatePaused, types.StatePlaying},
			want: []bool{true, true, true, true},
		},
		{
			name: "cannot play from title",
			path: []types.SessionState{types.StatePlaying},
			want: []bool{false},
		},
		{
			name: "ability select returns only to playing",
			path: []types.SessionState{types.StateLevelSelect, types.StatePlaying, types.StateAbilitySelect, types.StatePaused, types.StatePlaying},
			want: []bool{true, true, true, false, true},
		},
		{
			name: "victory to title",
			path: []types.SessionState{types.StateLevelSelect, types.StatePlaying, types.StateVictory, types.StatePlaying, types.StateTitle},
			want: []bool{true, true, true, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewStateMachine()
			for i, to := range tt.path {
				if got := sm.Transition(to); got != tt.want[i] {
					t.Errorf("step %d (%s -> %s) = %v, want %v", i, sm.Current(), to, got, tt.want[i])
				}
			}
		})
	}
}

func TestStateMachine_OnChangeAndPrevious(t *testing.T) {
	sm := NewStateMachine()
	var calls int
	sm.OnChange(func(from, to types.SessionState) { calls++ })

	sm.Transition(types.StateDebugMenu)
	if sm.Previous() != types.StateTitle {
		t.Errorf("Previous() = %s, want title", sm.Previous())
	}
	sm.Transition(types.StateVictory) // illegal
	if calls != 1 {
		t.Errorf("OnChange called %d times, want 1", calls)
	}
}
