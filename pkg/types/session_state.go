package types

// SessionState is the coarse navigation state of a play session.
type SessionState int

const (
	StateTitle SessionState = iota
	StateLevelSelect
	StatePlaying
	StatePaused
	StateAbilitySelect
	StateDebugMenu
	StateGameOver
	StateVictory
)

var sessionStateNames = [...]string{
	StateTitle:         "title",
	StateLevelSelect:   "level_select",
	StatePlaying:       "playing",
	StatePaused:        "paused",
	StateAbilitySelect: "ability_select",
	StateDebugMenu:     "debug_menu",
	StateGameOver:      "game_over",
	StateVictory:       "victory",
}

func (s SessionState) String() string {
	if s >= 0 && int(s) < len(sessionStateNames) {
		return sessionStateNames[s]
	}
	return "unknown"
}
