package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

var numberKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func held(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// handleInput maps keys to session commands for the current state.
func (a *App) handleInput() error {
	s := a.session
	switch s.State() {
	case types.StateTitle:
		switch {
		case pressed(ebiten.KeyEnter, ebiten.KeySpace):
			s.OpenLevelSelect()
		case pressed(ebiten.KeyF1):
			s.OpenDebugMenu()
		case pressed(ebiten.KeyEscape):
			return ebiten.Termination
		}

	case types.StateLevelSelect:
		a.updateLevelCursor()
		switch {
		case pressed(ebiten.KeyEnter, ebiten.KeySpace):
			s.StartLevel(a.cursor)
		case pressed(ebiten.KeyEscape):
			s.ReturnToTitle()
		}

	case types.StatePlaying:
		a.updatePlaying()

	case types.StatePaused:
		switch {
		case pressed(ebiten.KeyP, ebiten.KeyEscape):
			s.Resume()
		case pressed(ebiten.KeyT):
			s.ReturnToTitle()
		}

	case types.StateAbilitySelect:
		offered := s.OfferedAbilities()
		for i, k := range numberKeys {
			if i < len(offered) && pressed(k) {
				s.SelectAbility(offered[i].ID)
				return nil
			}
		}
		if pressed(ebiten.KeyS, ebiten.KeyEscape) {
			s.SkipAbility()
		}

	case types.StateDebugMenu:
		switch {
		case pressed(ebiten.KeyH):
			s.DebugHeal()
		case pressed(ebiten.KeyR):
			s.DebugRefillShield()
		case pressed(ebiten.KeyU):
			s.DebugUnlockAll()
		case pressed(ebiten.KeyF):
			s.DebugToggleRapidFire()
		case pressed(ebiten.KeyEscape, ebiten.KeyF1):
			s.CloseDebugMenu()
		}

	case types.StateGameOver:
		switch {
		case pressed(ebiten.KeyR, ebiten.KeyEnter):
			s.Retry()
		case pressed(ebiten.KeyL):
			s.OpenLevelSelect()
		case pressed(ebiten.KeyT, ebiten.KeyEscape):
			s.ReturnToTitle()
		}

	case types.StateVictory:
		switch {
		case pressed(ebiten.KeyL):
			s.OpenLevelSelect()
		case pressed(ebiten.KeyEnter, ebiten.KeyEscape):
			s.ReturnToTitle()
		}
	}
	return nil
}

func (a *App) updatePlaying() {
	s := a.session
	switch {
	case pressed(ebiten.KeyP, ebiten.KeyEscape):
		s.RequestPause()
		return
	case pressed(ebiten.KeyQ, ebiten.KeyTab):
		s.RequestAbilityMenu()
		return
	case pressed(ebiten.KeyF1):
		s.OpenDebugMenu()
		return
	}

	var dx, dy float64
	if held(ebiten.KeyLeft, ebiten.KeyA) {
		dx--
	}
	if held(ebiten.KeyRight, ebiten.KeyD) {
		dx++
	}
	if held(ebiten.KeyUp, ebiten.KeyW) {
		dy--
	}
	if held(ebiten.KeyDown, ebiten.KeyS) {
		dy++
	}
	s.SetMove(dx, dy)
	if held(ebiten.KeySpace) {
		s.RequestFire()
	}
}

func (a *App) updateLevelCursor() {
	last := a.session.Config().FinalLevel()
	switch {
	case pressed(ebiten.KeyUp, ebiten.KeyLeft):
		a.cursor--
	case pressed(ebiten.KeyDown, ebiten.KeyRight):
		a.cursor++
	}
	for n := 1; n <= last; n++ {
		if n <= len(numberKeys) && pressed(numberKeys[n-1]) {
			a.cursor = n
		}
	}
	a.cursor = max(1, min(last, a.cursor))
}
