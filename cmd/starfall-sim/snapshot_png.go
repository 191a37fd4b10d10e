package main

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/leoprimesmatrix/Starfall/pkg/session"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// renderSnapshot draws one frame as flat shapes and writes it to path.
func renderSnapshot(snap session.Snapshot, path string) error {
	w, h := int(snap.Width), int(snap.Height)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("snapshot has no playfield size")
	}
	dc := gg.NewContext(w, h)

	dc.SetRGB(0.02, 0.02, 0.08)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	dc.SetRGB(0.8, 0.8, 0.9)
	for _, s := range snap.Stars {
		dc.DrawCircle(s.X, s.Y, s.Size/2)
		dc.Fill()
	}

	for _, p := range snap.PowerUps {
		dc.SetRGB(1, 0.85, 0.1)
		dc.DrawCircle(p.X, p.Y, p.W/2)
		dc.Fill()
	}

	for _, e := range snap.Enemies {
		dc.SetRGB(enemyRGB(e.Type))
		box(dc, e.Box)
		dc.Fill()
		hpBar(dc, e.Box, e.Health, e.MaxHealth)
	}

	dc.SetRGB(0.3, 1, 0.4)
	for _, l := range snap.Lasers {
		box(dc, l.Box)
		dc.Fill()
	}
	dc.SetRGB(1, 0.35, 0.2)
	for _, p := range snap.EnemyProjectiles {
		box(dc, p.Box)
		dc.Fill()
	}

	if b := snap.Boss; b != nil {
		dc.SetRGB(0.6, 0.1, 0.6)
		box(dc, b.Box)
		dc.Fill()
		hpBar(dc, b.Box, b.Health, b.MaxHealth)
		if b.Beam != types.BeamIdle {
			dc.SetLineWidth(3)
			if b.Beam == types.BeamActive {
				dc.SetRGB(1, 0.2, 0.2)
				dc.SetLineWidth(8)
			} else {
				dc.SetRGBA(1, 0.2, 0.2, 0.4)
			}
			dc.DrawLine(b.X, b.Y+b.H/2, b.BeamTargetX, float64(h))
			dc.Stroke()
		}
	}

	if s := snap.Ship; s != nil {
		dc.SetRGB(0.3, 0.6, 1)
		box(dc, s.Box)
		dc.Fill()
		if s.Shield > 0 || s.AbilityShield {
			dc.SetRGBA(0.4, 0.8, 1, 0.6)
			dc.SetLineWidth(2)
			dc.DrawCircle(s.X, s.Y, s.W)
			dc.Stroke()
		}
	}

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(fmt.Sprintf("LEVEL %d  %s", snap.Level, snap.LevelName), 8, 14, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("SCORE %d", snap.Score), float64(w)-8, 14, 1, 0.5)
	if snap.Ship != nil {
		dc.DrawStringAnchored(fmt.Sprintf("HP %d/%d  SHIELD %d/%d",
			snap.Ship.Health, snap.Ship.MaxHealth, snap.Ship.Shield, snap.Ship.MaxShield),
			8, float64(h)-12, 0, 0.5)
	}
	dc.DrawStringAnchored(snap.State.String(), float64(w)/2, 14, 0.5, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}

func box(dc *gg.Context, b session.Box) {
	dc.DrawRectangle(b.X-b.W/2, b.Y-b.H/2, b.W, b.H)
}

// hpBar is only drawn for damaged targets.
func hpBar(dc *gg.Context, b session.Box, hp, maxHP int) {
	if maxHP <= 0 || hp >= maxHP {
		return
	}
	pct := float64(hp) / float64(maxHP)
	top := b.Y - b.H/2 - 6
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawRectangle(b.X-b.W/2, top, b.W, 3)
	dc.Fill()
	dc.SetRGB(0.2, 0.9, 0.2)
	dc.DrawRectangle(b.X-b.W/2, top, b.W*pct, 3)
	dc.Fill()
}

func enemyRGB(t types.EnemyType) (float64, float64, float64) {
	switch t {
	case types.EnemySwarmer:
		return 0.9, 0.5, 0.1
	case types.EnemyDestroyer:
		return 0.7, 0.1, 0.1
	default:
		return 0.8, 0.3, 0.5
	}
}
