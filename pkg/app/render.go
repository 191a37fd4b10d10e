package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/leoprimesmatrix/Starfall/pkg/session"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

var (
	colorSpace    = color.RGBA{R: 5, G: 5, B: 20, A: 255}
	colorStar     = color.RGBA{R: 220, G: 220, B: 255, A: 255}
	colorShip     = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	colorFlash    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorShield   = color.RGBA{R: 80, G: 160, B: 255, A: 160}
	colorLaser    = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	colorPierce   = color.RGBA{R: 255, G: 120, B: 255, A: 255}
	colorPowerUp  = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	colorBoss     = color.RGBA{R: 160, G: 40, B: 160, A: 255}
	colorBossHurt = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBeamWarn = color.RGBA{R: 255, G: 80, B: 80, A: 120}
	colorBeam     = color.RGBA{R: 255, G: 40, B: 40, A: 230}
	colorBarBack  = color.RGBA{R: 60, G: 0, B: 0, A: 255}
	colorBarFill  = color.RGBA{R: 0, G: 220, B: 0, A: 255}
	colorText     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorPanel    = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

var nebulaTints = []color.RGBA{
	{R: 30, G: 10, B: 60, A: 90},
	{R: 60, G: 30, B: 10, A: 90},
	{R: 10, G: 60, B: 60, A: 90},
	{R: 60, G: 10, B: 30, A: 90},
	{R: 80, G: 0, B: 80, A: 110},
}

var enemyColors = map[types.EnemyType]color.RGBA{
	types.EnemySwarmer:       {R: 255, G: 90, B: 90, A: 255},
	types.EnemyStriker:       {R: 255, G: 160, B: 60, A: 255},
	types.EnemyDestroyer:     {R: 180, G: 180, B: 180, A: 255},
	types.EnemyHarvester:     {R: 90, G: 220, B: 140, A: 255},
	types.EnemySporeLauncher: {R: 170, G: 120, B: 255, A: 255},
}

var projectileColors = map[types.ProjectileKind]color.RGBA{
	types.ProjectileSmall:  {R: 255, G: 100, B: 100, A: 255},
	types.ProjectilePlasma: {R: 0, G: 200, B: 255, A: 255},
	types.ProjectileLaser:  {R: 255, G: 40, B: 40, A: 255},
	types.ProjectileSpore:  {R: 160, G: 255, B: 60, A: 255},
	types.ProjectileMine:   {R: 255, G: 140, B: 0, A: 255},
}

func fillBox(dst *ebiten.Image, b session.Box, c color.Color) {
	vector.DrawFilledRect(dst, float32(b.X-b.W/2), float32(b.Y-b.H/2), float32(b.W), float32(b.H), c, false)
}

// healthBar draws a bar above a box. Full-health entities get none.
func healthBar(dst *ebiten.Image, b session.Box, hp, maxHP int) {
	if maxHP <= 0 || hp >= maxHP {
		return
	}
	x, y := float32(b.X-b.W/2), float32(b.Y-b.H/2-6)
	w := float32(b.W)
	vector.DrawFilledRect(dst, x, y, w, 3, colorBarBack, false)
	vector.DrawFilledRect(dst, x, y, w*float32(max(hp, 0))/float32(maxHP), 3, colorBarFill, false)
}

func (a *App) drawWorld(screen *ebiten.Image, snap *session.Snapshot) {
	screen.Fill(colorSpace)

	tint := nebulaTints[snap.Nebula%len(nebulaTints)]
	band := float32(snap.Height / 3)
	off := float32(snap.NebulaOffset)
	for y := off - band*3; y < float32(snap.Height); y += band * 2 {
		vector.DrawFilledRect(screen, 0, y, float32(snap.Width), band, tint, false)
	}

	for _, st := range snap.Stars {
		vector.DrawFilledCircle(screen, float32(st.X), float32(st.Y), float32(st.Size/2), colorStar, false)
	}

	for _, pu := range snap.PowerUps {
		fillBox(screen, pu, colorPowerUp)
	}
	for _, e := range snap.Enemies {
		fillBox(screen, e.Box, enemyColors[e.Type])
		healthBar(screen, e.Box, e.Health, e.MaxHealth)
	}
	if b := snap.Boss; b != nil {
		a.drawBoss(screen, snap, b)
	}
	for _, p := range snap.EnemyProjectiles {
		fillBox(screen, p.Box, projectileColors[p.Kind])
	}
	for _, l := range snap.Lasers {
		c := colorLaser
		if l.Piercing {
			c = colorPierce
		}
		fillBox(screen, l.Box, c)
	}
	if ship := snap.Ship; ship != nil {
		c := colorShip
		if ship.Flashing && snap.Frame%4 < 2 {
			c = colorFlash
		}
		fillBox(screen, ship.Box, c)
		if ship.AbilityShield {
			vector.StrokeCircle(screen, float32(ship.X), float32(ship.Y), float32(ship.W*0.75), 2, colorShield, true)
		}
	}
}

func (a *App) drawBoss(screen *ebiten.Image, snap *session.Snapshot, b *session.BossView) {
	c := colorBoss
	if b.Frozen && snap.Frame%6 < 3 {
		c = colorBossHurt
	}
	fillBox(screen, b.Box, c)

	originX, originY := float32(b.X), float32(b.Y+b.H/2)
	switch b.Beam {
	case types.BeamCharging:
		vector.StrokeLine(screen, originX, originY, float32(b.BeamTargetX), float32(snap.Height), 2, colorBeamWarn, true)
	case types.BeamActive:
		width := float32(a.session.Config().Boss.Beam.Radius * 2)
		vector.StrokeLine(screen, originX, originY, float32(b.BeamTargetX), float32(snap.Height), width, colorBeam, true)
	}

	// boss health bar across the top
	w := float32(snap.Width) - 40
	vector.DrawFilledRect(screen, 20, 40, w, 8, colorBarBack, false)
	vector.DrawFilledRect(screen, 20, 40, w*float32(max(b.Health, 0))/float32(b.MaxHealth), 8, colorBarFill, false)
	a.drawText(screen, fmt.Sprintf("PHASE %d", b.Phase), 20, 52, colorText)
}

func (a *App) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, a.face, op)
}

func (a *App) drawCentered(screen *ebiten.Image, s string, y float64, c color.Color) {
	w := text.Advance(s, a.face)
	a.drawText(screen, s, (float64(screen.Bounds().Dx())-w)/2, y, c)
}

func (a *App) drawPanel(screen *ebiten.Image, snap *session.Snapshot, lines ...string) {
	h := float32(len(lines)*20 + 30)
	top := float32(snap.Height/2) - h/2
	vector.DrawFilledRect(screen, 0, top, float32(snap.Width), h, colorPanel, false)
	for i, l := range lines {
		a.drawCentered(screen, l, float64(top)+15+float64(i*20), colorText)
	}
}

func (a *App) drawHUD(screen *ebiten.Image, snap *session.Snapshot) {
	a.drawText(screen, fmt.Sprintf("LEVEL %d  %s", snap.Level, snap.LevelName), 10, 8, colorText)
	a.drawText(screen, fmt.Sprintf("SCORE %d", snap.Score), 10, 22, colorText)
	a.drawText(screen, fmt.Sprintf("REMAINING %d", snap.EnemiesRemaining), snap.Width-140, 8, colorText)

	if ship := snap.Ship; ship != nil {
		status := fmt.Sprintf("HP %d/%d  SHIELD %d/%d", ship.Health, ship.MaxHealth, ship.Shield, ship.MaxShield)
		if ship.Ability != types.AbilityNone {
			status += "  " + ship.Ability.String()
			if ship.AbilityTimer > 0 {
				status += fmt.Sprintf(" %ds", ship.AbilityTimer/60)
			}
		}
		if ship.TripleShot > 0 {
			status += "  TRIPLE"
		}
		a.drawText(screen, status, 10, snap.Height-20, colorText)
	}
	if snap.CanSelectAbility {
		a.drawText(screen, "ABILITY READY [Q]", snap.Width-160, snap.Height-20, colorPowerUp)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, snap *session.Snapshot) {
	switch snap.State {
	case types.StateTitle:
		a.drawPanel(screen, snap, "S T A R F A L L", "", "[ENTER] play   [ESC] quit",
			fmt.Sprintf("best score %d", snap.BestScore))

	case types.StateLevelSelect:
		lines := []string{"SELECT MISSION", ""}
		ledger := a.session.Ledger()
		for _, lv := range a.session.Config().Levels {
			marker := "  "
			if lv.Number == a.cursor {
				marker = "> "
			}
			state := ""
			if !ledger.IsLevelUnlocked(lv.Number) {
				state = " (locked)"
			}
			lines = append(lines, fmt.Sprintf("%s%d  %s%s", marker, lv.Number, lv.Name, state))
		}
		a.drawPanel(screen, snap, lines...)

	case types.StatePlaying:
		a.drawHUD(screen, snap)
		if snap.LevelComplete {
			a.drawCentered(screen, "MISSION COMPLETE", snap.Height/2, colorPowerUp)
		}

	case types.StatePaused:
		a.drawHUD(screen, snap)
		a.drawPanel(screen, snap, "PAUSED", "[P] resume   [T] title")

	case types.StateAbilitySelect:
		lines := []string{"CHOOSE AN ABILITY", ""}
		for i, ab := range a.session.OfferedAbilities() {
			lines = append(lines, fmt.Sprintf("[%d] %s - %s", i+1, ab.Name, ab.Description))
		}
		lines = append(lines, "", "[S] skip")
		a.drawPanel(screen, snap, lines...)

	case types.StateDebugMenu:
		a.drawPanel(screen, snap, "DEBUG", "[H] heal  [R] shield  [U] unlock all  [F] rapid fire", "[ESC] close")

	case types.StateGameOver:
		a.drawPanel(screen, snap, "GAME OVER", fmt.Sprintf("score %d", snap.Score), "[R] retry  [L] levels  [T] title")

	case types.StateVictory:
		a.drawPanel(screen, snap, "VICTORY", fmt.Sprintf("score %d   best %d", snap.Score, snap.BestScore), "[ENTER] title  [L] levels")
	}
}
