// Package app wraps a simulation session in an ebiten.Game: keyboard input
// becomes session commands, snapshots become pixels.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/game"
	"github.com/leoprimesmatrix/Starfall/pkg/metrics"
	"github.com/leoprimesmatrix/Starfall/pkg/session"
)

// Config holds the start-up options of the desktop app.
type Config struct {
	// Verbose keeps log output; otherwise logging is discarded.
	Verbose bool
	// Level starts this level directly, skipping the title screen. 0 shows the
	// title. A locked level only starts when the game config enables debugging.
	Level int
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64
	// Recorder receives frame metrics; may be nil.
	Recorder *metrics.Recorder
}

// App implements ebiten.Game.
type App struct {
	session *session.Session
	face    *text.GoXFace
	verbose bool

	cursor int // highlighted level on the level-select screen

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp creates the app around a new session.
func NewApp(cfg Config, gameCfg *config.GameConfig, ledger *game.ProgressLedger) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if gameCfg == nil || ledger == nil {
		return nil, fmt.Errorf("game config and ledger are required")
	}

	opts := []session.Option{session.WithRecorder(cfg.Recorder)}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Seed))
	}
	s := session.New(gameCfg, ledger, opts...)

	if cfg.Level != 0 {
		if s.StartAt(cfg.Level) {
			log.Printf("[App] Starting directly at level %d", cfg.Level)
		} else {
			log.Printf("[App] Warning: cannot start at level %d, showing level select", cfg.Level)
		}
	}

	return &App{
		session: s,
		face:    text.NewGoXFace(basicfont.Face7x13),
		verbose: cfg.Verbose,
		cursor:  1,
	}, nil
}

// Update handles input and advances the simulation by one frame.
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			pf := a.session.Config().Playfield
			ebiten.SetWindowSize(int(pf.Width), int(pf.Height))
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if err := a.handleInput(); err != nil {
		return err
	}
	a.session.AdvanceOneFrame()
	return nil
}

// Draw renders the latest snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.session.Snapshot()
	a.drawWorld(screen, &snap)
	a.drawOverlay(screen, &snap)
}

// DrawFinalScreen letterboxes the logical screen in black when scaled.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the logical playfield size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	pf := a.session.Config().Playfield
	return int(pf.Width), int(pf.Height)
}

// Session exposes the session, e.g. to save progress on exit.
func (a *App) Session() *session.Session {
	return a.session
}

// IsVerbose reports whether logging is enabled.
func (a *App) IsVerbose() bool {
	return a.verbose
}
