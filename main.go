package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/leoprimesmatrix/Starfall/pkg/app"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/embedded"
	"github.com/leoprimesmatrix/Starfall/pkg/game"
)

var (
	verbose    = flag.Bool("verbose", false, "print log output")
	configPath = flag.String("config", config.DefaultConfigPath, "game config (embedded path or file on disk)")
	levelFlag  = flag.Int("level", 0, "start directly at this unlocked level (any level with -debug)")
	seedFlag   = flag.Int64("seed", 0, "random seed (0 = from clock)")
	debugFlag  = flag.Bool("debug", false, "enable the debug menu")
	noSave     = flag.Bool("nosave", false, "do not read or write saved progress")
)

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starfall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Debug = true
	}

	var store *gdata.Manager
	if !*noSave {
		store, err = gdata.Open(gdata.Config{AppName: "starfall"})
		if err != nil {
			// progress is kept in memory only
			log.Printf("[Main] Warning: failed to open save storage: %v", err)
			store = nil
		}
	}
	ledger := game.NewProgressLedger(cfg, game.NewSaveManager(store))

	a, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *levelFlag,
		Seed:    *seedFlag,
	}, cfg, ledger)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	ebiten.SetWindowSize(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	ebiten.SetWindowTitle("Starfall")
	ebiten.SetTPS(60)

	err = ebiten.RunGame(a)
	ledger.Save()
	return err
}
