// starfall-sim runs the simulation without a window. An autopilot flies
// the ship, which makes it handy for balance checks, soak runs with
// Prometheus attached, and quick PNG snapshots of a given frame.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/event"
	"github.com/leoprimesmatrix/Starfall/pkg/game"
	"github.com/leoprimesmatrix/Starfall/pkg/metrics"
	"github.com/leoprimesmatrix/Starfall/pkg/session"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// tps matches the frame rate of the windowed game.
const tps = 60

var (
	configPath  = flag.String("config", "", "game config file (empty = built-in tables)")
	levelFlag   = flag.Int("level", 1, "level to fly")
	framesFlag  = flag.Int("frames", 3600, "stop after this many frames")
	seedFlag    = flag.Int64("seed", 1, "random seed")
	campaign    = flag.Bool("campaign", false, "continue into the next level after each completion")
	realtime    = flag.Bool("realtime", false, "pace frames at 60 per second")
	metricsAddr = flag.String("metrics", "", "serve Prometheus metrics on this address, e.g. :9100")
	snapshotOut = flag.String("snapshot", "", "write a PNG of the last frame to this path")
	verbose     = flag.Bool("verbose", false, "print log output")
)

func main() {
	// a missing .env just means environment variables only
	_ = godotenv.Load(".env")
	flag.Parse()
	applyEnv()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "starfall-sim: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Starfall simulation ===")
	fmt.Printf("frames:       %d\n", res.frames)
	fmt.Printf("final state:  %s\n", res.state)
	fmt.Printf("level:        %d\n", res.level)
	fmt.Printf("score:        %d\n", res.score)
	fmt.Printf("best score:   %d\n", res.best)
	fmt.Printf("levels done:  %d\n", res.levelsDone)
}

// applyEnv lets a .env file or the environment override flags that were
// not given on the command line.
func applyEnv() {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if v := os.Getenv("STARFALL_CONFIG"); v != "" && !set["config"] {
		*configPath = v
	}
	if v := os.Getenv("STARFALL_SEED"); v != "" && !set["seed"] {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			*seedFlag = seed
		} else {
			fmt.Fprintf(os.Stderr, "starfall-sim: ignoring STARFALL_SEED=%q\n", v)
		}
	}
	if v := os.Getenv("STARFALL_METRICS_ADDR"); v != "" && !set["metrics"] {
		*metricsAddr = v
	}
}

type result struct {
	frames     int
	state      types.SessionState
	level      int
	score      int
	best       int
	levelsDone int
}

func run(ctx context.Context) (result, error) {
	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadGameConfig(*configPath)
		if err != nil {
			return result{}, err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	recorder := metrics.NewRecorder(reg)

	if *metricsAddr != "" {
		srv := serveMetrics(*metricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	ledger := game.NewProgressLedger(cfg, nil)
	// the simulator may start anywhere
	ledger.UnlockAll()

	s := session.New(cfg, ledger, session.WithSeed(*seedFlag), session.WithRecorder(recorder))
	s.OpenLevelSelect()
	if !s.StartLevel(*levelFlag) {
		return result{}, fmt.Errorf("cannot start level %d", *levelFlag)
	}

	var limiter *rate.Limiter
	if *realtime {
		limiter = rate.NewLimiter(rate.Limit(tps), 1)
	}

	res := result{}
	s.Events().SubscribeFunc(event.LevelCompleted, func(event.Event) { res.levelsDone++ })

	for res.frames < *framesFlag {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				break
			}
		} else if ctx.Err() != nil {
			break
		}

		if !fly(s) {
			break
		}
		res.frames++
	}

	snap := s.Snapshot()
	res.state = s.State()
	res.level = snap.Level
	res.score = s.Score()
	res.best = ledger.BestScore()

	if *snapshotOut != "" {
		if err := renderSnapshot(snap, *snapshotOut); err != nil {
			return res, err
		}
		fmt.Printf("snapshot written to %s\n", *snapshotOut)
	}
	return res, nil
}

// fly advances one frame under autopilot control. It returns false once
// there is nothing left to fly.
func fly(s *session.Session) bool {
	switch s.State() {
	case types.StatePlaying:
		if s.RequestAbilityMenu() {
			offered := s.OfferedAbilities()
			if len(offered) > 0 {
				s.SelectAbility(offered[0].ID)
			} else {
				s.SkipAbility()
			}
		}
		dx, dy := steer(s.Snapshot())
		s.SetMove(dx, dy)
		s.RequestFire()
		s.AdvanceOneFrame()
		return true
	case types.StateLevelSelect:
		if !*campaign {
			return false
		}
		next := s.Ledger().CurrentLevel() + 1
		return s.StartLevel(next)
	default:
		return false
	}
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "starfall-sim: metrics server: %v\n", err)
		}
	}()
	fmt.Printf("metrics on http://%s/metrics\n", addr)
	return srv
}
