// Package metrics exposes simulation counters and frame timings to
// Prometheus. Labels are bounded: enemy type names and level numbers only.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// Recorder owns the collectors of one simulation. A nil *Recorder is valid
// and records nothing, so callers never need to check.
type Recorder struct {
	frameDuration   prometheus.Histogram
	liveEntities    prometheus.Gauge
	enemiesDefeated *prometheus.CounterVec
	bossPhase       prometheus.Gauge
	levelsCompleted *prometheus.CounterVec
	gameOvers       *prometheus.CounterVec
}

// NewRecorder registers the collectors with reg. A nil reg uses the
// default Prometheus registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		frameDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "starfall_frame_duration_seconds",
			Help:    "Time spent advancing one simulation frame",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.0166},
		}),
		liveEntities: factory.NewGauge(prometheus.GaugeOpts{
			Name: "starfall_live_entities",
			Help: "Entities alive at the end of the last frame",
		}),
		enemiesDefeated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "starfall_enemies_defeated_total",
			Help: "Regular enemies defeated, by type",
		}, []string{"type"}),
		bossPhase: factory.NewGauge(prometheus.GaugeOpts{
			Name: "starfall_boss_phase",
			Help: "Current boss phase, 0 when no boss fight is running",
		}),
		levelsCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "starfall_levels_completed_total",
			Help: "Levels completed, by level number",
		}, []string{"level"}),
		gameOvers: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "starfall_game_overs_total",
			Help: "Runs lost, by level number",
		}, []string{"level"}),
	}
}

// ObserveFrame records the wall time of one frame.
func (r *Recorder) ObserveFrame(d time.Duration) {
	if r == nil {
		return
	}
	r.frameDuration.Observe(d.Seconds())
}

// SetLiveEntities records the entity count after a frame.
func (r *Recorder) SetLiveEntities(n int) {
	if r == nil {
		return
	}
	r.liveEntities.Set(float64(n))
}

// EnemyDefeated counts one defeat.
func (r *Recorder) EnemyDefeated(t types.EnemyType) {
	if r == nil {
		return
	}
	r.enemiesDefeated.WithLabelValues(t.String()).Inc()
}

// BossPhase records the boss phase; 0 resets it.
func (r *Recorder) BossPhase(phase int) {
	if r == nil {
		return
	}
	r.bossPhase.Set(float64(phase))
}

// LevelCompleted counts a completed level.
func (r *Recorder) LevelCompleted(level int) {
	if r == nil {
		return
	}
	r.levelsCompleted.WithLabelValues(strconv.Itoa(level)).Inc()
}

// GameOver counts a lost run.
func (r *Recorder) GameOver(level int) {
	if r == nil {
		return
	}
	r.gameOvers.WithLabelValues(strconv.Itoa(level)).Inc()
}
