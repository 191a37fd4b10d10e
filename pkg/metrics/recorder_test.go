package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

func TestRecorder_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.EnemyDefeated(types.EnemySwarmer)
	r.EnemyDefeated(types.EnemySwarmer)
	r.EnemyDefeated(types.EnemyStriker)
	r.LevelCompleted(1)
	r.GameOver(2)
	r.BossPhase(3)
	r.SetLiveEntities(42)

	if got := testutil.ToFloat64(r.enemiesDefeated.WithLabelValues("swarmer")); got != 2 {
		t.Errorf("swarmer defeats = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.enemiesDefeated.WithLabelValues("striker")); got != 1 {
		t.Errorf("striker defeats = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.levelsCompleted.WithLabelValues("1")); got != 1 {
		t.Errorf("levels completed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.gameOvers.WithLabelValues("2")); got != 1 {
		t.Errorf("game overs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.bossPhase); got != 3 {
		t.Errorf("boss phase = %v, want 3", got)
	}
	if got := testutil.ToFloat64(r.liveEntities); got != 42 {
		t.Errorf("live entities = %v, want 42", got)
	}
}

func TestRecorder_FrameHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	r.ObserveFrame(2 * time.Millisecond)
	r.ObserveFrame(3 * time.Millisecond)

	if got := testutil.CollectAndCount(r.frameDuration); got != 1 {
		t.Errorf("histogram series = %d, want 1", got)
	}
	n, err := testutil.GatherAndCount(reg, "starfall_frame_duration_seconds")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if n != 1 {
		t.Errorf("gathered series = %d, want 1", n)
	}
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *Recorder
	r.ObserveFrame(time.Millisecond)
	r.SetLiveEntities(1)
	r.EnemyDefeated(types.EnemySwarmer)
	r.BossPhase(2)
	r.LevelCompleted(1)
	r.GameOver(1)
}
