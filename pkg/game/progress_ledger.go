package game

import (
	"log"

	"github.com/leoprimesmatrix/Starfall/pkg/config"
)

// ProgressLedger tracks mission progress: which levels are unlocked, the
// current level, per-level defeat and ability-charge counters, and scores.
//
// It is created once per process and survives level resets. Unlocks are
// monotonic: once a level is unlocked it stays unlocked.
type ProgressLedger struct {
	cfg  *config.GameConfig
	save *SaveManager
	data *ProgressData

	unlocked map[int]bool

	currentLevel  int
	levelDefeats  int
	abilityCharge int
	bossDown      bool // boss of the current level destroyed
	bossDefeated  bool // final boss destroyed during this run
}

// NewProgressLedger loads saved progress through save (which may be nil
// for a memory-only ledger). Load failures are logged and fall back to a
// fresh profile.
func NewProgressLedger(cfg *config.GameConfig, save *SaveManager) *ProgressLedger {
	data, err := save.Load()
	if err != nil {
		log.Printf("[ProgressLedger] Warning: %v (starting fresh)", err)
	}
	if data == nil {
		data = DefaultProgress()
	}
	data.normalize()

	l := &ProgressLedger{
		cfg:          cfg,
		save:         save,
		data:         data,
		unlocked:     make(map[int]bool),
		currentLevel: 1,
	}
	for _, n := range data.UnlockedLevels {
		if _, ok := cfg.Level(n); ok {
			l.unlocked[n] = true
		}
	}
	l.unlocked[1] = true
	return l
}

// IsLevelUnlocked reports whether level n may be started.
func (l *ProgressLedger) IsLevelUnlocked(n int) bool {
	return l.unlocked[n]
}

// UnlockedLevels returns the unlocked level numbers in ascending order.
func (l *ProgressLedger) UnlockedLevels() []int {
	out := make([]int, 0, len(l.unlocked))
	for n := 1; n <= l.cfg.FinalLevel(); n++ {
		if l.unlocked[n] {
			out = append(out, n)
		}
	}
	return out
}

// UnlockLevel unlocks level n. Unknown levels are ignored.
func (l *ProgressLedger) UnlockLevel(n int) {
	if _, ok := l.cfg.Level(n); !ok || l.unlocked[n] {
		return
	}
	l.unlocked[n] = true
	log.Printf("[ProgressLedger] Level %d unlocked", n)
	l.Save()
}

// UnlockAll unlocks every configured level.
func (l *ProgressLedger) UnlockAll() {
	for _, lv := range l.cfg.Levels {
		l.unlocked[lv.Number] = true
	}
	l.Save()
}

// CurrentLevel returns the level being played (or last played).
func (l *ProgressLedger) CurrentLevel() int {
	return l.currentLevel
}

// SetCurrentLevel selects the level. Locked or unknown levels are rejected.
func (l *ProgressLedger) SetCurrentLevel(n int) bool {
	if !l.IsLevelUnlocked(n) {
		return false
	}
	l.currentLevel = n
	return true
}

// IsBossLevel reports whether the current level is a boss level.
func (l *ProgressLedger) IsBossLevel() bool {
	lv, _ := l.cfg.Level(l.currentLevel)
	return lv.Boss
}

// LevelDefeats returns the defeats recorded on the current level.
func (l *ProgressLedger) LevelDefeats() int {
	return l.levelDefeats
}

// AbilityCharge returns the kills collected toward the next ability.
func (l *ProgressLedger) AbilityCharge() int {
	return l.abilityCharge
}

// RecordEnemyDefeat counts one regular enemy defeat. On a boss level the
// defeat only advances the pre-boss wave; abilities do not charge there.
func (l *ProgressLedger) RecordEnemyDefeat() {
	l.levelDefeats++
	if !l.IsBossLevel() {
		l.abilityCharge++
	}
}

// RecordBossDefeat marks the current level's boss as destroyed.
func (l *ProgressLedger) RecordBossDefeat() {
	l.bossDown = true
}

// PreBossWaveCleared reports whether the boss may appear on the current level.
func (l *ProgressLedger) PreBossWaveCleared() bool {
	lv, _ := l.cfg.Level(l.currentLevel)
	return l.levelDefeats >= lv.PreBossQuota
}

// ResetLevelCounters clears the per-level counters; called on every level reset.
func (l *ProgressLedger) ResetLevelCounters() {
	l.levelDefeats = 0
	l.abilityCharge = 0
	l.bossDown = false
}

// ResetAbilityCounter clears the ability charge after a selection or skip.
func (l *ProgressLedger) ResetAbilityCounter() {
	l.abilityCharge = 0
}

// CheckLevelComplete reports whether the current level's goal is met.
// It keeps returning true until ResetLevelCounters.
func (l *ProgressLedger) CheckLevelComplete() bool {
	lv, ok := l.cfg.Level(l.currentLevel)
	if !ok {
		return false
	}
	if lv.Boss {
		return l.bossDown
	}
	return l.levelDefeats >= lv.Quota
}

// EnemiesRemaining returns how many defeats are still needed. On a boss
// level the boss itself counts as one.
func (l *ProgressLedger) EnemiesRemaining() int {
	lv, ok := l.cfg.Level(l.currentLevel)
	if !ok {
		return 0
	}
	if lv.Boss {
		if l.bossDown {
			return 0
		}
		return max(0, lv.PreBossQuota-l.levelDefeats) + 1
	}
	return max(0, lv.Quota-l.levelDefeats)
}

// CanOpenAbilitySelect reports whether the ability interstitial may open.
func (l *ProgressLedger) CanOpenAbilitySelect() bool {
	if l.IsBossLevel() || l.CheckLevelComplete() {
		return false
	}
	return l.abilityCharge >= l.cfg.Abilities.ChargeThreshold
}

// CompleteLevel unlocks the next level, or records the victory when the
// current level is the last one.
func (l *ProgressLedger) CompleteLevel() {
	if l.currentLevel >= l.cfg.FinalLevel() {
		l.bossDefeated = true
		l.data.Victories++
		log.Printf("[ProgressLedger] Final level %d cleared", l.currentLevel)
		l.Save()
		return
	}
	l.UnlockLevel(l.currentLevel + 1)
}

// BossDefeated reports whether the final level was cleared in this run.
func (l *ProgressLedger) BossDefeated() bool {
	return l.bossDefeated
}

// RecordFinalScore keeps the best score seen.
func (l *ProgressLedger) RecordFinalScore(score int) {
	if score <= l.data.BestScore {
		return
	}
	l.data.BestScore = score
	l.Save()
}

// BestScore returns the highest recorded final score.
func (l *ProgressLedger) BestScore() int {
	return l.data.BestScore
}

// Victories returns how many times the final level was cleared.
func (l *ProgressLedger) Victories() int {
	return l.data.Victories
}

// ResetRun starts a new run at level 1. Unlocks and best score are kept.
func (l *ProgressLedger) ResetRun() {
	l.currentLevel = 1
	l.bossDefeated = false
	l.ResetLevelCounters()
}

// Save persists the ledger. Failures are logged, never returned: the game
// keeps running on the in-memory state.
func (l *ProgressLedger) Save() {
	l.data.UnlockedLevels = l.UnlockedLevels()
	if err := l.save.Save(l.data); err != nil {
		log.Printf("[ProgressLedger] Warning: %v", err)
	}
}
