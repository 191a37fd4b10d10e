package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ProgressData is the persisted part of the progress ledger.
type ProgressData struct {
	UnlockedLevels []int `yaml:"unlockedLevels"`
	BestScore      int   `yaml:"bestScore"`
	Victories      int   `yaml:"victories"` // times the final boss was defeated
}

// DefaultProgress returns a fresh profile with only level 1 unlocked.
func DefaultProgress() *ProgressData {
	return &ProgressData{UnlockedLevels: []int{1}}
}

// normalize sorts and de-duplicates the unlock list and makes sure level 1
// is always present.
func (p *ProgressData) normalize() {
	seen := map[int]bool{1: true}
	levels := []int{1}
	for _, l := range p.UnlockedLevels {
		if l < 1 || seen[l] {
			continue
		}
		seen[l] = true
		levels = append(levels, l)
	}
	sort.Ints(levels)
	p.UnlockedLevels = levels
}

// SaveManager persists ProgressData through gdata.
// A nil gdata manager puts it in memory-only mode: Load returns defaults
// and Save is a no-op.
type SaveManager struct {
	gdataManager *gdata.Manager
}

const (
	progressObject   = "progress"
	progressProperty = "ledger"
)

// NewSaveManager creates a save manager. gdataManager may be nil.
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	return &SaveManager{gdataManager: gdataManager}
}

// Persistent reports whether saves reach storage.
func (sm *SaveManager) Persistent() bool {
	return sm != nil && sm.gdataManager != nil
}

// Load reads the saved progress. A missing save yields DefaultProgress and
// no error; a corrupt one yields DefaultProgress and an error.
func (sm *SaveManager) Load() (*ProgressData, error) {
	if !sm.Persistent() {
		return DefaultProgress(), nil
	}

	if !sm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return DefaultProgress(), nil
	}

	data, err := sm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return DefaultProgress(), fmt.Errorf("failed to load progress: %w", err)
	}

	var progress ProgressData
	if err := yaml.Unmarshal(data, &progress); err != nil {
		return DefaultProgress(), fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	progress.normalize()

	log.Printf("[SaveManager] Progress loaded: unlocked=%v best=%d", progress.UnlockedLevels, progress.BestScore)
	return &progress, nil
}

// Save writes progress to storage.
func (sm *SaveManager) Save(progress *ProgressData) error {
	if !sm.Persistent() {
		return nil
	}
	if progress == nil {
		return fmt.Errorf("progress cannot be nil")
	}

	data, err := yaml.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}
