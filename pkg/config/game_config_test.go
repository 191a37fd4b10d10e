package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

func TestDefaultGameConfig_IsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if cfg.FinalLevel() != 5 {
		t.Errorf("FinalLevel() = %d, want 5", cfg.FinalLevel())
	}
	quotas := map[int]int{1: 10, 2: 15, 3: 20, 4: 25, 5: 0}
	for n, want := range quotas {
		l, ok := cfg.Level(n)
		if !ok {
			t.Fatalf("level %d missing", n)
		}
		if l.Quota != want {
			t.Errorf("level %d quota = %d, want %d", n, l.Quota, want)
		}
	}
	if l, _ := cfg.Level(5); !l.Boss {
		t.Error("level 5 should be the boss level")
	}
	if _, ok := cfg.Level(6); ok {
		t.Error("level 6 should not exist")
	}
}

func TestShippedDataMatchesDefaults(t *testing.T) {
	path := filepath.Join("..", "..", "data", "starfall.yaml")
	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig(%s) failed: %v", path, err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("data/starfall.yaml drifted from DefaultGameConfig()")
	}
}

func TestParseGameConfig_MissingSectionsUseDefaults(t *testing.T) {
	cfg, err := ParseGameConfig([]byte("debug: true\nrules:\n  killScore: 25\n  enemyContactDamage: 2\n  celebrationFrames: 30\n"))
	if err != nil {
		t.Fatalf("ParseGameConfig failed: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug flag not decoded")
	}
	if cfg.Rules.KillScore != 25 {
		t.Errorf("KillScore = %d, want 25", cfg.Rules.KillScore)
	}
	if cfg.Rules.CollisionCountsAsDefeat {
		t.Error("an explicit rules section should be taken as-is")
	}
	if cfg.Boss.Health != 250 {
		t.Errorf("boss health = %d, want default 250", cfg.Boss.Health)
	}
	if len(cfg.Enemies) != len(types.AllEnemyTypes) {
		t.Errorf("got %d enemy types, want %d", len(cfg.Enemies), len(types.AllEnemyTypes))
	}
}

func TestParseGameConfig_Enums(t *testing.T) {
	data := `
enemies:
  striker:
    health: 3
    speed: 2
    width: 36
    height: 30
    pattern: twin
    projectile: plasma
    fireCooldown: 45
    twinOffset: 8
    introducedAt: 1
    weight: 1
`
	cfg, err := ParseGameConfig([]byte(data))
	if err != nil {
		t.Fatalf("ParseGameConfig failed: %v", err)
	}
	s, ok := cfg.EnemyStats(types.EnemyStriker)
	if !ok {
		t.Fatal("striker missing")
	}
	if s.Pattern != types.PatternTwin || s.Projectile != types.ProjectilePlasma {
		t.Errorf("pattern/projectile = %v/%v, want twin/plasma", s.Pattern, s.Projectile)
	}
	if _, ok := cfg.EnemyStats(types.EnemySwarmer); ok {
		t.Error("an explicit enemies section replaces the default table")
	}
}

func TestParseGameConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "levels: [",
			wantErr: "failed to parse",
		},
		{
			name:    "unknown enemy",
			yaml:    "enemies:\n  blob: {health: 1, width: 1, height: 1, introducedAt: 1}\n",
			wantErr: "unknown enemy type",
		},
		{
			name:    "unknown pattern",
			yaml:    "enemies:\n  swarmer: {health: 1, width: 1, height: 1, pattern: zigzag}\n",
			wantErr: "unknown fire pattern",
		},
		{
			name:    "zero health enemy",
			yaml:    "enemies:\n  striker: {health: 0, width: 1, height: 1, introducedAt: 1}\n",
			wantErr: "health must be positive",
		},
		{
			name:    "gap in levels",
			yaml:    "levels:\n  - {number: 1, quota: 1, spawnPeriod: 1, enemyCap: 1}\n  - {number: 3, quota: 1, spawnPeriod: 1, enemyCap: 1}\n",
			wantErr: "level 2 is missing",
		},
		{
			name:    "regular level without quota",
			yaml:    "levels:\n  - {number: 1, quota: 0, spawnPeriod: 1, enemyCap: 1}\n",
			wantErr: "positive quota",
		},
		{
			name:    "thresholds not decreasing",
			yaml:    "boss:\n  health: 10\n  beam: {tickFrames: 1}\n  phases:\n    - {threshold: 1.0, cooldownMultiplier: 1}\n    - {threshold: 1.0, cooldownMultiplier: 1}\n",
			wantErr: "strictly decreasing",
		},
		{
			name:    "drop chance out of range",
			yaml:    "powerUp: {period: 10, dropChance: 1.5}\n",
			wantErr: "dropChance",
		},
		{
			name:    "bad ability id",
			yaml:    "abilities:\n  list:\n    - {id: teleport}\n",
			wantErr: "unknown ability",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadGameConfig_FromDisk(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "custom.yaml")
	if err := os.WriteFile(path, []byte("playfield: {width: 640, height: 480}\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Playfield.Width != 640 || cfg.Playfield.Height != 480 {
		t.Errorf("playfield = %vx%v, want 640x480", cfg.Playfield.Width, cfg.Playfield.Height)
	}

	if _, err := LoadGameConfig(filepath.Join(tempDir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestAbilityAndPhaseLookup(t *testing.T) {
	cfg := DefaultGameConfig()
	a, ok := cfg.Ability(types.AbilityRapidFire)
	if !ok || a.Duration != 300 {
		t.Errorf("rapid fire = %+v, %v", a, ok)
	}
	if _, ok := cfg.Ability(types.AbilityNone); ok {
		t.Error("AbilityNone should not be configured")
	}

	if got := cfg.Boss.Phase(2).Threshold; got != 0.8 {
		t.Errorf("phase 2 threshold = %v, want 0.8", got)
	}
	if got := cfg.Boss.Phase(99).Threshold; got != 0.2 {
		t.Errorf("phase clamp threshold = %v, want 0.2", got)
	}
}
