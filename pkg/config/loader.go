package config

import (
	"fmt"
	"log"
	"os"

	"github.com/leoprimesmatrix/Starfall/pkg/embedded"
	"github.com/leoprimesmatrix/Starfall/pkg/types"
	"gopkg.in/yaml.v3"
)

// LoadGameConfig reads a game table from path. Paths under data/ are looked
// up in the embedded data first, anything else is read from disk.
func LoadGameConfig(path string) (*GameConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	log.Printf("[Config] Loaded game config %s (%d levels, %d enemy types)", path, len(cfg.Levels), len(cfg.Enemies))
	return cfg, nil
}

// ParseGameConfig decodes YAML, fills any missing section from the
// built-in tables and validates the result.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults replaces sections left out of the file with the defaults.
// A section that is present is taken as-is.
func applyDefaults(cfg *GameConfig) {
	def := DefaultGameConfig()

	if cfg.Playfield == (PlayfieldConfig{}) {
		cfg.Playfield = def.Playfield
	}
	if cfg.Player == (PlayerConfig{}) {
		cfg.Player = def.Player
	}
	if len(cfg.Abilities.List) == 0 {
		cfg.Abilities.List = def.Abilities.List
	}
	if cfg.Abilities.ChargeThreshold == 0 {
		cfg.Abilities.ChargeThreshold = def.Abilities.ChargeThreshold
	}
	if cfg.Abilities.OfferCount == 0 {
		cfg.Abilities.OfferCount = def.Abilities.OfferCount
	}
	if cfg.PowerUp == (PowerUpConfig{}) {
		cfg.PowerUp = def.PowerUp
	}
	if len(cfg.Enemies) == 0 {
		cfg.Enemies = def.Enemies
	}
	if len(cfg.Projectiles) == 0 {
		cfg.Projectiles = def.Projectiles
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = def.Levels
	}
	if cfg.Boss.Health == 0 && len(cfg.Boss.Phases) == 0 {
		cfg.Boss = def.Boss
	}
	if cfg.Spawner == (SpawnerConfig{}) {
		cfg.Spawner = def.Spawner
	}
	if cfg.Rules == (RulesConfig{}) {
		cfg.Rules = def.Rules
	}
	if cfg.Background == (BackgroundConfig{}) {
		cfg.Background = def.Background
	}
}

// Validate checks the tables for values the simulation cannot run with.
func (c *GameConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("playfield: size must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	}

	if err := validatePlayer(&c.Player); err != nil {
		return err
	}

	if c.Abilities.ChargeThreshold < 1 {
		return fmt.Errorf("abilities: chargeThreshold must be at least 1, got %d", c.Abilities.ChargeThreshold)
	}
	if c.Abilities.OfferCount < 1 {
		return fmt.Errorf("abilities: offerCount must be at least 1, got %d", c.Abilities.OfferCount)
	}
	seen := make(map[types.AbilityID]bool)
	for _, a := range c.Abilities.List {
		if !a.ID.Valid() {
			return fmt.Errorf("abilities: invalid ability id %q", a.ID.String())
		}
		if seen[a.ID] {
			return fmt.Errorf("abilities: duplicate ability %s", a.ID)
		}
		seen[a.ID] = true
		if a.Duration < 0 {
			return fmt.Errorf("ability %s: duration cannot be negative, got %d", a.ID, a.Duration)
		}
	}

	if c.PowerUp.Period < 1 {
		return fmt.Errorf("powerUp: period must be at least 1, got %d", c.PowerUp.Period)
	}
	if c.PowerUp.DropChance < 0 || c.PowerUp.DropChance > 1 {
		return fmt.Errorf("powerUp: dropChance must be within [0,1], got %v", c.PowerUp.DropChance)
	}

	for name, stats := range c.Enemies {
		if types.EnemyTypeFromString(name) == types.EnemyUnknown {
			return fmt.Errorf("enemies: unknown enemy type %q", name)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %d", name, stats.Health)
		}
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("enemy %s: size must be positive, got %vx%v", name, stats.Width, stats.Height)
		}
		if stats.FireCooldown < 0 {
			return fmt.Errorf("enemy %s: fireCooldown cannot be negative, got %d", name, stats.FireCooldown)
		}
		if stats.Weight < 0 {
			return fmt.Errorf("enemy %s: weight cannot be negative, got %v", name, stats.Weight)
		}
		if stats.IntroducedAt < 1 {
			return fmt.Errorf("enemy %s: introducedAt must be at least 1, got %d", name, stats.IntroducedAt)
		}
		if stats.Pattern != types.PatternNone {
			if _, ok := c.Projectiles[stats.Projectile.String()]; !ok {
				return fmt.Errorf("enemy %s: projectile %q is not in the projectile table", name, stats.Projectile.String())
			}
		}
	}

	for name, stats := range c.Projectiles {
		if types.ProjectileKindFromString(name) == types.ProjectileUnknown {
			return fmt.Errorf("projectiles: unknown projectile kind %q", name)
		}
		if stats.Health < 1 {
			return fmt.Errorf("projectile %s: health must be at least 1, got %d", name, stats.Health)
		}
		if stats.Damage < 0 {
			return fmt.Errorf("projectile %s: damage cannot be negative, got %d", name, stats.Damage)
		}
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("projectile %s: size must be positive, got %vx%v", name, stats.Width, stats.Height)
		}
	}

	if err := c.validateLevels(); err != nil {
		return err
	}
	return validateBoss(&c.Boss)
}

func validatePlayer(p *PlayerConfig) error {
	if p.MaxHealth < 1 {
		return fmt.Errorf("player: maxHealth must be at least 1, got %d", p.MaxHealth)
	}
	if p.MaxShield < 0 {
		return fmt.Errorf("player: maxShield cannot be negative, got %d", p.MaxShield)
	}
	if p.FireCooldown < 1 {
		return fmt.Errorf("player: fireCooldown must be at least 1, got %d", p.FireCooldown)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("player: size must be positive, got %vx%v", p.Width, p.Height)
	}
	if p.LaserSpeed <= 0 {
		return fmt.Errorf("player: laserSpeed must be positive, got %v", p.LaserSpeed)
	}
	return nil
}

func (c *GameConfig) validateLevels() error {
	seen := make(map[int]bool)
	for _, l := range c.Levels {
		if l.Number < 1 {
			return fmt.Errorf("level %q: number must be at least 1, got %d", l.Name, l.Number)
		}
		if seen[l.Number] {
			return fmt.Errorf("level %d: duplicate level number", l.Number)
		}
		seen[l.Number] = true
		if l.Quota < 0 || l.PreBossQuota < 0 {
			return fmt.Errorf("level %d: quotas cannot be negative", l.Number)
		}
		if !l.Boss && l.Quota == 0 {
			return fmt.Errorf("level %d: regular level needs a positive quota", l.Number)
		}
		needsSpawns := !l.Boss || l.PreBossQuota > 0
		if needsSpawns && (l.SpawnPeriod < 1 || l.EnemyCap < 1) {
			return fmt.Errorf("level %d: spawnPeriod and enemyCap must be at least 1", l.Number)
		}
	}
	// levels must be numbered 1..n without gaps so "next level" is well defined
	for n := 1; n <= len(c.Levels); n++ {
		if !seen[n] {
			return fmt.Errorf("levels: level %d is missing", n)
		}
	}
	return nil
}

func validateBoss(b *BossConfig) error {
	if b.Health < 1 {
		return fmt.Errorf("boss: health must be at least 1, got %d", b.Health)
	}
	if len(b.Phases) == 0 {
		return fmt.Errorf("boss: at least one phase is required")
	}
	for i, p := range b.Phases {
		if p.Threshold <= 0 || p.Threshold > 1 {
			return fmt.Errorf("boss phase %d: threshold must be within (0,1], got %v", i+1, p.Threshold)
		}
		if i > 0 && p.Threshold >= b.Phases[i-1].Threshold {
			return fmt.Errorf("boss phase %d: thresholds must be strictly decreasing", i+1)
		}
		if p.CooldownMultiplier <= 0 {
			return fmt.Errorf("boss phase %d: cooldownMultiplier must be positive, got %v", i+1, p.CooldownMultiplier)
		}
	}
	if b.TransitionFrames < 0 {
		return fmt.Errorf("boss: transitionFrames cannot be negative, got %d", b.TransitionFrames)
	}
	if b.SpreadCount < 0 {
		return fmt.Errorf("boss: spreadCount cannot be negative, got %d", b.SpreadCount)
	}
	if b.Beam.TickFrames < 1 {
		return fmt.Errorf("boss beam: tickFrames must be at least 1, got %d", b.Beam.TickFrames)
	}
	return nil
}
