package config

import (
	"github.com/leoprimesmatrix/Starfall/pkg/types"
)

// DefaultConfigPath is the embedded game table shipped with the binary.
const DefaultConfigPath = "data/starfall.yaml"

// GameConfig aggregates every tunable of the simulation.
// All durations are in frames at the fixed 60 Hz tick.
type GameConfig struct {
	Playfield   PlayfieldConfig            `yaml:"playfield"`
	Player      PlayerConfig               `yaml:"player"`
	Abilities   AbilitiesConfig            `yaml:"abilities"`
	PowerUp     PowerUpConfig              `yaml:"powerUp"`
	Enemies     map[string]EnemyStats      `yaml:"enemies"`     // keyed by types.EnemyType name
	Projectiles map[string]ProjectileStats `yaml:"projectiles"` // keyed by types.ProjectileKind name
	Levels      []LevelConfig              `yaml:"levels"`
	Boss        BossConfig                 `yaml:"boss"`
	Spawner     SpawnerConfig              `yaml:"spawner"`
	Rules       RulesConfig                `yaml:"rules"`
	Background  BackgroundConfig           `yaml:"background"`
	Debug       bool                       `yaml:"debug"` // enables the debug menu
}

// PlayfieldConfig is the logical size of the playfield in pixels.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig describes the ship and its lasers.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	MaxHealth     int     `yaml:"maxHealth"`
	MaxShield     int     `yaml:"maxShield"`
	FireCooldown  int     `yaml:"fireCooldown"`
	FlashFrames   int     `yaml:"flashFrames"`
	LaserSpeed    float64 `yaml:"laserSpeed"`
	LaserDamage   int     `yaml:"laserDamage"`
	LaserWidth    float64 `yaml:"laserWidth"`
	LaserHeight   float64 `yaml:"laserHeight"`
	TripleSpacing float64 `yaml:"tripleSpacing"` // x offset of the side lasers in triple shot
}

// AbilityConfig describes one grantable ability.
type AbilityConfig struct {
	ID          types.AbilityID `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Duration    int             `yaml:"duration"` // 0 for one-shot abilities
}

// AbilitiesConfig controls the ability-select interstitial.
type AbilitiesConfig struct {
	ChargeThreshold int             `yaml:"chargeThreshold"` // kills needed to open the menu
	OfferCount      int             `yaml:"offerCount"`
	List            []AbilityConfig `yaml:"list"`
}

// PowerUpConfig describes the triple-shot pickup and how often it appears.
type PowerUpConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Duration   int     `yaml:"duration"`
	Period     int     `yaml:"period"`     // at most one power-up per period
	DropChance float64 `yaml:"dropChance"` // per laser kill
}

// EnemyStats is one row of the static enemy table.
type EnemyStats struct {
	Health       int                  `yaml:"health"`
	Speed        float64              `yaml:"speed"`
	Width        float64              `yaml:"width"`
	Height       float64              `yaml:"height"`
	Pattern      types.FirePattern    `yaml:"pattern"`
	Projectile   types.ProjectileKind `yaml:"projectile"`
	FireCooldown int                  `yaml:"fireCooldown"`
	TwinOffset   float64              `yaml:"twinOffset,omitempty"`
	SineDrift    bool                 `yaml:"sineDrift,omitempty"`
	IntroducedAt int                  `yaml:"introducedAt"` // first level the type appears on
	Weight       float64              `yaml:"weight"`
}

// ProjectileStats is one row of the enemy projectile table.
type ProjectileStats struct {
	Health   int     `yaml:"health"`
	Speed    float64 `yaml:"speed"`
	Damage   int     `yaml:"damage"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Lifetime int     `yaml:"lifetime,omitempty"` // frames; 0 means until off-screen
}

// LevelConfig is one mission.
type LevelConfig struct {
	Number      int    `yaml:"number"`
	Name        string `yaml:"name"`
	Quota       int    `yaml:"quota"`       // defeats required to complete a regular level
	SpawnPeriod int    `yaml:"spawnPeriod"` // frames between regular spawns
	EnemyCap    int    `yaml:"enemyCap"`    // max live regular enemies
	Boss        bool   `yaml:"boss"`
	// PreBossQuota is the number of regular defeats required before the
	// boss appears. Zero spawns the boss as soon as the level starts.
	PreBossQuota int `yaml:"preBossQuota,omitempty"`
	Nebula       int `yaml:"nebula"` // background tint index
}

// BossPhaseConfig tunes one boss phase. Phase i (1-based) is entered when
// health/max falls to or below Threshold.
type BossPhaseConfig struct {
	Threshold          float64 `yaml:"threshold"`
	SpeedMultiplier    float64 `yaml:"speedMultiplier"`
	CooldownMultiplier float64 `yaml:"cooldownMultiplier"`
	BobAmplitude       float64 `yaml:"bobAmplitude"`
	BobFrequency       float64 `yaml:"bobFrequency"`
}

// BeamConfig tunes the charge-then-fire beam.
type BeamConfig struct {
	ChargeFrames   int     `yaml:"chargeFrames"`
	ActiveFrames   int     `yaml:"activeFrames"`
	TickFrames     int     `yaml:"tickFrames"` // damage interval while active
	Damage         int     `yaml:"damage"`
	Cooldown       int     `yaml:"cooldown"`
	Radius         float64 `yaml:"radius"` // capsule half-width
	ChargeSlowdown float64 `yaml:"chargeSlowdown"`
}

// BossConfig describes the boss and its phase machine.
type BossConfig struct {
	Health           int               `yaml:"health"`
	Width            float64           `yaml:"width"`
	Height           float64           `yaml:"height"`
	Speed            float64           `yaml:"speed"`
	EntrySpeed       float64           `yaml:"entrySpeed"`
	TransitionFrames int               `yaml:"transitionFrames"`
	Phases           []BossPhaseConfig `yaml:"phases"`
	LaserCooldown    int               `yaml:"laserCooldown"`
	PlasmaCooldown   int               `yaml:"plasmaCooldown"`
	SpreadCooldown   int               `yaml:"spreadCooldown"`
	SpreadCount      int               `yaml:"spreadCount"`
	MineCooldown     int               `yaml:"mineCooldown"`
	Beam             BeamConfig        `yaml:"beam"`
	ContactDamage    int               `yaml:"contactDamage"`
	DefeatBonus      int               `yaml:"defeatBonus"`
}

// SpawnerConfig tunes regular-enemy selection and placement.
type SpawnerConfig struct {
	// AgeDecay scales a type's weight once per level since it was introduced.
	AgeDecay float64 `yaml:"ageDecay"`
	MarginX  float64 `yaml:"marginX"`
	SpawnY   float64 `yaml:"spawnY"`
}

// RulesConfig holds combat and completion rules.
type RulesConfig struct {
	KillScore          int `yaml:"killScore"`
	EnemyContactDamage int `yaml:"enemyContactDamage"`
	CelebrationFrames  int `yaml:"celebrationFrames"`
	// CollisionCountsAsDefeat makes an enemy that rams the ship count
	// toward the kill quota and the ability charge.
	CollisionCountsAsDefeat bool `yaml:"collisionCountsAsDefeat"`
}

// BackgroundConfig tunes the scrolling star field.
type BackgroundConfig struct {
	StarCount   int     `yaml:"starCount"`
	MinSpeed    float64 `yaml:"minSpeed"`
	MaxSpeed    float64 `yaml:"maxSpeed"`
	NebulaSpeed float64 `yaml:"nebulaSpeed"`
}

// DefaultGameConfig returns the built-in tables.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Playfield: PlayfieldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Width:         40,
			Height:        30,
			Speed:         5,
			MaxHealth:     5,
			MaxShield:     7,
			FireCooldown:  15,
			FlashFrames:   10,
			LaserSpeed:    10,
			LaserDamage:   1,
			LaserWidth:    2,
			LaserHeight:   10,
			TripleSpacing: 10,
		},
		Abilities: AbilitiesConfig{
			ChargeThreshold: 2,
			OfferCount:      3,
			List: []AbilityConfig{
				{ID: types.AbilityRapidFire, Name: "Rapid Fire", Description: "Fire twice as fast", Duration: 300},
				{ID: types.AbilityShield, Name: "Shield", Description: "Absorb the next hit", Duration: 0},
				{ID: types.AbilityPiercing, Name: "Piercing Shot", Description: "Lasers pass through enemies", Duration: 300},
			},
		},
		PowerUp: PowerUpConfig{
			Width:      20,
			Height:     20,
			Speed:      2,
			Duration:   300,
			Period:     300,
			DropChance: 0.2,
		},
		Enemies: map[string]EnemyStats{
			types.EnemySwarmer.String(): {
				Health: 1, Speed: 3, Width: 24, Height: 24,
				Pattern: types.PatternSingle, Projectile: types.ProjectileSmall, FireCooldown: 60,
				SineDrift: true, IntroducedAt: 1, Weight: 0.4,
			},
			types.EnemyStriker.String(): {
				Health: 3, Speed: 2, Width: 36, Height: 30,
				Pattern: types.PatternSingle, Projectile: types.ProjectilePlasma, FireCooldown: 90,
				IntroducedAt: 1, Weight: 0.2,
			},
			types.EnemyDestroyer.String(): {
				Health: 10, Speed: 1, Width: 72, Height: 60,
				Pattern: types.PatternTwin, Projectile: types.ProjectileLaser, FireCooldown: 120, TwinOffset: 20,
				IntroducedAt: 3, Weight: 0.1,
			},
			types.EnemyHarvester.String(): {
				Health: 5, Speed: 1.5, Width: 48, Height: 42,
				Pattern: types.PatternSingle, Projectile: types.ProjectileSmall, FireCooldown: 150,
				IntroducedAt: 2, Weight: 0.2,
			},
			types.EnemySporeLauncher.String(): {
				Health: 4, Speed: 0.5, Width: 42, Height: 36,
				Pattern: types.PatternArc, Projectile: types.ProjectileSpore, FireCooldown: 180,
				IntroducedAt: 4, Weight: 0.1,
			},
		},
		Projectiles: map[string]ProjectileStats{
			types.ProjectileSmall.String():  {Health: 1, Speed: 5, Damage: 1, Width: 5, Height: 10},
			types.ProjectilePlasma.String(): {Health: 2, Speed: 3, Damage: 2, Width: 10, Height: 15},
			types.ProjectileLaser.String():  {Health: 1, Speed: 7, Damage: 1, Width: 3, Height: 18},
			types.ProjectileSpore.String():  {Health: 1, Speed: 2, Damage: 1, Width: 7, Height: 7},
			types.ProjectileMine.String():   {Health: 3, Speed: 0, Damage: 3, Width: 14, Height: 14, Lifetime: 600},
		},
		Levels: []LevelConfig{
			{Number: 1, Name: "Outer Rim", Quota: 10, SpawnPeriod: 60, EnemyCap: 6, Nebula: 0},
			{Number: 2, Name: "Asteroid Belt", Quota: 15, SpawnPeriod: 55, EnemyCap: 8, Nebula: 1},
			{Number: 3, Name: "Nebula Core", Quota: 20, SpawnPeriod: 50, EnemyCap: 10, Nebula: 2},
			{Number: 4, Name: "Hive Approach", Quota: 25, SpawnPeriod: 45, EnemyCap: 12, Nebula: 3},
			{Number: 5, Name: "Mothership", Quota: 0, SpawnPeriod: 40, EnemyCap: 12, Boss: true, Nebula: 4},
		},
		Boss: BossConfig{
			Health:           250,
			Width:            150,
			Height:           100,
			Speed:            1,
			EntrySpeed:       2,
			TransitionFrames: 60,
			Phases: []BossPhaseConfig{
				{Threshold: 1.0, SpeedMultiplier: 1.0, CooldownMultiplier: 1.0, BobAmplitude: 0, BobFrequency: 0},
				{Threshold: 0.8, SpeedMultiplier: 1.5, CooldownMultiplier: 0.9, BobAmplitude: 0.5, BobFrequency: 0.05},
				{Threshold: 0.6, SpeedMultiplier: 2.0, CooldownMultiplier: 0.7, BobAmplitude: 1.0, BobFrequency: 0.1},
				{Threshold: 0.4, SpeedMultiplier: 2.5, CooldownMultiplier: 0.6, BobAmplitude: 1.25, BobFrequency: 0.1},
				{Threshold: 0.2, SpeedMultiplier: 3.0, CooldownMultiplier: 0.5, BobAmplitude: 1.5, BobFrequency: 0.12},
			},
			LaserCooldown:  90,
			PlasmaCooldown: 150,
			SpreadCooldown: 180,
			SpreadCount:    8,
			MineCooldown:   240,
			Beam: BeamConfig{
				ChargeFrames:   60,
				ActiveFrames:   90,
				TickFrames:     15,
				Damage:         1,
				Cooldown:       300,
				Radius:         20,
				ChargeSlowdown: 0.3,
			},
			ContactDamage: 3,
			DefeatBonus:   1000,
		},
		Spawner: SpawnerConfig{AgeDecay: 0.75, MarginX: 50, SpawnY: -50},
		Rules: RulesConfig{
			KillScore:               10,
			EnemyContactDamage:      1,
			CelebrationFrames:       180,
			CollisionCountsAsDefeat: true,
		},
		Background: BackgroundConfig{StarCount: 100, MinSpeed: 1, MaxSpeed: 3, NebulaSpeed: 0.5},
	}
}

// Level returns the configuration of level n (1-based).
func (c *GameConfig) Level(n int) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.Number == n {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// LevelCount returns the number of configured levels.
func (c *GameConfig) LevelCount() int {
	return len(c.Levels)
}

// FinalLevel returns the highest level number.
func (c *GameConfig) FinalLevel() int {
	final := 0
	for _, l := range c.Levels {
		if l.Number > final {
			final = l.Number
		}
	}
	return final
}

// EnemyStats returns the table row for an enemy type.
func (c *GameConfig) EnemyStats(t types.EnemyType) (EnemyStats, bool) {
	s, ok := c.Enemies[t.String()]
	return s, ok
}

// ProjectileStats returns the table row for a projectile kind.
func (c *GameConfig) ProjectileStats(k types.ProjectileKind) (ProjectileStats, bool) {
	s, ok := c.Projectiles[k.String()]
	return s, ok
}

// Ability returns the configuration of an ability.
func (c *GameConfig) Ability(id types.AbilityID) (AbilityConfig, bool) {
	for _, a := range c.Abilities.List {
		if a.ID == id {
			return a, true
		}
	}
	return AbilityConfig{}, false
}

// Phase returns the tuning of boss phase p (1-based), clamped to the table.
func (b *BossConfig) Phase(p int) BossPhaseConfig {
	if len(b.Phases) == 0 {
		return BossPhaseConfig{Threshold: 1, SpeedMultiplier: 1, CooldownMultiplier: 1}
	}
	if p < 1 {
		p = 1
	}
	if p > len(b.Phases) {
		p = len(b.Phases)
	}
	return b.Phases[p-1]
}
