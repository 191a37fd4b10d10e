package event

import "github.com/leoprimesmatrix/Starfall/pkg/types"

const (
	EnemyDefeated    EventType = "EnemyDefeated"
	ScoreAwarded     EventType = "ScoreAwarded"
	PowerUpCollected EventType = "PowerUpCollected"
	PlayerDamaged    EventType = "PlayerDamaged"
	PlayerKilled     EventType = "PlayerKilled"
	BossSpawned      EventType = "BossSpawned"
	BossPhaseChanged EventType = "BossPhaseChanged"
	BossDefeated     EventType = "BossDefeated"
	LevelCompleted   EventType = "LevelCompleted"
)

// EnemyDefeatedData is the payload of EnemyDefeated.
type EnemyDefeatedData struct {
	Type types.EnemyType
	X, Y float64
	// ByCollision is set when the enemy rammed the ship instead of being shot.
	ByCollision bool
}

// ScoreData is the payload of ScoreAwarded.
type ScoreData struct {
	Amount int
}

// DamageData is the payload of PlayerDamaged.
type DamageData struct {
	Amount int
	Source string
}

// PhaseData is the payload of BossPhaseChanged.
type PhaseData struct {
	From, To int
}

// LevelData is the payload of LevelCompleted.
type LevelData struct {
	Level int
}
