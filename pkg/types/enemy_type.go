package types

import "fmt"

// EnemyType identifies a regular enemy ship class.
// Per-type stats live in config.EnemyTable, indexed by this enum.
type EnemyType int

const (
	EnemyUnknown EnemyType = iota
	EnemySwarmer
	EnemyStriker
	EnemyDestroyer
	EnemyHarvester
	EnemySporeLauncher
)

// AllEnemyTypes lists every spawnable type in table order.
var AllEnemyTypes = []EnemyType{
	EnemySwarmer,
	EnemyStriker,
	EnemyDestroyer,
	EnemyHarvester,
	EnemySporeLauncher,
}

var enemyTypeStringMap = map[EnemyType]string{
	EnemySwarmer:       "swarmer",
	EnemyStriker:       "striker",
	EnemyDestroyer:     "destroyer",
	EnemyHarvester:     "harvester",
	EnemySporeLauncher: "spore_launcher",
}

var stringToEnemyTypeMap map[string]EnemyType

func init() {
	stringToEnemyTypeMap = make(map[string]EnemyType, len(enemyTypeStringMap))
	for et, s := range enemyTypeStringMap {
		stringToEnemyTypeMap[s] = et
	}
	// historical spelling used by older data files
	stringToEnemyTypeMap["sporelauncher"] = EnemySporeLauncher
}

// String returns the config-file name of the type.
func (e EnemyType) String() string {
	if s, ok := enemyTypeStringMap[e]; ok {
		return s
	}
	return "unknown"
}

// EnemyTypeFromString converts a config-file name into an EnemyType.
func EnemyTypeFromString(s string) EnemyType {
	if et, ok := stringToEnemyTypeMap[s]; ok {
		return et
	}
	return EnemyUnknown
}

// MarshalText implements encoding.TextMarshaler so YAML keys and values use names.
func (e EnemyType) MarshalText() ([]byte, error) {
	if _, ok := enemyTypeStringMap[e]; !ok {
		return nil, fmt.Errorf("unknown enemy type %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EnemyType) UnmarshalText(text []byte) error {
	et := EnemyTypeFromString(string(text))
	if et == EnemyUnknown {
		return fmt.Errorf("unknown enemy type %q", string(text))
	}
	*e = et
	return nil
}
