package types

import "fmt"

// AbilityID identifies a temporary player ability.
type AbilityID int

const (
	AbilityNone AbilityID = iota
	AbilityRapidFire
	AbilityShield
	AbilityPiercing
)

// AllAbilities lists every grantable ability.
var AllAbilities = []AbilityID{AbilityRapidFire, AbilityShield, AbilityPiercing}

var abilityStringMap = map[AbilityID]string{
	AbilityNone:      "none",
	AbilityRapidFire: "rapid_fire",
	AbilityShield:    "shield",
	AbilityPiercing:  "piercing",
}

func (a AbilityID) String() string {
	if s, ok := abilityStringMap[a]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether a is a grantable ability (not AbilityNone).
func (a AbilityID) Valid() bool {
	return a == AbilityRapidFire || a == AbilityShield || a == AbilityPiercing
}

// AbilityFromString converts a config-file name into an AbilityID.
// Unknown names map to AbilityNone.
func AbilityFromString(s string) AbilityID {
	for id, name := range abilityStringMap {
		if name == s {
			return id
		}
	}
	return AbilityNone
}

func (a AbilityID) MarshalText() ([]byte, error) {
	if _, ok := abilityStringMap[a]; !ok {
		return nil, fmt.Errorf("unknown ability %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *AbilityID) UnmarshalText(text []byte) error {
	id := AbilityFromString(string(text))
	if id == AbilityNone && string(text) != "none" {
		return fmt.Errorf("unknown ability %q", string(text))
	}
	*a = id
	return nil
}
