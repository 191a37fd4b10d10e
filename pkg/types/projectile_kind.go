package types

import "fmt"

// ProjectileKind identifies the stat row used for an enemy projectile.
type ProjectileKind int

const (
	ProjectileUnknown ProjectileKind = iota
	ProjectileSmall
	ProjectilePlasma
	ProjectileLaser
	ProjectileSpore
	ProjectileMine
)

var projectileKindStringMap = map[ProjectileKind]string{
	ProjectileSmall:  "small",
	ProjectilePlasma: "plasma",
	ProjectileLaser:  "laser",
	ProjectileSpore:  "spore",
	ProjectileMine:   "mine",
}

// AllProjectileKinds lists every enemy projectile kind.
var AllProjectileKinds = []ProjectileKind{
	ProjectileSmall,
	ProjectilePlasma,
	ProjectileLaser,
	ProjectileSpore,
	ProjectileMine,
}

func (k ProjectileKind) String() string {
	if s, ok := projectileKindStringMap[k]; ok {
		return s
	}
	return "unknown"
}

// ProjectileKindFromString converts a config-file name into a ProjectileKind.
func ProjectileKindFromString(s string) ProjectileKind {
	for k, name := range projectileKindStringMap {
		if name == s {
			return k
		}
	}
	return ProjectileUnknown
}

func (k ProjectileKind) MarshalText() ([]byte, error) {
	if _, ok := projectileKindStringMap[k]; !ok {
		return nil, fmt.Errorf("unknown projectile kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *ProjectileKind) UnmarshalText(text []byte) error {
	pk := ProjectileKindFromString(string(text))
	if pk == ProjectileUnknown {
		return fmt.Errorf("unknown projectile kind %q", string(text))
	}
	*k = pk
	return nil
}

// FirePattern selects the projectile-pattern function an enemy uses on fire().
type FirePattern int

const (
	PatternNone FirePattern = iota
	// PatternSingle fires one projectile straight down.
	PatternSingle
	// PatternTwin fires two projectiles from offsets either side of the hull.
	PatternTwin
	// PatternArc fires one projectile that drifts sideways on a sine path.
	PatternArc
)

var firePatternStringMap = map[FirePattern]string{
	PatternNone:   "none",
	PatternSingle: "single",
	PatternTwin:   "twin",
	PatternArc:    "arc",
}

func (p FirePattern) String() string {
	if s, ok := firePatternStringMap[p]; ok {
		return s
	}
	return "unknown"
}

func (p FirePattern) MarshalText() ([]byte, error) {
	if _, ok := firePatternStringMap[p]; !ok {
		return nil, fmt.Errorf("unknown fire pattern %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *FirePattern) UnmarshalText(text []byte) error {
	for fp, name := range firePatternStringMap {
		if name == string(text) {
			*p = fp
			return nil
		}
	}
	return fmt.Errorf("unknown fire pattern %q", string(text))
}
