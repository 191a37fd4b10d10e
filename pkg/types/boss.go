package types

// BossAttack is one of the attack patterns a boss phase can enable.
type BossAttack int

const (
	BossAttackLasers BossAttack = iota
	BossAttackPlasma
	BossAttackSpread
	BossAttackBeam
	BossAttackMines
)

func (a BossAttack) String() string {
	switch a {
	case BossAttackLasers:
		return "lasers"
	case BossAttackPlasma:
		return "plasma"
	case BossAttackSpread:
		return "spread"
	case BossAttackBeam:
		return "beam"
	case BossAttackMines:
		return "mines"
	default:
		return "unknown"
	}
}

// BeamState is the sub-state of the boss beam attack.
type BeamState int

const (
	BeamIdle BeamState = iota
	BeamCharging
	BeamActive
)

func (s BeamState) String() string {
	switch s {
	case BeamIdle:
		return "idle"
	case BeamCharging:
		return "charging"
	case BeamActive:
		return "active"
	default:
		return "unknown"
	}
}
