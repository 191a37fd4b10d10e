package systems

import (
	"math/rand"

	"github.com/leoprimesmatrix/Starfall/pkg/components"
	"github.com/leoprimesmatrix/Starfall/pkg/config"
	"github.com/leoprimesmatrix/Starfall/pkg/ecs"
	"github.com/leoprimesmatrix/Starfall/pkg/entities"
)

// BackgroundSystem scrolls the star field and the nebula layer. It has no
// effect on gameplay.
type BackgroundSystem struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	rng    *rand.Rand
	nebula float64
}

// NewBackgroundSystem creates the system and seeds the star field.
func NewBackgroundSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand) *BackgroundSystem {
	s := &BackgroundSystem{em: em, cfg: cfg, rng: rng}
	s.populate()
	return s
}

func (s *BackgroundSystem) populate() {
	bg := s.cfg.Background
	w, h := s.cfg.Playfield.Width, s.cfg.Playfield.Height
	for i := 0; i < bg.StarCount; i++ {
		speed := bg.MinSpeed + s.rng.Float64()*(bg.MaxSpeed-bg.MinSpeed)
		entities.NewStar(s.em, s.rng.Float64()*w, s.rng.Float64()*h, speed, 1+speed/2)
	}
}

// Update moves stars down one frame and wraps the ones that left the bottom.
func (s *BackgroundSystem) Update() {
	w, h := s.cfg.Playfield.Width, s.cfg.Playfield.Height
	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](s.em) {
		star, _ := ecs.GetComponent[*components.StarComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.Y += star.Speed
		if pos.Y > h {
			pos.Y = 0
			pos.X = s.rng.Float64() * w
		}
	}

	s.nebula += s.cfg.Background.NebulaSpeed
	if s.nebula >= h {
		s.nebula -= h
	}
}

// NebulaOffset returns the vertical scroll of the nebula layer.
func (s *BackgroundSystem) NebulaOffset() float64 {
	return s.nebula
}
