package entity

import (
	"math"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/geom"
)

// Pickup is a power-up or hazard capsule waiting on the field. Hazards look
// identical until collected.
type Pickup struct {
	Figure
	Def    defs.PickupDefinition
	Hazard bool
	pulse  float64
}

func NewPickup(pos geom.Vector2D, def defs.PickupDefinition, hazard bool) *Pickup {
	return &Pickup{
		Figure: NewFigure(pos, config.PickupRadius),
		Def:    def,
		Hazard: hazard,
	}
}

// Update advances the pulse animation phase.
func (p *Pickup) Update(dt float64) {
	p.pulse += dt * 4
	if p.pulse > 2*math.Pi {
		p.pulse -= 2 * math.Pi
	}
}

// PulseScale is the current draw scale of the capsule glow, in [0.85, 1.15].
func (p *Pickup) PulseScale() float64 {
	return 1 + 0.15*math.Sin(p.pulse)
}
