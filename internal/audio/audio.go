// internal/audio/audio.go
//
// The audio collaborator boundary. The simulation emits gameplay
// events; this package translates them to named cues and hands them
// to whatever Player implementation the host wires in. Synthesis and
// playback live outside the module.
package audio

import (
	"log"

	"go-space-odyssey/internal/event"
)

// Cue is a named sound request.
type Cue string

const (
	CueLaserShot    Cue = "laser_shot"
	CueSuperShot    Cue = "super_shot"
	CueExplosion    Cue = "explosion"
	CueDamage       Cue = "damage"
	CueEnemyDeath   Cue = "enemy_death"
	CueBossLaser    Cue = "boss_laser"
	CueBossDefeat   Cue = "boss_defeat"
	CueLevelVictory Cue = "level_victory"
	CuePickup       Cue = "pickup"
)

// Player receives cues. Implementations must not block.
type Player interface {
	Play(cue Cue)
}

// NullPlayer discards every cue.
type NullPlayer struct{}

func (NullPlayer) Play(Cue) {}

// LogPlayer prints cues, useful when running headless.
type LogPlayer struct{}

func (LogPlayer) Play(c Cue) { log.Printf("audio: %s", c) }

// cueMap routes gameplay events to cues. Some events fan out to more
// than one cue, matching how the original game layered its sounds.
var cueMap = map[event.EventType][]Cue{
	event.PlayerShot:       {CueLaserShot},
	event.SuperShot:        {CueSuperShot},
	event.EnemyKilled:      {CueExplosion, CueEnemyDeath},
	event.BossDefeated:     {CueBossDefeat, CueExplosion},
	event.BossLaserFired:   {CueBossLaser},
	event.PlayerDamaged:    {CueDamage},
	event.TrapDetonated:    {CueExplosion, CueDamage},
	event.MeteorShattered:  {CueExplosion},
	event.TreasurePicked:   {CuePickup},
	event.ItemPicked:       {CuePickup},
	event.PowerUpCollected: {CuePickup},
	event.HazardTriggered:  {CueDamage},
	event.LevelComplete:    {CueLevelVictory},
}

// Router subscribes to the dispatcher and forwards cues to a Player.
type Router struct {
	player Player
}

// NewRouter wires the router onto the dispatcher for every mapped
// event type. A nil player falls back to NullPlayer.
func NewRouter(dispatcher *event.Dispatcher, player Player) *Router {
	if player == nil {
		player = NullPlayer{}
	}
	r := &Router{player: player}
	for eventType := range cueMap {
		dispatcher.Subscribe(eventType, r)
	}
	return r
}

func (r *Router) OnEvent(e event.Event) {
	for _, cue := range cueMap[e.Type] {
		r.player.Play(cue)
	}
}
