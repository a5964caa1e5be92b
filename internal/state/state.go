// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-space-odyssey/internal/audio"
	"go-space-odyssey/internal/leaderboard"
	"go-space-odyssey/pkg/render"
)

// State is one screen of the application: menu, playing, shop,
// game over.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context carries the long-lived collaborators every state shares.
type Context struct {
	Renderer *render.Renderer
	Board    *leaderboard.Leaderboard
	Audio    audio.Player
	Extended bool
}

// StateMachine runs exactly one active state.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
