// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-odyssey/internal/audio"
	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/leaderboard"
	"go-space-odyssey/internal/state"
	"go-space-odyssey/pkg/render"
)

type App struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	scoresPath := flag.String("scores", "scores.json", "leaderboard file")
	extended := flag.Bool("extended", false, "18-sector campaign instead of 10")
	logAudio := flag.Bool("log-audio", false, "print audio cues instead of discarding them")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	board, err := leaderboard.Load(*scoresPath)
	if err != nil {
		log.Fatalf("leaderboard: %v", err)
	}

	var player audio.Player = audio.NullPlayer{}
	if *logAudio {
		player = audio.LogPlayer{}
	}

	ctx := &state.Context{
		Renderer: render.New(),
		Board:    board,
		Audio:    player,
		Extended: *extended,
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, ctx))

	app := &App{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Odisea En El Espacio")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
