package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"snake-draw/config"
	"snake-draw/game"
	"snake-draw/render"
	"snake-draw/render/ebitencanvas"
	"snake-draw/render/rlcanvas"
	"snake-draw/ui"
)

const windowTitle = "Snake Draw"

func runRaylib(conf config.Config, renderer *ui.Renderer, scene *game.Scene) error {
	rl.InitWindow(int32(conf.WindowWidth), int32(conf.WindowHeight), windowTitle)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(conf.FPS))
	log.WithField("size", fmt.Sprintf("%dx%d", conf.WindowWidth, conf.WindowHeight)).Info("Raylib window open")

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		rlcanvas.Frame(colornames.Dimgray, func(cv render.Canvas) {
			renderer.Draw(cv, scene)
		})
	}
	log.Info("Raylib window closed")
	return nil
}

// errQuit ends the ebiten loop without reporting a failure.
var errQuit = errors.New("quit")

type ebitenGame struct {
	renderer  *ui.Renderer
	scene     *game.Scene
	antialias bool
}

func (g *ebitenGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Dimgray)
	g.renderer.Draw(ebitencanvas.New(screen, g.antialias), g.scene)
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func runEbiten(conf config.Config, renderer *ui.Renderer, scene *game.Scene) error {
	ebiten.SetWindowSize(conf.WindowWidth, conf.WindowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(conf.FPS)

	log.WithField("size", fmt.Sprintf("%dx%d", conf.WindowWidth, conf.WindowHeight)).Info("Ebiten window open")
	err := ebiten.RunGame(&ebitenGame{
		renderer:  renderer,
		scene:     scene,
		antialias: conf.Antialias,
	})
	if err != nil && err != errQuit {
		return errors.Wrap(err, "ebiten")
	}
	log.Info("Ebiten window closed")
	return nil
}
