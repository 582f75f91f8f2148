package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"snake-draw/game"
	"snake-draw/render/termcanvas"
	"snake-draw/ui"
)

func runTerm(scene *game.Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer screen.Fini()

	// Terminal cells are coarse, no padding around the board
	renderer := ui.NewRenderer(0)
	draw := func() {
		screen.Clear()
		renderer.Draw(termcanvas.New(screen), scene)
		screen.Show()
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				log.Debug("Terminal view closed")
				return nil
			}
		case nil:
			return nil
		}
	}
}
