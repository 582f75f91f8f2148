package main

import (
	"math"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"snake-draw/config"
	"snake-draw/game"
	"snake-draw/grid"
	"snake-draw/render/rastercanvas"
	"snake-draw/render/recorder"
	"snake-draw/ui"
)

// runPNG rasterizes a single frame to conf.Output.
func runPNG(conf config.Config, renderer *ui.Renderer, scene *game.Scene) error {
	fw, fh := frameSize(conf, scene)
	w, h := int(math.Ceil(fw)), int(math.Ceil(fh))

	cv := rastercanvas.New(w, h)
	cv.Clear(renderer.Palette.Wall)
	renderer.Draw(cv, scene)

	f, err := os.Create(conf.Output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := cv.WritePNG(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", conf.Output)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", conf.Output)
	}

	log.WithFields(log.Fields{"file": conf.Output, "width": w, "height": h}).Info("Board written")
	return nil
}

// runLog records a single frame and logs every primitive.
func runLog(conf config.Config, renderer *ui.Renderer, scene *game.Scene) error {
	rec := recorder.New(frameSize(conf, scene))
	renderer.Draw(rec, scene)

	for i, op := range rec.Ops() {
		log.WithField("op", i).Info(op.String())
	}
	log.WithField("count", len(rec.Ops())).Info("Frame recorded")
	return nil
}

// frameSize is the board at its natural scale plus padding on every side.
func frameSize(conf config.Config, scene *game.Scene) (w, h float64) {
	w = float64(scene.Grid.Width)*grid.CellSize + 2*conf.Padding
	h = float64(scene.Grid.Height)*grid.CellSize + 2*conf.Padding
	return w, h
}
