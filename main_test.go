package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-draw/config"
	"snake-draw/grid"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Backend:      config.BackendPNG,
		GridWidth:    12,
		GridHeight:   8,
		Food:         3,
		Seed:         9,
		Facing:       grid.Up.String(),
		SnakeLength:  3,
		WindowWidth:  640,
		WindowHeight: 480,
		FPS:          30,
		Padding:      4,
		Output:       filepath.Join(t.TempDir(), "board.png"),
	}
}

func TestRunPNG(t *testing.T) {
	conf := testConfig(t)
	require.NoError(t, conf.Validate())
	require.NoError(t, run(conf))

	f, err := os.Open(conf.Output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 12*12+8, img.Bounds().Dx())
	assert.Equal(t, 8*12+8, img.Bounds().Dy())
}

func TestRunLog(t *testing.T) {
	conf := testConfig(t)
	conf.Backend = config.BackendLog
	assert.NoError(t, run(conf))
}

func TestRunRejectsImpossibleBoard(t *testing.T) {
	conf := testConfig(t)
	conf.SnakeLength = 20
	assert.Error(t, run(conf))
}
