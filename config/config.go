// Package config holds the settings of the snake-draw demo, read from
// flags, a TOML file and SNAKEDRAW_* environment variables through viper.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"snake-draw/game/types"
	"snake-draw/grid"
)

// Backends
const (
	BackendRaylib = "raylib"
	BackendEbiten = "ebiten"
	BackendTerm   = "term"
	BackendPNG    = "png"
	BackendLog    = "log"
)

// EnvPrefix is prepended to environment variable names.
const EnvPrefix = "SNAKEDRAW"

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrUnknownBackend = errors.New("unknown backend")
)

type Config struct {
	ConfigFile   string  `mapstructure:"config"`
	Backend      string  `mapstructure:"backend"`
	GridWidth    uint32  `mapstructure:"grid-width"`
	GridHeight   uint32  `mapstructure:"grid-height"`
	Food         int     `mapstructure:"food"`
	Seed         uint64  `mapstructure:"seed"`
	Facing       string  `mapstructure:"facing"`
	SnakeLength  int     `mapstructure:"snake-length"`
	WindowWidth  int     `mapstructure:"window-width"`
	WindowHeight int     `mapstructure:"window-height"`
	FPS          int     `mapstructure:"fps"`
	Padding      float64 `mapstructure:"padding"`
	Output       string  `mapstructure:"out"`
	Antialias    bool    `mapstructure:"antialias"`
	Verbose      bool    `mapstructure:"verbose"`
}

// AddFlags registers every setting on flags with its default value.
func AddFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Configuration file (TOML)")
	flags.String("backend", BackendRaylib, "Drawing backend: raylib, ebiten, term, png or log")
	flags.Uint32("grid-width", types.DefaultWidth, "Board width in cells")
	flags.Uint32("grid-height", types.DefaultHeight, "Board height in cells")
	flags.Int("food", types.DefaultFood, "Number of food blocks")
	flags.Uint64("seed", 1, "Seed for the board layout")
	flags.String("facing", grid.Right.String(), "Direction the snake faces")
	flags.Int("snake-length", types.DefaultSnakeSize, "Snake length in cells")
	flags.Int("window-width", 1280, "Window width in pixels")
	flags.Int("window-height", 800, "Window height in pixels")
	flags.Int("fps", 60, "Target frames per second")
	flags.Float64("padding", 10, "Padding around the board in pixels")
	flags.String("out", "board.png", "Output file for the png backend")
	flags.Bool("antialias", true, "Antialias shapes where the backend supports it")
	flags.Bool("verbose", false, "Print detailed execution info")
}

// Bind wires flags and the environment into v.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// Load reads the optional config file and decodes v into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	var conf Config
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return conf, errors.Wrapf(err, "read config %s", file)
		}
	}
	if err := v.Unmarshal(&conf); err != nil {
		return conf, errors.Wrap(err, "decode config")
	}
	return conf, conf.Validate()
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendRaylib, BackendEbiten, BackendTerm, BackendPNG, BackendLog:
	default:
		return errors.Wrapf(ErrUnknownBackend, "%q", c.Backend)
	}
	if _, err := grid.ParseDirection(c.Facing); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	switch {
	case c.GridWidth < 3 || c.GridHeight < 3:
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d smaller than 3x3", c.GridWidth, c.GridHeight)
	case c.GridWidth > types.MaxSide || c.GridHeight > types.MaxSide:
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d larger than %dx%d", c.GridWidth, c.GridHeight, types.MaxSide, types.MaxSide)
	case c.Food < 0:
		return errors.Wrapf(ErrInvalidConfig, "food %d is negative", c.Food)
	case c.SnakeLength < 1:
		return errors.Wrapf(ErrInvalidConfig, "snake-length %d must be positive", c.SnakeLength)
	case c.SnakeLength > int(c.GridWidth+c.GridHeight):
		return errors.Wrapf(ErrInvalidConfig, "snake-length %d exceeds grid %dx%d", c.SnakeLength, c.GridWidth, c.GridHeight)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return errors.Wrapf(ErrInvalidConfig, "window %dx%d", c.WindowWidth, c.WindowHeight)
	case c.FPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "fps %d must be positive", c.FPS)
	case c.Padding < 0:
		return errors.Wrapf(ErrInvalidConfig, "padding %g is negative", c.Padding)
	case c.Backend == BackendPNG && c.Output == "":
		return errors.Wrap(ErrInvalidConfig, "png backend needs an output file")
	}
	return nil
}

// Grid returns the configured board size.
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

// Direction returns the parsed facing; call after Validate.
func (c Config) Direction() grid.Direction {
	d, _ := grid.ParseDirection(c.Facing)
	return d
}
