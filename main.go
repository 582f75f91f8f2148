package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snake-draw/config"
	"snake-draw/game"
	"snake-draw/ui"
)

var rootCmd = &cobra.Command{
	Use:   "snake-draw",
	Short: "Render a snake board with one of the drawing backends",
	Long: `snake-draw lays out a walled board with a snake and some food and
draws it through a raylib or ebiten window, the terminal, a PNG file or the log.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		if conf.Verbose {
			log.SetLevel(log.DebugLevel)
		}
		return run(conf)
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	config.AddFlags(rootCmd.PersistentFlags())
	if err := config.Bind(viper.GetViper(), rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Fatal("Cannot bind flags")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("snake-draw failed")
		os.Exit(1)
	}
}

func run(conf config.Config) error {
	opts := game.DefaultOptions()
	opts.Food = conf.Food
	opts.Seed = conf.Seed
	opts.Facing = conf.Direction()
	opts.SnakeLength = conf.SnakeLength

	scene, err := game.NewDemoScene(conf.Grid(), opts)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"backend": conf.Backend,
		"grid":    conf.Grid(),
		"food":    len(scene.Food),
		"seed":    conf.Seed,
		"facing":  opts.Facing,
	}).Info("Board ready")

	renderer := ui.NewRenderer(conf.Padding)
	switch conf.Backend {
	case config.BackendRaylib:
		return runRaylib(conf, renderer, scene)
	case config.BackendEbiten:
		return runEbiten(conf, renderer, scene)
	case config.BackendTerm:
		return runTerm(scene)
	case config.BackendPNG:
		return runPNG(conf, renderer, scene)
	case config.BackendLog:
		return runLog(conf, renderer, scene)
	}
	return config.ErrUnknownBackend
}
