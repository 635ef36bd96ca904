package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/asteroids/assets"
	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/debugui"
	"github.com/plus3/asteroids/game"
	"github.com/plus3/asteroids/input"
	"github.com/plus3/asteroids/logging"
	"github.com/plus3/asteroids/render"
	"github.com/plus3/asteroids/telemetry"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fallback := logging.New(config.LogConfig{}, os.Stderr)
		fallback.Fatal().Str("err", eris.ToString(err, true)).Msg("failed to load config")
	}
	logger := logging.New(cfg.Log, os.Stderr)

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Str("err", eris.ToString(err, true)).Msg("game exited with error")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	var waves *telemetry.WaveLog
	if cfg.Telemetry.Enabled {
		var err error
		if waves, err = telemetry.OpenWaveLog(cfg.Telemetry.Path); err != nil {
			return err
		}
		defer waves.Close()
	}

	bindings, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		return err
	}

	world := game.NewWorld(cfg, game.WithLogger(logger), game.WithWaveLog(waves))

	library := assets.NewLibrary(os.DirFS("."), cfg.Textures.Dir)
	if err := library.Preload(cfg.Textures.Player, cfg.Textures.Asteroid, cfg.Textures.Laser); err != nil {
		logger.Warn().Err(err).Msg("using placeholder textures")
	}
	renderer := render.NewRenderer(library, logging.ForSystem(logger, "render"))
	renderer.Configure(cfg.Debug)

	g := game.NewGame(world, input.NewPoller(bindings), renderer)

	var toggle ebiten.Key
	if err := toggle.UnmarshalText([]byte(cfg.Debug.ToggleKey)); err != nil {
		return eris.Wrapf(err, "debug toggle key %q", cfg.Debug.ToggleKey)
	}
	overlay := debugui.NewOverlay(world, cfg.Screen.Title+" debug", cfg.Screen.Width, cfg.Screen.Height)
	g.SetOverlay(overlay, toggle, cfg.Debug.Overlay)

	logger.Info().
		Int("width", cfg.Screen.Width).
		Int("height", cfg.Screen.Height).
		Bool("telemetry", cfg.Telemetry.Enabled).
		Msg("starting")

	defer func() {
		stats := world.Storage().CollectStats()
		logging.Storage(&logger, stats, zerolog.DebugLevel)
		logging.Systems(&logger, world.Stats(), zerolog.DebugLevel)
	}()

	return eris.Wrap(game.Run(g), "run game")
}
