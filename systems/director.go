package systems

import (
	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/ecs"
	"github.com/rs/zerolog"
)

// WaveEventKind says why the director reshaped the world.
type WaveEventKind uint8

const (
	// GameOver fires after the player died and the world was reloaded.
	GameOver WaveEventKind = iota
	// WaveCleared fires after the last asteroid died and the next wave spawned.
	WaveCleared
)

func (k WaveEventKind) String() string {
	switch k {
	case GameOver:
		return "game_over"
	case WaveCleared:
		return "wave_cleared"
	default:
		return "unknown"
	}
}

// WaveEvent describes a reload or a wave transition. Score and Level are the
// values reached before a reload, or the new level for a cleared wave.
type WaveEvent struct {
	Kind    WaveEventKind
	Level   int
	Score   int
	Health  int
	Spawned int
}

// WaveDirector reloads the world when the player dies, starts a new wave when
// the field is clear and serves spawn requests latched by PlayerControl.
// Spawns go straight into storage so later stages see them this frame.
type WaveDirector struct {
	Players   ecs.Query[playerView]
	Asteroids ecs.Query[struct{ *components.Asteroid }]
	Lasers    ecs.Query[struct{ *components.Laser }]
	Game      ecs.Singleton[components.GameData]
	Requests  ecs.Singleton[components.Requests]
	Screen    ecs.Singleton[components.Screen]

	Spawner *Spawner
	Waves   config.WavesConfig
	MaxLive int

	// OnEvent, when set, is told about reloads and cleared waves.
	OnEvent func(WaveEvent)

	Logger zerolog.Logger
}

func NewWaveDirector(spawner *Spawner, cfg *config.Config, logger zerolog.Logger) *WaveDirector {
	return &WaveDirector{
		Spawner: spawner,
		Waves:   cfg.Waves,
		MaxLive: cfg.Laser.MaxLive,
		Logger:  logger,
	}
}

func (s *WaveDirector) Execute(frame *ecs.UpdateFrame) {
	game := mustSingleton(&s.Game)

	if s.Players.Len() == 0 {
		s.reload(frame.Storage, *game)
		return
	}
	if n := s.Players.Len(); n > 1 {
		invariant("%d live players", n)
	}

	requests := mustSingleton(&s.Requests)
	screen := mustSingleton(&s.Screen)
	_, player, _ := s.Players.First()
	avoid := components.QuadrantOf(player.Position.X, player.Position.Y, screen.Width, screen.Height)

	if s.Asteroids.Len() == 0 {
		game.Level++
		player.Player.Health = min(player.Player.Health+1, components.MaxHealth)

		count := game.Level * s.Waves.AsteroidsPerLevel
		for range count {
			s.Spawner.SpawnAsteroid(frame.Storage, avoid)
		}

		s.Logger.Info().
			Int("level", game.Level).
			Int("health", player.Player.Health).
			Int("spawned", count).
			Msg("wave cleared")
		s.emit(WaveEvent{Kind: WaveCleared, Level: game.Level, Score: game.Score, Health: player.Player.Health, Spawned: count})
	}

	if requests.SpawnMany {
		requests.SpawnMany = false
		for range s.Waves.MassSpawnCount {
			s.Spawner.SpawnAsteroid(frame.Storage, avoid)
		}
		s.Logger.Info().Int("spawned", s.Waves.MassSpawnCount).Msg("mass spawn")
	}

	if requests.Fire.Pending {
		intent := requests.Fire
		requests.Fire = components.FireIntent{}
		if s.Lasers.Len() >= s.MaxLive {
			s.Logger.Trace().Int("live", s.Lasers.Len()).Msg("laser cap reached, shot dropped")
			return
		}
		s.Spawner.SpawnLaser(frame.Storage, intent)
	}
}

func (s *WaveDirector) reload(storage *ecs.Storage, final components.GameData) {
	storage.Clear()
	s.Spawner.LoadWorld(storage)

	s.Logger.Info().
		Int("score", final.Score).
		Int("level", final.Level).
		Msg("player destroyed, reloading world")
	s.emit(WaveEvent{Kind: GameOver, Level: final.Level, Score: final.Score})
}

func (s *WaveDirector) emit(event WaveEvent) {
	if s.OnEvent != nil {
		s.OnEvent(event)
	}
}
