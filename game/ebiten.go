package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/asteroids/input"
)

// Drawer renders a snapshot onto the screen.
type Drawer interface {
	Draw(screen *ebiten.Image, snap Snapshot)
}

// Overlay is an optional debug layer drawn above the game.
type Overlay interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	WantsKeyboard() bool
}

// Game adapts a World to ebiten's run loop.
type Game struct {
	world  *World
	poller *input.Poller
	clock  *Clock
	drawer Drawer

	overlay        Overlay
	overlayKey     ebiten.Key
	overlayVisible bool
}

func NewGame(world *World, poller *input.Poller, drawer Drawer) *Game {
	return &Game{
		world:  world,
		poller: poller,
		clock:  NewClock(),
		drawer: drawer,
	}
}

// SetOverlay installs a debug overlay toggled by key.
func (g *Game) SetOverlay(overlay Overlay, key ebiten.Key, visible bool) {
	g.overlay = overlay
	g.overlayKey = key
	g.overlayVisible = visible
}

func (g *Game) showOverlay() bool {
	return g.overlay != nil && g.overlayVisible
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.overlay != nil && inpututil.IsKeyJustPressed(g.overlayKey) {
		g.overlayVisible = !g.overlayVisible
	}

	if g.showOverlay() && g.overlay.WantsKeyboard() {
		g.poller.PollReleases(g.world.Input())
	} else {
		g.poller.Poll(g.world.Input())
	}

	dt := g.clock.Tick()
	g.world.Step(dt)

	if g.showOverlay() {
		g.overlay.Update(dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawer.Draw(screen, g.world.Snapshot())
	if g.showOverlay() {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.world.cfg.Screen.Width, g.world.cfg.Screen.Height
	if g.overlay != nil {
		g.overlay.Layout(w, h)
	}
	return w, h
}

// Run opens the window and blocks until the player quits. Updates are tied
// to the display refresh rather than a fixed tick rate.
func Run(g *Game) error {
	cfg := g.world.cfg
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(g)
}
