// Package debugui is a Dear ImGui overlay for inspecting and poking a running
// game. Panels live as entities in the overlay's own store, so reloading the
// game world never removes them.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/asteroids/ecs"
	"github.com/plus3/asteroids/input"
)

// ImguiItem is a component that holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiBackend wraps the ebiten Dear ImGui backend as a singleton.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// ImguiSystem defers every item's render function to the end of the frame
// and refreshes ImguiInputState.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.Render)
	}
}

// Target is the game state the panels read and drive.
type Target interface {
	Storage() *ecs.Storage
	Stats() *ecs.SchedulerStats
	Input() *input.State
}

// Overlay owns the ImGui backend and the panel store.
type Overlay struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	backend   *ecs.Singleton[ImguiBackend]
	input     *ecs.Singleton[ImguiInputState]
	frames    *FrameHistory
}

// NewOverlay creates the ImGui context and spawns the default panels for
// target. It must be called before ebiten.RunGame.
func NewOverlay(target Target, title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[ImguiItem](registry)
	storage := ecs.NewStorage(registry)

	o := &Overlay{
		storage: storage,
		backend: ecs.NewSingleton(storage, ImguiBackend{EbitenBackend: backend}),
		input:   ecs.NewSingleton[ImguiInputState](storage),
		frames:  NewFrameHistory(120),
	}

	o.scheduler = ecs.NewScheduler(storage)
	o.scheduler.Register(&ImguiSystem{})

	SpawnPanels(storage, target, o.frames)
	return o
}

// Storage exposes the panel store so callers can add their own ImguiItems.
func (o *Overlay) Storage() *ecs.Storage {
	return o.storage
}

func (o *Overlay) Update(dt float64) {
	o.frames.Push(float32(dt * 1000))

	backend := o.backend.Get()
	backend.BeginFrame()
	o.scheduler.Once(dt)
	backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Get().Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Get().Layout(width, height)
}

func (o *Overlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}
