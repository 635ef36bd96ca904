package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/asteroids/components"
	"github.com/plus3/asteroids/ecs"
	"github.com/plus3/asteroids/input"
)

// SpawnPanels adds the default windows to the overlay store.
func SpawnPanels(storage *ecs.Storage, target Target, frames *FrameHistory) {
	storage.Spawn(ImguiItem{Render: func() { performancePanel(target, frames) }})
	storage.Spawn(ImguiItem{Render: func() { systemsPanel(target) }})
	storage.Spawn(ImguiItem{Render: func() { gamePanel(target) }})
}

func performancePanel(target Target, frames *FrameHistory) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 90), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := target.Storage().CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	avg := frames.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	if history := frames.Ordered(); len(history) > 0 {
		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		imgui.PlotLinesFloatPtr("##frametime", &history[0], int32(len(history)))
	}

	if imgui.TreeNodeStr("Archetypes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entities")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%v", arch.ComponentTypes))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// SortSystems orders stats by a column of the systems table:
// 0 name, 1 average, 2 min, 3 max.
func SortSystems(systems []ecs.SystemStats, column int, descending bool) {
	sort.SliceStable(systems, func(i, j int) bool {
		left, right := systems[i], systems[j]
		if descending {
			left, right = right, left
		}
		var less bool
		switch column {
		case 0:
			less = left.Name < right.Name
		case 1:
			less = left.AvgDuration < right.AvgDuration
		case 2:
			less = left.MinDuration < right.MinDuration
		case 3:
			less = left.MaxDuration < right.MaxDuration
		}
		return less
	})
}

func systemsPanel(target Target) {
	stats := target.Stats()

	imgui.SetNextWindowPosV(imgui.NewVec2(320, 90), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(400, 200), imgui.CondOnce)

	if imgui.BeginV("Systems", nil, 0) {
		imgui.Text(fmt.Sprintf("Frames: %d", stats.TotalExecutions/int64(max(stats.SystemCount, 1))))
		imgui.Separator()

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
		if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Name")
			imgui.TableSetupColumn("Avg (ms)")
			imgui.TableSetupColumn("Min (ms)")
			imgui.TableSetupColumn("Max (ms)")
			imgui.TableHeadersRow()

			systems := stats.Systems
			if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
				spec := sortSpecs.Specs()
				SortSystems(systems, int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionDescending)
			}

			for _, sys := range systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.MinDuration.Microseconds())/1000.0))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
			}
			imgui.EndTable()
		}
	}
	imgui.End()
}

func gamePanel(target Target) {
	storage := target.Storage()

	var data *components.GameData
	if !storage.ReadSingleton(&data) {
		return
	}
	health := 0
	for p := range ecs.NewView[struct{ *components.Player }](storage).Values() {
		health = p.Player.Health
	}
	asteroids := ecs.NewView[struct{ *components.Asteroid }](storage).Count()
	lasers := ecs.NewView[struct{ *components.Laser }](storage).Count()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 360), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 200), imgui.CondOnce)

	if imgui.BeginV("Game", nil, 0) {
		imgui.Text(fmt.Sprintf("Score: %d", data.Score))
		imgui.Text(fmt.Sprintf("Level: %d", data.Level))
		imgui.Text(fmt.Sprintf("Health: %d / %d", health, components.MaxHealth))
		imgui.Text(fmt.Sprintf("Asteroids: %d", asteroids))
		imgui.Text(fmt.Sprintf("Lasers: %d", lasers))
		imgui.Separator()

		if data.InvinciblePlayer {
			imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "INVINCIBLE")
		}
		if imgui.Button("Toggle Invincible") {
			target.Input().KeyDown(input.ToggleInvincible)
		}
		imgui.SameLine()
		if imgui.Button("Mass Spawn") {
			target.Input().KeyDown(input.SpawnMany)
		}
	}
	imgui.End()
}
