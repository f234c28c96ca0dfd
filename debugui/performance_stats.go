package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hunters/sim"
)

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// record stores a frame time and returns the average over the history.
func (ps *PerformanceStats) record(deltaTime float32) float32 {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	return avgFrameTime / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(game *sim.Game, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(480, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.record(deltaTime)
	stats := game.Registry().CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Players: %d  Enemies: %d  Generic: %d",
		stats.KindCounts[sim.KindPlayer], stats.KindCounts[sim.KindEnemy], stats.KindCounts[sim.KindGeneric]))
	imgui.Text(fmt.Sprintf("Pursuing: %d  Without target: %d", stats.Targeting, stats.Orphaned))

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Collisions") {
		counters := game.Counters().Snapshot()
		imgui.BulletText(fmt.Sprintf("Detected: %d", counters.Collisions))
		imgui.BulletText(fmt.Sprintf("Resolved: %d", counters.Resolved))
		imgui.BulletText(fmt.Sprintf("Reverted: %d", counters.Unresolved))
		imgui.BulletText(fmt.Sprintf("Spawn rejections: %d", counters.SpawnRejections))
		imgui.BulletText(fmt.Sprintf("Spawn exhaustions: %d", counters.SpawnExhaustions))
		imgui.BulletText(fmt.Sprintf("Touching target: %d", game.Touching()))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Details") {
		schedStats := game.Scheduler().GetStats()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range schedStats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.Text(fmt.Sprintf("Frames: %d  Last: %s", schedStats.Frames, schedStats.LastFrame))
		imgui.TreePop()
	}

	imgui.Separator()
	if imgui.Button("Spawn Enemy") {
		if _, err := game.SpawnEnemy(game.Player()); err != nil {
			ps.status = err.Error()
		} else {
			ps.status = ""
		}
	}
	if ps.status != "" {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), ps.status)
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
