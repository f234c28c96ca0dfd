package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hunters/sim"
)

func NewEntityInspector() *EntityInspector {
	return &EntityInspector{}
}

func (ei *EntityInspector) Render(registry *sim.Registry, selected sim.Handle) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected.IsNil() {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	view, ok := registry.Entity(selected)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %s no longer exists", formatHandle(selected)))
		if ei.status != "" {
			imgui.Text(ei.status)
		}
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Handle: %s", formatHandle(view.Handle)))
	imgui.Text(fmt.Sprintf("Kind: %s", view.Kind))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Position: %.2f, %.2f", view.Position.X, view.Position.Y))
	imgui.Text(fmt.Sprintf("Radius: %.1f", view.Radius))
	imgui.Text(fmt.Sprintf("Max Speed: %.1f", view.MaxSpeed))
	imgui.Text(fmt.Sprintf("Colour: %d, %d, %d", view.Color.R, view.Color.G, view.Color.B))

	if view.Health != nil {
		imgui.Text(fmt.Sprintf("Health: %.0f/%.0f", view.Health.Current, view.Health.Max))
	}

	if imgui.TreeNodeStr("Targeting") {
		if view.Target.IsNil() {
			imgui.Text("No target")
		} else {
			imgui.Text(fmt.Sprintf("Target: %s", formatHandle(view.Target)))
			if registry.IsCollidingTarget(view.Handle) {
				imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "Touching target")
			}
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Overlaps") {
		colliding := registry.TestCollision(view.Handle)
		if len(colliding) == 0 {
			imgui.Text("None")
		}
		for _, h := range colliding {
			imgui.BulletText(formatHandle(h))
		}
		imgui.TreePop()
	}

	imgui.Separator()
	if imgui.Button("Despawn") {
		if registry.Despawn(view.Handle) {
			ei.status = fmt.Sprintf("Despawned %s", formatHandle(view.Handle))
		}
	}

	imgui.End()
}
