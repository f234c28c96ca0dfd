package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hunters/sim"
)

type EntityBrowserCache struct {
	entities      []sim.View
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		cache: &EntityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(registry *sim.Registry) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(460, 300), imgui.CondOnce)
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	// Positions change every frame, so the snapshot is always rebuilt.
	eb.rebuildCache(registry)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Handle")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Radius")
		imgui.TableSetupColumn("Target")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		eb.sortEntities()

		filtered := eb.filteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			entity := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == entity.Handle
			if imgui.SelectableBoolV(formatHandle(entity.Handle), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.Handle
			}

			imgui.TableNextColumn()
			imgui.Text(entity.Kind.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f, %.1f", entity.Position.X, entity.Position.Y))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", entity.Radius))

			imgui.TableNextColumn()
			if entity.Target.IsNil() {
				imgui.Text("-")
			} else {
				imgui.Text(formatHandle(entity.Target))
			}
		}

		imgui.EndTable()
	}

	filtered := eb.filteredEntities()

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		eb.currentPage = min(eb.currentPage, totalPages-1)
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		eb.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) rebuildCache(registry *sim.Registry) {
	eb.cache.entities = eb.cache.entities[:0]
	for view := range registry.Views() {
		eb.cache.entities = append(eb.cache.entities, view)
	}
}

func (eb *EntityBrowser) sortEntities() {
	sort.SliceStable(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		if !eb.cache.sortAscending {
			a, b = b, a
		}

		switch eb.cache.sortColumn {
		case 1:
			return a.Kind < b.Kind
		case 2:
			return a.Position.X < b.Position.X || (a.Position.X == b.Position.X && a.Position.Y < b.Position.Y)
		case 3:
			return a.Radius < b.Radius
		case 4:
			return a.Target < b.Target
		default:
			return a.Handle < b.Handle
		}
	})
}

func (eb *EntityBrowser) filteredEntities() []sim.View {
	if eb.filterText == "" {
		return eb.cache.entities
	}

	filtered := make([]sim.View, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, entity := range eb.cache.entities {
		if !strings.Contains(formatHandle(entity.Handle), filterLower) &&
			!strings.Contains(entity.Kind.String(), filterLower) {
			continue
		}
		filtered = append(filtered, entity)
	}

	return filtered
}

// Selected returns the handle picked in the table, Nil if none.
func (eb *EntityBrowser) Selected() sim.Handle {
	return eb.selected
}

// formatHandle renders a handle as index:generation.
func formatHandle(h sim.Handle) string {
	return fmt.Sprintf("%d:%d", h.Index(), h.Generation())
}
