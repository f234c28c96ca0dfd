package debugui

import "github.com/plus3/hunters/sim"

type EntityBrowser struct {
	cache              *EntityBrowserCache
	selected           sim.Handle
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type EntityInspector struct {
	status string
}

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	status        string
}
