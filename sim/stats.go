package sim

// Stats summarizes the registry's members.
type Stats struct {
	TotalEntityCount int
	// KindCounts is indexed by Kind.
	KindCounts [3]int
	// Targeting counts members with a live target.
	Targeting int
	// Orphaned counts members whose targeting capability has no live target.
	Orphaned int
}

// CollectStats counts the current members.
func (r *Registry) CollectStats() Stats {
	stats := Stats{TotalEntityCount: r.store.Len()}
	for _, e := range r.store.Iter() {
		if int(e.kind) < len(stats.KindCounts) {
			stats.KindCounts[e.kind]++
		}
		if e.targeting == nil {
			continue
		}
		if _, ok := r.resolveTarget(e); ok {
			stats.Targeting++
		} else {
			stats.Orphaned++
		}
	}
	return stats
}
