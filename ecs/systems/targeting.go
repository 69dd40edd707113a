package systems

import (
	"github.com/bowker/gravitywar/common"
	"github.com/bowker/gravitywar/ecs"
	"github.com/bowker/gravitywar/ecs/components"
)

// TargetSystem resolves, for every faction-bearing entity, the nearest
// entity of any other faction. Results are cached on each entity's
// Target component. When no hostile exists this tick the previous
// target is kept untouched.
type TargetSystem struct {
	Index *FactionIndex
}

// NewTargetSystem creates a TargetSystem over a faction index.
func NewTargetSystem(index *FactionIndex) *TargetSystem {
	return &TargetSystem{Index: index}
}

type factionPos struct {
	faction uint32
	xs, ys  []float64
}

// Update recomputes nearest-hostile targets. The position snapshot is
// taken up front, so the per-entity scans are read-only over it.
func (s *TargetSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Index == nil {
		return
	}
	transforms := w.Transforms()
	targets := w.Targets()

	// Snapshot positions per faction from the index.
	snapshot := make([]factionPos, 0, 4)
	for _, faction := range s.Index.Factions() {
		fp := factionPos{faction: faction}
		for _, id := range s.Index.Members(faction) {
			tr, ok := transforms.Get(id).(*components.Transform)
			if !ok || tr == nil {
				continue
			}
			fp.xs = append(fp.xs, tr.X)
			fp.ys = append(fp.ys, tr.Y)
		}
		snapshot = append(snapshot, fp)
	}

	for _, id := range targets.Entities() {
		target, ok := targets.Get(id).(*components.Target)
		if !ok || target == nil {
			continue
		}
		f, ok := w.Factions().Get(id).(*components.Faction)
		if !ok || f == nil {
			continue
		}
		tr, ok := transforms.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}

		found := false
		var bestX, bestY, bestDist float64
		for _, fp := range snapshot {
			if fp.faction == f.ID {
				continue
			}
			for i := range fp.xs {
				d := common.Dist(tr.X, tr.Y, fp.xs[i], fp.ys[i])
				if !found || d < bestDist {
					found = true
					bestX, bestY, bestDist = fp.xs[i], fp.ys[i], d
				}
			}
		}
		if !found {
			continue
		}
		target.X = bestX
		target.Y = bestY
		target.Distance = bestDist
		target.Acquired = true
	}
}
