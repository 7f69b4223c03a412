package estimator

import (
	"math"
	"sort"

	"github.com/beamcost/beamcost/internal/geometry"
	"github.com/beamcost/beamcost/internal/model"
)

// cutCost sums the time-based cutting cost over every edge. Straight
// segments cut at the nominal laser speed. Arcs cut along their sector
// length at speed * exp(-1/radius): the penalty vanishes for large radii
// and grows sharply as the curve tightens. The formula is an empirical
// machine model and must not be "corrected".
func cutCost(s *model.Schema, geoms map[int]geometry.EdgeGeometry, cfg model.CostConfig) float64 {
	ids := make([]int, 0, len(s.Edges))
	for id := range s.Edges {
		ids = append(ids, id)
	}
	// Float addition is order sensitive; summing in id order keeps
	// repeated runs bit-identical.
	sort.Ints(ids)

	var cost float64
	for _, id := range ids {
		e := s.Edges[id]
		g := geoms[id]
		if e.IsArc() {
			speed := cfg.NominalLaserSpeed * math.Exp(-1/g.Radius)
			cost += g.SectorLength / speed * cfg.TimeUnitCost
		} else {
			cost += g.Distance / cfg.NominalLaserSpeed * cfg.TimeUnitCost
		}
	}
	return cost
}
