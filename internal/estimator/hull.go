package estimator

import (
	"github.com/beamcost/beamcost/internal/geometry"
	"github.com/beamcost/beamcost/internal/graph"
	"github.com/beamcost/beamcost/internal/model"
)

// buildHulls computes one convex hull per cycle. When the schema has no
// arcs the hull of the cycle's vertex positions is final. Otherwise the
// hull boundary is walked pair by pair; for every boundary pair the
// shortest graph path between the two vertices is inspected, and any arc
// on that path whose start vertex occurs after its finish vertex in path
// order is treated as bulging outward. The box points of those arcs are
// added to the point set and the hull is recomputed.
//
// The start-after-finish rule is a positional heuristic, not a general
// geometric test; it can misjudge arcs on asymmetric multi-edge shortest
// paths. It is kept as-is for compatibility with established pricing.
func buildHulls(s *model.Schema, g *graph.Graph, cycles [][]int, geoms map[int]geometry.EdgeGeometry) [][]model.Point2D {
	hasArcs := s.HasArcs()
	hulls := make([][]model.Point2D, 0, len(cycles))

	for _, cycle := range cycles {
		pts := make([]model.Point2D, 0, len(cycle))
		for _, id := range cycle {
			if p, ok := s.Position(id); ok {
				pts = append(pts, p)
			}
		}
		hull := geometry.ConvexHull(pts)
		if hasArcs {
			hull = geometry.ConvexHull(expandWithArcs(s, g, hull, geoms))
		}
		hulls = append(hulls, hull)
	}

	return hulls
}

// expandWithArcs returns the hull points plus the box points of every
// outward-bulging arc found along the hull boundary.
func expandWithArcs(s *model.Schema, g *graph.Graph, hull []model.Point2D, geoms map[int]geometry.EdgeGeometry) []model.Point2D {
	points := make([]model.Point2D, len(hull))
	copy(points, hull)

	edges := indexEdges(s)
	for i := range hull {
		a := vertexAt(s, hull[i])
		b := vertexAt(s, hull[(i+1)%len(hull)])
		if a < 0 || b < 0 {
			continue
		}
		path := g.ShortestPath(a, b)
		for j := 0; j+1 < len(path); j++ {
			e, ok := edges[pairKey(path[j], path[j+1])]
			if !ok || !e.IsArc() {
				continue
			}
			gm := geoms[e.ID]
			if indexOf(path, gm.StartID) > indexOf(path, gm.FinishID) {
				points = append(points, gm.BoxPoints[:]...)
			}
		}
	}

	return points
}

// vertexAt reverse-looks-up a vertex id by exact position. When several
// vertices share a position the smallest id wins. Returns -1 when no
// vertex sits at the point.
func vertexAt(s *model.Schema, p model.Point2D) int {
	best := -1
	for id, v := range s.Vertices {
		if v.Position == p && (best < 0 || id < best) {
			best = id
		}
	}
	return best
}

// indexEdges builds a lookup from unordered endpoint pair to the schema
// edge connecting it, computed once per hull expansion. With parallel
// edges the smallest edge id wins, keeping the walk stable.
func indexEdges(s *model.Schema) map[[2]int]model.Edge {
	idx := make(map[[2]int]model.Edge, len(s.Edges))
	for _, e := range s.Edges {
		k := pairKey(e.Vertices[0], e.Vertices[1])
		if prev, ok := idx[k]; !ok || e.ID < prev.ID {
			idx[k] = e
		}
	}
	return idx
}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

func indexOf(path []int, id int) int {
	for i, v := range path {
		if v == id {
			return i
		}
	}
	return -1
}
