package geometry

import (
	"sort"

	"github.com/beamcost/beamcost/internal/model"
)

// cross returns the z-component of (q-p) x (r-p): positive when p->q->r
// is a strictly counter-clockwise turn.
func cross(p, q, r model.Point2D) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (r.X-p.X)*(q.Y-p.Y)
}

// keepLeft pops the chain tail while the last three points fail the
// strict left-turn test, then appends r unless it repeats the tail.
// Collinear points are discarded along with right turns.
func keepLeft(hull []model.Point2D, r model.Point2D) []model.Point2D {
	for len(hull) > 1 && cross(hull[len(hull)-2], hull[len(hull)-1], r) <= 0 {
		hull = hull[:len(hull)-1]
	}
	if len(hull) == 0 || hull[len(hull)-1] != r {
		hull = append(hull, r)
	}
	return hull
}

// ConvexHull computes the convex hull of a point set with a Graham-style
// monotone scan: points are sorted lexicographically, the lower chain is
// built left to right and the upper chain right to left, and the chains
// are joined without duplicating their shared endpoints. Points interior
// to or collinear with a hull edge are excluded.
func ConvexHull(points []model.Point2D) []model.Point2D {
	sorted := make([]model.Point2D, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	var lower []model.Point2D
	for _, p := range sorted {
		lower = keepLeft(lower, p)
	}
	var upper []model.Point2D
	for i := len(sorted) - 1; i >= 0; i-- {
		upper = keepLeft(upper, sorted[i])
	}
	for i := 1; i < len(upper)-1; i++ {
		lower = append(lower, upper[i])
	}
	return lower
}
