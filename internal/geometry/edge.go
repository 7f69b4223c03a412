// Package geometry derives the per-edge measurements and the convex-hull
// and bounding-rectangle constructions the estimator prices from.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/beamcost/beamcost/internal/model"
)

// ErrDegenerateArc marks a circular arc whose endpoints coincide, which
// leaves the bulge geometry undefined.
var ErrDegenerateArc = errors.New("degenerate arc: endpoints coincide")

// EdgeGeometry holds everything derived from one edge. For line segments
// only StartID, FinishID and Distance are set. For arcs, StartID is the
// ClockwiseFrom vertex and the remaining fields describe the chord and
// sector: Radius is measured from the center to the start point, and
// BoxPoints is a quadrilateral around the chord offset by the sagitta on
// both sides, used to grow a hull past an outward-bulging arc.
type EdgeGeometry struct {
	StartID       int
	FinishID      int
	Distance      float64
	Center        model.Point2D
	Radius        float64
	ChordLength   float64
	ChordMidpoint model.Point2D
	SectorLength  float64
	SectorHeight  float64
	BoxPoints     [4]model.Point2D
}

// ComputeEdgeGeometry derives the geometry of every edge in the schema,
// keyed by edge id. Edges are processed in ascending id order so the
// first failure reported is deterministic.
func ComputeEdgeGeometry(s *model.Schema) (map[int]EdgeGeometry, error) {
	out := make(map[int]EdgeGeometry, len(s.Edges))
	ids := make([]int, 0, len(s.Edges))
	for id := range s.Edges {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		e := s.Edges[id]
		g, err := edgeGeometry(s, e)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", id, err)
		}
		out[id] = g
	}
	return out, nil
}

func edgeGeometry(s *model.Schema, e model.Edge) (EdgeGeometry, error) {
	if !e.IsArc() {
		start, _ := s.Position(e.Vertices[0])
		finish, _ := s.Position(e.Vertices[1])
		return EdgeGeometry{
			StartID:  e.Vertices[0],
			FinishID: e.Vertices[1],
			Distance: start.DistanceTo(finish),
		}, nil
	}

	startID := e.ClockwiseFrom
	finishID := e.Other(startID)
	start, _ := s.Position(startID)
	finish, _ := s.Position(finishID)

	// Radius comes from the center and the start point only. A schema
	// where the finish point sits at a different distance from the
	// center is accepted as-is; the start-derived radius wins.
	radius := e.Center.DistanceTo(start)

	dx := finish.X - start.X
	dy := finish.Y - start.Y
	chord := math.Hypot(dx, dy)
	if chord == 0 {
		return EdgeGeometry{}, ErrDegenerateArc
	}
	// The start-derived radius is tolerated even when the finish point
	// disagrees, but no circle of that radius can span a chord longer
	// than its diameter; asin and the sagitta square root would both
	// leave their domains and poison the price with NaN.
	if chord > 2*radius {
		return EdgeGeometry{}, fmt.Errorf("arc radius %v cannot span chord %v", radius, chord)
	}

	sectorLength := 2 * radius * math.Asin(chord/(2*radius))
	sectorHeight := radius - math.Sqrt(radius*radius-chord*chord/4)

	// Offset both endpoints perpendicular to the chord by the sagitta,
	// on both sides, giving the quadrilateral that bounds the bulge.
	ox := sectorHeight * dy / chord
	oy := sectorHeight * dx / chord
	box := [4]model.Point2D{
		{X: start.X + ox, Y: start.Y - oy},
		{X: start.X - ox, Y: start.Y + oy},
		{X: finish.X - ox, Y: finish.Y + oy},
		{X: finish.X + ox, Y: finish.Y - oy},
	}

	return EdgeGeometry{
		StartID:       startID,
		FinishID:      finishID,
		Distance:      chord,
		Center:        e.Center,
		Radius:        radius,
		ChordLength:   chord,
		ChordMidpoint: model.Point2D{X: (start.X + finish.X) / 2, Y: (start.Y + finish.Y) / 2},
		SectorLength:  sectorLength,
		SectorHeight:  sectorHeight,
		BoxPoints:     box,
	}, nil
}
