package importer

import (
	"errors"
	"math"

	"github.com/beamcost/beamcost/internal/estimator"
	"github.com/beamcost/beamcost/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// weldTolerance is the maximum distance between two DXF endpoints that
// still maps them onto the same schema vertex.
const weldTolerance = 0.01

// ImportDXF converts a DXF drawing into a part schema. LINE entities
// become line segments, ARC entities become circular arcs, CIRCLE
// entities become two half-circle arcs, and LWPOLYLINE segments become
// lines or, when a vertex carries a bulge, exact arcs. Endpoints within
// weldTolerance of an existing vertex are welded onto it. Whether the
// result describes a closed profile is the estimator's call, not ours.
func ImportDXF(path string) (*model.Schema, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return nil, &estimator.Error{Kind: estimator.ParseFailure, Schema: path, Err: err}
	}

	b := newSchemaBuilder(path)
	usable := 0
	for _, ent := range drawing.Entities() {
		switch e := ent.(type) {
		case *entity.Line:
			b.line(
				model.Point2D{X: e.Start[0], Y: e.Start[1]},
				model.Point2D{X: e.End[0], Y: e.End[1]},
			)
			usable++
		case *entity.Arc:
			b.dxfArc(e)
			usable++
		case *entity.Circle:
			b.circle(model.Point2D{X: e.Center[0], Y: e.Center[1]}, e.Radius)
			usable++
		case *entity.LwPolyline:
			b.polyline(e)
			usable++
		default:
			// Text, dimensions and other annotation entities carry no
			// cut geometry and are skipped.
		}
	}
	if usable == 0 {
		return nil, &estimator.Error{
			Kind:   estimator.ParseFailure,
			Schema: path,
			Err:    errors.New("drawing contains no cut geometry"),
		}
	}

	return b.schema, nil
}

// schemaBuilder accumulates welded vertices and edges while walking the
// entity list.
type schemaBuilder struct {
	schema     *model.Schema
	nextVertex int
	nextEdge   int
}

func newSchemaBuilder(name string) *schemaBuilder {
	return &schemaBuilder{
		schema: &model.Schema{
			Name:     name,
			Vertices: make(map[int]model.Vertex),
			Edges:    make(map[int]model.Edge),
		},
		nextVertex: 1,
		nextEdge:   1,
	}
}

// vertex returns the id of the vertex at p, welding onto the nearest
// existing vertex when one lies within tolerance.
func (b *schemaBuilder) vertex(p model.Point2D) int {
	best := -1
	bestDist := weldTolerance
	for id, v := range b.schema.Vertices {
		d := v.Position.DistanceTo(p)
		if d < bestDist || (d == bestDist && best >= 0 && id < best) {
			best = id
			bestDist = d
		}
	}
	if best >= 0 {
		return best
	}
	id := b.nextVertex
	b.nextVertex++
	b.schema.Vertices[id] = model.Vertex{ID: id, Position: p}
	return id
}

func (b *schemaBuilder) line(p, q model.Point2D) {
	u, v := b.vertex(p), b.vertex(q)
	if u == v {
		return // zero-length line after welding
	}
	id := b.nextEdge
	b.nextEdge++
	b.schema.Edges[id] = model.Edge{
		ID:       id,
		Type:     model.EdgeLineSegment,
		Vertices: [2]int{u, v},
	}
}

// arc records a circular arc between two points. clockwiseFromStart
// picks which endpoint the clockwise walk begins at.
func (b *schemaBuilder) arc(start, finish, center model.Point2D, clockwiseFromStart bool) {
	u, v := b.vertex(start), b.vertex(finish)
	if u == v {
		return
	}
	cwFrom := v
	if clockwiseFromStart {
		cwFrom = u
	}
	id := b.nextEdge
	b.nextEdge++
	b.schema.Edges[id] = model.Edge{
		ID:            id,
		Type:          model.EdgeCircularArc,
		Vertices:      [2]int{u, v},
		Center:        center,
		ClockwiseFrom: cwFrom,
	}
}

// dxfArc converts an ARC entity. DXF arcs sweep counter-clockwise from
// the start angle to the end angle, so walking clockwise from the end
// point reaches the start point.
func (b *schemaBuilder) dxfArc(a *entity.Arc) {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	start := pointOnCircle(cx, cy, r, a.Angle[0]*math.Pi/180)
	end := pointOnCircle(cx, cy, r, a.Angle[1]*math.Pi/180)
	b.arc(start, end, model.Point2D{X: cx, Y: cy}, false)
}

// circle splits a full circle into four quarter arcs joined at the
// cardinal points. A single arc cannot describe a closed curve, and two
// half arcs collapse to one edge in the profile graph; four arcs form a
// proper cycle.
func (b *schemaBuilder) circle(center model.Point2D, r float64) {
	pts := [4]model.Point2D{
		{X: center.X + r, Y: center.Y},
		{X: center.X, Y: center.Y + r},
		{X: center.X - r, Y: center.Y},
		{X: center.X, Y: center.Y - r},
	}
	for i := range pts {
		b.arc(pts[i], pts[(i+1)%len(pts)], center, false)
	}
}

// polyline converts an LWPOLYLINE, treating it as closed the way the
// drawing exporters we consume write them. A vertex bulge describes an
// arc to the following vertex; the bulge is the tangent of a quarter of
// the included angle, which fixes the sagitta, radius and center.
func (b *schemaBuilder) polyline(lw *entity.LwPolyline) {
	n := len(lw.Vertices)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		p := model.Point2D{X: lw.Vertices[i][0], Y: lw.Vertices[i][1]}
		next := lw.Vertices[(i+1)%n]
		q := model.Point2D{X: next[0], Y: next[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}
		if math.Abs(bulge) <= 1e-9 {
			b.line(p, q)
			continue
		}

		center, ok := bulgeCenter(p, q, bulge)
		if !ok {
			b.line(p, q)
			continue
		}
		// Positive bulge sweeps CCW from p to q, so the clockwise walk
		// starts at q; negative bulge is the mirror case.
		b.arc(p, q, center, bulge < 0)
	}
}

// bulgeCenter derives the arc center for a bulged polyline segment. The
// bulge factor fixes the sagitta, which fixes the radius; the center
// sits on the chord's perpendicular bisector on the side opposite the
// bulge direction.
func bulgeCenter(p, q model.Point2D, bulge float64) (model.Point2D, bool) {
	dx := q.X - p.X
	dy := q.Y - p.Y
	chord := math.Hypot(dx, dy)
	if chord < 1e-9 {
		return model.Point2D{}, false
	}

	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/(4*sagitta) + sagitta) / 2

	mx := (p.X + q.X) / 2
	my := (p.Y + q.Y) / 2
	perpX := -dy / chord
	perpY := dx / chord
	// (-dy,dx) points left of the chord direction, where the center of a
	// CCW (positive bulge) arc sits; mirror it for clockwise arcs.
	dist := radius - sagitta
	if bulge < 0 {
		perpX, perpY = -perpX, -perpY
	}
	return model.Point2D{X: mx + perpX*dist, Y: my + perpY*dist}, true
}

func pointOnCircle(cx, cy, r, angle float64) model.Point2D {
	return model.Point2D{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
}
