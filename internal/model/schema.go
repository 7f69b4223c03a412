package model

import "math"

// EdgeType identifies the kind of cut an edge describes.
type EdgeType string

const (
	EdgeLineSegment EdgeType = "LineSegment"
	EdgeCircularArc EdgeType = "CircularArc"
)

// Point2D represents a 2D coordinate.
type Point2D struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point2D) DistanceTo(q Point2D) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Vertex is a named point of the part profile. Immutable after load.
type Vertex struct {
	ID       int     `json:"id"`
	Position Point2D `json:"position"`
}

// Edge is a cut between two vertices: either a straight segment or a
// circular arc. For arcs, ClockwiseFrom names the endpoint from which the
// arc proceeds clockwise to the other endpoint, and Center is the arc
// center. The endpoint pair is ordered as it appeared on the wire.
type Edge struct {
	ID            int      `json:"id"`
	Type          EdgeType `json:"type"`
	Vertices      [2]int   `json:"vertices"`
	Center        Point2D  `json:"center,omitempty"`
	ClockwiseFrom int      `json:"clockwise_from,omitempty"`
}

// IsArc reports whether the edge is a circular arc.
func (e Edge) IsArc() bool {
	return e.Type == EdgeCircularArc
}

// Other returns the endpoint of the edge that is not id.
func (e Edge) Other(id int) int {
	if e.Vertices[0] == id {
		return e.Vertices[1]
	}
	return e.Vertices[0]
}

// Schema is the normalized in-memory description of one 2D part:
// id-keyed vertices and edges. It carries no behavior beyond access.
type Schema struct {
	Name     string         `json:"name"`
	Vertices map[int]Vertex `json:"vertices"`
	Edges    map[int]Edge   `json:"edges"`
}

// Position returns the coordinates of the vertex with the given id.
// The second return is false when the vertex does not exist.
func (s *Schema) Position(id int) (Point2D, bool) {
	v, ok := s.Vertices[id]
	return v.Position, ok
}

// HasArcs reports whether any edge of the schema is a circular arc.
func (s *Schema) HasArcs() bool {
	for _, e := range s.Edges {
		if e.IsArc() {
			return true
		}
	}
	return false
}

// RawSchema mirrors the wire shape of a schema file: string-keyed maps of
// vertices and edges. A nil map means the top-level key was absent from
// the input, which lets validation distinguish a missing collection from
// an empty one.
type RawSchema struct {
	Vertices map[string]RawVertex `json:"Vertices"`
	Edges    map[string]RawEdge   `json:"Edges"`
}

// RawVertex is the wire form of a vertex.
type RawVertex struct {
	Position Point2D `json:"Position"`
}

// RawEdge is the wire form of an edge. Center and ClockwiseFrom are only
// meaningful for circular arcs.
type RawEdge struct {
	Type          EdgeType `json:"Type"`
	Vertices      []int    `json:"Vertices"`
	Center        Point2D  `json:"Center"`
	ClockwiseFrom int      `json:"ClockwiseFrom"`
}
