package estimator

import (
	"strconv"

	"github.com/beamcost/beamcost/internal/model"
)

// BuildSchema validates a raw wire schema and normalizes it into the
// id-keyed model form. It fails with a MalformedSchema error when either
// top-level collection is absent, when two wire keys normalize to the
// same integer id, when an id is not an integer, or when an edge refers
// to a vertex that does not exist.
func BuildSchema(name string, raw model.RawSchema) (*model.Schema, error) {
	if raw.Vertices == nil || raw.Edges == nil {
		return nil, newError(MalformedSchema, name, "missing Vertices or Edges collection")
	}

	s := &model.Schema{
		Name:     name,
		Vertices: make(map[int]model.Vertex, len(raw.Vertices)),
		Edges:    make(map[int]model.Edge, len(raw.Edges)),
	}

	for key, rv := range raw.Vertices {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, newError(MalformedSchema, name, "vertex id %q is not an integer", key)
		}
		if _, dup := s.Vertices[id]; dup {
			return nil, newError(MalformedSchema, name, "duplicate vertex id %d", id)
		}
		s.Vertices[id] = model.Vertex{ID: id, Position: rv.Position}
	}

	for key, re := range raw.Edges {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, newError(MalformedSchema, name, "edge id %q is not an integer", key)
		}
		if _, dup := s.Edges[id]; dup {
			return nil, newError(MalformedSchema, name, "duplicate edge id %d", id)
		}
		if len(re.Vertices) != 2 {
			return nil, newError(MalformedSchema, name, "edge %d needs exactly two endpoints", id)
		}
		e := model.Edge{
			ID:       id,
			Type:     re.Type,
			Vertices: [2]int{re.Vertices[0], re.Vertices[1]},
		}
		for _, vid := range e.Vertices {
			if _, ok := s.Vertices[vid]; !ok {
				return nil, newError(MalformedSchema, name, "edge %d references unknown vertex %d", id, vid)
			}
		}
		switch re.Type {
		case model.EdgeLineSegment:
		case model.EdgeCircularArc:
			if re.ClockwiseFrom != e.Vertices[0] && re.ClockwiseFrom != e.Vertices[1] {
				return nil, newError(MalformedSchema, name, "edge %d: ClockwiseFrom %d is not an endpoint", id, re.ClockwiseFrom)
			}
			e.Center = re.Center
			e.ClockwiseFrom = re.ClockwiseFrom
		default:
			return nil, newError(MalformedSchema, name, "edge %d has unknown type %q", id, re.Type)
		}
		s.Edges[id] = e
	}

	return s, nil
}
