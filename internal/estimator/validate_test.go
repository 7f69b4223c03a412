package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beamcost/beamcost/internal/model"
)

func rawSquare() model.RawSchema {
	return model.RawSchema{
		Vertices: map[string]model.RawVertex{
			"1": {Position: model.Point2D{X: 0, Y: 0}},
			"2": {Position: model.Point2D{X: 1, Y: 0}},
			"3": {Position: model.Point2D{X: 1, Y: 1}},
			"4": {Position: model.Point2D{X: 0, Y: 1}},
		},
		Edges: map[string]model.RawEdge{
			"1": {Type: "LineSegment", Vertices: []int{1, 2}},
			"2": {Type: "LineSegment", Vertices: []int{2, 3}},
			"3": {Type: "LineSegment", Vertices: []int{3, 4}},
			"4": {Type: "LineSegment", Vertices: []int{4, 1}},
		},
	}
}

func TestBuildSchemaSquare(t *testing.T) {
	s, err := BuildSchema("square", rawSquare())
	require.NoError(t, err)

	assert.Equal(t, "square", s.Name)
	assert.Len(t, s.Vertices, 4)
	assert.Len(t, s.Edges, 4)
	assert.Equal(t, model.EdgeLineSegment, s.Edges[1].Type)
	assert.False(t, s.HasArcs())
}

func TestBuildSchemaArc(t *testing.T) {
	raw := rawSquare()
	raw.Edges["3"] = model.RawEdge{
		Type: "CircularArc", Vertices: []int{3, 4},
		Center: model.Point2D{X: 0.5, Y: 1}, ClockwiseFrom: 4,
	}

	s, err := BuildSchema("arc", raw)
	require.NoError(t, err)
	assert.True(t, s.HasArcs())
	assert.True(t, s.Edges[3].IsArc())
	assert.Equal(t, 4, s.Edges[3].ClockwiseFrom)
}

func TestBuildSchemaMissingCollections(t *testing.T) {
	for name, raw := range map[string]model.RawSchema{
		"no vertices": {Edges: map[string]model.RawEdge{}},
		"no edges":    {Vertices: map[string]model.RawVertex{}},
		"empty":       {},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := BuildSchema("bad", raw)
			require.Error(t, err)
			assert.Equal(t, MalformedSchema, Kind(err))
		})
	}
}

func TestBuildSchemaDuplicateID(t *testing.T) {
	// "1" and "01" are distinct JSON keys but the same identifier.
	raw := rawSquare()
	raw.Edges["01"] = model.RawEdge{Type: "LineSegment", Vertices: []int{1, 3}}

	_, err := BuildSchema("dup", raw)
	require.Error(t, err)
	assert.Equal(t, MalformedSchema, Kind(err))
}

func TestBuildSchemaNonIntegerKey(t *testing.T) {
	raw := rawSquare()
	raw.Vertices["north"] = model.RawVertex{Position: model.Point2D{X: 9, Y: 9}}

	_, err := BuildSchema("badkey", raw)
	require.Error(t, err)
	assert.Equal(t, MalformedSchema, Kind(err))
}

func TestBuildSchemaUnknownVertexReference(t *testing.T) {
	raw := rawSquare()
	raw.Edges["5"] = model.RawEdge{Type: "LineSegment", Vertices: []int{1, 99}}

	_, err := BuildSchema("dangling", raw)
	require.Error(t, err)
	assert.Equal(t, MalformedSchema, Kind(err))
}

func TestBuildSchemaWrongEndpointCount(t *testing.T) {
	raw := rawSquare()
	raw.Edges["5"] = model.RawEdge{Type: "LineSegment", Vertices: []int{1, 2, 3}}

	_, err := BuildSchema("triple", raw)
	require.Error(t, err)
	assert.Equal(t, MalformedSchema, Kind(err))
}

func TestBuildSchemaUnknownEdgeType(t *testing.T) {
	raw := rawSquare()
	raw.Edges["1"] = model.RawEdge{Type: "BezierCurve", Vertices: []int{1, 2}}

	_, err := BuildSchema("bezier", raw)
	require.Error(t, err)
	assert.Equal(t, MalformedSchema, Kind(err))
}

func TestBuildSchemaClockwiseFromMustBeEndpoint(t *testing.T) {
	raw := rawSquare()
	raw.Edges["3"] = model.RawEdge{
		Type: "CircularArc", Vertices: []int{3, 4},
		Center: model.Point2D{X: 0.5, Y: 1}, ClockwiseFrom: 1,
	}

	_, err := BuildSchema("badarc", raw)
	require.Error(t, err)
	assert.Equal(t, MalformedSchema, Kind(err))
}

func TestEstimateRaw(t *testing.T) {
	quote, err := EstimateRaw("square", rawSquare(), model.DefaultCostConfig())
	require.NoError(t, err)
	assert.Equal(t, "square", quote.Schema)
	assert.Greater(t, quote.Total, 0.0)
}
