package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beamcost/beamcost/internal/geometry"
	"github.com/beamcost/beamcost/internal/model"
)

func segment(id, u, v int) model.Edge {
	return model.Edge{ID: id, Type: model.EdgeLineSegment, Vertices: [2]int{u, v}}
}

func arcEdge(id, u, v int, center model.Point2D, cwFrom int) model.Edge {
	return model.Edge{
		ID: id, Type: model.EdgeCircularArc,
		Vertices: [2]int{u, v}, Center: center, ClockwiseFrom: cwFrom,
	}
}

func buildSchema(name string, verts map[int]model.Point2D, edges ...model.Edge) *model.Schema {
	s := &model.Schema{
		Name:     name,
		Vertices: map[int]model.Vertex{},
		Edges:    map[int]model.Edge{},
	}
	for id, p := range verts {
		s.Vertices[id] = model.Vertex{ID: id, Position: p}
	}
	for _, e := range edges {
		s.Edges[e.ID] = e
	}
	return s
}

// unitSquare is the canonical fixture: four corners, four segments.
func unitSquare(name string) *model.Schema {
	return buildSchema(name,
		map[int]model.Point2D{
			1: {X: 0, Y: 0}, 2: {X: 1, Y: 0}, 3: {X: 1, Y: 1}, 4: {X: 0, Y: 1},
		},
		segment(1, 1, 2), segment(2, 2, 3), segment(3, 3, 4), segment(4, 4, 1),
	)
}

func TestEstimateUnitSquare(t *testing.T) {
	cfg := model.DefaultCostConfig()
	quote, err := Estimate(unitSquare("square"), cfg)
	require.NoError(t, err)

	wantCut := 4 * (1 / cfg.NominalLaserSpeed) * cfg.TimeUnitCost
	assert.InDelta(t, wantCut, quote.CutCost, 1e-12)

	require.Len(t, quote.Regions, 1)
	wantArea := (1 + cfg.PaddingMargin) * (1 + cfg.PaddingMargin)
	assert.InDelta(t, wantArea, quote.Regions[0].Area, 1e-12)
	assert.InDelta(t, cfg.MaterialCostPerArea*wantArea, quote.MaterialCost, 1e-12)
	assert.InDelta(t, wantCut+cfg.MaterialCostPerArea*wantArea, quote.Total, 1e-12)
}

func TestEstimateIdempotent(t *testing.T) {
	cfg := model.DefaultCostConfig()
	s := unitSquare("square")

	first, err := Estimate(s, cfg)
	require.NoError(t, err)
	second, err := Estimate(s, cfg)
	require.NoError(t, err)

	// Bit-identical, not merely close.
	assert.Equal(t, first.CutCost, second.CutCost)
	assert.Equal(t, first.MaterialCost, second.MaterialCost)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Regions, second.Regions)
}

func TestEstimateNoClosedCurve(t *testing.T) {
	s := buildSchema("path",
		map[int]model.Point2D{1: {X: 0, Y: 0}, 2: {X: 1, Y: 0}, 3: {X: 2, Y: 0}},
		segment(1, 1, 2), segment(2, 2, 3),
	)
	_, err := Estimate(s, model.DefaultCostConfig())
	require.Error(t, err)
	assert.Equal(t, NoClosedCurve, Kind(err))
}

func TestEstimateDegenerateArc(t *testing.T) {
	// A valid triangle plus an arc whose endpoints share one position.
	s := buildSchema("degenerate",
		map[int]model.Point2D{
			1: {X: 0, Y: 0}, 2: {X: 1, Y: 0}, 3: {X: 0, Y: 1},
			4: {X: 5, Y: 5}, 5: {X: 5, Y: 5},
		},
		segment(1, 1, 2), segment(2, 2, 3), segment(3, 3, 1),
		arcEdge(4, 4, 5, model.Point2D{X: 4, Y: 4}, 4),
	)
	_, err := Estimate(s, model.DefaultCostConfig())
	require.Error(t, err)
	assert.Equal(t, DegenerateArc, Kind(err))
}

func TestEstimateImpossibleArcRadius(t *testing.T) {
	// Square whose top arc claims a center right next to one endpoint:
	// the start-derived radius 0.1 cannot span the unit chord. This must
	// surface as a classified error, never as a NaN price.
	s := buildSchema("impossible-arc",
		map[int]model.Point2D{
			1: {X: 0, Y: 0}, 2: {X: 1, Y: 0}, 3: {X: 1, Y: 1}, 4: {X: 0, Y: 1},
		},
		segment(1, 1, 2), segment(2, 2, 3),
		arcEdge(3, 3, 4, model.Point2D{X: 0.1, Y: 1}, 4),
		segment(4, 4, 1),
	)

	quote, err := Estimate(s, model.DefaultCostConfig())
	require.Error(t, err)
	assert.Equal(t, MalformedSchema, Kind(err))
	assert.False(t, math.IsNaN(quote.Total))
	assert.Zero(t, quote.Total)
}

func TestEstimateMultipleProfiles(t *testing.T) {
	// An outer profile and a disjoint cutout: both rectangles priced.
	cfg := model.DefaultCostConfig()
	s := unitSquare("two-profiles")
	for i, p := range []model.Point2D{
		{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 4}, {X: 3, Y: 4},
	} {
		s.Vertices[11+i] = model.Vertex{ID: 11 + i, Position: p}
	}
	s.Edges[11] = segment(11, 11, 12)
	s.Edges[12] = segment(12, 12, 13)
	s.Edges[13] = segment(13, 13, 14)
	s.Edges[14] = segment(14, 14, 11)

	quote, err := Estimate(s, cfg)
	require.NoError(t, err)
	require.Len(t, quote.Regions, 2)

	wantArea := (1 + cfg.PaddingMargin) * (1 + cfg.PaddingMargin)
	assert.InDelta(t, 2*cfg.MaterialCostPerArea*wantArea, quote.MaterialCost, 1e-12)
	assert.InDelta(t, 8*(1/cfg.NominalLaserSpeed)*cfg.TimeUnitCost, quote.CutCost, 1e-12)
}

func TestEstimateArcBulgeExpandsHull(t *testing.T) {
	// Unit square whose top edge is a semicircle bulging upward. The
	// extrusion heuristic (arc start after finish in shortest-path
	// order) is a positional approximation, not a geometric proof; this
	// fixture is one it classifies correctly.
	cfg := model.DefaultCostConfig()
	s := buildSchema("bulged",
		map[int]model.Point2D{
			1: {X: 0, Y: 0}, 2: {X: 1, Y: 0}, 3: {X: 1, Y: 1}, 4: {X: 0, Y: 1},
		},
		segment(1, 1, 2), segment(2, 2, 3),
		// Clockwise from vertex 4 over the top to vertex 3.
		arcEdge(3, 3, 4, model.Point2D{X: 0.5, Y: 1}, 4),
		segment(4, 4, 1),
	)

	quote, err := Estimate(s, cfg)
	require.NoError(t, err)
	require.Len(t, quote.Regions, 1)

	// Bulge raises the stock rectangle from 1x1 to 1x1.5.
	region := quote.Regions[0]
	small := math.Min(region.Width, region.Height)
	large := math.Max(region.Width, region.Height)
	assert.InDelta(t, 1+cfg.PaddingMargin, small, 1e-9)
	assert.InDelta(t, 1.5+cfg.PaddingMargin, large, 1e-9)
	assert.InDelta(t, small*large, region.Area, 1e-9)

	wantCut := 3*(1/cfg.NominalLaserSpeed)*cfg.TimeUnitCost +
		(math.Pi/2)/(cfg.NominalLaserSpeed*math.Exp(-1/0.5))*cfg.TimeUnitCost
	assert.InDelta(t, wantCut, quote.CutCost, 1e-9)
}

func TestIndexEdgesParallelEdges(t *testing.T) {
	// Between the same endpoint pair the smallest edge id wins, whichever
	// order the endpoints are queried in.
	s := buildSchema("parallel",
		map[int]model.Point2D{1: {X: 0, Y: 0}, 2: {X: 1, Y: 0}},
		arcEdge(7, 1, 2, model.Point2D{X: 0.5, Y: 0}, 1),
		segment(2, 2, 1),
	)

	idx := indexEdges(s)
	e, ok := idx[pairKey(2, 1)]
	require.True(t, ok)
	assert.Equal(t, 2, e.ID)
	assert.Equal(t, idx[pairKey(1, 2)], e)
}

func TestCutCostPenalizesTightRadii(t *testing.T) {
	cfg := model.DefaultCostConfig()

	// Semicircle of radius 1: sector length pi.
	small := buildSchema("r1",
		map[int]model.Point2D{1: {X: 0, Y: 0}, 2: {X: 2, Y: 0}},
		arcEdge(1, 1, 2, model.Point2D{X: 1, Y: 0}, 1),
	)
	// Radius-2 arc with the same sector length pi: chord 2*sqrt(2),
	// center at (sqrt(2), -sqrt(2)).
	big := buildSchema("r2",
		map[int]model.Point2D{1: {X: 0, Y: 0}, 2: {X: 2 * math.Sqrt2, Y: 0}},
		arcEdge(1, 1, 2, model.Point2D{X: math.Sqrt2, Y: -math.Sqrt2}, 1),
	)

	smallGeoms, err := geometry.ComputeEdgeGeometry(small)
	require.NoError(t, err)
	bigGeoms, err := geometry.ComputeEdgeGeometry(big)
	require.NoError(t, err)

	// Same length of cut, different curvature.
	require.InDelta(t, smallGeoms[1].SectorLength, bigGeoms[1].SectorLength, 1e-9)

	smallCost := cutCost(small, smallGeoms, cfg)
	bigCost := cutCost(big, bigGeoms, cfg)
	assert.Greater(t, smallCost, bigCost, "tighter curve must cost strictly more")
}

func TestEstimateBatchIsolatesFailures(t *testing.T) {
	cfg := model.DefaultCostConfig()
	open := buildSchema("open",
		map[int]model.Point2D{1: {X: 0, Y: 0}, 2: {X: 1, Y: 0}},
		segment(1, 1, 2),
	)
	schemas := []*model.Schema{unitSquare("a"), open, unitSquare("c")}

	results := EstimateBatch(schemas, cfg, 2)
	require.Len(t, results, 3)

	assert.Equal(t, "a", results[0].Schema)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "open", results[1].Schema)
	assert.Equal(t, NoClosedCurve, Kind(results[1].Err))
	assert.Equal(t, "c", results[2].Schema)
	assert.NoError(t, results[2].Err)

	// Independent pipelines: the two squares price identically.
	assert.Equal(t, results[0].Quote.Total, results[2].Quote.Total)
}

func TestEstimateBatchWorkerClamping(t *testing.T) {
	cfg := model.DefaultCostConfig()
	results := EstimateBatch([]*model.Schema{unitSquare("only")}, cfg, 0)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)

	assert.Empty(t, EstimateBatch(nil, cfg, 4))
}
