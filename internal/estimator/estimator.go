// Package estimator prices a laser-cut part schema: it verifies the
// schema holds at least one closed profile, charges cutting time over
// every edge, and charges stock material for the minimum padded rectangle
// around each profile.
package estimator

import (
	"errors"

	"github.com/beamcost/beamcost/internal/geometry"
	"github.com/beamcost/beamcost/internal/graph"
	"github.com/beamcost/beamcost/internal/model"
)

// Estimate runs the full pipeline over one normalized schema and returns
// its quote. The computation is pure and synchronous: all derived state
// (graph, cycles, edge geometry, hulls) lives and dies inside this call,
// so concurrent invocations never share anything but their inputs.
func Estimate(s *model.Schema, cfg model.CostConfig) (model.Quote, error) {
	g := graph.FromSchema(s)

	cycles := g.CycleBasis()
	if len(cycles) == 0 {
		return model.Quote{}, newError(NoClosedCurve, s.Name, "schema graph contains no cycle")
	}

	geoms, err := geometry.ComputeEdgeGeometry(s)
	if err != nil {
		if errors.Is(err, geometry.ErrDegenerateArc) {
			return model.Quote{}, &Error{Kind: DegenerateArc, Schema: s.Name, Err: err}
		}
		return model.Quote{}, &Error{Kind: MalformedSchema, Schema: s.Name, Err: err}
	}

	quote := model.NewQuote(s.Name)
	quote.CutCost = cutCost(s, geoms, cfg)

	for _, hull := range buildHulls(s, g, cycles, geoms) {
		rect := geometry.MinimumBoundingRect(hull, cfg.PaddingMargin)
		quote.Regions = append(quote.Regions, model.RegionEstimate{
			Width:  rect.Width,
			Height: rect.Height,
			Area:   rect.Area,
		})
		quote.MaterialCost += cfg.MaterialCostPerArea * rect.Area
	}

	quote.Total = quote.CutCost + quote.MaterialCost
	return quote, nil
}

// EstimateRaw validates and normalizes a wire schema, then prices it.
func EstimateRaw(name string, raw model.RawSchema, cfg model.CostConfig) (model.Quote, error) {
	s, err := BuildSchema(name, raw)
	if err != nil {
		return model.Quote{}, err
	}
	return Estimate(s, cfg)
}
