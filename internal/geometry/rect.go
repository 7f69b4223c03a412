package geometry

import (
	"math"

	"github.com/beamcost/beamcost/internal/model"
)

// Rect is the minimum stock rectangle for one hull. Width and Height
// include the padding margin on both dimensions; Area is their product.
type Rect struct {
	Width  float64
	Height float64
	Area   float64
}

// MinimumBoundingRect finds the smallest-area rectangle enclosing the
// hull, using the fact that one side of the optimum is flush with a hull
// edge. For every hull edge all points are projected onto the edge line
// and its perpendicular; candidate areas are compared with the squared
// edge length in the denominator so only the winning edge pays square
// roots. The padding margin is added to both final dimensions before the
// area is computed.
func MinimumBoundingRect(hull []model.Point2D, padding float64) Rect {
	if len(hull) < 2 {
		return Rect{Width: padding, Height: padding, Area: padding * padding}
	}

	best := math.Inf(1)
	var bestHeightNum, bestWidthNum, bestLenSq float64

	for i := range hull {
		p1 := hull[i]
		p2 := hull[(i+1)%len(hull)]
		dx := p2.X - p1.X
		dy := p2.Y - p1.Y
		lenSq := dx*dx + dy*dy
		if lenSq == 0 {
			continue
		}

		// Height: farthest perpendicular distance from the edge line.
		// Width: span of projections along the edge direction.
		var maxCross float64
		minDot := math.Inf(1)
		maxDot := math.Inf(-1)
		for _, q := range hull {
			c := math.Abs(dx*(q.Y-p1.Y) - dy*(q.X-p1.X))
			if c > maxCross {
				maxCross = c
			}
			d := dx*(q.X-p1.X) + dy*(q.Y-p1.Y)
			if d < minDot {
				minDot = d
			}
			if d > maxDot {
				maxDot = d
			}
		}

		area := maxCross * (maxDot - minDot) / lenSq
		if area < best {
			best = area
			bestHeightNum = maxCross
			bestWidthNum = maxDot - minDot
			bestLenSq = lenSq
		}
	}

	if math.IsInf(best, 1) {
		return Rect{Width: padding, Height: padding, Area: padding * padding}
	}

	edgeLen := math.Sqrt(bestLenSq)
	height := bestHeightNum/edgeLen + padding
	width := bestWidthNum/edgeLen + padding
	return Rect{Width: width, Height: height, Area: width * height}
}
