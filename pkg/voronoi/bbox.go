package voronoi

import "math"

// BoundingBox - рамка диаграммы. Ось Y направлена вниз: Yt - верх, Yb - низ.
type BoundingBox struct {
	Xl, Xr, Yt, Yb float64
}

func NewBoundingBox(xl, xr, yt, yb float64) BoundingBox {
	return BoundingBox{xl, xr, yt, yb}
}

// Validate проверяет, что Xl < Xr и Yt < Yb
func (b BoundingBox) Validate() error {
	for _, v := range []float64{b.Xl, b.Xr, b.Yt, b.Yb} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidBoundsError{Box: b}
		}
	}
	if b.Xl >= b.Xr || b.Yt >= b.Yb {
		return &InvalidBoundsError{Box: b}
	}
	return nil
}

func (b BoundingBox) Width() float64  { return b.Xr - b.Xl }
func (b BoundingBox) Height() float64 { return b.Yb - b.Yt }

// Contains - точка внутри рамки или на ее границе (с допуском)
func (b BoundingBox) Contains(v Vertex) bool {
	return !lessThanWithEpsilon(v.X, b.Xl) && !greaterThanWithEpsilon(v.X, b.Xr) &&
		!lessThanWithEpsilon(v.Y, b.Yt) && !greaterThanWithEpsilon(v.Y, b.Yb)
}

// OnBorder - точка лежит на одной из сторон рамки
func (b BoundingBox) OnBorder(v Vertex) bool {
	return b.Contains(v) && (equalWithEpsilon(v.X, b.Xl) || equalWithEpsilon(v.X, b.Xr) ||
		equalWithEpsilon(v.Y, b.Yt) || equalWithEpsilon(v.Y, b.Yb))
}
