package voronoi

import (
	"fmt"
)

// InvalidBoundsError - рамка с Xl >= Xr или Yt >= Yb (или с нечисловыми границами).
// Возвращается до начала вычислений.
type InvalidBoundsError struct {
	Box BoundingBox
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("voronoi: invalid bounding box xl=%g xr=%g yt=%g yb=%g", e.Box.Xl, e.Box.Xr, e.Box.Yt, e.Box.Yb)
}

// InvalidSiteError - сайт с NaN или бесконечной координатой
type InvalidSiteError struct {
	Index int
	Site  Vertex
}

func (e *InvalidSiteError) Error() string {
	return fmt.Sprintf("voronoi: site %d has non-finite coordinates (%g, %g)", e.Index, e.Site.X, e.Site.Y)
}

// GeometryInvariantError означает, что при замыкании ячейки разрыв между полуребрами
// не удалось провести ни по одной стороне рамки. Это следствие накопленной
// численной погрешности, а не некорректного ввода.
type GeometryInvariantError struct {
	Op     string
	SiteID int
	Point  Vertex
}

func (e *GeometryInvariantError) Error() string {
	return fmt.Sprintf("voronoi: %s: cell %d: point (%g, %g) is not on the bounding box", e.Op, e.SiteID, e.Point.X, e.Point.Y)
}
