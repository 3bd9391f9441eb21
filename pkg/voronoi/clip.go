package voronoi

import (
	"slices"

	"go.uber.org/zap"
)

// connectEdge достраивает недостающий конец ребра до рамки.
// false - ребро целиком вне рамки.
func (s *sweepState) connectEdge(edge *Edge) bool {
	vb := edge.Vb
	if vb != NoVertex {
		return true
	}

	va := edge.Va
	xl := s.bbox.Xl
	xr := s.bbox.Xr
	yt := s.bbox.Yt
	yb := s.bbox.Yb
	lSite := edge.LeftSite
	rSite := edge.RightSite
	lx := lSite.X
	ly := lSite.Y
	rx := rSite.X
	ry := rSite.Y
	fx := (lx + rx) / 2
	fy := (ly + ry) / 2

	// ячейки, которым принадлежит ребро, придется замыкать:
	// ребро либо будет выброшено, либо упрется в рамку
	s.cells[lSite.ID].closeMe = true
	s.cells[rSite.ID].closeMe = true

	// уравнение серединного перпендикуляра y = fm*x + fb, если он не вертикальный
	var fm, fb float64
	vertical := equalWithEpsilon(ry, ly)
	if !vertical {
		fm = (lx - rx) / (ry - ly)
		fb = fy - fm*fx
	}

	// направление луча определяется относительно левого сайта:
	// вниз, если lx > rx; вверх, если lx < rx
	switch {
	case vertical:
		// не пересекает рамку
		if fx < xl || fx >= xr {
			return false
		}
		// вниз
		if lx > rx {
			if va == NoVertex {
				va = Vertex{fx, yt}
			} else if va.Y >= yb {
				return false
			}
			vb = Vertex{fx, yb}
			// вверх
		} else {
			if va == NoVertex {
				va = Vertex{fx, yb}
			} else if va.Y < yt {
				return false
			}
			vb = Vertex{fx, yt}
		}

	// ближе к вертикали - соединяем с верхней или нижней стороной
	case fm < -1 || fm > 1:
		if lx > rx {
			if va == NoVertex {
				va = Vertex{(yt-fb)/fm, yt}
			} else if va.Y >= yb {
				return false
			}
			vb = Vertex{(yb-fb)/fm, yb}
		} else {
			if va == NoVertex {
				va = Vertex{(yb-fb)/fm, yb}
			} else if va.Y < yt {
				return false
			}
			vb = Vertex{(yt-fb)/fm, yt}
		}

	// ближе к горизонтали - соединяем с левой или правой стороной
	default:
		// вправо
		if ly < ry {
			if va == NoVertex {
				va = Vertex{xl, fm*xl+fb}
			} else if va.X >= xr {
				return false
			}
			vb = Vertex{xr, fm*xr+fb}
			// влево
		} else {
			if va == NoVertex {
				va = Vertex{xr, fm*xr+fb}
			} else if va.X < xl {
				return false
			}
			vb = Vertex{xl, fm*xl+fb}
		}
	}
	edge.Va = va
	edge.Vb = vb
	return true
}

// clipEdge обрезает отрезок по рамке (Лианг-Барски).
// false - отрезок целиком снаружи.
func (s *sweepState) clipEdge(edge *Edge) bool {
	bbox := s.bbox
	ax := edge.Va.X
	ay := edge.Va.Y
	bx := edge.Vb.X
	by := edge.Vb.Y
	t0 := float64(0)
	t1 := float64(1)
	dx := bx - ax
	dy := by - ay

	// каждая сторона рамки задает ограничение p*t <= q
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}

	if !clip(-dx, ax-bbox.Xl) || // левая
		!clip(dx, bbox.Xr-ax) || // правая
		!clip(-dy, ay-bbox.Yt) || // верхняя
		!clip(dy, bbox.Yb-ay) { // нижняя
		return false
	}

	// вершина может быть общей с другими ребрами, поэтому не меняем ее, а создаем новую
	if t0 > 0 {
		edge.Va = Vertex{ax+t0*dx, ay+t0*dy}
	}
	if t1 < 1 {
		edge.Vb = Vertex{ax+t1*dx, ay+t1*dy}
	}

	if t0 > 0 || t1 < 1 {
		s.cells[edge.LeftSite.ID].closeMe = true
		s.cells[edge.RightSite.ID].closeMe = true
	}

	return true
}

// clipEdges соединяет висящие ребра с рамкой и обрезает все ребра по ней.
// Ребра вне рамки и ребра, выродившиеся в точку, выбрасываются.
func (s *sweepState) clipEdges() {
	removed := 0
	for i := len(s.edges) - 1; i >= 0; i-- {
		edge := s.edges[i]

		if !s.connectEdge(edge) || !s.clipEdge(edge) || pointsEqual(edge.Va, edge.Vb) {
			edge.Va = NoVertex
			edge.Vb = NoVertex
			s.edges = slices.Delete(s.edges, i, i+1)
			removed++
		}
	}

	s.logger.Info("[f-clip] Ребра соединены с рамкой и обрезаны",
		zap.Int("edges", len(s.edges)),
		zap.Int("removed", removed))
}

// стороны рамки в порядке обхода при замыкании ячейки
const (
	sideLeft = iota
	sideBottom
	sideRight
	sideTop
)

// closeCells замыкает ячейки: там, где конец одного полуребра не совпадает
// с началом следующего, добавляются ребра вдоль рамки
// (вниз по левой стороне, вправо по нижней, вверх по правой, влево по верхней).
func (s *sweepState) closeCells() error {
	xl := s.bbox.Xl
	xr := s.bbox.Xr
	yt := s.bbox.Yt
	yb := s.bbox.Yb

	border := 0
	for _, cell := range s.cells {
		if cell.prepare() == 0 {
			// единственный сайт: ячейка - вся рамка
			if len(s.cells) == 1 {
				s.closeWholeBox(cell)
			}
			continue
		}
		if !cell.closeMe {
			continue
		}

		// "дыры" между полуребрами не обязательно идут подряд, поэтому проходим все
		for iLeft := 0; iLeft < len(cell.Halfedges); iLeft++ {
			va := cell.Halfedges[iLeft].EndPoint()
			vz := cell.Halfedges[(iLeft+1)%len(cell.Halfedges)].StartPoint()
			if pointsEqual(va, vz) {
				continue
			}

			// сторона, с которой начинается обход
			side := -1
			switch {
			case equalWithEpsilon(va.X, xl) && lessThanWithEpsilon(va.Y, yb):
				side = sideLeft
			case equalWithEpsilon(va.Y, yb) && lessThanWithEpsilon(va.X, xr):
				side = sideBottom
			case equalWithEpsilon(va.X, xr) && greaterThanWithEpsilon(va.Y, yt):
				side = sideRight
			case equalWithEpsilon(va.Y, yt) && greaterThanWithEpsilon(va.X, xl):
				side = sideTop
			}
			if side < 0 {
				return &GeometryInvariantError{Op: "closeCells", SiteID: cell.Site.ID, Point: va}
			}

			// идем по рамке, пока не дойдем до стороны, на которой лежит vz;
			// больше пяти отрезков быть не может (полный круг плюс возврат на сторону начала)
			last := false
			for segment := 0; !last; segment++ {
				if segment > 4 {
					return &GeometryInvariantError{Op: "closeCells", SiteID: cell.Site.ID, Point: vz}
				}

				var vb Vertex
				switch side {
				case sideLeft:
					last = equalWithEpsilon(vz.X, xl)
					vb = Vertex{xl, yb}
					if last {
						vb.Y = vz.Y
					}
				case sideBottom:
					last = equalWithEpsilon(vz.Y, yb)
					vb = Vertex{xr, yb}
					if last {
						vb.X = vz.X
					}
				case sideRight:
					last = equalWithEpsilon(vz.X, xr)
					vb = Vertex{xr, yt}
					if last {
						vb.Y = vz.Y
					}
				case sideTop:
					last = equalWithEpsilon(vz.Y, yt)
					vb = Vertex{xl, yt}
					if last {
						vb.X = vz.X
					}
				}

				edge := createBorderEdge(cell.Site, va, vb)
				border++
				iLeft++
				cell.Halfedges = slices.Insert(cell.Halfedges, iLeft, newHalfedge(edge, cell.Site, nil))

				va = vb
				side = (side + 1) % 4
			}
		}
		cell.closeMe = false
	}

	s.logger.Info("[f-close] Ячейки замкнуты", zap.Int("cells", len(s.cells)), zap.Int("border-edges", border))
	return nil
}

// closeWholeBox - у единственного сайта ячейка совпадает с рамкой
func (s *sweepState) closeWholeBox(cell *Cell) {
	b := s.bbox
	corners := []Vertex{
		{b.Xl, b.Yt},
		{b.Xl, b.Yb},
		{b.Xr, b.Yb},
		{b.Xr, b.Yt},
	}
	for i, va := range corners {
		edge := createBorderEdge(cell.Site, va, corners[(i+1)%len(corners)])
		cell.Halfedges = append(cell.Halfedges, newHalfedge(edge, cell.Site, nil))
	}
	cell.closeMe = false
}
