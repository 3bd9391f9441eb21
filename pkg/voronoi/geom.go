package voronoi

import (
	"math"
)

type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NoVertex - отсутствующий конец ребра
var NoVertex = Vertex{math.Inf(1), math.Inf(1)}

func (v Vertex) isFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func (v Vertex) distance(o Vertex) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

type vertices []Vertex

func (s vertices) Len() int      { return len(s) }
func (s vertices) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// verticesByYX сортирует по убыванию Y, затем по убыванию X:
// очередь забирает точки с конца, поэтому первой выходит точка с наименьшим Y
type verticesByYX struct{ vertices }

func (s verticesByYX) Less(i, j int) bool {
	if s.vertices[i].Y != s.vertices[j].Y {
		return s.vertices[j].Y < s.vertices[i].Y
	}
	return s.vertices[j].X < s.vertices[i].X
}

// Site - входная точка. ID выдается в момент обработки события точки,
// а не по порядку во входном слайсе, и совпадает с индексом ячейки в Diagram.Cells.
type Site struct {
	Vertex
	ID int
}

// Edge - серединный перпендикуляр между двумя сайтами.
// У граничного ребра (отрезка рамки в границе ячейки) RightSite == nil;
// такие ребра есть только в Cell.Halfedges, в Diagram.Edges их нет.
type Edge struct {
	LeftSite  *Site
	RightSite *Site
	Va        Vertex
	Vb        Vertex
}

func newEdge(lSite, rSite *Site) *Edge {
	return &Edge{
		LeftSite:  lSite,
		RightSite: rSite,
		Va:        NoVertex,
		Vb:        NoVertex,
	}
}

// IsBorder - ребро лежит на рамке и ограничивает только одну ячейку
func (e *Edge) IsBorder() bool {
	return e.RightSite == nil
}

func (e *Edge) LeftSiteID() int {
	if e.LeftSite == nil {
		return -1
	}
	return e.LeftSite.ID
}

// RightSiteID возвращает -1 для граничных ребер
func (e *Edge) RightSiteID() int {
	if e.RightSite == nil {
		return -1
	}
	return e.RightSite.ID
}

// OtherSite - сайт по другую сторону ребра
func (e *Edge) OtherSite(site *Site) *Site {
	if site == e.LeftSite {
		return e.RightSite
	} else if site == e.RightSite {
		return e.LeftSite
	}
	return nil
}

// Complete - известны оба конца
func (e *Edge) Complete() bool {
	return e.Va != NoVertex && e.Vb != NoVertex
}

func (e *Edge) setStartpoint(lSite, rSite *Site, vertex Vertex) {
	if e.Va == NoVertex && e.Vb == NoVertex {
		e.Va = vertex
		e.LeftSite = lSite
		e.RightSite = rSite
	} else if e.LeftSite == rSite {
		e.Vb = vertex
	} else {
		e.Va = vertex
	}
}

func (e *Edge) setEndpoint(lSite, rSite *Site, vertex Vertex) {
	e.setStartpoint(rSite, lSite, vertex)
}

// Halfedge - ребро, ориентированное относительно ячейки Site
type Halfedge struct {
	Site  *Site
	Edge  *Edge
	Angle float64
}

type halfedges []*Halfedge

func (s halfedges) Len() int      { return len(s) }
func (s halfedges) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

type halfedgesByAngle struct{ halfedges }

func (s halfedgesByAngle) Less(i, j int) bool { return s.halfedges[i].Angle > s.halfedges[j].Angle }

func newHalfedge(edge *Edge, lSite, rSite *Site) *Halfedge {
	ret := &Halfedge{
		Site: lSite,
		Edge: edge,
	}

	// угол для сортировки против часовой стрелки: направление от своего сайта к соседнему,
	// а у граничного ребра соседа нет - берем перпендикуляр к самому ребру
	if rSite != nil {
		ret.Angle = math.Atan2(rSite.Y-lSite.Y, rSite.X-lSite.X)
	} else {
		va := edge.Va
		vb := edge.Vb

		if edge.LeftSite == lSite {
			ret.Angle = math.Atan2(vb.X-va.X, va.Y-vb.Y)
		} else {
			ret.Angle = math.Atan2(va.X-vb.X, vb.Y-va.Y)
		}
	}
	return ret
}

func (h *Halfedge) StartPoint() Vertex {
	if h.Edge.LeftSite == h.Site {
		return h.Edge.Va
	}
	return h.Edge.Vb
}

func (h *Halfedge) EndPoint() Vertex {
	if h.Edge.LeftSite == h.Site {
		return h.Edge.Vb
	}
	return h.Edge.Va
}

// circumcenter - центр окружности через три точки; ok == false для коллинеарных
func circumcenter(a, b, c Vertex) (Vertex, bool) {
	bx := b.X - a.X
	by := b.Y - a.Y
	cx := c.X - a.X
	cy := c.Y - a.Y
	d := 2 * (bx*cy - by*cx)
	if math.Abs(d) < circleDeterminantEpsilon {
		return NoVertex, false
	}
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	return Vertex{(cy*hb-by*hc)/d + a.X, (bx*hc-cx*hb)/d + a.Y}, true
}
