package voronoi

import "sort"

// Cell - область всех точек, ближайших к Site.
// После замыкания Halfedges образуют замкнутый многоугольник против часовой стрелки.
type Cell struct {
	Site      *Site
	Halfedges []*Halfedge
	closeMe   bool
}

func newCell(site *Site) *Cell {
	return &Cell{Site: site}
}

// prepare убирает полуребра без концов (выброшенные при отсечении)
// и сортирует оставшиеся по углу
func (t *Cell) prepare() int {
	halfedges := t.Halfedges[:0]
	for _, he := range t.Halfedges {
		if he.Edge.Va != NoVertex && he.Edge.Vb != NoVertex {
			halfedges = append(halfedges, he)
		}
	}

	sort.Stable(halfedgesByAngle{halfedges})
	t.Halfedges = halfedges
	return len(halfedges)
}

// Boundary - вершины многоугольника ячейки против часовой стрелки.
// Последняя вершина неявно соединяется с первой.
func (t *Cell) Boundary() []Vertex {
	ret := make([]Vertex, 0, len(t.Halfedges))
	for _, he := range t.Halfedges {
		ret = append(ret, he.StartPoint())
	}
	return ret
}

// Neighbors - сайты соседних ячеек (без граничных ребер)
func (t *Cell) Neighbors() []*Site {
	var ret []*Site
	for _, he := range t.Halfedges {
		if other := he.Edge.OtherSite(t.Site); other != nil {
			ret = append(ret, other)
		}
	}
	return ret
}
