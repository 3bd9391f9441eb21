package voronoi

import "math"

// Diagram - готовая диаграмма. После возврата из Compute/Finish не меняется.
// Edges - только ребра между двумя ячейками; отрезки рамки входят в Cell.Halfedges.
// Vertices - различные концы Edges в порядке первого появления, все лежат внутри рамки.
type Diagram struct {
	Sites    []*Site
	Vertices []Vertex
	Edges    []*Edge
	Cells    []*Cell
}

// Cell - ячейка сайта с данным ID, nil если такого нет
func (d *Diagram) Cell(siteID int) *Cell {
	if siteID < 0 || siteID >= len(d.Cells) {
		return nil
	}
	return d.Cells[siteID]
}

// NearestSite - сайт, в чьей ячейке лежит точка p
func (d *Diagram) NearestSite(p Vertex) *Site {
	var pick *Site
	dist := math.Inf(1)
	for _, site := range d.Sites {
		if sd := site.distance(p); sd < dist {
			dist = sd
			pick = site
		}
	}
	return pick
}

// VertexEdges группирует ребра по концам: для каждой вершины - все ребра, которые в ней сходятся
func (d *Diagram) VertexEdges() map[Vertex][]*Edge {
	vertexEdgeMap := make(map[Vertex][]*Edge)

	for _, edge := range d.Edges {
		vertexEdgeMap[edge.Va] = append(vertexEdgeMap[edge.Va], edge)
		vertexEdgeMap[edge.Vb] = append(vertexEdgeMap[edge.Vb], edge)
	}
	return vertexEdgeMap
}

func edgeVertices(edges []*Edge) []Vertex {
	seen := make(map[Vertex]struct{}, len(edges))
	var ret []Vertex
	for _, edge := range edges {
		for _, v := range [...]Vertex{edge.Va, edge.Vb} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			ret = append(ret, v)
		}
	}
	return ret
}

// Export - представление диаграммы для сериализации (JSON) и внешних потребителей
type Export struct {
	Sites    []ExportSite `json:"sites"`
	Vertices []Vertex     `json:"vertices"`
	Edges    []ExportEdge `json:"edges"`
	Cells    []ExportCell `json:"cells"`
}

type ExportSite struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type ExportEdge struct {
	Start       Vertex `json:"start"`
	End         Vertex `json:"end"`
	LeftSiteID  int    `json:"leftSiteId"`
	RightSiteID int    `json:"rightSiteId"`
}

type ExportCell struct {
	SiteID   int      `json:"siteId"`
	Boundary []Vertex `json:"boundary"`
}

func (d *Diagram) Export() Export {
	ret := Export{
		Sites:    make([]ExportSite, 0, len(d.Sites)),
		Vertices: append([]Vertex(nil), d.Vertices...),
		Edges:    make([]ExportEdge, 0, len(d.Edges)),
		Cells:    make([]ExportCell, 0, len(d.Cells)),
	}
	for _, site := range d.Sites {
		ret.Sites = append(ret.Sites, ExportSite{ID: site.ID, X: site.X, Y: site.Y})
	}
	for _, edge := range d.Edges {
		ret.Edges = append(ret.Edges, ExportEdge{
			Start:       edge.Va,
			End:         edge.Vb,
			LeftSiteID:  edge.LeftSiteID(),
			RightSiteID: edge.RightSiteID(),
		})
	}
	for _, cell := range d.Cells {
		ret.Cells = append(ret.Cells, ExportCell{SiteID: cell.Site.ID, Boundary: cell.Boundary()})
	}
	return ret
}
