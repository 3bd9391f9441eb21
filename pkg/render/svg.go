package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/0x0FACED/fortune-sweep/pkg/voronoi"
)

const (
	backgroundStyle = "fill:rgb(255,255,255)"
	edgeStyle       = "stroke:rgb(40,40,40);stroke-width:1.5"
	siteStyle       = "fill:rgb(20,20,20)"
	vertexStyle     = "fill:rgb(200,30,30)"
)

// SVGOptions - что рисовать поверх ячеек
type SVGOptions struct {
	// радиус точки сайта, 0 - не рисовать
	SiteRadius float64
	// радиус вершины диаграммы, 0 - не рисовать
	VertexRadius float64
	// подписывать сайты их ID
	Labels bool
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{SiteRadius: 3, VertexRadius: 1.5}
}

// SVG рисует готовую диаграмму: залитые ячейки, ребра, сайты и вершины.
// Начало координат картинки совпадает с левым верхним углом рамки.
func SVG(w io.Writer, d *voronoi.Diagram, bbox voronoi.BoundingBox, o SVGOptions) {
	canvas := svg.New(w)
	canvas.Start(bbox.Width(), bbox.Height())
	canvas.Rect(0, 0, bbox.Width(), bbox.Height(), backgroundStyle)
	canvas.Gtransform(fmt.Sprintf("translate(%g,%g)", -bbox.Xl, -bbox.Yt))

	var palette Palette
	for _, cell := range d.Cells {
		boundary := cell.Boundary()
		if len(boundary) < 3 {
			continue
		}
		xs := make([]float64, len(boundary))
		ys := make([]float64, len(boundary))
		for i, v := range boundary {
			xs[i] = v.X
			ys[i] = v.Y
		}
		canvas.Polygon(xs, ys, "fill:"+palette.Color(cell.Site.ID))
	}

	for _, edge := range d.Edges {
		canvas.Line(edge.Va.X, edge.Va.Y, edge.Vb.X, edge.Vb.Y, edgeStyle)
	}

	if o.VertexRadius > 0 {
		for _, v := range d.Vertices {
			canvas.Circle(v.X, v.Y, o.VertexRadius, vertexStyle)
		}
	}
	if o.SiteRadius > 0 {
		for _, site := range d.Sites {
			canvas.Circle(site.X, site.Y, o.SiteRadius, siteStyle)
			if o.Labels {
				canvas.Text(site.X+o.SiteRadius+1, site.Y-o.SiteRadius-1, fmt.Sprint(site.ID), "font-size:10px")
			}
		}
	}

	canvas.Gend()
	canvas.End()
}
