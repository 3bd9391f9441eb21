package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/0x0FACED/fortune-sweep/pkg/voronoi"
)

func TestPalette(t *testing.T) {
	var p Palette
	if got := p.Color(0); got != "hsl(286, 70%, 85%)" {
		t.Errorf("first color %q", got)
	}
	// после начальных оттенков - середина самого большого промежутка (195..242)
	if got := p.Color(10); got != "hsl(218, 100%, 85%)" {
		t.Errorf("eleventh color %q", got)
	}
	if p.Color(3) != p.Color(3) {
		t.Error("colors must be stable")
	}
}

func TestHueDistance(t *testing.T) {
	for _, tt := range []struct{ a, b, want int }{
		{0, 10, 10},
		{350, 10, 20},
		{180, 0, 180},
		{90, 90, 0},
	} {
		if got := hueDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("hueDistance(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSVG(t *testing.T) {
	bbox := voronoi.NewBoundingBox(0, 400, 0, 300)
	d, err := voronoi.Compute([]voronoi.Vertex{{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 200, Y: 250}}, bbox)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	o := DefaultSVGOptions()
	o.Labels = true
	SVG(&buf, d, bbox, o)

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document: %q", out)
	}
	if n := strings.Count(out, "<polygon"); n != len(d.Cells) {
		t.Errorf("%d polygons for %d cells", n, len(d.Cells))
	}
	if n := strings.Count(out, "<line"); n != len(d.Edges) {
		t.Errorf("%d lines for %d edges", n, len(d.Edges))
	}
	if n := strings.Count(out, "<circle"); n != len(d.Sites)+len(d.Vertices) {
		t.Errorf("%d circles for %d sites and %d vertices", n, len(d.Sites), len(d.Vertices))
	}
	if !strings.Contains(out, "hsl(286, 70%, 85%)") {
		t.Error("cells are not filled with palette colors")
	}
}

func TestArcData(t *testing.T) {
	bbox := voronoi.NewBoundingBox(0, 10, 0, 10)
	arc := voronoi.ArcSnapshot{
		Site:            voronoi.Site{Vertex: voronoi.Vertex{X: 5, Y: 2}},
		LeftBreakpoint:  math.Inf(-1),
		RightBreakpoint: 7,
	}

	data := arcData(arc, 6, bbox)
	if len(data) != arcSamples+1 {
		t.Fatalf("%d points, expected %d", len(data), arcSamples+1)
	}
	last := data[len(data)-1].Value.([]float64)
	if last[0] != 7 {
		t.Errorf("arc ends at x=%g, expected the breakpoint 7", last[0])
	}

	// фокус на прямой сканирования
	arc.Site.Y = 6
	if data := arcData(arc, 6, bbox); data != nil {
		t.Errorf("degenerate arc produced %d points", len(data))
	}
}

func TestChart(t *testing.T) {
	bbox := voronoi.NewBoundingBox(0, 100, 0, 100)
	points := []voronoi.Vertex{{X: 20, Y: 20}, {X: 80, Y: 30}, {X: 50, Y: 70}}

	d, err := voronoi.Compute(points, bbox)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Chart(Scene{BBox: bbox, Points: points, Diagram: d}).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 || !strings.Contains(buf.String(), "echarts") {
		t.Error("empty chart")
	}

	snap, err := voronoi.ComputeBounded(points, bbox, 2)
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := Chart(Scene{BBox: bbox, Points: points, Snapshot: snap}).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty step chart")
	}
}
