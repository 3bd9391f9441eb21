package voronoi

import (
	"math"
	"testing"
)

// buildBeachline раскладывает дуги слева направо
func buildBeachline(sites ...*Site) (*beachline, []nodeID) {
	bl := &beachline{}
	ids := make([]nodeID, 0, len(sites))
	prev := nilID
	for _, site := range sites {
		prev = bl.insertAfter(prev, site)
		ids = append(ids, prev)
	}
	return bl, ids
}

func TestBreakpointSameHeight(t *testing.T) {
	bl, arcs := buildBeachline(
		&Site{Vertex: Vertex{0, 0}, ID: 0},
		&Site{Vertex: Vertex{10, 0}, ID: 1},
	)

	if got := bl.leftBreakpoint(arcs[1], 10); !equalWithEpsilon(got, 5) {
		t.Errorf("breakpoint = %g, expected 5", got)
	}
	if got := bl.rightBreakpoint(arcs[0], 10); !equalWithEpsilon(got, 5) {
		t.Errorf("right breakpoint of the left arc = %g, expected 5", got)
	}
}

func TestBreakpointDifferentHeights(t *testing.T) {
	left := &Site{Vertex: Vertex{0, 0}, ID: 0}
	right := &Site{Vertex: Vertex{10, 5}, ID: 1}
	bl, arcs := buildBeachline(left, right)

	const directrix = 10
	x := bl.leftBreakpoint(arcs[1], directrix)
	if x <= left.X || x >= right.X {
		t.Fatalf("breakpoint %g is not between the foci", x)
	}
	if want := 20 - math.Sqrt(250); math.Abs(x-want) > 1e-9 {
		t.Errorf("breakpoint = %.12f, expected %.12f", x, want)
	}

	ly := parabolaY(left.Vertex, directrix, x)
	ry := parabolaY(right.Vertex, directrix, x)
	if math.Abs(ly-ry) > 1e-9 {
		t.Errorf("parabolas differ at the breakpoint: %g vs %g", ly, ry)
	}
}

func TestBreakpointDegenerate(t *testing.T) {
	a := &Site{Vertex: Vertex{2, 1}, ID: 0}
	b := &Site{Vertex: Vertex{8, 4}, ID: 1}
	bl, arcs := buildBeachline(a, b)

	// крайние дуги уходят в бесконечность
	if got := bl.leftBreakpoint(arcs[0], 10); !math.IsInf(got, -1) {
		t.Errorf("leftmost arc: left breakpoint = %g, expected -Inf", got)
	}
	if got := bl.rightBreakpoint(arcs[1], 10); !math.IsInf(got, 1) {
		t.Errorf("rightmost arc: right breakpoint = %g, expected +Inf", got)
	}

	// фокус на директрисе - дуга вырождается в вертикальный луч
	if got := bl.leftBreakpoint(arcs[1], b.Y); got != b.X {
		t.Errorf("focus on directrix: breakpoint = %g, expected %g", got, b.X)
	}
	if got := bl.rightBreakpoint(arcs[1], b.Y); got != b.X {
		t.Errorf("focus on directrix: right breakpoint = %g, expected %g", got, b.X)
	}

	bl, arcs = buildBeachline(b, a)
	if got := bl.leftBreakpoint(arcs[1], b.Y); got != b.X {
		t.Errorf("left focus on directrix: breakpoint = %g, expected %g", got, b.X)
	}
}

func TestParabolaY(t *testing.T) {
	focus := Vertex{3, 0}
	// вершина параболы - посередине между фокусом и директрисой
	if got := parabolaY(focus, 4, 3); got != 2 {
		t.Errorf("vertex height = %g, expected 2", got)
	}
	// точки параболы равноудалены от фокуса и директрисы
	y := parabolaY(focus, 4, 7)
	if d := math.Abs(focus.distance(Vertex{7, y}) - (4 - y)); d > 1e-12 {
		t.Errorf("point (7, %g) is not equidistant: diff %g", y, d)
	}
	if got := parabolaY(focus, 0, 1); !math.IsInf(got, -1) {
		t.Errorf("focus on directrix: %g, expected -Inf", got)
	}
}
