package sites

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/0x0FACED/fortune-sweep/pkg/voronoi"
)

func TestRandom(t *testing.T) {
	a := Random(50, 100, 40, 7)
	b := Random(50, 100, 40, 7)
	if len(a) != 50 {
		t.Fatalf("got %d points, expected 50", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different points")
	}
	for _, p := range a {
		if p.X < 0 || p.X >= 100 || p.Y < 0 || p.Y >= 40 {
			t.Errorf("point %v outside of 100x40", p)
		}
	}
	if Random(0, 100, 100, 1) != nil || Random(5, 0, 100, 1) != nil {
		t.Error("expected no points for empty input")
	}
}

func TestGrid(t *testing.T) {
	tests := []struct {
		n     int
		first voronoi.Vertex
	}{
		{1, voronoi.Vertex{X: 50, Y: 50}},
		{4, voronoi.Vertex{X: 25, Y: 25}},
		{12, voronoi.Vertex{X: 12.5, Y: 100.0 / 6}},
		{17, voronoi.Vertex{X: 10, Y: 12.5}},
	}
	for _, tt := range tests {
		points := Grid(tt.n, 100, 100)
		if len(points) != tt.n {
			t.Errorf("n=%d: got %d points", tt.n, len(points))
			continue
		}
		if points[0] != tt.first {
			t.Errorf("n=%d: first point %v, expected %v", tt.n, points[0], tt.first)
		}
		seen := map[voronoi.Vertex]bool{}
		for _, p := range points {
			if seen[p] {
				t.Errorf("n=%d: duplicate point %v", tt.n, p)
			}
			seen[p] = true
		}
	}
}

func TestLoadSave(t *testing.T) {
	points, err := Load(strings.NewReader(`[{"x": 1, "y": 2}, {"x": 3.5, "y": -4}]`))
	if err != nil {
		t.Fatal(err)
	}
	expected := []voronoi.Vertex{{X: 1, Y: 2}, {X: 3.5, Y: -4}}
	if !reflect.DeepEqual(points, expected) {
		t.Fatalf("loaded %v, expected %v", points, expected)
	}

	var buf bytes.Buffer
	if err := Save(&buf, points); err != nil {
		t.Fatal(err)
	}
	again, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(again, expected) {
		t.Errorf("round trip gave %v", again)
	}

	if _, err := Load(strings.NewReader(`{"x": 1}`)); err == nil || !strings.Contains(err.Error(), "sites: decode") {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestScale(t *testing.T) {
	points, err := Scale([]voronoi.Vertex{{X: 50, Y: 20}, {X: 100, Y: 0}}, 100, 40, 200, 10)
	if err != nil {
		t.Fatal(err)
	}
	expected := []voronoi.Vertex{{X: 100, Y: 5}, {X: 200, Y: 0}}
	if !reflect.DeepEqual(points, expected) {
		t.Errorf("scaled to %v, expected %v", points, expected)
	}

	if _, err := Scale(points, 0, 10, 1, 1); err == nil {
		t.Error("expected an error for zero width")
	}
}
