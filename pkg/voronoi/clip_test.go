package voronoi

import (
	"testing"

	"github.com/0x0FACED/fortune-sweep/pkg/logger"
)

func newClipState(bbox BoundingBox, points ...Vertex) *sweepState {
	s := newSweepState(nil, bbox, logger.NewNop())
	for i, p := range points {
		site := &Site{Vertex: p, ID: i}
		s.sites = append(s.sites, site)
		s.cells = append(s.cells, newCell(site))
	}
	return s
}

func TestClipEdge(t *testing.T) {
	s := newClipState(NewBoundingBox(0, 10, 0, 10), Vertex{5, 2}, Vertex{5, 8})
	lSite, rSite := s.sites[0], s.sites[1]

	tests := []struct {
		name   string
		va, vb Vertex
		ok     bool
		wa, wb Vertex
	}{
		{"inside", Vertex{1, 5}, Vertex{9, 5}, true, Vertex{1, 5}, Vertex{9, 5}},
		{"both ends outside", Vertex{-5, 5}, Vertex{15, 5}, true, Vertex{0, 5}, Vertex{10, 5}},
		{"diagonal", Vertex{-2, -2}, Vertex{4, 4}, true, Vertex{0, 0}, Vertex{4, 4}},
		{"outside", Vertex{-5, -5}, Vertex{-1, -1}, false, Vertex{}, Vertex{}},
		{"parallel outside", Vertex{1, 12}, Vertex{9, 12}, false, Vertex{}, Vertex{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edge := newEdge(lSite, rSite)
			edge.Va = tt.va
			edge.Vb = tt.vb

			ok := s.clipEdge(edge)
			if ok != tt.ok {
				t.Fatalf("clipEdge = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !pointsEqual(edge.Va, tt.wa) || !pointsEqual(edge.Vb, tt.wb) {
				t.Errorf("clipped to %v-%v, expected %v-%v", edge.Va, edge.Vb, tt.wa, tt.wb)
			}
		})
	}
}

func TestConnectEdge(t *testing.T) {
	bbox := NewBoundingBox(0, 10, 0, 10)

	t.Run("vertical bisector", func(t *testing.T) {
		s := newClipState(bbox, Vertex{2, 5}, Vertex{8, 5})
		edge := newEdge(s.sites[0], s.sites[1])
		if !s.connectEdge(edge) {
			t.Fatal("edge should cross the box")
		}
		if edge.Va != (Vertex{5, 10}) || edge.Vb != (Vertex{5, 0}) {
			t.Errorf("connected to %v-%v", edge.Va, edge.Vb)
		}
		if !s.cells[0].closeMe || !s.cells[1].closeMe {
			t.Error("cells of a connected edge must be closed later")
		}
	})

	t.Run("horizontal bisector from vertex", func(t *testing.T) {
		s := newClipState(bbox, Vertex{5, 2}, Vertex{5, 8})
		edge := newEdge(s.sites[0], s.sites[1])
		edge.Va = Vertex{3, 5}
		if !s.connectEdge(edge) {
			t.Fatal("edge should cross the box")
		}
		if edge.Va != (Vertex{3, 5}) || edge.Vb != (Vertex{10, 5}) {
			t.Errorf("connected to %v-%v", edge.Va, edge.Vb)
		}
	})

	t.Run("bisector outside", func(t *testing.T) {
		s := newClipState(bbox, Vertex{12, 5}, Vertex{18, 5})
		if s.connectEdge(newEdge(s.sites[0], s.sites[1])) {
			t.Error("bisector x=15 does not cross the box")
		}
	})

	t.Run("complete edge untouched", func(t *testing.T) {
		s := newClipState(bbox, Vertex{2, 5}, Vertex{8, 5})
		edge := newEdge(s.sites[0], s.sites[1])
		edge.Va = Vertex{5, 1}
		edge.Vb = Vertex{5, 9}
		if !s.connectEdge(edge) || edge.Va != (Vertex{5, 1}) || edge.Vb != (Vertex{5, 9}) {
			t.Errorf("complete edge changed to %v-%v", edge.Va, edge.Vb)
		}
	})
}

func TestClipEdgesDropsOutside(t *testing.T) {
	s := newClipState(NewBoundingBox(0, 10, 0, 10), Vertex{2, 5}, Vertex{8, 5}, Vertex{12, 5}, Vertex{18, 5})
	inside := newEdge(s.sites[0], s.sites[1])
	outside := newEdge(s.sites[2], s.sites[3])
	s.edges = []*Edge{inside, outside}

	s.clipEdges()
	if len(s.edges) != 1 || s.edges[0] != inside {
		t.Fatalf("expected only the inside edge to survive, got %d edges", len(s.edges))
	}
	if outside.Va != NoVertex || outside.Vb != NoVertex {
		t.Error("dropped edge must lose its endpoints")
	}
}

func TestCloseCellsSingleSite(t *testing.T) {
	s := newClipState(NewBoundingBox(0, 4, 0, 3), Vertex{1, 1})
	if err := s.closeCells(); err != nil {
		t.Fatal(err)
	}

	boundary := s.cells[0].Boundary()
	expected := []Vertex{{0, 0}, {0, 3}, {4, 3}, {4, 0}}
	if len(boundary) != len(expected) {
		t.Fatalf("boundary %v, expected %v", boundary, expected)
	}
	for i := range expected {
		if boundary[i] != expected[i] {
			t.Errorf("boundary %v, expected %v", boundary, expected)
			break
		}
	}
	if len(s.edges) != 0 {
		t.Errorf("single site diagram has %d edges, expected 0", len(s.edges))
	}
}

func TestCloseCellsStrayPoint(t *testing.T) {
	s := newClipState(NewBoundingBox(0, 10, 0, 10), Vertex{2, 5}, Vertex{8, 5})
	// ребро, оборванное внутри рамки, замкнуть по рамке нельзя
	s.createEdge(s.sites[0], s.sites[1], Vertex{5, 3}, Vertex{5, 7})
	s.cells[0].closeMe = true
	s.cells[1].closeMe = true

	err := s.closeCells()
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*GeometryInvariantError); !ok {
		t.Errorf("unexpected error type %T", err)
	}
}
