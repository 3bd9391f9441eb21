package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/fortune-sweep/pkg/logger"
	"github.com/0x0FACED/fortune-sweep/pkg/voronoi"
)

func newTestServer() *server {
	return &server{log: logger.NewNop(), level: zapcore.InfoLevel}
}

func post(t *testing.T, s *server, values url.Values) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.diagramHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	return rec.Body.String()
}

func TestDiagramHandlerDefault(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().diagramHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	for _, want := range []string{"diagram-form", `value="1000"`, "построение завершено", "[f] Алгоритм завершен!"} {
		if !strings.Contains(body, want) {
			t.Errorf("page has no %q", want)
		}
	}
}

func TestDiagramHandlerStep(t *testing.T) {
	body := post(t, newTestServer(), url.Values{
		"width":    {"500"},
		"height":   {"400"},
		"stations": {"9"},
		"step":     {"2"},
		"action":   {"next"},
	})
	if !strings.Contains(body, "Событий обработано: 3") {
		t.Error("expected three processed events")
	}
	if strings.Contains(body, "построение завершено") {
		t.Error("diagram should not be finished after three events")
	}
	if !strings.Contains(body, `name="step" value="3"`) {
		t.Error("step field was not updated")
	}
}

func TestDiagramHandlerInvalidBox(t *testing.T) {
	body := post(t, newTestServer(), url.Values{"width": {"-10"}, "height": {"100"}, "stations": {"3"}})
	if !strings.Contains(body, "invalid bounding box") {
		t.Error("error is not shown on the page")
	}
}

func TestParseForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("width=abc&random=true&seed=42&step=5&action=prev"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := req.ParseForm(); err != nil {
		t.Fatal(err)
	}

	form := parseForm(req, defaultForm())
	if form.Width != 1000 || !form.Random || form.Seed != 42 || form.Step != 4 {
		t.Errorf("unexpected form %+v", form)
	}
}

func TestBuildStepPastEnd(t *testing.T) {
	points := []voronoi.Vertex{{X: 10, Y: 10}, {X: 90, Y: 20}}
	res, err := build(points, voronoi.NewBoundingBox(0, 100, 0, 100), 50, nil, logger.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if !res.done || res.scene.Diagram == nil || res.steps != 2 {
		t.Errorf("done=%v steps=%d diagram=%v", res.done, res.steps, res.scene.Diagram != nil)
	}
}

func TestStepReusesCursor(t *testing.T) {
	s := newTestServer()
	form := url.Values{
		"width":    {"500"},
		"height":   {"400"},
		"stations": {"9"},
		"random":   {"true"},
		"seed":     {"3"},
	}
	stepTo := func(step int, action string) {
		t.Helper()
		form.Set("step", strconv.Itoa(step))
		form.Set("action", action)
		post(t, s, form)
	}

	stepTo(2, "next")
	first := s.last
	if first == nil || first.Steps() != 3 {
		t.Fatal("cursor was not kept after a step")
	}

	stepTo(3, "next")
	if s.last != first {
		t.Error("next step started a new sweep")
	}
	if first.Steps() != 4 {
		t.Errorf("cursor at %d steps, expected 4", first.Steps())
	}

	// назад курсор не ходит: строится заново
	stepTo(4, "prev")
	if s.last == first || s.last.Steps() != 3 {
		t.Error("previous step must rebuild the sweep")
	}

	// другие точки - другой курсор
	prev := s.last
	form.Set("seed", "4")
	stepTo(3, "next")
	if s.last == prev {
		t.Error("cursor reused for a different seed")
	}
}
