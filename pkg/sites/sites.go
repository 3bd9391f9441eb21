// Package sites - источники точек для диаграммы: случайные, сеткой, из JSON.
package sites

import (
	"encoding/json"
	"io"
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/0x0FACED/fortune-sweep/pkg/voronoi"
)

// Random генерирует n точек с целыми координатами в [0, width) x [0, height).
// Одинаковый seed дает одинаковый набор.
func Random(n, width, height int, seed int64) []voronoi.Vertex {
	if n <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	rnd := rand.New(rand.NewSource(seed))
	points := make([]voronoi.Vertex, n)
	for i := range points {
		points[i] = voronoi.Vertex{
			X: float64(rnd.Intn(width)),
			Y: float64(rnd.Intn(height)),
		}
	}
	return points
}

// Grid раскладывает n точек по центрам клеток почти квадратной сетки
func Grid(n, width, height int) []voronoi.Vertex {
	if n <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	points := make([]voronoi.Vertex, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// клеток может быть больше, чем точек: последняя строка заполняется не целиком
			if len(points) == n {
				return points
			}
			points = append(points, voronoi.Vertex{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return points
}

// Load читает JSON-массив точек вида [{"x": 1, "y": 2}, ...]
func Load(r io.Reader) ([]voronoi.Vertex, error) {
	var points []voronoi.Vertex
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return nil, errors.Wrap(err, "sites: decode")
	}
	return points, nil
}

// Save пишет точки в том же формате, что читает Load
func Save(w io.Writer, points []voronoi.Vertex) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(points), "sites: encode")
}

// Scale переносит точки из области oldW x oldH в newW x newH пропорционально по каждой оси
func Scale(points []voronoi.Vertex, oldW, oldH, newW, newH float64) ([]voronoi.Vertex, error) {
	if oldW <= 0 || oldH <= 0 {
		return nil, errors.Errorf("sites: cannot scale from %gx%g", oldW, oldH)
	}
	ret := make([]voronoi.Vertex, len(points))
	for i, p := range points {
		ret[i] = voronoi.Vertex{X: p.X / oldW * newW, Y: p.Y / oldH * newH}
	}
	return ret, nil
}
