package render

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0x0FACED/fortune-sweep/pkg/voronoi"
)

// сколько точек на одну дугу пляжной линии
const arcSamples = 48

// Scene - все, что показывает веб-страница.
// Diagram есть только после завершения, Snapshot - только при пошаговом просмотре.
type Scene struct {
	BBox     voronoi.BoundingBox
	Points   []voronoi.Vertex
	Diagram  *voronoi.Diagram
	Snapshot *voronoi.Snapshot
}

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart собирает график: станции, ребра и, при пошаговом просмотре,
// прямую сканирования, пляжную линию и запланированные события круга
func Chart(s Scene) *charts.Scatter {
	scatter := charts.NewScatter()

	title := "Диаграмма Вороного (Форчун)"
	if s.Snapshot != nil && !s.Snapshot.Done {
		title = "Диаграмма Вороного (Форчун): пошагово"
	}
	prepareScatter(scatter, title)

	scatter.AddSeries("Станции", scatterData(s.Points)).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	switch {
	case s.Diagram != nil:
		for _, edge := range s.Diagram.Edges {
			scatter.Overlap(segment("Границы", edge.Va, edge.Vb, opts.LineStyle{Width: 2}))
		}
		scatter.AddSeries("Вершины", scatterData(s.Diagram.Vertices)).
			SetSeriesOptions(
				charts.WithItemStyleOpts(opts.ItemStyle{
					Color: "tomato",
				}),
			)
	case s.Snapshot != nil:
		overlapSnapshot(scatter, s.Snapshot, s.BBox)
	}

	return scatter
}

func overlapSnapshot(scatter *charts.Scatter, snap *voronoi.Snapshot, bbox voronoi.BoundingBox) {
	for _, edge := range snap.Edges {
		if edge.Complete() {
			scatter.Overlap(segment("Границы", edge.Va, edge.Vb, opts.LineStyle{Width: 2}))
		}
	}

	if !math.IsInf(snap.SweepY, 0) {
		scatter.Overlap(segment("Прямая сканирования",
			voronoi.Vertex{X: bbox.Xl, Y: snap.SweepY},
			voronoi.Vertex{X: bbox.Xr, Y: snap.SweepY},
			opts.LineStyle{Width: 1, Type: "dashed", Color: "orange"}))

		for _, arc := range snap.Arcs {
			if data := arcData(arc, snap.SweepY, bbox); len(data) > 1 {
				line := charts.NewLine()
				line.AddSeries("Пляжная линия", data).
					SetSeriesOptions(
						charts.WithLineStyleOpts(opts.LineStyle{Width: 2, Color: "deepskyblue"}),
					)
				scatter.Overlap(line)
			}
		}
	}

	centers := make([]voronoi.Vertex, 0, len(snap.CircleEvents))
	for _, c := range snap.CircleEvents {
		centers = append(centers, c.Center)
	}
	scatter.AddSeries("События круга", scatterData(centers)).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "violet",
			}),
		)
	scatter.AddSeries("Вершины", scatterData(snap.Vertices)).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "tomato",
			}),
		)
}

// arcData - точки дуги в пределах рамки. Вырожденная дуга (фокус на прямой) не рисуется.
func arcData(arc voronoi.ArcSnapshot, directrix float64, bbox voronoi.BoundingBox) []opts.LineData {
	from := math.Max(arc.LeftBreakpoint, bbox.Xl)
	to := math.Min(arc.RightBreakpoint, bbox.Xr)
	if from >= to || arc.Site.Y == directrix {
		return nil
	}

	data := make([]opts.LineData, 0, arcSamples+1)
	for i := 0; i <= arcSamples; i++ {
		x := from + (to-from)*float64(i)/arcSamples
		y := arc.Y(x, directrix)
		if y < bbox.Yt || y > bbox.Yb {
			continue
		}
		data = append(data, opts.LineData{Value: []float64{x, y}})
	}
	return data
}

func segment(name string, a, b voronoi.Vertex, style opts.LineStyle) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)

	line.AddSeries(name, []opts.LineData{
		{Value: []float64{a.X, a.Y}},
		{Value: []float64{b.X, b.Y}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(style),
	)
	return line
}

func scatterData(points []voronoi.Vertex) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	return data
}
