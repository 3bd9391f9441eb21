package main

import (
	"encoding/json"
	"flag"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/fortune-sweep/pkg/logger"
	"github.com/0x0FACED/fortune-sweep/pkg/render"
	"github.com/0x0FACED/fortune-sweep/pkg/sites"
	"github.com/0x0FACED/fortune-sweep/pkg/voronoi"
)

type config struct {
	in      string
	out     string
	format  string
	n       int
	width   int
	height  int
	random  bool
	seed    int64
	steps   int
	labels  bool
	verbose bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("voronoi", flag.ContinueOnError)
	fs.StringVar(&c.in, "in", "", "JSON-файл с точками [{\"x\":..,\"y\":..}]; по умолчанию точки генерируются")
	fs.StringVar(&c.out, "o", "", "куда писать результат; по умолчанию stdout")
	fs.StringVar(&c.format, "format", "json", "формат вывода: json или svg")
	fs.IntVar(&c.n, "n", 12, "количество станций")
	fs.IntVar(&c.width, "width", 1000, "ширина рамки")
	fs.IntVar(&c.height, "height", 1000, "высота рамки")
	fs.BoolVar(&c.random, "random", false, "случайные станции вместо сетки")
	fs.Int64Var(&c.seed, "seed", 1, "зерно генератора")
	fs.IntVar(&c.steps, "steps", 0, "остановиться после стольких событий и вывести состояние (только json)")
	fs.BoolVar(&c.labels, "labels", false, "подписать станции в svg")
	fs.BoolVar(&c.verbose, "v", false, "подробный лог каждого события")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	switch c.format {
	case "json", "svg":
	default:
		return c, errors.Errorf("неизвестный формат %q", c.format)
	}
	if c.steps > 0 && c.format != "json" {
		return c, errors.New("-steps поддерживается только с -format json")
	}
	return c, nil
}

func loadPoints(c config) ([]voronoi.Vertex, error) {
	if c.in == "" {
		if c.random {
			return sites.Random(c.n, c.width, c.height, c.seed), nil
		}
		return sites.Grid(c.n, c.width, c.height), nil
	}

	f, err := os.Open(c.in)
	if err != nil {
		return nil, errors.Wrap(err, "открытие файла с точками")
	}
	defer f.Close()
	return sites.Load(f)
}

// stepView - снимок в виде, пригодном для JSON: бесконечности заменены на null
type stepView struct {
	Step         int              `json:"step"`
	SweepY       *float64         `json:"sweepY"`
	Done         bool             `json:"done"`
	PendingSites int              `json:"pendingSites"`
	Arcs         []arcView        `json:"arcs"`
	CircleEvents []circleView     `json:"circleEvents"`
	Edges        []edgeView       `json:"edges"`
	Vertices     []voronoi.Vertex `json:"vertices"`
}

type arcView struct {
	SiteID int      `json:"siteId"`
	Left   *float64 `json:"left"`
	Right  *float64 `json:"right"`
}

type circleView struct {
	Center voronoi.Vertex `json:"center"`
	Radius float64        `json:"radius"`
	Bottom float64        `json:"bottom"`
	SiteID int            `json:"siteId"`
}

type edgeView struct {
	Start       *voronoi.Vertex `json:"start"`
	End         *voronoi.Vertex `json:"end"`
	LeftSiteID  int             `json:"leftSiteId"`
	RightSiteID int             `json:"rightSiteId"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func endpoint(v voronoi.Vertex) *voronoi.Vertex {
	if v == voronoi.NoVertex {
		return nil
	}
	return &v
}

func newStepView(snap *voronoi.Snapshot) stepView {
	view := stepView{
		Step:         snap.Step,
		SweepY:       finite(snap.SweepY),
		Done:         snap.Done,
		PendingSites: snap.PendingSites,
		Arcs:         make([]arcView, 0, len(snap.Arcs)),
		CircleEvents: make([]circleView, 0, len(snap.CircleEvents)),
		Edges:        make([]edgeView, 0, len(snap.Edges)),
		Vertices:     append([]voronoi.Vertex{}, snap.Vertices...),
	}
	for _, arc := range snap.Arcs {
		view.Arcs = append(view.Arcs, arcView{
			SiteID: arc.Site.ID,
			Left:   finite(arc.LeftBreakpoint),
			Right:  finite(arc.RightBreakpoint),
		})
	}
	for _, c := range snap.CircleEvents {
		view.CircleEvents = append(view.CircleEvents, circleView(c))
	}
	for _, e := range snap.Edges {
		view.Edges = append(view.Edges, edgeView{
			Start:       endpoint(e.Va),
			End:         endpoint(e.Vb),
			LeftSiteID:  e.LeftSiteID,
			RightSiteID: e.RightSiteID,
		})
	}
	return view
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "запись json")
}

func run(c config, w io.Writer, log *logger.ZapLogger) error {
	points, err := loadPoints(c)
	if err != nil {
		return err
	}
	bbox := voronoi.NewBoundingBox(0, float64(c.width), 0, float64(c.height))

	sweep, err := voronoi.NewSweep(points, bbox, voronoi.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, "построение диаграммы")
	}

	if c.steps > 0 {
		sweep.Advance(c.steps)
		return writeJSON(w, newStepView(sweep.Snapshot()))
	}

	d, err := sweep.Finish()
	if err != nil {
		return errors.Wrap(err, "построение диаграммы")
	}

	if c.format == "svg" {
		o := render.DefaultSVGOptions()
		o.Labels = c.labels
		render.SVG(w, d, bbox, o)
		return nil
	}
	return writeJSON(w, d.Export())
}

// realMain возвращает код выхода; os.Exit вызывается только после отложенных Close и Sync
func realMain(args []string, stdout io.Writer) (code int) {
	c, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		os.Stderr.WriteString(err.Error() + "\n")
		return 2
	}

	level := zapcore.InfoLevel
	if c.verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewConsole(level)
	defer log.Sync()

	w := stdout
	if c.out != "" {
		f, err := os.Create(c.out)
		if err != nil {
			log.Error("Не удалось создать файл", zap.String("path", c.out), zap.Error(err))
			return 1
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Error("Не удалось закрыть файл", zap.String("path", c.out), zap.Error(err))
				code = 1
			}
		}()
		w = f
	}

	if err := run(c, w, log); err != nil {
		log.Error("Ошибка", zap.Error(err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout))
}
