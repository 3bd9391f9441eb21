package main

import (
	"flag"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/fortune-sweep/pkg/logger"
	"github.com/0x0FACED/fortune-sweep/pkg/render"
	"github.com/0x0FACED/fortune-sweep/pkg/sites"
	"github.com/0x0FACED/fortune-sweep/pkg/voronoi"
	"github.com/0x0FACED/fortune-sweep/static"
)

type server struct {
	log *logger.ZapLogger
	// уровень логов, которые попадают на страницу
	level zapcore.Level

	// курсор последнего пошагового просмотра: "Шаг >" продолжает его, а не считает с нуля
	mu      sync.Mutex
	lastKey sweepKey
	last    *voronoi.Sweep
}

// sweepKey - поля формы, от которых зависят точки и рамка
type sweepKey struct {
	width, height, stations int
	random                  bool
	seed                    int64
}

func keyOf(form static.FormData) sweepKey {
	return sweepKey{form.Width, form.Height, form.Stations, form.Random, form.Seed}
}

// takeCursor отдает сохраненный курсор, если он построен для тех же точек и не ушел дальше step.
// Курсор забирается: Sweep нельзя использовать из двух запросов одновременно.
func (s *server) takeCursor(key sweepKey, step int) *voronoi.Sweep {
	s.mu.Lock()
	defer s.mu.Unlock()

	sweep := s.last
	if sweep == nil || s.lastKey != key || sweep.Steps() > step {
		return nil
	}
	s.last = nil
	return sweep
}

func (s *server) keepCursor(key sweepKey, sweep *voronoi.Sweep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastKey = key
	s.last = sweep
}

func defaultForm() static.FormData {
	return static.FormData{
		Width:    1000,
		Height:   1000,
		Stations: 12,
		Seed:     1,
	}
}

func formInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return def
	}
	return v
}

// parseForm читает поля формы; пустые и нечисловые значения заменяются значениями из form
func parseForm(r *http.Request, form static.FormData) static.FormData {
	form.Width = formInt(r, "width", form.Width)
	form.Height = formInt(r, "height", form.Height)
	form.Stations = formInt(r, "stations", form.Stations)
	form.Random = r.FormValue("random") == "true"
	if seed, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
		form.Seed = seed
	}
	form.Step = max(formInt(r, "step", 0), 0)

	switch r.FormValue("action") {
	case "next":
		form.Step++
	case "prev":
		form.Step = max(form.Step-1, 1)
	}
	return form
}

type result struct {
	scene render.Scene
	steps int
	done  bool
	sweep *voronoi.Sweep
}

// build строит диаграмму целиком или, если step > 0, останавливается после step событий.
// sweep - курсор с прошлого шага; nil - начать заново.
func build(points []voronoi.Vertex, bbox voronoi.BoundingBox, step int, sweep *voronoi.Sweep, l *logger.ZapLogger) (result, error) {
	res := result{scene: render.Scene{BBox: bbox, Points: points}}

	if sweep == nil {
		var err error
		sweep, err = voronoi.NewSweep(points, bbox, voronoi.WithLogger(l))
		if err != nil {
			return res, errors.Wrap(err, "построение диаграммы")
		}
	} else {
		sweep.SetLogger(l)
	}
	res.sweep = sweep

	if step > 0 {
		sweep.Advance(step - sweep.Steps())
		res.steps = sweep.Steps()
		if !sweep.Done() {
			res.scene.Snapshot = sweep.Snapshot()
			return res, nil
		}
	}

	diagram, err := sweep.Finish()
	if err != nil {
		return res, errors.Wrap(err, "построение диаграммы")
	}
	res.scene.Diagram = diagram
	res.steps = sweep.Steps()
	res.done = true
	return res, nil
}

// http обработчик страницы с диаграмой и формой для ввода данных
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	form := defaultForm()
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		form = parseForm(r, form)
	}

	var points []voronoi.Vertex
	if form.Random {
		points = sites.Random(form.Stations, form.Width, form.Height, form.Seed)
	} else {
		points = sites.Grid(form.Stations, form.Width, form.Height)
	}

	bbox := voronoi.NewBoundingBox(0, float64(form.Width), 0, float64(form.Height))

	level := s.level
	if form.Step > 0 {
		// при пошаговом просмотре интересен каждый шаг
		level = zapcore.DebugLevel
	}
	reqLog := logger.New(logger.Config{Level: level})
	defer reqLog.ClearLogs()

	var cursor *voronoi.Sweep
	if form.Step > 0 {
		cursor = s.takeCursor(keyOf(form), form.Step)
	}
	res, err := build(points, bbox, form.Step, cursor, reqLog)
	if form.Step > 0 && res.sweep != nil {
		// логгер запроса очищается после ответа
		res.sweep.SetLogger(nil)
		s.keepCursor(keyOf(form), res.sweep)
	}
	if err != nil {
		form.Error = err.Error()
		s.log.Warn("Не удалось построить диаграмму", zap.Error(err))
	}
	form.Steps = res.steps
	form.Done = res.done
	if form.Step > res.steps {
		form.Step = res.steps
	}

	fmt.Fprintln(w, static.Part1)

	if err := static.Form.Execute(w, form); err != nil {
		s.log.Error("Ошибка рендеринга формы", zap.Error(err))
	}

	if err := render.Chart(res.scene).Render(w); err != nil {
		s.log.Error("Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, reqLog.HTML())

	fmt.Fprintln(w, static.Part3)
}

func main() {
	addr := flag.String("addr", ":8080", "адрес HTTP-сервера")
	verbose := flag.Bool("v", false, "показывать на странице события каждого шага")
	flag.Parse()

	log := logger.NewConsole(zapcore.InfoLevel)
	defer log.Sync()

	s := &server{log: log, level: zapcore.InfoLevel}
	if *verbose {
		s.level = zapcore.DebugLevel
	}

	http.HandleFunc("/", s.diagramHandler)
	log.Info("Сервер запущен", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal("Err ListenAndServe", zap.Error(err))
	}
}
