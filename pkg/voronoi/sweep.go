package voronoi

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/0x0FACED/fortune-sweep/pkg/logger"
)

// Compute строит диаграмму Вороного для points внутри bbox.
// Совпадающие точки учитываются один раз.
func Compute(points []Vertex, bbox BoundingBox, opts ...Option) (*Diagram, error) {
	sweep, err := NewSweep(points, bbox, opts...)
	if err != nil {
		return nil, err
	}
	return sweep.Finish()
}

// ComputeBounded обрабатывает не больше limit событий и возвращает промежуточный снимок.
// Для пошагового просмотра выгоднее держать один Sweep и вызывать Step.
func ComputeBounded(points []Vertex, bbox BoundingBox, limit int, opts ...Option) (*Snapshot, error) {
	sweep, err := NewSweep(points, bbox, opts...)
	if err != nil {
		return nil, err
	}
	sweep.Advance(limit)
	return sweep.Snapshot(), nil
}

// Sweep - возобновляемое вычисление: очередь событий, пляжная линия и
// построенные ребра сохраняются между шагами.
// Не безопасен для одновременного использования из нескольких горутин.
type Sweep struct {
	state   *sweepState
	diagram *Diagram
	err     error
}

func NewSweep(points []Vertex, bbox BoundingBox, opts ...Option) (*Sweep, error) {
	if err := bbox.Validate(); err != nil {
		return nil, err
	}
	for i, p := range points {
		if !p.isFinite() {
			return nil, &InvalidSiteError{Index: i, Site: p}
		}
	}

	o := buildOptions(opts)
	o.logger.Info("[f] Алгоритм Форчуна запущен",
		zap.Int("sites", len(points)),
		zap.Any("bbox", bbox))

	return &Sweep{state: newSweepState(points, bbox, o.logger)}, nil
}

// Step обрабатывает одно событие. false - событий не осталось или диаграмма уже собрана.
func (s *Sweep) Step() bool {
	if s.diagram != nil || s.err != nil {
		return false
	}
	return s.state.step()
}

// Advance делает до n шагов и возвращает, сколько сделано
func (s *Sweep) Advance(n int) int {
	done := 0
	for done < n && s.Step() {
		done++
	}
	if done > 0 {
		s.state.logger.Debug("[f-step] Шаги выполнены", zap.Int("done", done), zap.Int("total", s.state.steps))
	}
	return done
}

// SetLogger заменяет логгер для следующих шагов; nil - не логировать
func (s *Sweep) SetLogger(l *logger.ZapLogger) {
	if l == nil {
		l = logger.NewNop()
	}
	s.state.logger = l
}

// Done - все события обработаны
func (s *Sweep) Done() bool {
	return s.diagram != nil || s.err != nil || s.state.queue.empty()
}

// Steps - сколько событий обработано (включая пропущенные дубликаты)
func (s *Sweep) Steps() int { return s.state.steps }

// SweepY - положение прямой сканирования после последнего события, -Inf до первого шага
func (s *Sweep) SweepY() float64 { return s.state.sweepY }

// Finish обрабатывает оставшиеся события, соединяет ребра с рамкой и замыкает ячейки.
// Повторный вызов возвращает тот же результат.
func (s *Sweep) Finish() (*Diagram, error) {
	if s.diagram != nil || s.err != nil {
		return s.diagram, s.err
	}

	st := s.state
	for st.step() {
	}
	st.logger.Info("[f] Все события обработаны",
		zap.Int("steps", st.steps),
		zap.Int("cells", len(st.cells)),
		zap.Int("edges", len(st.edges)))

	st.clipEdges()
	if err := st.closeCells(); err != nil {
		s.err = errors.Wrap(err, "voronoi: finish")
		st.logger.Error("[f] Не удалось замкнуть ячейки", zap.Error(err))
		return nil, s.err
	}

	s.diagram = &Diagram{
		Sites:    st.sites,
		Vertices: edgeVertices(st.edges),
		Edges:    st.edges,
		Cells:    st.cells,
	}
	st.logger.Info("[f] Алгоритм завершен!",
		zap.Int("vertices", len(s.diagram.Vertices)),
		zap.Int("edges", len(st.edges)))
	return s.diagram, nil
}

// Snapshot - копия текущего состояния для пошаговой отрисовки
type Snapshot struct {
	Step         int
	SweepY       float64
	Done         bool
	PendingSites int
	Sites        []Site
	Arcs         []ArcSnapshot
	CircleEvents []CircleSnapshot
	Edges        []EdgeSnapshot

	// вершины, найденные до этого шага (события круга и точки в изломе)
	Vertices []Vertex
}

// ArcSnapshot - дуга пляжной линии с точками излома при SweepY
type ArcSnapshot struct {
	Site            Site
	LeftBreakpoint  float64
	RightBreakpoint float64
}

// Y - высота дуги над x при директрисе directrix
func (a ArcSnapshot) Y(x, directrix float64) float64 {
	return parabolaY(a.Site.Vertex, directrix, x)
}

// CircleSnapshot - запланированное событие круга
type CircleSnapshot struct {
	Center Vertex
	Radius float64
	// положение прямой сканирования, при котором событие сработает
	Bottom float64
	SiteID int
}

// EdgeSnapshot - ребро на момент снимка; неизвестный конец равен NoVertex
type EdgeSnapshot struct {
	Va          Vertex
	Vb          Vertex
	LeftSiteID  int
	RightSiteID int
}

func (e EdgeSnapshot) Complete() bool {
	return e.Va != NoVertex && e.Vb != NoVertex
}

func (s *Sweep) Snapshot() *Snapshot {
	st := s.state
	bl := &st.beachline

	snap := &Snapshot{
		Step:         st.steps,
		SweepY:       st.sweepY,
		Done:         s.Done(),
		PendingSites: st.queue.pendingSites(),
		Sites:        make([]Site, 0, len(st.sites)),
		Arcs:         make([]ArcSnapshot, 0, bl.len()),
		Edges:        make([]EdgeSnapshot, 0, len(st.edges)),
		Vertices:     append([]Vertex(nil), st.vertices...),
	}

	for _, site := range st.sites {
		snap.Sites = append(snap.Sites, *site)
	}

	for arc := bl.leftmost(); arc != nilID; arc = bl.successor(arc) {
		snap.Arcs = append(snap.Arcs, ArcSnapshot{
			Site:            *bl.arc(arc).site,
			LeftBreakpoint:  bl.leftBreakpoint(arc, st.sweepY),
			RightBreakpoint: bl.rightBreakpoint(arc, st.sweepY),
		})
	}

	q := &st.queue
	for id := q.firstCircle; id != nilID; id = q.circles.next(id) {
		c := q.circle(id)
		center := Vertex{c.x, c.ycenter}
		snap.CircleEvents = append(snap.CircleEvents, CircleSnapshot{
			Center: center,
			Radius: center.distance(c.site.Vertex),
			Bottom: c.y,
			SiteID: c.site.ID,
		})
	}

	for _, edge := range st.edges {
		snap.Edges = append(snap.Edges, EdgeSnapshot{
			Va:          edge.Va,
			Vb:          edge.Vb,
			LeftSiteID:  edge.LeftSiteID(),
			RightSiteID: edge.RightSiteID(),
		})
	}
	return snap
}
