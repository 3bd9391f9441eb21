package voronoi

import (
	"math"

	"github.com/0x0FACED/fortune-sweep/pkg/logger"
	"go.uber.org/zap"
)

// sweepState - все изменяемое состояние одного вычисления.
// Живет внутри одного Sweep и никогда не переиспользуется.
type sweepState struct {
	bbox BoundingBox

	queue     eventQueue
	beachline beachline

	sites    []*Site
	cells    []*Cell
	edges    []*Edge
	vertices []Vertex

	// последний обработанный сайт - для отсева дубликатов
	prevSite Vertex
	hasPrev  bool

	// текущее положение прямой сканирования
	sweepY float64
	steps  int

	logger *logger.ZapLogger
}

func newSweepState(points []Vertex, bbox BoundingBox, l *logger.ZapLogger) *sweepState {
	return &sweepState{
		bbox:   bbox,
		queue:  newEventQueue(points),
		sweepY: math.Inf(-1),
		logger: l,
	}
}

// step обрабатывает одно событие. false - событий больше нет.
func (s *sweepState) step() bool {
	ev := s.queue.next()
	if ev == nil {
		return false
	}
	s.steps++
	s.sweepY = ev.position().Y

	switch ev := ev.(type) {
	case siteEvent:
		s.handleSite(ev.site)
	case circleEventRef:
		s.logger.Debug("[f-circle] Событие круга",
			zap.Int("step", s.steps),
			zap.Float64("x", ev.circle.x),
			zap.Float64("y", ev.circle.y),
			zap.Int("arc-site", ev.circle.site.ID),
			zap.Int("pending", s.queue.pendingCircles()))
		s.removeBeachsection(ev.circle)
	}
	return true
}

func (s *sweepState) handleSite(v Vertex) {
	// сайты отсортированы, поэтому дубликат всегда идет сразу за оригиналом.
	// Сайты ближе допуска тоже дубликаты: спуск по пляжной линии их не различает.
	if s.hasPrev && pointsEqual(v, s.prevSite) {
		s.logger.Warn("[f-site] Найден дубликат, пропускаем", zap.Float64("x", v.X), zap.Float64("y", v.Y))
		return
	}

	site := &Site{Vertex: v, ID: len(s.sites)}
	s.sites = append(s.sites, site)
	s.cells = append(s.cells, newCell(site))

	s.logger.Debug("[f-site] Событие точки",
		zap.Int("step", s.steps),
		zap.Int("id", site.ID),
		zap.Float64("x", v.X),
		zap.Float64("y", v.Y))

	s.addBeachsection(site)

	s.prevSite = v
	s.hasPrev = true
}

func (s *sweepState) createVertex(x, y float64) Vertex {
	v := Vertex{x, y}
	s.vertices = append(s.vertices, v)
	return v
}

func (s *sweepState) createEdge(lSite, rSite *Site, va, vb Vertex) *Edge {
	edge := newEdge(lSite, rSite)
	s.edges = append(s.edges, edge)
	if va != NoVertex {
		edge.setStartpoint(lSite, rSite, va)
	}
	if vb != NoVertex {
		edge.setEndpoint(lSite, rSite, vb)
	}

	lCell := s.cells[lSite.ID]
	rCell := s.cells[rSite.ID]
	lCell.Halfedges = append(lCell.Halfedges, newHalfedge(edge, lSite, rSite))
	rCell.Halfedges = append(rCell.Halfedges, newHalfedge(edge, rSite, lSite))
	return edge
}

// createBorderEdge - отрезок рамки, замыкающий ячейку lSite.
// В s.edges не попадает: это часть границы ячейки, а не ребро диаграммы.
func createBorderEdge(lSite *Site, va, vb Vertex) *Edge {
	edge := newEdge(lSite, nil)
	edge.Va = va
	edge.Vb = vb
	return edge
}

// addBeachsection - событие точки: новая дуга на пляжной линии
func (s *sweepState) addBeachsection(site *Site) {
	bl := &s.beachline
	x := site.X
	directrix := site.Y

	// ищем дуги, между которыми попадает x: спуск по дереву с вычислением точек излома
	var lArc, rArc nodeID
	node := bl.root()
	for node != nilID {
		dxl := bl.leftBreakpoint(node, directrix) - x
		if dxl > Epsilon {
			node = bl.leftChild(node)
			continue
		}
		dxr := x - bl.rightBreakpoint(node, directrix)
		if dxr > Epsilon {
			if bl.rightChild(node) == nilID {
				lArc = node
				break
			}
			node = bl.rightChild(node)
			continue
		}
		if dxl > -Epsilon {
			// ровно на левой точке излома
			lArc = bl.predecessor(node)
			rArc = node
		} else if dxr > -Epsilon {
			// ровно на правой точке излома
			lArc = node
			rArc = bl.successor(node)
		} else {
			// внутри дуги
			lArc = node
			rArc = node
		}
		break
	}

	newArc := bl.insertAfter(lArc, site)

	switch {
	// первая дуга, ребер пока нет
	case lArc == nilID && rArc == nilID:
		s.logger.Debug("[f-site] Первая дуга", zap.Int("id", site.ID))

	// точка внутри дуги: дуга делится на две, между ними новая
	case lArc == rArc:
		s.detachCircleEvent(lArc)

		lSite := bl.arc(lArc).site
		rArc = bl.insertAfter(newArc, lSite)

		edge := s.createEdge(lSite, site, NoVertex, NoVertex)
		bl.arc(newArc).edge = edge
		bl.arc(rArc).edge = edge

		s.logger.Debug("[f-site] Дуга разделена", zap.Int("split", lSite.ID), zap.Int("id", site.ID))

		s.attachCircleEvent(lArc)
		s.attachCircleEvent(rArc)

	// правее последней дуги (сайты на одной горизонтали с первыми)
	case rArc == nilID:
		lSite := bl.arc(lArc).site
		bl.arc(newArc).edge = s.createEdge(lSite, site, NoVertex, NoVertex)

		s.logger.Debug("[f-site] Дуга добавлена справа", zap.Int("left", lSite.ID), zap.Int("id", site.ID))

	// левее первой дуги; при порядке событий по возрастанию x не встречается,
	// но дерево должно остаться связным
	case lArc == nilID:
		rSite := bl.arc(rArc).site
		bl.arc(rArc).edge = s.createEdge(site, rSite, NoVertex, NoVertex)

		s.logger.Warn("[f-site] Дуга добавлена слева", zap.Int("right", rSite.ID), zap.Int("id", site.ID))

	// точка ровно в точке излома между двумя дугами: вершина появляется сразу
	default:
		s.detachCircleEvent(lArc)
		s.detachCircleEvent(rArc)

		lSite := bl.arc(lArc).site
		rSite := bl.arc(rArc).site

		center, ok := circumcenter(lSite.Vertex, site.Vertex, rSite.Vertex)
		if !ok {
			center = Vertex{x, parabolaY(lSite.Vertex, directrix, x)}
			s.logger.Warn("[f-site] Коллинеарные сайты в точке излома",
				zap.Int("left", lSite.ID), zap.Int("id", site.ID), zap.Int("right", rSite.ID))
		}
		vertex := s.createVertex(center.X, center.Y)

		bl.arc(rArc).edge.setStartpoint(lSite, rSite, vertex)

		bl.arc(newArc).edge = s.createEdge(lSite, site, NoVertex, vertex)
		bl.arc(rArc).edge = s.createEdge(site, rSite, NoVertex, vertex)

		s.logger.Debug("[f-site] Точка в изломе, новая вершина",
			zap.Float64("x", vertex.X), zap.Float64("y", vertex.Y))

		s.attachCircleEvent(lArc)
		s.attachCircleEvent(rArc)
	}
}

// removeBeachsection - событие круга: дуга (и все дуги, схлопывающиеся в ту же точку) исчезает
func (s *sweepState) removeBeachsection(circle circleEvent) {
	bl := &s.beachline
	x := circle.x
	y := circle.ycenter
	vertex := s.createVertex(x, y)

	arc := circle.arc
	previous := bl.predecessor(arc)
	next := bl.successor(arc)
	disappearing := transitions{*bl.arc(arc)}

	s.detachBeachsection(arc)

	// соседи, у которых событие круга в той же точке, исчезают вместе с дугой
	lArc := previous
	for s.collapsesAt(lArc, x, y) {
		previous = bl.predecessor(lArc)
		disappearing.appendLeft(*bl.arc(lArc))
		s.detachBeachsection(lArc)
		lArc = previous
	}
	s.detachCircleEvent(lArc)
	disappearing.appendLeft(*bl.arc(lArc))

	rArc := next
	for s.collapsesAt(rArc, x, y) {
		next = bl.successor(rArc)
		disappearing.appendRight(*bl.arc(rArc))
		s.detachBeachsection(rArc)
		rArc = next
	}
	s.detachCircleEvent(rArc)
	disappearing.appendRight(*bl.arc(rArc))

	nArcs := len(disappearing)
	for iArc := 1; iArc < nArcs; iArc++ {
		disappearing[iArc].edge.setStartpoint(disappearing[iArc-1].site, disappearing[iArc].site, vertex)
	}

	lSite := disappearing[0].site
	rSite := disappearing[nArcs-1].site
	bl.arc(rArc).edge = s.createEdge(lSite, rSite, NoVertex, vertex)

	if nArcs > 3 {
		s.logger.Debug("[f-circle] Несколько дуг схлопнулись в одну вершину", zap.Int("arcs", nArcs-2))
	}

	s.attachCircleEvent(lArc)
	s.attachCircleEvent(rArc)
}

func (s *sweepState) collapsesAt(arc nodeID, x, y float64) bool {
	id := s.beachline.arc(arc).circle
	if id == nilID {
		return false
	}
	c := s.queue.circle(id)
	return math.Abs(x-c.x) < Epsilon && math.Abs(y-c.ycenter) < Epsilon
}

func (s *sweepState) detachBeachsection(arc nodeID) {
	s.detachCircleEvent(arc)
	s.beachline.remove(arc)
}

// attachCircleEvent планирует событие круга для дуги, если тройка
// левый сосед - дуга - правый сосед сходится (обход по часовой стрелке)
func (s *sweepState) attachCircleEvent(arc nodeID) {
	bl := &s.beachline
	lArc := bl.predecessor(arc)
	rArc := bl.successor(arc)
	if lArc == nilID || rArc == nilID {
		return
	}
	lSite := bl.arc(lArc).site
	cSite := bl.arc(arc).site
	rSite := bl.arc(rArc).site

	if lSite == rSite {
		return
	}

	// начало координат в cSite
	bx := cSite.X
	by := cSite.Y
	ax := lSite.X - bx
	ay := lSite.Y - by
	cx := rSite.X - bx
	cy := rSite.Y - by

	// d >= 0 - обход против часовой стрелки или коллинеарность: точки никогда не сойдутся
	d := 2 * (ax*cy - ay*cx)
	if d >= -circleDeterminantEpsilon {
		return
	}

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	x := (cy*ha - ay*hc) / d
	y := (ax*hc - cx*ha) / d
	ycenter := y + by

	// у дуги не больше одного события
	s.detachCircleEvent(arc)

	id := s.queue.pushCircle(circleEvent{
		arc:     arc,
		site:    cSite,
		x:       x + bx,
		y:       ycenter + math.Sqrt(x*x+y*y),
		ycenter: ycenter,
	})
	bl.arc(arc).circle = id
}

func (s *sweepState) detachCircleEvent(arc nodeID) {
	a := s.beachline.arc(arc)
	if a.circle != nilID {
		s.queue.removeCircle(a.circle)
		a.circle = nilID
	}
}
