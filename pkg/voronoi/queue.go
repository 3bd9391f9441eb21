package voronoi

import "sort"

// circleEvent - момент, когда дуга arc схлопнется.
// (x, ycenter) - центр окружности через три сайта, y - ее нижняя точка (положение прямой сканирования).
type circleEvent struct {
	arc     nodeID
	site    *Site
	x       float64
	y       float64
	ycenter float64
}

// circleEventBefore - порядок событий круга: по y, при равенстве по x
func circleEventBefore(a, b circleEvent) bool {
	return a.y < b.y || (a.y == b.y && a.x <= b.x)
}

// event - следующее событие очереди: siteEvent или circleEventRef
type event interface {
	position() Vertex
}

type siteEvent struct {
	site Vertex
}

func (e siteEvent) position() Vertex { return e.site }

type circleEventRef struct {
	id     nodeID
	circle circleEvent
}

func (e circleEventRef) position() Vertex { return Vertex{e.circle.x, e.circle.y} }

// eventQueue - события точек (известны заранее) и события круга (появляются по ходу).
// Точки отсортированы так, что следующая лежит в конце слайса.
type eventQueue struct {
	sites       []Vertex
	circles     rbTree[circleEvent]
	firstCircle nodeID
}

func newEventQueue(points []Vertex) eventQueue {
	sites := make([]Vertex, len(points))
	copy(sites, points)
	sort.Sort(verticesByYX{sites})
	return eventQueue{sites: sites}
}

// next возвращает следующее событие или nil, если очередь пуста.
// Событие точки снимается с очереди сразу; событие круга остается в дереве,
// пока обработчик не отсоединит его от дуги.
func (q *eventQueue) next() event {
	var circle *circleEvent
	if q.firstCircle != nilID {
		circle = q.circles.value(q.firstCircle)
	}

	if n := len(q.sites); n > 0 {
		site := q.sites[n-1]
		if circle == nil || site.Y < circle.y || (site.Y == circle.y && site.X < circle.x) {
			q.sites = q.sites[:n-1]
			return siteEvent{site: site}
		}
	}
	if circle != nil {
		return circleEventRef{id: q.firstCircle, circle: *circle}
	}
	return nil
}

func (q *eventQueue) pushCircle(ev circleEvent) nodeID {
	id := q.circles.insertOrdered(ev, circleEventBefore)
	if q.circles.prev(id) == nilID {
		q.firstCircle = id
	}
	return id
}

func (q *eventQueue) removeCircle(id nodeID) {
	if q.circles.prev(id) == nilID {
		q.firstCircle = q.circles.next(id)
	}
	q.circles.remove(id)
}

func (q *eventQueue) circle(id nodeID) *circleEvent {
	return q.circles.value(id)
}

func (q *eventQueue) pendingSites() int   { return len(q.sites) }
func (q *eventQueue) pendingCircles() int { return q.circles.len() }

func (q *eventQueue) empty() bool {
	return len(q.sites) == 0 && q.firstCircle == nilID
}
