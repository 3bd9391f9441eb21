package voronoi

import "math"

// leftBreakpoint - x точки пересечения параболы дуги с параболой ее левого соседа
// при положении прямой сканирования directrix.
//
// Парабола с фокусом (h, k) и директрисой y = d:
//
//	y = (x - h)^2 / (2(k - d)) + (k + d) / 2
//
// Фокус правой дуги переносится в начало координат по x, и приравниваются
// две параболы. Порядок операций подобран так, чтобы уменьшить потерю точности.
func (b *beachline) leftBreakpoint(arc nodeID, directrix float64) float64 {
	site := b.arc(arc).site
	rfocx := site.X
	rfocy := site.Y
	pby2 := rfocy - directrix
	// фокус лежит на директрисе - парабола вырождается в вертикальный луч
	if equalWithEpsilon(pby2, 0) {
		return rfocx
	}

	lArc := b.predecessor(arc)
	if lArc == nilID {
		return math.Inf(-1)
	}
	site = b.arc(lArc).site
	lfocx := site.X
	lfocy := site.Y
	plby2 := lfocy - directrix
	if equalWithEpsilon(plby2, 0) {
		return lfocx
	}
	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	b2 := hl / plby2
	if !equalWithEpsilon(aby2, 0) {
		return (-b2+math.Sqrt(b2*b2-2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)))/aby2 + rfocx
	}
	// фокусы на одинаковом расстоянии от директрисы - излом ровно посередине
	return (rfocx + lfocx) / 2
}

// rightBreakpoint - левая точка излома правого соседа
func (b *beachline) rightBreakpoint(arc nodeID, directrix float64) float64 {
	rArc := b.successor(arc)
	if rArc != nilID {
		return b.leftBreakpoint(rArc, directrix)
	}
	site := b.arc(arc).site
	if equalWithEpsilon(site.Y, directrix) {
		return site.X
	}
	return math.Inf(1)
}

// parabolaY - высота параболы с фокусом focus над точкой x при директрисе directrix.
// Используется для отрисовки пляжной линии в снимках.
func parabolaY(focus Vertex, directrix, x float64) float64 {
	pby2 := focus.Y - directrix
	if pby2 == 0 {
		return math.Inf(-1)
	}
	dx := x - focus.X
	return dx*dx/(2*pby2) + (focus.Y+directrix)/2
}
