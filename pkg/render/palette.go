// Package render рисует диаграмму: echarts-график для веб-страницы и SVG для утилиты.
package render

import (
	"fmt"
	"math"
)

// начальные оттенки ячеек, подобраны так, чтобы соседние по номеру заметно отличались
var initialHues = []int{286, 173, 65, 242, 100, 195, 40, 330, 135, 5}

// Palette выдает цвета ячеек по номеру сайта
type Palette struct {
	hues []int
}

// Color - заливка ячейки i. После начальных оттенков берется оттенок,
// максимально далекий от уже выданных.
func (p *Palette) Color(i int) string {
	for len(p.hues) <= i {
		if n := len(p.hues); n < len(initialHues) {
			p.hues = append(p.hues, initialHues[n])
		} else {
			p.hues = append(p.hues, furthestHue(p.hues))
		}
	}
	if i < len(initialHues) {
		return fmt.Sprintf("hsl(%d, 70%%, 85%%)", p.hues[i])
	}
	return fmt.Sprintf("hsl(%d, 100%%, 85%%)", p.hues[i])
}

func furthestHue(existing []int) int {
	best := 0
	bestDistance := -1
	for hue := 0; hue < 360; hue++ {
		distance := math.MaxInt
		for _, h := range existing {
			distance = min(distance, hueDistance(hue, h))
		}
		if distance > bestDistance {
			bestDistance = distance
			best = hue
		}
	}
	return best
}

// hueDistance - расстояние по кругу оттенков
func hueDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	return min(d, 360-d)
}
