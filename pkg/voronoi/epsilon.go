package voronoi

import "math"

// Epsilon - единый допуск для всех сравнений чисел с плавающей точкой в пакете.
const Epsilon = 1e-9

// порог определителя для теста ориентации тройки сайтов
const circleDeterminantEpsilon = 2e-12

func equalWithEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func lessThanWithEpsilon(a, b float64) bool {
	return b-a > Epsilon
}

func greaterThanWithEpsilon(a, b float64) bool {
	return a-b > Epsilon
}

// pointsEqual - совпадают ли две точки в пределах допуска по обеим осям
func pointsEqual(a, b Vertex) bool {
	return equalWithEpsilon(a.X, b.X) && equalWithEpsilon(a.Y, b.Y)
}
