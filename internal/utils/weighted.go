package utils

// WeightedIndex выбирает индекс кумулятивным проходом по весам: из roll
// последовательно вычитается вес каждого элемента, результат - первый элемент,
// на котором остаток становится <= 0. Если из-за погрешности плавающей точки
// проход исчерпал список, возвращается последний индекс, поэтому для
// непустого списка результат есть всегда.
func WeightedIndex(weights []float64, roll float64) int {
	remaining := roll
	for i, w := range weights {
		remaining -= w
		if remaining <= 0 {
			return i
		}
	}
	return len(weights) - 1
}
