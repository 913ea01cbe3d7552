package wheel

// Selector выбирает взвешенно-случайный индекс сегмента.
// Пул строится лениво один раз: каждый индекс повторяется
// столько раз, сколько весит его сегмент
type Selector struct {
	table *SegmentTable
	rng   RNG
	pool  []int
}

func NewSelector(table *SegmentTable, rng RNG) *Selector {
	return &Selector{
		table: table,
		rng:   rng,
	}
}

// Pick возвращает индекс выпавшего сегмента.
// Вырожденная конфигурация (все веса нулевые) — равномерный выбор,
// ошибки здесь невозможны
func (s *Selector) Pick() int {
	if s.pool == nil {
		s.pool = buildWeightedPool(s.table)
	}

	if len(s.pool) == 0 {
		return s.rng.Intn(s.table.Len())
	}

	return s.pool[s.rng.Intn(len(s.pool))]
}

func buildWeightedPool(table *SegmentTable) []int {
	pool := make([]int, 0, table.TotalWeight())
	for i := 0; i < table.Len(); i++ {
		weight := table.SegmentAt(i).Weight
		for j := 0; j < weight; j++ {
			pool = append(pool, i)
		}
	}
	return pool
}
