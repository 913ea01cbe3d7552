package wheel

import (
	"errors"

	"spinx_backend/internal/model"
)

// SegmentTable — неизменяемый набор сегментов колеса.
// Загружается один раз при создании движка
type SegmentTable struct {
	segments    []model.Segment
	totalWeight int
}

func NewSegmentTable(segments []model.Segment) (*SegmentTable, error) {
	if len(segments) == 0 {
		return nil, errors.New("segment table must not be empty")
	}

	t := &SegmentTable{
		segments: make([]model.Segment, len(segments)),
	}
	copy(t.segments, segments)

	for _, s := range t.segments {
		if s.Weight > 0 {
			t.totalWeight += s.Weight
		}
	}

	return t, nil
}

func (t *SegmentTable) Len() int {
	return len(t.segments)
}

func (t *SegmentTable) TotalWeight() int {
	return t.totalWeight
}

func (t *SegmentTable) SegmentAt(index int) model.Segment {
	return t.segments[index]
}
