package wheel

import "spinx_backend/internal/model"

// Recorder — история раундов и лента победителей.
// История и лента ограничены по размеру, старые записи вытесняются
type Recorder struct {
	maxHistory int
	maxFeed    int
	entries    []model.HistoryEntry
	feed       []string
}

func NewRecorder(maxHistory, maxFeed int) *Recorder {
	return &Recorder{
		maxHistory: maxHistory,
		maxFeed:    maxFeed,
	}
}

// Append добавляет запись в начало истории и обрезает хвост
func (r *Recorder) Append(entry model.HistoryEntry) {
	r.entries = append([]model.HistoryEntry{entry}, r.entries...)
	if len(r.entries) > r.maxHistory {
		r.entries = r.entries[:r.maxHistory]
	}
}

// Restore заполняет историю сохраненными записями (при старте движка)
func (r *Recorder) Restore(entries []model.HistoryEntry) {
	if len(entries) > r.maxHistory {
		entries = entries[:r.maxHistory]
	}
	r.entries = make([]model.HistoryEntry, len(entries))
	copy(r.entries, entries)
}

func (r *Recorder) History() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// PushFeed добавляет строку в ленту победителей
func (r *Recorder) PushFeed(text string) {
	r.feed = append([]string{text}, r.feed...)
	if len(r.feed) > r.maxFeed {
		r.feed = r.feed[:r.maxFeed]
	}
}

func (r *Recorder) Feed() []string {
	out := make([]string, len(r.feed))
	copy(out, r.feed)
	return out
}
