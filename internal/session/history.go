// Package session keeps the display-side record of completed strokes. The
// classifier core is handed one path and returns one result; this package is
// the caller-owned collection of what came before, bounded and in memory
// only.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/gesture.report/internal/gesture"
)

// Stroke is one completed gesture together with its classification.
type Stroke struct {
	StrokeID     string          `json:"stroke_id"`
	Points       []gesture.Point `json:"points"`
	Result       gesture.Result  `json:"result"`
	RecordedAtNs int64           `json:"recorded_at_ns"`
}

// History is a bounded, mutex-guarded record of recent strokes, newest first.
type History struct {
	mu      sync.Mutex
	max     int
	strokes []Stroke
}

// NewHistory creates a history retaining at most max strokes. A max below 1
// is treated as 1.
func NewHistory(max int) *History {
	if max < 1 {
		max = 1
	}
	return &History{max: max}
}

// Record stores a classified stroke and returns it with a fresh UUID and
// timestamp. The oldest stroke is evicted once the bound is reached. The
// point slice is copied so later caller mutation cannot corrupt the record.
func (h *History) Record(points []gesture.Point, result gesture.Result) Stroke {
	pts := make([]gesture.Point, len(points))
	copy(pts, points)

	s := Stroke{
		StrokeID:     uuid.New().String(),
		Points:       pts,
		Result:       result,
		RecordedAtNs: time.Now().UnixNano(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.strokes = append([]Stroke{s}, h.strokes...)
	if len(h.strokes) > h.max {
		h.strokes = h.strokes[:h.max]
	}
	return s
}

// Strokes returns a copy of the retained strokes, newest first.
func (h *History) Strokes() []Stroke {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Stroke, len(h.strokes))
	copy(out, h.strokes)
	return out
}

// Stroke looks up a retained stroke by ID.
func (h *History) Stroke(id string) (Stroke, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.strokes {
		if s.StrokeID == id {
			return s, true
		}
	}
	return Stroke{}, false
}

// Len returns the number of retained strokes.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.strokes)
}

// Clear discards all retained strokes.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.strokes = nil
}
