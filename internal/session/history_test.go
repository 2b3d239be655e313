package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/gesture.report/internal/gesture"
)

func testResult(sym gesture.Symbol, conf int) gesture.Result {
	return gesture.Result{Symbol: sym, Confidence: conf, Model: "test"}
}

func TestHistory_RecordAndLookup(t *testing.T) {
	h := NewHistory(8)
	pts := []gesture.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}

	s := h.Record(pts, testResult(gesture.SymbolGreaterThan, 70))
	require.NotEmpty(t, s.StrokeID)
	require.NotZero(t, s.RecordedAtNs)

	got, ok := h.Stroke(s.StrokeID)
	require.True(t, ok)
	assert.Equal(t, s.StrokeID, got.StrokeID)
	assert.Equal(t, gesture.SymbolGreaterThan, got.Result.Symbol)
	assert.Equal(t, pts, got.Points)

	_, ok = h.Stroke("no-such-id")
	assert.False(t, ok)
}

func TestHistory_NewestFirst(t *testing.T) {
	h := NewHistory(8)
	first := h.Record(nil, testResult(gesture.SymbolEquals, 0))
	second := h.Record(nil, testResult(gesture.SymbolLessThan, 40))

	strokes := h.Strokes()
	require.Len(t, strokes, 2)
	assert.Equal(t, second.StrokeID, strokes[0].StrokeID)
	assert.Equal(t, first.StrokeID, strokes[1].StrokeID)
}

func TestHistory_EvictsOldest(t *testing.T) {
	h := NewHistory(3)
	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		s := h.Record(nil, testResult(gesture.SymbolEquals, 0))
		ids = append(ids, s.StrokeID)
	}

	assert.Equal(t, 3, h.Len())
	_, ok := h.Stroke(ids[0])
	assert.False(t, ok, "oldest stroke should be evicted")
	_, ok = h.Stroke(ids[4])
	assert.True(t, ok, "newest stroke should be retained")
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(4)
	h.Record(nil, testResult(gesture.SymbolEquals, 0))
	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Strokes())
}

func TestHistory_CopiesPoints(t *testing.T) {
	h := NewHistory(4)
	pts := []gesture.Point{{X: 1, Y: 2}}
	s := h.Record(pts, testResult(gesture.SymbolEquals, 0))

	pts[0].X = 99
	got, ok := h.Stroke(s.StrokeID)
	require.True(t, ok)
	assert.Equal(t, 1.0, got.Points[0].X, "recorded points must not alias caller slice")
}

func TestHistory_ConcurrentRecord(t *testing.T) {
	h := NewHistory(16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				h.Record(nil, testResult(gesture.SymbolEquals, 0))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, h.Len())
}
