// Package api exposes the gesture recognizer over HTTP. The capture layer
// posts one completed stroke at a time; everything else is read-only display
// plumbing over the retained stroke history.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/banshee-data/gesture.report/internal/config"
	"github.com/banshee-data/gesture.report/internal/gesture"
	"github.com/banshee-data/gesture.report/internal/httputil"
	"github.com/banshee-data/gesture.report/internal/monitor"
	"github.com/banshee-data/gesture.report/internal/session"
)

// maxStrokeBody caps the classify request body. Realistic strokes are a few
// thousand points at most.
const maxStrokeBody = 1 << 20

type Server struct {
	classifier *gesture.Classifier
	history    *session.History
	tuning     *config.TuningConfig
}

// NewServer builds a server from the effective tuning.
func NewServer(tuning *config.TuningConfig) *Server {
	return &Server{
		classifier: tuning.NewClassifier(),
		history:    session.NewHistory(tuning.GetHistorySize()),
		tuning:     tuning,
	}
}

// History exposes the retained stroke collection.
func (s *Server) History() *session.History {
	return s.history
}

// ServeMux returns the route table for the server.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/classify", s.classifyHandler)
	mux.HandleFunc("/api/strokes", s.listStrokesHandler)
	mux.HandleFunc("/api/strokes/clear", s.clearStrokesHandler)
	mux.HandleFunc("/api/config", s.configHandler)
	mux.HandleFunc("/debug/strokes/chart", s.strokeChartHandler)
	mux.HandleFunc("/", s.homeHandler)
	return mux
}

func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Welcome to the Gesture Server!"))
}

// rawPoint is one entry of the capture payload. Coordinates are pointers so
// structurally malformed entries (missing or null x/y) can be detected and
// dropped instead of failing the decode.
type rawPoint struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type classifyResponse struct {
	StrokeID   string         `json:"stroke_id"`
	Symbol     gesture.Symbol `json:"symbol"`
	Confidence int            `json:"confidence"`
	Model      string         `json:"model"`
}

// classifyHandler accepts a completed stroke as a JSON point array, runs the
// classification pipeline once, and records the outcome in the history.
func (s *Server) classifyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	var raw []rawPoint
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxStrokeBody))
	if err := dec.Decode(&raw); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("invalid stroke payload: %v", err))
		return
	}

	// Entries without numeric coordinates are dropped here; numeric
	// validation (NaN) happens inside the pipeline.
	pts := make([]gesture.Point, 0, len(raw))
	for _, p := range raw {
		if p.X == nil || p.Y == nil {
			continue
		}
		pts = append(pts, gesture.Point{X: *p.X, Y: *p.Y})
	}

	result, err := s.classifier.Classify(pts)
	if errors.Is(err, gesture.ErrNonFinitePoint) {
		httputil.BadRequest(w, "invalid input: non-finite coordinate in stroke")
		return
	}
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("classification failed: %v", err))
		return
	}

	stroke := s.history.Record(pts, result)
	httputil.WriteJSONOK(w, classifyResponse{
		StrokeID:   stroke.StrokeID,
		Symbol:     result.Symbol,
		Confidence: result.Confidence,
		Model:      result.Model,
	})
}

func (s *Server) listStrokesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSONOK(w, map[string]interface{}{
		"count":   s.history.Len(),
		"strokes": s.history.Strokes(),
	})
}

func (s *Server) clearStrokesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	s.history.Clear()
	httputil.WriteJSONOK(w, map[string]string{"status": "cleared"})
}

// configHandler echoes the effective tuning so sweeps can confirm what a
// running instance is using.
func (s *Server) configHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSONOK(w, map[string]interface{}{
		"simplify_tolerance": s.tuning.GetSimplifyTolerance(),
		"min_valid_points":   s.tuning.GetMinValidPoints(),
		"aspect_ratio_min":   s.tuning.GetAspectRatioMin(),
		"aspect_ratio_max":   s.tuning.GetAspectRatioMax(),
		"level_max_delta":    s.tuning.GetLevelMaxDelta(),
		"history_size":       s.tuning.GetHistorySize(),
	})
}

// strokeChartHandler renders the echarts debug view for one retained stroke
// (?stroke_id=..., defaulting to the most recent).
func (s *Server) strokeChartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	id := r.URL.Query().Get("stroke_id")
	var stroke session.Stroke
	if id == "" {
		strokes := s.history.Strokes()
		if len(strokes) == 0 {
			httputil.NotFound(w, "no strokes recorded")
			return
		}
		stroke = strokes[0]
	} else {
		var ok bool
		stroke, ok = s.history.Stroke(id)
		if !ok {
			httputil.NotFound(w, fmt.Sprintf("no stroke with id %q", id))
			return
		}
	}

	normalized := gesture.Normalize(gesture.Simplify(
		gesture.ValidPoints(stroke.Points), s.classifier.Tolerance))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := monitor.RenderStrokeChart(w, stroke, normalized); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to render chart: %v", err))
	}
}
