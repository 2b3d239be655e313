// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/banshee-data/gesture.report/internal/gesture"
)

// AssertStatusCode checks that the response status code matches expected.
func AssertStatusCode(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status code = %d, want %d", got, want)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// DecodeJSON unmarshals a response recorder body into out, failing the test
// on malformed JSON.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, rec.Body.String())
	}
}

// NewStrokeRequest creates a POST request whose body is the JSON encoding of
// a point sequence, as the capture layer sends it.
func NewStrokeRequest(t *testing.T, path string, pts []gesture.Point) *http.Request {
	t.Helper()
	body, err := json.Marshal(pts)
	if err != nil {
		t.Fatalf("failed to marshal stroke: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ChevronStroke returns a dense sampled ">"-shaped stroke for handler tests.
func ChevronStroke() []gesture.Point {
	pts := make([]gesture.Point, 0, 9)
	for i := 0; i <= 4; i++ {
		t := float64(i) / 4
		pts = append(pts, gesture.Point{X: 60 * t, Y: 50 * t})
	}
	for i := 1; i <= 4; i++ {
		t := float64(i) / 4
		pts = append(pts, gesture.Point{X: 60 - 60*t, Y: 50 + 50*t})
	}
	return pts
}
