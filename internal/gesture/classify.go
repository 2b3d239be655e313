package gesture

import (
	"errors"
	"math"
)

// Symbol is the classification label for a completed stroke.
type Symbol string

const (
	// SymbolGreaterThan indicates a ">" chevron
	SymbolGreaterThan Symbol = ">"
	// SymbolLessThan indicates a "<" chevron
	SymbolLessThan Symbol = "<"
	// SymbolEquals is the default label for unrecognized strokes
	SymbolEquals Symbol = "="
)

// Scoring weights and thresholds (configurable for tuning)
const (
	// Check weights, out of a max score of 100
	ApexWeight  = 40 // middle point is the horizontal extremum
	DipWeight   = 30 // middle point dips below both endpoints
	LevelWeight = 30 // endpoints at roughly the same height

	// MinWinningScore is the floor a symbol must reach; below it (i.e. even
	// the apex check failed) the stroke is unrecognized.
	MinWinningScore = ApexWeight

	// Aspect ratio window outside which no directional symbol is attempted
	DefaultAspectRatioMin = 0.5
	DefaultAspectRatioMax = 2.0

	// DefaultLevelMaxDelta is the post-normalization |startY-endY| bound for
	// the level-endpoints check.
	DefaultLevelMaxDelta = 0.3
)

// ErrNonFinitePoint reports an infinite coordinate that survived capture and
// the NaN validation pass. Callers should surface this as an invalid-input
// outcome, distinct from the unrecognized result.
var ErrNonFinitePoint = errors.New("non-finite point in stroke")

// Result is the outcome of classifying one stroke.
type Result struct {
	Symbol     Symbol `json:"symbol"`
	Confidence int    `json:"confidence"` // 0-100
	Model      string `json:"model"`      // heuristic version used
}

// Classifier performs rule-based classification of completed strokes.
// The zero value is not usable; construct with NewClassifier.
type Classifier struct {
	ModelVersion string

	// Tunables, defaulted by NewClassifier
	Tolerance      float64 // simplification distance
	MinPoints      int     // minimum raw valid points
	AspectRatioMin float64
	AspectRatioMax float64
	LevelMaxDelta  float64
}

// NewClassifier creates a classifier with the default tuning.
func NewClassifier() *Classifier {
	return &Classifier{
		ModelVersion:   "chevron-rules-v1.0",
		Tolerance:      DefaultSimplifyTolerance,
		MinPoints:      MinValidPoints,
		AspectRatioMin: DefaultAspectRatioMin,
		AspectRatioMax: DefaultAspectRatioMax,
		LevelMaxDelta:  DefaultLevelMaxDelta,
	}
}

// Classify runs the full pipeline on a raw stroke and scores the result
// against each symbol's geometric profile. Malformed or too-short input
// degrades to the unrecognized {"=", 0} result; the only returned error is
// ErrNonFinitePoint. The heuristic cannot distinguish a ">" traced
// start-to-end from a "<" traced in reverse over the same points; that
// ambiguity is accepted rather than guessed at.
func (c *Classifier) Classify(pts []Point) (Result, error) {
	unrecognized := Result{Symbol: SymbolEquals, Confidence: 0, Model: c.ModelVersion}

	valid := ValidPoints(pts)
	if len(valid) < c.MinPoints {
		return unrecognized, nil
	}

	simplified := Simplify(valid, c.Tolerance)
	if len(simplified) < 3 {
		return unrecognized, nil
	}

	// The directional gate needs the stroke's captured proportions, so the
	// bounding box is taken before normalization flattens it to the unit
	// square.
	box := Bounds(simplified)
	normalized := Normalize(simplified)
	f := ExtractFeatures(normalized, box)
	if f == nil {
		return unrecognized, nil
	}

	// Finiteness re-check before scoring: an infinite capture coordinate
	// poisons normalization instead of being dropped like a NaN.
	for _, p := range f.Path {
		if !p.Finite() {
			return unrecognized, ErrNonFinitePoint
		}
	}

	gtScore, ltScore := c.scoreSymbols(f)

	switch {
	case gtScore > ltScore && gtScore >= MinWinningScore:
		return Result{Symbol: SymbolGreaterThan, Confidence: clampScore(gtScore), Model: c.ModelVersion}, nil
	case ltScore > gtScore && ltScore >= MinWinningScore:
		return Result{Symbol: SymbolLessThan, Confidence: clampScore(ltScore), Model: c.ModelVersion}, nil
	}
	return unrecognized, nil
}

// scoreSymbols accumulates the additive checks for ">" and "<" on the
// normalized path's first, middle, and last points. A stroke whose aspect
// ratio falls outside the tuning window scores 0 for both symbols.
func (c *Classifier) scoreSymbols(f *Features) (gtScore, ltScore int) {
	// Strictly-outside exclusion: a ratio exactly on a bound (a chevron
	// drawn twice as tall as wide) still gets scored.
	if f.AspectRatio < c.AspectRatioMin || f.AspectRatio > c.AspectRatioMax {
		return 0, 0
	}

	first := f.Path[0]
	mid := f.Path[len(f.Path)/2]
	last := f.Path[len(f.Path)-1]

	// Apex check: the middle point is the horizontal extremum. Mutually
	// exclusive between the two symbols; a midpoint tying the endpoints
	// scores neither.
	if mid.X > first.X && mid.X > last.X {
		gtScore += ApexWeight
	}
	if mid.X < first.X && mid.X < last.X {
		ltScore += ApexWeight
	}

	// Downward-then-upward check: the middle point dips below both
	// endpoints. Only credited to a symbol that passed its apex check.
	if mid.Y > first.Y && mid.Y > last.Y {
		if gtScore >= ApexWeight {
			gtScore += DipWeight
		}
		if ltScore >= ApexWeight {
			ltScore += DipWeight
		}
	}

	// Level endpoints check: stroke starts and ends at roughly the same
	// height. Independent of the other checks.
	if math.Abs(first.Y-last.Y) < c.LevelMaxDelta {
		gtScore += LevelWeight
		ltScore += LevelWeight
	}

	return gtScore, ltScore
}

// clampScore caps an accumulated score at 100.
func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}
