package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/gesture.report/internal/gesture"
)

// DefaultHistorySize bounds the in-memory stroke history kept for display.
const DefaultHistorySize = 64

// TuningConfig holds the recognizer tuning parameters. The schema matches the
// /api/config endpoint so the same JSON serves startup configuration and
// inspection. Fields are pointers so partial config files are safe; the Get*
// methods fall back to the built-in defaults.
type TuningConfig struct {
	// Pipeline params
	SimplifyTolerance *float64 `json:"simplify_tolerance,omitempty"`
	MinValidPoints    *int     `json:"min_valid_points,omitempty"`

	// Classifier geometry params
	AspectRatioMin *float64 `json:"aspect_ratio_min,omitempty"`
	AspectRatioMax *float64 `json:"aspect_ratio_max,omitempty"`
	LevelMaxDelta  *float64 `json:"level_max_delta,omitempty"`

	// Display params
	HistorySize *int `json:"history_size,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// DefaultTuningConfig returns a TuningConfig with every field populated with
// its built-in default.
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		SimplifyTolerance: ptrFloat64(gesture.DefaultSimplifyTolerance),
		MinValidPoints:    ptrInt(gesture.MinValidPoints),
		AspectRatioMin:    ptrFloat64(gesture.DefaultAspectRatioMin),
		AspectRatioMax:    ptrFloat64(gesture.DefaultAspectRatioMax),
		LevelMaxDelta:     ptrFloat64(gesture.DefaultLevelMaxDelta),
		HistorySize:       ptrInt(DefaultHistorySize),
	}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The path must have
// a .json extension and be under the max file size. Fields omitted from the
// file retain their defaults, so partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that any set configuration values are valid.
func (c *TuningConfig) Validate() error {
	if c.MinValidPoints != nil && *c.MinValidPoints < 3 {
		return fmt.Errorf("min_valid_points must be at least 3, got %d", *c.MinValidPoints)
	}
	if c.AspectRatioMin != nil && *c.AspectRatioMin < 0 {
		return fmt.Errorf("aspect_ratio_min must be non-negative, got %f", *c.AspectRatioMin)
	}
	if c.AspectRatioMin != nil && c.AspectRatioMax != nil && *c.AspectRatioMax <= *c.AspectRatioMin {
		return fmt.Errorf("aspect_ratio_max (%f) must exceed aspect_ratio_min (%f)",
			*c.AspectRatioMax, *c.AspectRatioMin)
	}
	if c.LevelMaxDelta != nil && (*c.LevelMaxDelta <= 0 || *c.LevelMaxDelta > 1) {
		return fmt.Errorf("level_max_delta must be in (0, 1], got %f", *c.LevelMaxDelta)
	}
	if c.HistorySize != nil && *c.HistorySize < 1 {
		return fmt.Errorf("history_size must be positive, got %d", *c.HistorySize)
	}
	return nil
}

// GetSimplifyTolerance returns the simplify_tolerance value or the default.
func (c *TuningConfig) GetSimplifyTolerance() float64 {
	if c.SimplifyTolerance == nil {
		return gesture.DefaultSimplifyTolerance
	}
	return *c.SimplifyTolerance
}

// GetMinValidPoints returns the min_valid_points value or the default.
func (c *TuningConfig) GetMinValidPoints() int {
	if c.MinValidPoints == nil {
		return gesture.MinValidPoints
	}
	return *c.MinValidPoints
}

// GetAspectRatioMin returns the aspect_ratio_min value or the default.
func (c *TuningConfig) GetAspectRatioMin() float64 {
	if c.AspectRatioMin == nil {
		return gesture.DefaultAspectRatioMin
	}
	return *c.AspectRatioMin
}

// GetAspectRatioMax returns the aspect_ratio_max value or the default.
func (c *TuningConfig) GetAspectRatioMax() float64 {
	if c.AspectRatioMax == nil {
		return gesture.DefaultAspectRatioMax
	}
	return *c.AspectRatioMax
}

// GetLevelMaxDelta returns the level_max_delta value or the default.
func (c *TuningConfig) GetLevelMaxDelta() float64 {
	if c.LevelMaxDelta == nil {
		return gesture.DefaultLevelMaxDelta
	}
	return *c.LevelMaxDelta
}

// GetHistorySize returns the history_size value or the default.
func (c *TuningConfig) GetHistorySize() int {
	if c.HistorySize == nil {
		return DefaultHistorySize
	}
	return *c.HistorySize
}

// NewClassifier builds a gesture classifier from the effective tuning.
func (c *TuningConfig) NewClassifier() *gesture.Classifier {
	cl := gesture.NewClassifier()
	cl.Tolerance = c.GetSimplifyTolerance()
	cl.MinPoints = c.GetMinValidPoints()
	cl.AspectRatioMin = c.GetAspectRatioMin()
	cl.AspectRatioMax = c.GetAspectRatioMax()
	cl.LevelMaxDelta = c.GetLevelMaxDelta()
	return cl
}
