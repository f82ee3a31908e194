// Package config loads and validates the settings of a batch of annealing runs.
//
// Values come from three layers, later ones winning: Default(), an optional
// YAML file (Load), then command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/satsp/anneal"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the report package.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var (
	// ErrInvalidRuns is returned when Runs < 1.
	ErrInvalidRuns = errors.New("config: runs must be at least 1")

	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("config: format must be one of text, yaml, json")
)

// Point is one city as written in a config file.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Config is the full run configuration.
//
// Thread Safety: safe to read concurrently; not safe to modify after creation.
type Config struct {
	// Cities to visit, in index order.
	Cities []Point `json:"cities" yaml:"cities"`

	// TMax is the initial temperature.
	TMax float64 `json:"t_max" yaml:"t_max"`

	// TMin is the temperature floor.
	TMin float64 `json:"t_min" yaml:"t_min"`

	// KMax caps the iteration counter.
	KMax int `json:"k_max" yaml:"k_max"`

	// Runs is the number of optimizer runs in the batch.
	Runs int `json:"runs" yaml:"runs"`

	// Seed for the batch's random stream. 0 lets the driver choose one.
	Seed int64 `json:"seed" yaml:"seed"`

	// Parallel runs independent optimizations concurrently instead of
	// chaining them on one tour.
	Parallel bool `json:"parallel" yaml:"parallel"`

	// Format selects the report renderer: text, yaml or json.
	Format string `json:"format" yaml:"format"`
}

// defaultCities is the fixed 20-city instance.
var defaultCities = []Point{
	{0, 0}, {1, 5}, {2, 2}, {3, 3}, {4, 1},
	{5, 5}, {6, 3}, {7, 2}, {8, 4}, {9, 0},
	{1, 1}, {2, 3}, {3, 5}, {4, 0}, {5, 2},
	{6, 1}, {7, 4}, {8, 2}, {9, 5}, {0, 4},
}

// Default returns the 20-city instance, TMax=1000, TMin=0.001, KMax=1e6,
// three chained runs and text output.
func Default() Config {
	cities := make([]Point, len(defaultCities))
	copy(cities, defaultCities)

	return Config{
		Cities: cities,
		TMax:   anneal.DefaultTMax,
		TMin:   anneal.DefaultTMin,
		KMax:   anneal.DefaultKMax,
		Runs:   3,
		Format: FormatText,
	}
}

// Load reads a YAML file over Default(). Keys absent from the file keep
// their default values; a present `cities` list replaces the default one.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the batch settings and the annealing parameters.
// Annealing errors are the anneal sentinels (ErrInvalidInput family).
func (c Config) Validate() error {
	if c.Runs < 1 {
		return ErrInvalidRuns
	}
	switch c.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Format)
	}

	if err := anneal.ValidateCities(c.AnnealCities()); err != nil {
		return err
	}

	return anneal.ValidateOptions(c.Options())
}

// AnnealCities converts the configured points into anneal cities.
func (c Config) AnnealCities() []anneal.City {
	out := make([]anneal.City, len(c.Cities))
	for i, p := range c.Cities {
		out[i] = anneal.City{X: p.X, Y: p.Y}
	}

	return out
}

// Options maps the schedule onto anneal.Options (Seed included, no Rand).
func (c Config) Options() anneal.Options {
	return anneal.Options{
		TMax: c.TMax,
		TMin: c.TMin,
		KMax: c.KMax,
		Seed: c.Seed,
	}
}
