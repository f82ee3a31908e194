// Package report renders a finished batch for humans or machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/satsp/internal/config"
	"github.com/katalvlaran/satsp/internal/runner"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Write for a format it cannot render.
var ErrUnknownFormat = errors.New("report: unknown format")

// Write renders batch to w in the given format (config.FormatText,
// config.FormatYAML or config.FormatJSON).
func Write(w io.Writer, batch runner.Batch, format string) error {
	switch format {
	case config.FormatText:
		return writeText(w, batch)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(batch); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}

		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(batch); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// writeText prints one line per run, distances with six decimals.
func writeText(w io.Writer, batch runner.Batch) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Batch %s (%s, seed %d)\n", batch.ID, batch.Mode, batch.Seed)
	if batch.InitialTour != nil {
		fmt.Fprintf(&b, "Initial Order: %v\nInitial Distance: %.6f\n", batch.InitialTour, batch.InitialDistance)
	}
	for _, o := range batch.Runs {
		fmt.Fprintf(&b, "Iteration %d - Total Distance: %.6f, Iterations: %d, Optimal order: %v\n",
			o.Index, o.Distance, o.Iterations, o.Tour)
	}
	if best, ok := batch.Best(); ok {
		fmt.Fprintf(&b, "Best: run %d, %.6f\n", best.Index, best.Distance)
	}

	_, err := io.WriteString(w, b.String())

	return err
}
