package rosterfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/workforce/internal/ports"
)

// Load reads the roster document at path.
func Load(path string) (*ports.RosterPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster %s: %w", path, err)
	}
	defer f.Close()

	plan, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return plan, nil
}

// Parse decodes a roster document. Unknown keys are rejected so that a
// misspelled field does not silently fall back to its zero value. An empty
// document yields an empty plan.
func Parse(r io.Reader) (*ports.RosterPlan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc documentDTO
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	return toPlan(doc)
}
