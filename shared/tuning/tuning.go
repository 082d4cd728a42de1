// Package tuning loads optional overrides for the duel tunables from YAML.
package tuning

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/gladiator/shared/duel"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path and overlays it on base. Keys are the
// snake_case tunable names and are all optional; unknown keys are rejected.
func Load(path string, base duel.Tunables) (duel.Tunables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := Decode(bytes.NewReader(b), base)
	if err != nil {
		return base, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Decode is Load for an already opened document. An empty document yields
// base unchanged.
func Decode(r io.Reader, base duel.Tunables) (duel.Tunables, error) {
	t := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// Encode writes t as a YAML document in the format Load accepts.
func Encode(w io.Writer, t duel.Tunables) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode tuning: %w", err)
	}
	return enc.Close()
}
