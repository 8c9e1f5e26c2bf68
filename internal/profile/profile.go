// Package profile loads the learner snapshot handed to the app at
// boot. The core never persists anything itself; whatever owns the
// learner session writes this file and passes it in with --profile.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/bilingui/skillrings/internal/stats"
)

// ErrInvalidProfile indicates the profile file does not conform to the
// snapshot schema.
type ErrInvalidProfile struct {
	Path string
	Err  error
}

func (e *ErrInvalidProfile) Error() string {
	return fmt.Sprintf("invalid profile %q: %v", e.Path, e.Err)
}

func (e *ErrInvalidProfile) Unwrap() error { return e.Err }

// file is the on-disk snapshot layout.
type file struct {
	Level     int            `json:"level"`
	CurrentXP int            `json:"currentXp"`
	MaxXP     int            `json:"maxXp"`
	Streak    int            `json:"streak"`
	Skills    map[string]any `json:"skills"`
}

// Load reads, validates, and converts a profile file into a Stats
// snapshot. Skill scores are clamped to [0, 1] here because the ring
// renderer performs no validation of its own.
func Load(path string) (stats.Stats, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return stats.Stats{}, fmt.Errorf("read profile: %w", err)
	}
	return Parse(raw, path)
}

// Parse validates raw profile JSON against the snapshot schema and
// converts it.
func Parse(raw []byte, path string) (stats.Stats, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return stats.Stats{}, &ErrInvalidProfile{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema()
	if err != nil {
		return stats.Stats{}, fmt.Errorf("compile profile schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return stats.Stats{}, &ErrInvalidProfile{Path: path, Err: err}
	}

	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return stats.Stats{}, &ErrInvalidProfile{Path: path, Err: err}
	}

	s := stats.Stats{
		Level:     f.Level,
		CurrentXP: f.CurrentXP,
		MaxXP:     f.MaxXP,
		Streak:    f.Streak,
		Speaking:  skillScore(f.Skills, "speaking"),
		Reading:   skillScore(f.Skills, "reading"),
		Grammar:   skillScore(f.Skills, "grammar"),
		Listening: skillScore(f.Skills, "listening"),
		Writing:   skillScore(f.Skills, "writing"),
	}
	return s.Clamp(), nil
}

func skillScore(skills map[string]any, key string) float64 {
	v, ok := skills[key].(float64)
	if !ok {
		return 0
	}
	return v
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded snapshot schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(schemaJSON), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://profile.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(url)
	})
	return schema, schemaErr
}
