package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeusync/vecmath/pkg/vector"
	"gopkg.in/yaml.v3"
)

// Script is a chain of vector operations applied in place to a start vector,
// optionally followed by an expectation on the outcome.
type Script struct {
	Name   string  `yaml:"name"`
	Start  *Value  `yaml:"start"`
	Steps  []Step  `yaml:"steps"`
	World  *World  `yaml:"world,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`
}

type Step struct {
	Op   string  `yaml:"op"`
	Args []Value `yaml:"args,omitempty"`
}

// Expect describes the outcome a script must reach. Value is compared with the
// final vector, Scalar with the result of the last query step.
type Expect struct {
	Value   *Value   `yaml:"value,omitempty"`
	Scalar  *float64 `yaml:"scalar,omitempty"`
	Epsilon *float64 `yaml:"epsilon,omitempty"`
}

func (s Step) args() []vector.Arg {
	out := make([]vector.Arg, len(s.Args))
	for i, a := range s.Args {
		out[i] = a.Arg()
	}
	return out
}

// Validate checks the script structure. Argument shapes that only matter at
// run time, such as mixed clamp bounds, are left to the run.
func (s *Script) Validate() error {
	if s.Start == nil {
		return ErrMissingStart
	}
	if !s.Start.IsVector() {
		return ErrStartNotVector
	}

	if s.World != nil {
		if err := s.World.validate(); err != nil {
			return err
		}
	}

	hasQuery := false
	for i, step := range s.Steps {
		op, ok := operations[step.Op]
		if !ok {
			return fmt.Errorf("step %d: %w: %q", i, ErrUnknownOp, step.Op)
		}
		if op.needsVector && (len(step.Args) == 0 || !step.Args[0].IsVector()) {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, ErrVectorArgRequired)
		}
		if op.simulate != nil {
			if s.World == nil {
				return fmt.Errorf("step %d (%s): %w", i, step.Op, ErrWorldRequired)
			}
			if _, _, err := stepArgs(step.args()); err != nil {
				return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
			}
		}
		hasQuery = hasQuery || op.query != nil
	}

	if e := s.Expect; e != nil {
		if e.Value != nil && !e.Value.IsVector() {
			return ErrExpectNotVector
		}
		if e.Epsilon != nil && *e.Epsilon < 0 {
			return ErrNegativeEpsilon
		}
		if e.Scalar != nil && !hasQuery {
			return ErrNoQueryForExpected
		}
	}
	return nil
}

// Load decodes every YAML document in r as a script.
func Load(r io.Reader) ([]*Script, error) {
	var scripts []*Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	for {
		var s Script
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(scripts), err)
		}
		if err = s.Validate(); err != nil {
			return nil, fmt.Errorf("document %d: %w", len(scripts), err)
		}
		scripts = append(scripts, &s)
	}
	return scripts, nil
}

// LoadFile loads all scripts from path. Unnamed scripts are named after the
// file and their position in it.
func LoadFile(path string) ([]*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scripts, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i, s := range scripts {
		if s.Name == "" {
			s.Name = fmt.Sprintf("%s#%d", base, i)
		}
	}
	return scripts, nil
}
