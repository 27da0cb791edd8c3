package script

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/zeusync/vecmath/internal/config"
	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/pkg/concurrent"
	"github.com/zeusync/vecmath/pkg/vector"
)

// StepResult records the state after one step.
type StepResult struct {
	Op     string
	Vector vector.Vector3
	// Scalar is set for query steps only.
	Scalar *float64
}

type Result struct {
	ID       uuid.UUID
	Name     string
	Final    vector.Vector3
	Trace    []StepResult
	Duration time.Duration
	// Err is the error that stopped the script, if any. Expectation
	// mismatches wrap ErrExpectationFailed.
	Err error
}

func (r *Result) Passed() bool { return r.Err == nil }

// LastScalar returns the value of the last query step.
func (r *Result) LastScalar() (float64, bool) {
	for i := len(r.Trace) - 1; i >= 0; i-- {
		if s := r.Trace[i].Scalar; s != nil {
			return *s, true
		}
	}
	return 0, false
}

// Runner executes scripts. It holds no per-run state and may be shared
// between goroutines.
type Runner struct {
	logger log.Log
	cfg    config.RunnerConfig
}

func NewRunner(logger log.Log, cfg config.RunnerConfig) *Runner {
	return &Runner{
		logger: logger,
		cfg:    cfg,
	}
}

// Run executes s. Operation failures and context cancellation are returned as
// errors and also stored in Result.Err; a failed expectation only sets Result.Err.
func (r *Runner) Run(ctx context.Context, s *Script) (*Result, error) {
	res := &Result{
		ID:   uuid.New(),
		Name: s.Name,
	}
	logger := r.logger.With(log.String("script", s.Name), log.String("run_id", res.ID.String()))
	started := time.Now()
	defer func() { res.Duration = time.Since(started) }()

	if s.Start == nil || !s.Start.IsVector() {
		res.Err = ErrStartNotVector
		return res, res.Err
	}

	current := s.Start.Arg().Vector()

	var sim *simulation
	if s.World != nil {
		var err error
		if sim, err = newSimulation(s.World, current, logger); err != nil {
			res.Err = fmt.Errorf("world: %w", err)
			return res, res.Err
		}
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res, err
		}

		op, ok := operations[step.Op]
		if !ok {
			res.Err = fmt.Errorf("step %d: %w: %q", i, ErrUnknownOp, step.Op)
			return res, res.Err
		}
		args := step.args()
		if op.needsVector && (len(args) == 0 || !args[0].IsVector()) {
			res.Err = fmt.Errorf("step %d (%s): %w", i, step.Op, ErrVectorArgRequired)
			return res, res.Err
		}

		sr := StepResult{Op: step.Op}
		var err error
		switch {
		case op.query != nil:
			q := op.query(current, args)
			sr.Scalar = &q
		case op.simulate != nil:
			if sim == nil {
				err = ErrWorldRequired
			} else {
				err = op.simulate(ctx, sim, &current, args)
			}
		default:
			err = op.apply(&current, args)
		}
		if err != nil {
			res.Err = fmt.Errorf("step %d (%s): %w", i, step.Op, err)
			logger.Error("step failed", log.Int("step", i), log.String("op", step.Op), log.Error(err))
			return res, res.Err
		}
		sr.Vector = current
		res.Trace = append(res.Trace, sr)

		logger.Debug("step", log.Int("step", i), log.String("op", step.Op), log.Stringer("vector", current))
	}
	res.Final = current

	if err := r.check(s.Expect, res); err != nil {
		res.Err = err
		logger.Warn("expectation failed", log.Error(err))
		return res, nil
	}

	logger.Info("script passed", log.Stringer("result", res.Final))
	return res, nil
}

func (r *Runner) check(e *Expect, res *Result) error {
	if e == nil {
		return nil
	}
	eps := r.cfg.Epsilon
	if e.Epsilon != nil {
		eps = *e.Epsilon
	}

	if e.Value != nil {
		want := e.Value.Arg().Vector()
		if !vector.Equals(res.Final, want, eps) {
			return fmt.Errorf("%w: got (%s), want (%s) within %g", ErrExpectationFailed, res.Final, want, eps)
		}
	}
	if e.Scalar != nil {
		got, ok := res.LastScalar()
		if !ok || !(math.Abs(got-*e.Scalar) <= eps) {
			return fmt.Errorf("%w: got scalar %g, want %g within %g", ErrExpectationFailed, got, *e.Scalar, eps)
		}
	}
	return nil
}

// RunAll runs scripts concurrently, bounded by the configured worker count,
// and returns results in input order. With StopOnFailure the first failing
// script cancels the rest and its error is returned; otherwise failures are
// only reported through each Result. Entries of scripts that were cancelled
// before producing a result are nil.
func (r *Runner) RunAll(ctx context.Context, scripts []*Script) ([]*Result, error) {
	return concurrent.Map(ctx, scripts, r.cfg.Workers, func(ctx context.Context, s *Script) (*Result, error) {
		res, _ := r.Run(ctx, s)
		if r.cfg.StopOnFailure && res.Err != nil {
			return res, fmt.Errorf("%s: %w", s.Name, res.Err)
		}
		return res, nil
	})
}
