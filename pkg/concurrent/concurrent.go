package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Each runs action for every item with at most workers goroutines in flight.
// The first error cancels the context passed to the remaining actions and is
// returned once all started actions finish. If ctx is cancelled before every
// item was scheduled, ctx.Err() is returned.
func Each[T any](ctx context.Context, items []T, workers int, action func(context.Context, int, T) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(workers, 1))

	stopped := false
	for idx, item := range items {
		if groupCtx.Err() != nil {
			stopped = true
			break
		}
		group.Go(func() error {
			return action(groupCtx, idx, item)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	if stopped {
		return ctx.Err()
	}
	return nil
}

// Map applies mapFn to every item in parallel, preserving input order.
// Every result mapFn returned is stored, including the one that came with the
// error; items that never ran keep the zero value.
func Map[T any, R any](ctx context.Context, items []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	err := Each(ctx, items, workers, func(ctx context.Context, idx int, item T) error {
		res, err := mapFn(ctx, item)
		out[idx] = res
		return err
	})
	return out, err
}
