package ecs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/corgecs/pkg/signals"
)

// Broadcast raises signal on every entity of w. Entities are processed
// concurrently, at most WithBroadcastWorkers at a time; handlers of one
// entity still run sequentially. A panicking handler is recovered and
// reported as ErrHandlerPanic without stopping the other entities. Once ctx
// is done no further entity is started and ctx.Err() is part of the result.
func Broadcast[T signals.Signal](ctx context.Context, w *World, signal T) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(w.opts.workers)

	for _, e := range w.Entities() {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := raiseRecovered(e, signal); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		w.log.Warn("broadcast finished with errors", zap.Int("errors", len(errs)))
	}
	return errors.Join(errs...)
}

func raiseRecovered[T signals.Signal](e *Entity, signal T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("raise %T on %s: %w: %v", signal, e, ErrHandlerPanic, r)
		}
	}()
	Raise(e, signal)
	return nil
}
