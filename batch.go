// SPDX-License-Identifier: MIT
package dictcalc

import (
	"context"
	"errors"
	"fmt"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/exp/constraints"

	"gitlab.com/fisherprime/dictcalc/scanner"
	"gitlab.com/fisherprime/dictcalc/types"
)

// Batch evaluation errors.
var (
	ErrEmptyBatch = errors.New("empty evaluation batch")
	ErrBatchPool  = errors.New("failed to set up evaluation pool")
)

// defPoolSize bounds the goroutines evaluating a batch.
const defPoolSize = 10

// EvalString parses & evaluates a single calc entry held in its own buffer.
func EvalString[T constraints.Float](ctx context.Context, input string, opts ...Option[T]) (T, error) {
	src := scanner.New(scanner.WithInput(input))

	return New(src, opts...).Parse(ctx)
}

// EvalAll evaluates a batch of independent calc entries concurrently on a
// worker pool.
//
// Each entry gets its own Scanner & Parser; no buffer or cursor is shared
// between workers. The result slice is index-aligned with sources; entries
// that failed hold the zero scalar & their errors are aggregated into err.
//
// opts must not include WithErrors: a shared reporter would be mutated from
// multiple workers.
func EvalAll[T constraints.Float](ctx context.Context, sources []string, opts ...Option[T]) (vals []T, err error) {
	lenSrc := len(sources)
	if lenSrc < 1 {
		err = ErrEmptyBatch
		return
	}
	vals = make([]T, lenSrc)

	pool, err := ants.NewPool(defPoolSize)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrBatchPool, err)
		return
	}
	defer pool.Release()

	done := make(chan bool, lenSrc)
	errChan := make(chan error, types.BufferedErrChanSize)

	failed := new(types.SafeCounter)

	for index := range sources {
		index := index

		if sErr := pool.Submit(func() {
			val, pErr := EvalString(ctx, sources[index], opts...)
			if pErr != nil {
				failed.Inc()
				errChan <- fmt.Errorf("%d: %w", index, pErr)

				return
			}

			vals[index] = val
			done <- true
		}); sErr != nil {
			failed.Inc()
			errChan <- fmt.Errorf("%d: %v", index, sErr)
		}
	}

	err = types.MonitorChannels(ctx, lenSrc, done, errChan, "calc entry")

	defConfig.Logger.Debugf("evaluated %d entries, %d failed", lenSrc, failed.Value())

	return
}
