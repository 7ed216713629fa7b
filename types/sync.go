// SPDX-License-Identifier: NONE
package types

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type (
	// SafeCounter is a thread-safe counter.
	SafeCounter struct {
		m   sync.Mutex
		val int
	}
)

const (
	// BufferedErrChanSize is the buffer size for evaluation worker error
	// channels.
	BufferedErrChanSize = 5
)

// Synchronization errors.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// Inc increments the counter.
func (c *SafeCounter) Inc() {
	c.m.Lock()
	defer c.m.Unlock()
	c.val++
}

// Value returns the current value of the counter.
func (c *SafeCounter) Value() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}

// MonitorChannels collects completion signals & errors from evaluation
// workers, accumulating worker errors until all operations have reported or
// the context is canceled.
//
// Each worker must report exactly once, on either channel. errPrefix should
// be in the singular form.
func MonitorChannels(ctx context.Context, operations int, done chan bool, errChan chan error, errPrefix string) (err error) {
	if operations < 1 {
		err = fmt.Errorf("%s %w: %d", errPrefix, ErrInvalidWorkerCount, operations)
		return
	}

	for index := 0; index < operations; index++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case _, proceed := <-done:
			if !proceed {
				// Channel closed under the monitor; nothing more will
				// report.
				return
			}
		case e, proceed := <-errChan:
			if !proceed {
				return
			}

			if err != nil {
				err = fmt.Errorf("%v, %w", err, e)
				continue
			}
			err = fmt.Errorf("%s %w", errPrefix, e)
		}
	}

	return
}
