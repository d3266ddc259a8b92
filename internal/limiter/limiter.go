// Package limiter bounds how many workbooks are decoded or encoded at once.
// Each workbook is held fully in memory while it is processed, so the limit
// caps peak memory rather than CPU.
package limiter

import (
	"context"
	"errors"
	"time"

	apperrors "siparis/internal/errors"

	"golang.org/x/sync/semaphore"
)

// ErrBusy is returned when no slot frees up before the wait expires.
var ErrBusy = errors.New("too many workbooks in progress")

// DefaultMaxWait is how long a request waits for a slot.
const DefaultMaxWait = 15 * time.Second

// WorkbookLimiter is a weighted semaphore sized in workbooks.
type WorkbookLimiter struct {
	sem     *semaphore.Weighted
	size    int64
	maxWait time.Duration
}

// New allows at most maxConcurrent workbooks in flight.
func New(maxConcurrent int, maxWait time.Duration) *WorkbookLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}
	return &WorkbookLimiter{
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
		size:    int64(maxConcurrent),
		maxWait: maxWait,
	}
}

// Do runs fn once a slot is free. It gives up with a BUSY AppError wrapping
// ErrBusy after maxWait, and returns ctx.Err() if the caller goes away first.
func (l *WorkbookLimiter) Do(ctx context.Context, fn func() error) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	if err := l.sem.Acquire(waitCtx, 1); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return apperrors.Busy("workbook limit reached", ErrBusy)
	}
	defer l.sem.Release(1)

	return fn()
}

// Drain blocks until every slot is free, then holds them so no new work
// starts. Used on shutdown.
func (l *WorkbookLimiter) Drain(ctx context.Context) error {
	return l.sem.Acquire(ctx, l.size)
}
