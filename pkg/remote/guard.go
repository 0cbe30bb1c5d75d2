package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Guard runs fn under the time budget and converts its outcome into a Result,
// for dependencies that are not plain HTTP reads (generative AI, database
// pings). A zero timeout uses the Fetcher's budget.
//
// An error carrying ErrRejected yields fallback tagged StatusError; any other
// error, a timeout or a panic yields fallback tagged StatusSimulated. fn must
// honor ctx; Guard returns at the deadline without waiting for it.
func Guard[T any](ctx context.Context,
	f *Fetcher,
	name string,
	timeout time.Duration,
	fallback T,
	fn func(ctx context.Context) (T, error)) Result[T] {
	if timeout <= 0 {
		timeout = f.timeout
	}

	ctx, span := f.tracer.Start(ctx, "remote.Guard",
		trace.WithAttributes(attribute.String("remote.target", name)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		payload T
		err     error
	}
	done := make(chan outcome, 1)

	start := time.Now()
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- outcome{err: fmt.Errorf("recovered panic: %v", p)}
			}
		}()

		payload, err := fn(ctx)
		done <- outcome{payload: payload, err: err}
	}()

	var (
		res Result[T]
		err error
	)
	select {
	case o := <-done:
		err = o.err
		switch {
		case err == nil:
			res = Live(o.payload)
		case errors.Is(err, ErrRejected):
			res = Degrade(fallback, StatusError)
		default:
			res = Degrade(fallback, StatusSimulated)
		}
	case <-ctx.Done():
		err = fmt.Errorf("call did not complete in time: %w", ctx.Err())
		res = Degrade(fallback, StatusSimulated)
	}

	f.record(ctx, span, "guard", name, res.Status, time.Since(start), err)

	return res
}
