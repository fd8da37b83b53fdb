// Copyright 2025 samber.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://github.com/samber/ro/blob/main/licenses/LICENSE.apache.md
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ro

import (
	"context"
	"time"
)

// Just emits a single value then completes.
func Just[T any](value T) Observable[T] {
	return Of(value)
}

// Of emits each of the given values, in order, then completes.
func Of[T any](values ...T) Observable[T] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		for _, v := range values {
			destination.NextWithContext(ctx, v)
		}

		destination.CompleteWithContext(ctx)

		return nil
	})
}

// FromSlice is an alias for Of taking a slice instead of variadic arguments.
func FromSlice[T any](values []T) Observable[T] {
	return Of(values...)
}

// Empty completes immediately without emitting any value.
func Empty[T any]() Observable[T] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		destination.CompleteWithContext(ctx)
		return nil
	})
}

// Never never emits any notification and never terminates.
func Never[T any]() Observable[T] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		return nil
	})
}

// Throw immediately fails with the given error.
func Throw[T any](err error) Observable[T] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		destination.ErrorWithContext(ctx, err)
		return nil
	})
}

// Range emits the integers in [start, end) then completes, using the
// default (safe) concurrency mode.
func Range(start, end int64) Observable[int64] {
	return RangeWithMode(start, end, ConcurrencyModeSafe)
}

// RangeWithMode is Range with an explicit Subscriber concurrency mode,
// useful for high-throughput single-producer pipelines (e.g. benchmarks)
// that do not need the default mutex-backed serialization.
func RangeWithMode(start, end int64, mode ConcurrencyMode) Observable[int64] {
	onSubscribe := func(ctx context.Context, destination Observer[int64]) Teardown {
		for i := start; i < end; i++ {
			destination.NextWithContext(ctx, i)
		}

		destination.CompleteWithContext(ctx)

		return nil
	}

	switch mode {
	case ConcurrencyModeUnsafe:
		return NewUnsafeObservableWithContext(onSubscribe)
	case ConcurrencyModeEventuallySafe:
		return NewEventuallySafeObservableWithContext(onSubscribe)
	case ConcurrencyModeSingleProducer:
		return NewSingleProducerObservableWithContext(onSubscribe)
	default:
		return NewObservableWithContext(onSubscribe)
	}
}

// Interval emits sequential integers starting at 0, one every `d`, until
// cancelled. It never completes on its own.
func Interval(d time.Duration) Observable[int64] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[int64]) Teardown {
		ticker := time.NewTicker(d)
		done := make(chan struct{})

		go recoverUnhandledError(func() {
			var i int64
			for {
				select {
				case <-done:
					return
				case <-ctx.Done():
					return
				case <-ticker.C:
					destination.NextWithContext(ctx, i)
					i++
				}
			}
		})

		return func() {
			ticker.Stop()
			close(done)
		}
	})
}

// Sequence emits each element of `values` spaced `d` apart, then completes.
func Sequence[T any](values []T, d time.Duration) Observable[T] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		ticker := time.NewTicker(d)
		done := make(chan struct{})

		go recoverUnhandledError(func() {
			defer ticker.Stop()

			for _, v := range values {
				select {
				case <-done:
					return
				case <-ctx.Done():
					return
				case <-ticker.C:
					destination.NextWithContext(ctx, v)
				}
			}

			destination.CompleteWithContext(ctx)
		})

		return func() {
			close(done)
		}
	})
}

// Collect synchronously drains an Observable, returning every emitted value
// and the terminal failure, if any. It blocks until the Observable
// completes, fails, or never terminates (in which case Collect never
// returns); callers observing an unbounded Observable should cancel the
// subscription from another goroutine instead.
func Collect[T any](source Observable[T]) ([]T, error) {
	values := []T{}
	var failure error

	done := make(chan struct{})

	source.Subscribe(NewObserver(
		func(value T) { values = append(values, value) },
		func(err error) {
			failure = err
			close(done)
		},
		func() { close(done) },
	))

	<-done

	return values, failure
}

// Pipe1 applies a single operator to source.
func Pipe1[T, R any](source Observable[T], op1 func(Observable[T]) Observable[R]) Observable[R] {
	return op1(source)
}

// Pipe2 applies two operators to source, in order.
func Pipe2[T, R1, R2 any](source Observable[T], op1 func(Observable[T]) Observable[R1], op2 func(Observable[R1]) Observable[R2]) Observable[R2] {
	return op2(op1(source))
}

// Pipe3 applies three operators to source, in order.
func Pipe3[T, R1, R2, R3 any](
	source Observable[T],
	op1 func(Observable[T]) Observable[R1],
	op2 func(Observable[R1]) Observable[R2],
	op3 func(Observable[R2]) Observable[R3],
) Observable[R3] {
	return op3(op2(op1(source)))
}

// Pipe4 applies four operators to source, in order.
func Pipe4[T, R1, R2, R3, R4 any](
	source Observable[T],
	op1 func(Observable[T]) Observable[R1],
	op2 func(Observable[R1]) Observable[R2],
	op3 func(Observable[R2]) Observable[R3],
	op4 func(Observable[R3]) Observable[R4],
) Observable[R4] {
	return op4(op3(op2(op1(source))))
}

// Pipe5 applies five operators to source, in order.
func Pipe5[T, R1, R2, R3, R4, R5 any](
	source Observable[T],
	op1 func(Observable[T]) Observable[R1],
	op2 func(Observable[R1]) Observable[R2],
	op3 func(Observable[R2]) Observable[R3],
	op4 func(Observable[R3]) Observable[R4],
	op5 func(Observable[R4]) Observable[R5],
) Observable[R5] {
	return op5(op4(op3(op2(op1(source)))))
}
