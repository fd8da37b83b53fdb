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

import "context"

// Scan applies accumulator to each upstream value, seeded with `seed`, and
// forwards every intermediate accumulated value (unlike a fold, which only
// emits the final result).
func Scan[T, R any](seed R, accumulator func(acc R, value T) R) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[R]) Teardown {
			acc := seed

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						acc = accumulator(acc, value)
						destination.NextWithContext(ctx, acc)
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// ToSlice buffers every upstream value and emits the accumulated slice once,
// right before completion.
func ToSlice[T any]() func(Observable[T]) Observable[[]T] {
	return func(source Observable[T]) Observable[[]T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[[]T]) Teardown {
			var buffer []T

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(_ context.Context, value T) {
						buffer = append(buffer, value)
					},
					destination.ErrorWithContext,
					func(ctx context.Context) {
						destination.NextWithContext(ctx, buffer)
						destination.CompleteWithContext(ctx)
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}

// Pair is the (previous, current) tuple emitted by ZipPrevious.
type Pair[T any] struct {
	Previous T
	Current  T
}

// ZipPrevious emits a Pair of each value with the value preceding it. The
// very first upstream value is withheld, since it has no predecessor.
func ZipPrevious[T any]() func(Observable[T]) Observable[Pair[T]] {
	return func(source Observable[T]) Observable[Pair[T]] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[Pair[T]]) Teardown {
			var previous T
			hasPrevious := false

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						if hasPrevious {
							destination.NextWithContext(ctx, Pair[T]{Previous: previous, Current: value})
						}

						previous = value
						hasPrevious = true
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// DistinctUntilChanged suppresses consecutive duplicate values, as compared
// with `==`.
func DistinctUntilChanged[T comparable]() func(Observable[T]) Observable[T] {
	return DistinctUntilChangedBy(func(a, b T) bool { return a == b })
}

// DistinctUntilChangedBy suppresses consecutive values for which `equal`
// reports true against the last forwarded value.
func DistinctUntilChangedBy[T any](equal func(previous, current T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var previous T
			hasPrevious := false

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						if hasPrevious && equal(previous, value) {
							return
						}

						previous = value
						hasPrevious = true
						destination.NextWithContext(ctx, value)
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// StartWith prepends `values` ahead of whatever source emits.
func StartWith[T any](values ...T) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			for _, v := range values {
				destination.NextWithContext(subscriberCtx, v)
			}

			sub := source.SubscribeWithContext(subscriberCtx, destination)

			return sub.Unsubscribe
		})
	}
}

// ConcatWith subscribes to source, then, once it completes successfully,
// subscribes to each of `others` in order. An error from any stage
// propagates immediately and cancels the rest.
func ConcatWith[T any](others ...Observable[T]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		all := append([]Observable[T]{source}, others...)
		return concatAll(all)
	}
}

func concatAll[T any](sources []Observable[T]) Observable[T] {
	return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
		subscription := NewSubscription(nil)

		var subscribeNext func(i int)
		subscribeNext = func(i int) {
			if i >= len(sources) {
				destination.CompleteWithContext(subscriberCtx)
				return
			}

			sub := sources[i].SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					destination.NextWithContext,
					destination.ErrorWithContext,
					func(ctx context.Context) {
						subscribeNext(i + 1)
					},
				),
			)
			subscription.Add(sub.Unsubscribe)
		}

		subscribeNext(0)

		return subscription.Unsubscribe
	})
}

// DefaultIfEmpty emits `fallback` if source completes without ever emitting
// a value; otherwise source's values pass through unchanged.
func DefaultIfEmpty[T any](fallback T) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			seen := false

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						seen = true
						destination.NextWithContext(ctx, value)
					},
					destination.ErrorWithContext,
					func(ctx context.Context) {
						if !seen {
							destination.NextWithContext(ctx, fallback)
						}

						destination.CompleteWithContext(ctx)
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}
