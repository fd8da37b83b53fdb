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

// Take forwards at most n values then unsubscribes upstream and completes
// downstream. n<=0 completes immediately without subscribing upstream.
func Take[T any](n int) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			if n <= 0 {
				destination.CompleteWithContext(subscriberCtx)
				return nil
			}

			taken := 0

			var sub Subscription
			sub = source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						taken++
						destination.NextWithContext(ctx, value)

						if taken >= n {
							destination.CompleteWithContext(ctx)
							if sub != nil {
								sub.UnsubscribeWithContext(ctx)
							}
						}
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// TakeLast buffers up to n trailing values and emits them, in order, only
// once upstream completes. Upstream errors propagate without emitting the
// buffer.
func TakeLast[T any](n int) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			if n <= 0 {
				sub := source.SubscribeWithContext(
					subscriberCtx,
					NewObserverWithContext(
						func(context.Context, T) {},
						destination.ErrorWithContext,
						destination.CompleteWithContext,
					),
				)

				return sub.Unsubscribe
			}

			buffer := make([]T, 0, n)

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(_ context.Context, value T) {
						buffer = append(buffer, value)

						if len(buffer) > n {
							buffer = buffer[len(buffer)-n:]
						}
					},
					destination.ErrorWithContext,
					func(ctx context.Context) {
						for _, value := range buffer {
							destination.NextWithContext(ctx, value)
						}

						destination.CompleteWithContext(ctx)
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}

// Skip drops the first n values then forwards everything after.
func Skip[T any](n int) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			skipped := 0

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						if skipped < n {
							skipped++
							return
						}

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

// SkipLast withholds the last n values: it delays each value by n positions,
// so that any value that turns out to be within the final n upstream
// emissions is never forwarded.
func SkipLast[T any](n int) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			if n <= 0 {
				sub := source.SubscribeWithContext(subscriberCtx, destination)
				return sub.Unsubscribe
			}

			buffer := make([]T, 0, n+1)

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						buffer = append(buffer, value)

						if len(buffer) > n {
							destination.NextWithContext(ctx, buffer[0])
							buffer = buffer[1:]
						}
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// ElementAt emits the value at the given zero-based index then completes. If
// upstream completes before reaching that index, it fails with
// ErrIndexOutOfRange.
func ElementAt[T any](index int) func(Observable[T]) Observable[T] {
	return elementAt[T](index, ErrIndexOutOfRange)
}

// elementAt is ElementAt with the failure used when upstream completes before
// reaching index.
func elementAt[T any](index int, notReached error) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			current := 0

			var sub Subscription
			sub = source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						if current == index {
							destination.NextWithContext(ctx, value)
							destination.CompleteWithContext(ctx)
							if sub != nil {
								sub.UnsubscribeWithContext(ctx)
							}
							return
						}

						current++
					},
					destination.ErrorWithContext,
					func(ctx context.Context) {
						if current <= index {
							destination.ErrorWithContext(ctx, notReached)
							return
						}

						destination.CompleteWithContext(ctx)
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}

// First emits the first upstream value then completes. If upstream completes
// without emitting, it fails with ErrEmptySource.
func First[T any]() func(Observable[T]) Observable[T] {
	return elementAt[T](0, ErrEmptySource)
}

// Last emits the final upstream value once upstream completes. If upstream
// completes without emitting, it fails with ErrEmptySource.
func Last[T any]() func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var last T
			seen := false

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(_ context.Context, value T) {
						last = value
						seen = true
					},
					destination.ErrorWithContext,
					func(ctx context.Context) {
						if !seen {
							destination.ErrorWithContext(ctx, ErrEmptySource)
							return
						}

						destination.NextWithContext(ctx, last)
						destination.CompleteWithContext(ctx)
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}
