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
	"log"
)

// Map applies f to every upstream value and forwards the result. Terminals
// pass through unchanged.
func Map[T, R any](f func(value T) R) func(Observable[T]) Observable[R] {
	return MapWithContext(func(_ context.Context, value T) R {
		return f(value)
	})
}

// MapWithContext is Map with access to the per-event context.
func MapWithContext[T, R any](f func(ctx context.Context, value T) R) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[R]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						destination.NextWithContext(ctx, f(ctx, value))
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// Filter forwards a value iff p(value) is true. Terminals pass through.
func Filter[T any](p func(value T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						if p(value) {
							destination.NextWithContext(ctx, value)
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

// IgnoreOutput swallows every next notification; terminals still pass
// through.
func IgnoreOutput[T any]() func(Observable[T]) Observable[T] {
	return Filter(func(T) bool { return false })
}

// IgnoreNils drops nil pointers and emits the dereferenced value for the
// rest, the idiomatic Go rendering of "optional element" filtering.
func IgnoreNils[T any]() func(Observable[*T]) Observable[T] {
	return func(source Observable[*T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value *T) {
						if value != nil {
							destination.NextWithContext(ctx, *value)
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

// ReplaceNils substitutes `fallback` for every nil upstream pointer.
func ReplaceNils[T any](fallback T) func(Observable[*T]) Observable[T] {
	return func(source Observable[*T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value *T) {
						if value == nil {
							destination.NextWithContext(ctx, fallback)
							return
						}

						destination.NextWithContext(ctx, *value)
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// SuppressError converts a failed terminal into a successful completion. If
// logErr is true, the suppressed error is written with the standard library
// log package before being dropped.
func SuppressError[T any](logErr bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					destination.NextWithContext,
					func(ctx context.Context, err error) {
						if logErr {
							// bearer:disable go_lang_logger_leak
							log.Printf("ro: suppressed error: %s\n", err.Error())
						}

						destination.CompleteWithContext(ctx)
					},
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// ReplaceError converts a failed terminal into next(fallback); completed.
func ReplaceError[T any](fallback T) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					destination.NextWithContext,
					func(ctx context.Context, _ error) {
						destination.NextWithContext(ctx, fallback)
						destination.CompleteWithContext(ctx)
					},
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}
