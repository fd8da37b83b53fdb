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
	"sync"
	"time"
)

// Timeout fails with ErrTimeout (or, if provided, `replacement`) when no
// notification arrives from source within `d` of the previous one, or of
// subscription if none has arrived yet.
func Timeout[T any](d time.Duration, replacement ...error) func(Observable[T]) Observable[T] {
	failure := ErrTimeout
	if len(replacement) > 0 && replacement[0] != nil {
		failure = replacement[0]
	}

	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex
			done := false

			timer := time.AfterFunc(d, func() {
				mu.Lock()
				already := done
				done = true
				mu.Unlock()

				if !already {
					destination.ErrorWithContext(subscriberCtx, failure)
				}
			})

			reset := func() {
				mu.Lock()
				closed := done
				mu.Unlock()

				if !closed {
					timer.Reset(d)
				}
			}

			finish := func() bool {
				mu.Lock()
				defer mu.Unlock()

				if done {
					return false
				}

				done = true
				return true
			}

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						reset()
						destination.NextWithContext(ctx, value)
					},
					func(ctx context.Context, err error) {
						if finish() {
							timer.Stop()
							destination.ErrorWithContext(ctx, err)
						}
					},
					func(ctx context.Context) {
						if finish() {
							timer.Stop()
							destination.CompleteWithContext(ctx)
						}
					},
				),
			)

			return func() {
				timer.Stop()
				sub.Unsubscribe()
			}
		})
	}
}

// Retry resubscribes to source up to `retries` additional times after an
// initial failure, forwarding the final error only once every retry has
// been exhausted. Retry(n) performs n+1 total subscriptions to source (the
// initial attempt plus n retries); retries<=0 is equivalent to no retry at
// all, i.e. exactly one attempt.
func Retry[T any](retries int) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex
			var currentSub Subscription
			cancelled := false

			attempts := 0

			var subscribe func(ctx context.Context)
			subscribe = func(ctx context.Context) {
				mu.Lock()
				if cancelled {
					mu.Unlock()
					return
				}
				attempts++
				mu.Unlock()

				sub := source.SubscribeWithContext(
					ctx,
					NewObserverWithContext(
						destination.NextWithContext,
						func(errCtx context.Context, err error) {
							mu.Lock()
							exhausted := attempts > retries
							mu.Unlock()

							if exhausted {
								destination.ErrorWithContext(errCtx, err)
								return
							}

							subscribe(errCtx)
						},
						destination.CompleteWithContext,
					),
				)

				mu.Lock()
				currentSub = sub
				mu.Unlock()
			}

			subscribe(subscriberCtx)

			return func() {
				mu.Lock()
				cancelled = true
				sub := currentSub
				mu.Unlock()

				if sub != nil {
					sub.Unsubscribe()
				}
			}
		})
	}
}
