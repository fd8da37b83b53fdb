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
)

// FlatMap projects each source value to an inner Observable and merges
// every inner Observable concurrently into a single output stream. Output
// completes once source and every inner Observable it spawned have
// completed; any inner or outer error propagates immediately.
func FlatMap[T, R any](project func(value T) Observable[R]) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[R]) Teardown {
			var mu sync.Mutex
			outerDone := false
			activeInner := 0
			done := false

			subscription := NewSubscription(nil)

			maybeComplete := func(ctx context.Context) {
				if outerDone && activeInner == 0 && !done {
					done = true
					destination.CompleteWithContext(ctx)
				}
			}

			fail := func(ctx context.Context, err error) {
				mu.Lock()
				already := done
				done = true
				mu.Unlock()

				if !already {
					destination.ErrorWithContext(ctx, err)
				}
			}

			outerSub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						mu.Lock()
						activeInner++
						mu.Unlock()

						innerSub := project(value).SubscribeWithContext(
							ctx,
							NewObserverWithContext(
								destination.NextWithContext,
								fail,
								func(innerCtx context.Context) {
									mu.Lock()
									activeInner--
									mu.Unlock()

									mu.Lock()
									maybeComplete(innerCtx)
									mu.Unlock()
								},
							),
						)
						subscription.Add(innerSub.Unsubscribe)
					},
					fail,
					func(ctx context.Context) {
						mu.Lock()
						outerDone = true
						maybeComplete(ctx)
						mu.Unlock()
					},
				),
			)
			subscription.Add(outerSub.Unsubscribe)

			return subscription.Unsubscribe
		})
	}
}

// SwitchMap projects each source value to an inner Observable, unsubscribing
// from the previous inner Observable as soon as a new source value arrives.
// Output completes once source has completed and the final inner Observable
// has completed.
func SwitchMap[T, R any](project func(value T) Observable[R]) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[R]) Teardown {
			var mu sync.Mutex
			var currentInner Subscription
			generation := 0
			outerDone := false
			innerActive := false
			done := false

			maybeComplete := func(ctx context.Context) {
				if outerDone && !innerActive && !done {
					done = true
					destination.CompleteWithContext(ctx)
				}
			}

			fail := func(ctx context.Context, err error) {
				mu.Lock()
				already := done
				done = true
				mu.Unlock()

				if !already {
					destination.ErrorWithContext(ctx, err)
				}
			}

			outerSub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						mu.Lock()
						if currentInner != nil {
							currentInner.Unsubscribe()
						}
						generation++
						myGeneration := generation
						innerActive = true
						mu.Unlock()

						inner := project(value).SubscribeWithContext(
							ctx,
							NewObserverWithContext(
								destination.NextWithContext,
								fail,
								func(innerCtx context.Context) {
									mu.Lock()
									if myGeneration == generation {
										innerActive = false
										maybeComplete(innerCtx)
									}
									mu.Unlock()
								},
							),
						)

						mu.Lock()
						currentInner = inner
						mu.Unlock()
					},
					fail,
					func(ctx context.Context) {
						mu.Lock()
						outerDone = true
						maybeComplete(ctx)
						mu.Unlock()
					},
				),
			)

			return func() {
				outerSub.Unsubscribe()

				mu.Lock()
				inner := currentInner
				mu.Unlock()

				if inner != nil {
					inner.Unsubscribe()
				}
			}
		})
	}
}

// ConcatMap projects each source value to an inner Observable and
// subscribes to them one at a time, in source order, waiting for each inner
// Observable to complete before subscribing to the next.
func ConcatMap[T, R any](project func(value T) Observable[R]) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[R]) Teardown {
			var mu sync.Mutex
			queue := make([]T, 0)
			draining := false
			outerDone := false
			done := false

			subscription := NewSubscription(nil)

			var drainNext func(ctx context.Context)
			drainNext = func(ctx context.Context) {
				mu.Lock()
				if len(queue) == 0 {
					draining = false
					if outerDone && !done {
						done = true
						mu.Unlock()
						destination.CompleteWithContext(ctx)
						return
					}
					mu.Unlock()
					return
				}

				next := queue[0]
				queue = queue[1:]
				draining = true
				mu.Unlock()

				innerSub := project(next).SubscribeWithContext(
					ctx,
					NewObserverWithContext(
						destination.NextWithContext,
						func(innerCtx context.Context, err error) {
							mu.Lock()
							already := done
							done = true
							mu.Unlock()

							if !already {
								destination.ErrorWithContext(innerCtx, err)
							}
						},
						func(innerCtx context.Context) {
							drainNext(innerCtx)
						},
					),
				)
				subscription.Add(innerSub.Unsubscribe)
			}

			outerSub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						mu.Lock()
						queue = append(queue, value)
						shouldDrain := !draining
						mu.Unlock()

						if shouldDrain {
							drainNext(ctx)
						}
					},
					func(ctx context.Context, err error) {
						mu.Lock()
						already := done
						done = true
						mu.Unlock()

						if !already {
							destination.ErrorWithContext(ctx, err)
						}
					},
					func(ctx context.Context) {
						mu.Lock()
						outerDone = true
						idle := !draining && len(queue) == 0
						mu.Unlock()

						if idle {
							mu.Lock()
							finish := !done
							done = true
							mu.Unlock()

							if finish {
								destination.CompleteWithContext(ctx)
							}
						}
					},
				),
			)
			subscription.Add(outerSub.Unsubscribe)

			return subscription.Unsubscribe
		})
	}
}

// CatchError recovers from a source failure by subscribing to the
// Observable returned by `handler`, instead of propagating the error
// downstream.
func CatchError[T any](handler func(err error) Observable[T]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			subscription := NewSubscription(nil)

			sourceSub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					destination.NextWithContext,
					func(ctx context.Context, err error) {
						fallbackSub := handler(err).SubscribeWithContext(ctx, destination)
						subscription.Add(fallbackSub.Unsubscribe)
					},
					destination.CompleteWithContext,
				),
			)
			subscription.Add(sourceSub.Unsubscribe)

			return subscription.Unsubscribe
		})
	}
}
