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

// Merge subscribes to every source concurrently and forwards whichever
// value arrives first, in arrival order. It completes once every source has
// completed, and fails as soon as any source fails.
func Merge[T any](sources ...Observable[T]) Observable[T] {
	return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
		if len(sources) == 0 {
			destination.CompleteWithContext(subscriberCtx)
			return nil
		}

		var mu sync.Mutex
		remaining := len(sources)
		done := false

		subscription := NewSubscription(nil)

		for _, s := range sources {
			sub := s.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					destination.NextWithContext,
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
						remaining--
						finish := remaining == 0 && !done
						if finish {
							done = true
						}
						mu.Unlock()

						if finish {
							destination.CompleteWithContext(ctx)
						}
					},
				),
			)
			subscription.Add(sub.Unsubscribe)
		}

		return subscription.Unsubscribe
	})
}

// Amb subscribes to every source concurrently and mirrors whichever source
// emits a notification first; every other source is unsubscribed at that
// point.
func Amb[T any](sources ...Observable[T]) Observable[T] {
	return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
		if len(sources) == 0 {
			destination.CompleteWithContext(subscriberCtx)
			return nil
		}

		var mu sync.Mutex
		winner := -1
		subs := make([]Subscription, len(sources))

		unsubscribeLosers := func(except int) {
			for i, sub := range subs {
				if i != except && sub != nil {
					sub.Unsubscribe()
				}
			}
		}

		for i, s := range sources {
			i := i
			subs[i] = s.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						mu.Lock()
						first := winner == -1
						if first {
							winner = i
						}
						isWinner := winner == i
						mu.Unlock()

						if first {
							unsubscribeLosers(i)
						}

						if isWinner {
							destination.NextWithContext(ctx, value)
						}
					},
					func(ctx context.Context, err error) {
						mu.Lock()
						first := winner == -1
						if first {
							winner = i
						}
						isWinner := winner == i
						mu.Unlock()

						if first {
							unsubscribeLosers(i)
						}

						if isWinner {
							destination.ErrorWithContext(ctx, err)
						}
					},
					func(ctx context.Context) {
						mu.Lock()
						first := winner == -1
						if first {
							winner = i
						}
						isWinner := winner == i
						mu.Unlock()

						if first {
							unsubscribeLosers(i)
						}

						if isWinner {
							destination.CompleteWithContext(ctx)
						}
					},
				),
			)
		}

		return func() {
			for _, sub := range subs {
				if sub != nil {
					sub.Unsubscribe()
				}
			}
		}
	})
}

// CombineLatest subscribes to every source concurrently and, once each has
// emitted at least one value, forwards the slice of their latest values
// every time any source emits. It completes once every source has
// completed, and fails as soon as any source fails.
func CombineLatest[T any](sources ...Observable[T]) Observable[[]T] {
	return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[[]T]) Teardown {
		n := len(sources)
		if n == 0 {
			destination.CompleteWithContext(subscriberCtx)
			return nil
		}

		var mu sync.Mutex
		latest := make([]T, n)
		hasValue := make([]bool, n)
		completedCount := 0
		done := false

		emit := func(ctx context.Context) {
			for _, ok := range hasValue {
				if !ok {
					return
				}
			}

			snapshot := make([]T, n)
			copy(snapshot, latest)
			destination.NextWithContext(ctx, snapshot)
		}

		subscription := NewSubscription(nil)

		for i, s := range sources {
			i := i
			sub := s.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						mu.Lock()
						latest[i] = value
						hasValue[i] = true
						mu.Unlock()

						emit(ctx)
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
						completedCount++
						finish := completedCount == n && !done
						if finish {
							done = true
						}
						mu.Unlock()

						if finish {
							destination.CompleteWithContext(ctx)
						}
					},
				),
			)
			subscription.Add(sub.Unsubscribe)
		}

		return subscription.Unsubscribe
	})
}

// Zip subscribes to every source concurrently and, once every source has
// buffered at least one unpaired value, forwards the slice of values at
// matching positions. It completes as soon as any source has exhausted its
// buffered values and completed.
func Zip[T any](sources ...Observable[T]) Observable[[]T] {
	return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[[]T]) Teardown {
		n := len(sources)
		if n == 0 {
			destination.CompleteWithContext(subscriberCtx)
			return nil
		}

		var mu sync.Mutex
		buffers := make([][]T, n)
		completed := make([]bool, n)
		done := false

		tryEmit := func(ctx context.Context) {
			for {
				for _, buf := range buffers {
					if len(buf) == 0 {
						return
					}
				}

				row := make([]T, n)
				for i := range buffers {
					row[i] = buffers[i][0]
					buffers[i] = buffers[i][1:]
				}

				destination.NextWithContext(ctx, row)
			}
		}

		// finishIfExhausted completes the stream once any source has both
		// completed and drained its paired buffer, so a source that races
		// ahead of its peers and completes early still ends Zip as soon as
		// tryEmit later empties its buffer, not only at the moment its own
		// completion notification arrived.
		finishIfExhausted := func(ctx context.Context) {
			for i := range buffers {
				if completed[i] && len(buffers[i]) == 0 {
					finish := !done
					done = true

					if finish {
						destination.CompleteWithContext(ctx)
					}
					return
				}
			}
		}

		subscription := NewSubscription(nil)

		for i, s := range sources {
			i := i
			sub := s.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						mu.Lock()
						buffers[i] = append(buffers[i], value)
						tryEmit(ctx)
						finishIfExhausted(ctx)
						mu.Unlock()
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
						completed[i] = true
						finishIfExhausted(ctx)
						mu.Unlock()
					},
				),
			)
			subscription.Add(sub.Unsubscribe)
		}

		return subscription.Unsubscribe
	})
}

// WithLatestFrom forwards each source value paired with the most recent
// value observed from `other`. Values from source emitted before `other` has
// produced its first value are dropped. `other` completing or failing does
// not affect source.
func WithLatestFrom[T, U any](other Observable[U]) func(Observable[T]) Observable[Pair2[T, U]] {
	return func(source Observable[T]) Observable[Pair2[T, U]] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[Pair2[T, U]]) Teardown {
			var mu sync.Mutex
			var latest U
			hasLatest := false

			otherSub := other.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(_ context.Context, value U) {
						mu.Lock()
						latest = value
						hasLatest = true
						mu.Unlock()
					},
					func(context.Context, error) {},
					func(context.Context) {},
				),
			)

			sourceSub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						mu.Lock()
						l, ok := latest, hasLatest
						mu.Unlock()

						if ok {
							destination.NextWithContext(ctx, Pair2[T, U]{First: value, Second: l})
						}
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return func() {
				sourceSub.Unsubscribe()
				otherSub.Unsubscribe()
			}
		})
	}
}

// Pair2 is the (first, second) tuple emitted by WithLatestFrom.
type Pair2[A, B any] struct {
	First  A
	Second B
}
