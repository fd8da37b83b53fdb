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

// EventHooks are the optional side-effect callbacks invoked by HandleEvents
// at each point of an Observable's lifecycle. Every field is optional; nil
// hooks are skipped.
type EventHooks[T any] struct {
	OnSubscribe func(ctx context.Context)
	OnNext      func(ctx context.Context, value T)
	OnError     func(ctx context.Context, err error)
	OnComplete  func(ctx context.Context)
	OnUnsubscribe func()
}

// HandleEvents runs the given hooks as values and terminals pass through
// unchanged, for debugging, metrics, or logging side effects.
func HandleEvents[T any](hooks EventHooks[T]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			if hooks.OnSubscribe != nil {
				hooks.OnSubscribe(subscriberCtx)
			}

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						if hooks.OnNext != nil {
							hooks.OnNext(ctx, value)
						}

						destination.NextWithContext(ctx, value)
					},
					func(ctx context.Context, err error) {
						if hooks.OnError != nil {
							hooks.OnError(ctx, err)
						}

						destination.ErrorWithContext(ctx, err)
					},
					func(ctx context.Context) {
						if hooks.OnComplete != nil {
							hooks.OnComplete(ctx)
						}

						destination.CompleteWithContext(ctx)
					},
				),
			)

			return func() {
				sub.Unsubscribe()

				if hooks.OnUnsubscribe != nil {
					hooks.OnUnsubscribe()
				}
			}
		})
	}
}

// SubscribeOn defers the call to source.SubscribeWithContext itself onto
// `ec`, instead of running it on the caller's goroutine. Useful when
// subscribing triggers blocking work (e.g. opening a file or a connection).
func SubscribeOn[T any](ec ExecutionContext) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex
			var sub Subscription
			cancelled := false

			ec.Schedule(func() {
				mu.Lock()
				if cancelled {
					mu.Unlock()
					return
				}
				mu.Unlock()

				s := source.SubscribeWithContext(subscriberCtx, destination)

				mu.Lock()
				sub = s
				mu.Unlock()
			})

			return func() {
				mu.Lock()
				cancelled = true
				s := sub
				mu.Unlock()

				if s != nil {
					s.Unsubscribe()
				}
			}
		})
	}
}

// ReceiveOn defers the delivery of each notification from source onto `ec`,
// instead of delivering it synchronously on the producing goroutine.
func ReceiveOn[T any](ec ExecutionContext) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						ec.Schedule(func() { destination.NextWithContext(ctx, value) })
					},
					func(ctx context.Context, err error) {
						ec.Schedule(func() { destination.ErrorWithContext(ctx, err) })
					},
					func(ctx context.Context) {
						ec.Schedule(func() { destination.CompleteWithContext(ctx) })
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}

// Pauser controls the pause state of the Observable returned by Pausable.
type Pauser struct {
	mu     sync.Mutex
	paused bool
	flush  func()
}

// SetPaused toggles the pause state. Resuming (paused=false) synchronously
// flushes any values buffered while paused, in arrival order.
func (p *Pauser) SetPaused(paused bool) {
	p.mu.Lock()
	wasPaused := p.paused
	p.paused = paused
	flush := p.flush
	p.mu.Unlock()

	if wasPaused && !paused && flush != nil {
		flush()
	}
}

// IsPaused reports the current pause state.
func (p *Pauser) IsPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.paused
}

// Pausable wraps source so that, while paused, values arriving from source
// are buffered instead of forwarded, and replayed in order once resumed.
// Errors and completion always pass through immediately, regardless of pause
// state. It returns the wrapped Observable and a Pauser used to control it.
func Pausable[T any](source Observable[T]) (Observable[T], *Pauser) {
	pauser := &Pauser{}

	observable := NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
		var mu sync.Mutex
		var buffer []T

		pauser.mu.Lock()
		pauser.flush = func() {
			mu.Lock()
			pending := buffer
			buffer = nil
			mu.Unlock()

			for _, value := range pending {
				destination.NextWithContext(subscriberCtx, value)
			}
		}
		pauser.mu.Unlock()

		sub := source.SubscribeWithContext(
			subscriberCtx,
			NewObserverWithContext(
				func(ctx context.Context, value T) {
					if pauser.IsPaused() {
						mu.Lock()
						buffer = append(buffer, value)
						mu.Unlock()
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

	return observable, pauser
}
