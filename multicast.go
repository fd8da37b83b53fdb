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

// Connectable is an Observable that does not subscribe to its upstream
// source until Connect is called. Every Observer that subscribed beforehand
// shares the single upstream subscription created by Connect.
type Connectable[T any] interface {
	Observable[T]

	// Connect subscribes the underlying Subject to the upstream source,
	// starting the shared execution. Calling Connect more than once has no
	// effect until the returned Subscription is unsubscribed.
	Connect() Subscription
}

var _ Connectable[int] = (*connectableImpl[int])(nil)

type connectableImpl[T any] struct {
	source Observable[T]
	subject Subject[T]

	mu          sync.Mutex
	connection  Subscription
}

func (c *connectableImpl[T]) Subscribe(destination Observer[T]) Subscription {
	return c.subject.Subscribe(destination)
}

func (c *connectableImpl[T]) SubscribeWithContext(ctx context.Context, destination Observer[T]) Subscription {
	return c.subject.SubscribeWithContext(ctx, destination)
}

func (c *connectableImpl[T]) Connect() Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connection != nil && !c.connection.IsClosed() {
		return c.connection
	}

	c.connection = c.source.Subscribe(c.subject.AsObserver())
	return c.connection
}

// Publish returns a Connectable that multicasts source through a
// PublishSubject: subscribers only see values emitted after Connect was
// called and they themselves had subscribed.
func Publish[T any](source Observable[T]) Connectable[T] {
	return &connectableImpl[T]{source: source, subject: NewPublishSubject[T]()}
}

// Replay returns a Connectable that multicasts source through a
// ReplaySubject buffering up to `limit` values (limit<=0 means unbounded):
// every subscriber, even one that arrives after Connect, receives the
// buffered history before switching to live broadcast.
func Replay[T any](source Observable[T], limit int) Connectable[T] {
	return &connectableImpl[T]{source: source, subject: NewReplaySubject[T](limit)}
}

// Share multicasts source to every concurrent subscriber through a
// PublishSubject, automatically connecting to source when the first
// subscriber arrives and disconnecting when the last one unsubscribes. A
// subsequent subscriber arriving after the count drops to zero triggers a
// fresh subscription to source.
func Share[T any](source Observable[T]) Observable[T] {
	return refCount[T](source, func() Subject[T] { return NewPublishSubject[T]() })
}

// ShareReplayLatest behaves like Share, but new subscribers (including ones
// that subscribe after the source already produced a value) immediately
// receive the most recently emitted value before switching to live
// broadcast. This is a ref-counted multicast; it does not sample source on
// an external trigger — see ReplayLatest for that operator.
func ShareReplayLatest[T any](source Observable[T]) Observable[T] {
	return refCount[T](source, func() Subject[T] { return NewReplaySubject[T](1) })
}

// ReplayLatest re-emits the most recently observed value of source each time
// trigger produces a value, once source has produced at least one value of
// its own. Trigger values themselves are not forwarded. ReplayLatest
// completes when source completes; a failure from either source or trigger
// propagates immediately and tears down both subscriptions.
func ReplayLatest[T, U any](trigger Observable[U]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex
			var latest T
			hasLatest := false

			sourceSub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(_ context.Context, value T) {
						mu.Lock()
						latest = value
						hasLatest = true
						mu.Unlock()
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			triggerSub := trigger.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, _ U) {
						mu.Lock()
						value, ok := latest, hasLatest
						mu.Unlock()

						if ok {
							destination.NextWithContext(ctx, value)
						}
					},
					destination.ErrorWithContext,
					func(context.Context) {},
				),
			)

			return func() {
				sourceSub.Unsubscribe()
				triggerSub.Unsubscribe()
			}
		})
	}
}

func refCount[T any](source Observable[T], newSubject func() Subject[T]) Observable[T] {
	var mu sync.Mutex
	var subject Subject[T]
	var connection Subscription
	count := 0

	return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
		mu.Lock()
		if count == 0 {
			subject = newSubject()
			connection = source.Subscribe(subject.AsObserver())
		}
		count++
		currentSubject := subject
		mu.Unlock()

		sub := currentSubject.SubscribeWithContext(subscriberCtx, destination)

		return func() {
			sub.Unsubscribe()

			mu.Lock()
			count--
			shouldDisconnect := count == 0
			conn := connection
			if shouldDisconnect {
				connection = nil
				subject = nil
			}
			mu.Unlock()

			if shouldDisconnect && conn != nil {
				conn.Unsubscribe()
			}
		}
	})
}
