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

// Observable describes a producer of a sequence of values. It carries no
// state of its own: Subscribe (or SubscribeWithContext) starts production
// and returns a Subscription that tears the producer down on Unsubscribe.
type Observable[T any] interface {
	Subscribe(destination Observer[T]) Subscription
	SubscribeWithContext(ctx context.Context, destination Observer[T]) Subscription
}

// Subject is both an Observer (values can be pushed into it from outside)
// and an Observable (it fans those values out to attached observers).
type Subject[T any] interface {
	Observable[T]
	Observer[T]

	// AsObservable narrows the Subject to its read-only Observable facet.
	AsObservable() Observable[T]
	// AsObserver narrows the Subject to its write-only Observer facet.
	AsObserver() Observer[T]

	HasObserver() bool
	CountObservers() int
}

var _ Observable[int] = (*observableImpl[int])(nil)

type observableImpl[T any] struct {
	mode        ConcurrencyMode
	onSubscribe func(ctx context.Context, destination Observer[T]) Teardown
}

func (o *observableImpl[T]) Subscribe(destination Observer[T]) Subscription {
	return o.SubscribeWithContext(context.Background(), destination)
}

func (o *observableImpl[T]) SubscribeWithContext(ctx context.Context, destination Observer[T]) Subscription {
	subscriber := NewSubscriberWithConcurrencyMode(destination, o.mode)

	if si, ok := subscriber.(*subscriberImpl[T]); ok {
		si.setDirectors(destination, !isObserverPanicCaptureDisabled(ctx))
	}

	teardown := o.onSubscribe(ctx, subscriber)
	subscriber.Add(teardown)

	return subscriber
}

// NewObservableWithContext creates a cold Observable whose subscriptions are
// serialized behind a real mutex (ConcurrencyModeSafe). `onSubscribe` is
// invoked once per subscription and must return the Teardown that stops
// production, or nil if there is nothing to release.
func NewObservableWithContext[T any](onSubscribe func(ctx context.Context, destination Observer[T]) Teardown) Observable[T] {
	return &observableImpl[T]{mode: ConcurrencyModeSafe, onSubscribe: onSubscribe}
}

// NewObservable is the context-less variant of NewObservableWithContext.
func NewObservable[T any](onSubscribe func(destination Observer[T]) Teardown) Observable[T] {
	return NewObservableWithContext(func(_ context.Context, destination Observer[T]) Teardown {
		return onSubscribe(destination)
	})
}

// NewUnsafeObservableWithContext creates a cold Observable whose subscriber
// performs no synchronization (ConcurrencyModeUnsafe). The caller must
// guarantee that `onSubscribe` never delivers notifications concurrently.
func NewUnsafeObservableWithContext[T any](onSubscribe func(ctx context.Context, destination Observer[T]) Teardown) Observable[T] {
	return &observableImpl[T]{mode: ConcurrencyModeUnsafe, onSubscribe: onSubscribe}
}

// NewUnsafeObservable is the context-less variant of NewUnsafeObservableWithContext.
func NewUnsafeObservable[T any](onSubscribe func(destination Observer[T]) Teardown) Observable[T] {
	return NewUnsafeObservableWithContext(func(_ context.Context, destination Observer[T]) Teardown {
		return onSubscribe(destination)
	})
}

// NewEventuallySafeObservableWithContext creates a cold Observable whose
// subscriber drops a notification instead of blocking when its destination
// is busy (ConcurrencyModeEventuallySafe).
func NewEventuallySafeObservableWithContext[T any](onSubscribe func(ctx context.Context, destination Observer[T]) Teardown) Observable[T] {
	return &observableImpl[T]{mode: ConcurrencyModeEventuallySafe, onSubscribe: onSubscribe}
}

// NewEventuallySafeObservable is the context-less variant of NewEventuallySafeObservableWithContext.
func NewEventuallySafeObservable[T any](onSubscribe func(destination Observer[T]) Teardown) Observable[T] {
	return NewEventuallySafeObservableWithContext(func(_ context.Context, destination Observer[T]) Teardown {
		return onSubscribe(destination)
	})
}

// NewSingleProducerObservableWithContext creates a cold Observable optimized
// for a single producer goroutine (ConcurrencyModeSingleProducer). It uses a
// lockless atomics-only fast path and must never be fed concurrently.
func NewSingleProducerObservableWithContext[T any](onSubscribe func(ctx context.Context, destination Observer[T]) Teardown) Observable[T] {
	return &observableImpl[T]{mode: ConcurrencyModeSingleProducer, onSubscribe: onSubscribe}
}

// NewSingleProducerObservable is the context-less variant of NewSingleProducerObservableWithContext.
func NewSingleProducerObservable[T any](onSubscribe func(destination Observer[T]) Teardown) Observable[T] {
	return NewSingleProducerObservableWithContext(func(_ context.Context, destination Observer[T]) Teardown {
		return onSubscribe(destination)
	})
}
