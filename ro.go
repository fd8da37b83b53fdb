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
	"fmt"
	"log"
	"sync/atomic"
)

// onUnhandledError and onDroppedNotification hold the process-wide handlers
// invoked on the two out-of-band conditions the engine can hit: an error
// event with nothing downstream to observe it, and a notification dropped
// because its destination had already terminated. atomic.Value lets callers
// swap handlers concurrently with in-flight subscriptions reading them.
var (
	onUnhandledError      atomic.Value // func(context.Context, error)
	onDroppedNotification atomic.Value // func(context.Context, fmt.Stringer)
)

func init() {
	onUnhandledError.Store(IgnoreOnUnhandledError)
	onDroppedNotification.Store(IgnoreOnDroppedNotification)
}

// SetOnUnhandledError installs the handler invoked whenever an error surfaces
// with no observer left to receive it. Passing nil restores the no-op
// default.
func SetOnUnhandledError(fn func(ctx context.Context, err error)) {
	if fn == nil {
		fn = IgnoreOnUnhandledError
	}
	onUnhandledError.Store(fn)
}

// GetOnUnhandledError returns the currently installed unhandled-error handler.
func GetOnUnhandledError() func(ctx context.Context, err error) {
	return onUnhandledError.Load().(func(context.Context, error))
}

// OnUnhandledError invokes the currently installed unhandled-error handler.
func OnUnhandledError(ctx context.Context, err error) {
	GetOnUnhandledError()(ctx, err)
}

// SetOnDroppedNotification installs the handler invoked whenever a
// notification is dropped. Passing nil restores the no-op default.
func SetOnDroppedNotification(fn func(ctx context.Context, notification fmt.Stringer)) {
	if fn == nil {
		fn = IgnoreOnDroppedNotification
	}
	onDroppedNotification.Store(fn)
}

// GetOnDroppedNotification returns the currently installed
// dropped-notification handler.
func GetOnDroppedNotification() func(ctx context.Context, notification fmt.Stringer) {
	return onDroppedNotification.Load().(func(context.Context, fmt.Stringer))
}

// OnDroppedNotification invokes the currently installed dropped-notification
// handler.
func OnDroppedNotification(ctx context.Context, notification fmt.Stringer) {
	GetOnDroppedNotification()(ctx, notification)
}

// IgnoreOnUnhandledError is the default (silent) unhandled-error handler.
func IgnoreOnUnhandledError(ctx context.Context, err error) {}

// IgnoreOnDroppedNotification is the default (silent) dropped-notification
// handler.
func IgnoreOnDroppedNotification(ctx context.Context, notification fmt.Stringer) {}

// DefaultOnUnhandledError logs the error via the standard library logger.
// Install it with SetOnUnhandledError if silent dropping is undesirable.
func DefaultOnUnhandledError(ctx context.Context, err error) {
	if err != nil {
		log.Printf("reactor: unhandled error: %s\n", err.Error())
	}
}

var _ fmt.Stringer = (*Notification[int])(nil)

// DefaultOnDroppedNotification logs the dropped notification via the
// standard library logger. The handler takes a fmt.Stringer rather than a
// Notification[T] directly, since Go does not allow assigning a generic
// function value to a non-generic variable.
func DefaultOnDroppedNotification(ctx context.Context, notification fmt.Stringer) {
	log.Printf("reactor: dropped notification: %s\n", notification.String())
}

// Kind identifies which case a Notification holds: a value, a terminal
// error, or a terminal completion.
type Kind uint8

const (
	KindNext Kind = iota
	KindError
	KindComplete
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "Next"
	case KindError:
		return "Error"
	case KindComplete:
		return "Complete"
	default:
		panic("reactor: unknown notification kind")
	}
}

// Notification is the materialized form of an Observable's event stream: a
// tagged union of a next value, a terminal error, or a terminal completion.
// It lets a single event be captured, stored, and replayed as data rather
// than dispatched immediately through an Observer.
type Notification[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

func (n Notification[T]) String() string {
	switch n.Kind {
	case KindNext:
		return fmt.Sprintf("Next(%+v)", n.Value)
	case KindError:
		if n.Err == nil {
			return "Error(nil)"
		}
		return fmt.Sprintf("Error(%s)", n.Err.Error())
	case KindComplete:
		return "Complete()"
	default:
		panic("reactor: unknown notification kind")
	}
}

// NewNotificationNext wraps value as a Next notification.
func NewNotificationNext[T any](value T) Notification[T] {
	return Notification[T]{Kind: KindNext, Value: value}
}

// NewNotificationError wraps err as an Error notification.
func NewNotificationError[T any](err error) Notification[T] {
	return Notification[T]{Kind: KindError, Err: err}
}

// NewNotificationComplete builds a Complete notification.
func NewNotificationComplete[T any]() Notification[T] {
	return Notification[T]{Kind: KindComplete}
}

// processNotification dispatches n to the matching callback and reports
// whether the stream continues afterward (true only for KindNext).
func processNotification[T any](n Notification[T], onNext func(T), onError func(error), onComplete func()) bool {
	switch n.Kind {
	case KindNext:
		onNext(n.Value)
		return true
	case KindError:
		onError(n.Err)
		return false
	case KindComplete:
		onComplete()
		return false
	default:
		panic("reactor: unknown notification kind")
	}
}

func processNotificationWithContext[T any](ctx context.Context, n Notification[T], onNext func(context.Context, T), onError func(context.Context, error), onComplete func(context.Context)) bool {
	switch n.Kind {
	case KindNext:
		onNext(ctx, n.Value)
		return true
	case KindError:
		onError(ctx, n.Err)
		return false
	case KindComplete:
		onComplete(ctx)
		return false
	default:
		panic("reactor: unknown notification kind")
	}
}

func processNotificationWithObserver[T any](n Notification[T], destination Observer[T]) bool {
	return processNotificationWithContext(
		context.Background(),
		n,
		destination.NextWithContext,
		destination.ErrorWithContext,
		destination.CompleteWithContext,
	)
}

func processNotificationWithObserverAndContext[T any](ctx context.Context, n Notification[T], destination Observer[T]) bool {
	return processNotificationWithContext(
		ctx,
		n,
		destination.NextWithContext,
		destination.ErrorWithContext,
		destination.CompleteWithContext,
	)
}
