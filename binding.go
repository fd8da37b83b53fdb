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

// CancelBag aggregates several bindings (or any other Subscription) so they
// can be torn down together, e.g. when a view or a request handler goes out
// of scope. It is a thin, more intention-revealing wrapper around
// Subscription.
type CancelBag struct {
	subscription Subscription
}

// NewCancelBag creates an empty CancelBag.
func NewCancelBag() *CancelBag {
	return &CancelBag{subscription: NewSubscription(nil)}
}

// Hold adds `sub` to the bag; it will be unsubscribed when Cancel is called.
func (b *CancelBag) Hold(sub Subscription) {
	b.subscription.AddUnsubscribable(sub)
}

// Cancel unsubscribes every Subscription held by the bag.
func (b *CancelBag) Cancel() {
	b.subscription.Unsubscribe()
}

// Bind subscribes to source and, for every value it emits, invokes `apply`
// with the target and the value, scheduled on `on`. This is the sink
// boundary between a reactive pipeline and an imperative target (a UI
// widget, a struct field, an external API) that does not itself speak
// Observable. The returned Subscription tears down the upstream
// subscription; errors observed from source are forwarded to
// OnUnhandledError since a binding has no downstream Observer of its own.
func Bind[T, Target any](source Observable[T], target Target, on ExecutionContext, apply func(target Target, value T)) Subscription {
	if on == nil {
		on = Immediate()
	}

	return source.Subscribe(NewObserver(
		func(value T) {
			on.Schedule(func() { apply(target, value) })
		},
		func(err error) {
			on.Schedule(func() { OnUnhandledError(context.Background(), err) })
		},
		func() {},
	))
}
