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

import "sync/atomic"

// ConcurrencyMode selects the synchronization strategy used by a Subscriber
// to serialize calls into its destination Observer.
type ConcurrencyMode uint8

const (
	// ConcurrencyModeSafe serializes notifications behind a real mutex. Safe
	// for any number of concurrent producers.
	ConcurrencyModeSafe ConcurrencyMode = iota
	// ConcurrencyModeUnsafe performs no synchronization. The caller must
	// guarantee that notifications are never delivered concurrently.
	ConcurrencyModeUnsafe
	// ConcurrencyModeEventuallySafe serializes behind a real mutex but drops
	// notifications instead of blocking when the lock is already held.
	ConcurrencyModeEventuallySafe
	// ConcurrencyModeSingleProducer assumes a single producer goroutine and
	// uses a lockless, atomics-only fast path.
	ConcurrencyModeSingleProducer
)

// Backpressure selects what a Subscriber does when it cannot immediately
// deliver a notification to its destination.
type Backpressure uint8

const (
	// BackpressureBlock blocks the producer until the destination is free.
	BackpressureBlock Backpressure = iota
	// BackpressureDrop drops the notification and reports it via
	// OnDroppedNotification instead of blocking the producer.
	BackpressureDrop
)

// captureObserverPanics controls the default panic-capture policy applied by
// NewObserver / NewObserverWithContext. It does not affect observers built
// with the explicit Unsafe constructors, which never capture.
var captureObserverPanics atomic.Bool

func init() {
	captureObserverPanics.Store(true)
}

// CaptureObserverPanics reports whether newly constructed (non-unsafe)
// observers wrap their callbacks with panic recovery.
func CaptureObserverPanics() bool {
	return captureObserverPanics.Load()
}

// SetCaptureObserverPanics changes the default panic-capture policy applied
// to observers constructed after this call returns. Existing observers keep
// the policy that was in effect when they were built.
func SetCaptureObserverPanics(capture bool) {
	captureObserverPanics.Store(capture)
}
