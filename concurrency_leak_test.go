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
	"testing"
	"time"

	"go.uber.org/goleak"
)

// These guard invariant 9 from the testable-properties list: cancellation
// must not leave dangling timers or goroutines behind. Every operator here
// owns a goroutine or a timer that must be torn down by Unsubscribe.

func TestInterval_UnsubscribeStopsGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := Interval(time.Millisecond).Subscribe(NoopObserver[int64]())
	time.Sleep(5 * time.Millisecond)
	sub.Unsubscribe()
}

func TestSequence_UnsubscribeStopsGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := Sequence([]int{1, 2, 3}, time.Millisecond).Subscribe(NoopObserver[int]())
	sub.Unsubscribe()
}

func TestTimeout_UnsubscribeStopsTimer(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := Never[int]()
	pipeline := Timeout[int](time.Hour)(source)

	sub := pipeline.Subscribe(NoopObserver[int]())
	sub.Unsubscribe()
}

func TestRetry_UnsubscribeAfterExhaustedRetriesLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := Throw[int](ErrTimeout)
	pipeline := Retry[int](5)(source)

	sub := pipeline.Subscribe(NoopObserver[int]())
	sub.Unsubscribe()
}
