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
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrClampLowerLessThanUpper is returned (as a panic value, see Clamp) when a
// clamp's lower bound is greater than its upper bound.
var ErrClampLowerLessThanUpper = errors.New("ro: clamp lower bound must be less than or equal to upper bound")

// ErrEmptySource is the failure used by operators that require at least one
// upstream value (e.g. First, Last) when upstream completes early.
var ErrEmptySource = errors.New("ro: source completed without emitting a value")

// ErrIndexOutOfRange is the failure used by ElementAt when upstream completes
// before producing the requested index.
var ErrIndexOutOfRange = errors.New("ro: index out of range")

// ErrTimeout is the default failure used by Timeout when no replacement error
// is supplied.
var ErrTimeout = errors.New("ro: timeout waiting for upstream notification")

// newObserverError wraps a panic recovered from inside an observer callback.
func newObserverError(err error) error {
	return fmt.Errorf("observer panic: %w", err)
}

// newUnsubscriptionError wraps a panic recovered from inside a teardown.
func newUnsubscriptionError(err error) error {
	return fmt.Errorf("teardown panic: %w", err)
}

// recoverValueToError converts an arbitrary recover() value into an error.
func recoverValueToError(e any) error {
	if err, ok := e.(error); ok {
		return err
	}

	return fmt.Errorf("%v", e)
}

// recoverUnhandledError runs fn, routing any panic to the globally
// configured OnUnhandledError hook instead of crashing the goroutine. It is
// used by sources that run their producing loop on a dedicated goroutine
// (WatchFile, WatchURL, Interval, Sequence), where there is no synchronous
// caller left to observe a propagated panic.
func recoverUnhandledError(fn func()) {
	lo.TryCatchWithErrorValue(
		func() error {
			fn()
			return nil
		},
		func(e any) {
			OnUnhandledError(context.Background(), recoverValueToError(e))
		},
	)
}
