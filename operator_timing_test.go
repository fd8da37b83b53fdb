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
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetry_FailedSourceRetriesExactAttemptCount(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var attempts int32

	source := NewObservable(func(destination Observer[int]) Teardown {
		atomic.AddInt32(&attempts, 1)
		destination.Error(ErrTimeout)
		return nil
	})

	_, err := Collect(Retry[int](3)(source))

	is.ErrorIs(err, ErrTimeout)
	is.EqualValues(4, atomic.LoadInt32(&attempts))
}

func TestRetry_ZeroRetriesIsASingleAttempt(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var attempts int32

	source := NewObservable(func(destination Observer[int]) Teardown {
		atomic.AddInt32(&attempts, 1)
		destination.Error(ErrTimeout)
		return nil
	})

	_, err := Collect(Retry[int](0)(source))

	is.ErrorIs(err, ErrTimeout)
	is.EqualValues(1, atomic.LoadInt32(&attempts))
}

func TestRetry_SucceedsBeforeExhaustingRetries(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var attempts int32

	source := NewObservable(func(destination Observer[int]) Teardown {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			destination.Error(ErrTimeout)
			return nil
		}

		destination.Next(42)
		destination.Complete()
		return nil
	})

	values, err := Collect(Retry[int](3)(source))

	is.NoError(err)
	is.Equal([]int{42}, values)
	is.EqualValues(3, atomic.LoadInt32(&attempts))
}
