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

	"github.com/stretchr/testify/assert"
)

func TestReplayLatest_EmitsOnTriggerOnceSourceHasAValue(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	source := NewPublishSubject[int]()
	trigger := NewPublishSubject[struct{}]()

	var received []int
	sub := ReplayLatest[int](trigger.AsObservable())(source.AsObservable()).Subscribe(NewObserver(
		func(value int) { received = append(received, value) },
		func(error) {},
		func() {},
	))
	defer sub.Unsubscribe()

	trigger.Next(struct{}{})
	is.Empty(received)

	source.Next(1)
	trigger.Next(struct{}{})
	trigger.Next(struct{}{})
	is.Equal([]int{1, 1}, received)

	source.Next(2)
	trigger.Next(struct{}{})
	is.Equal([]int{1, 1, 2}, received)
}

func TestReplayLatest_CompletesWhenSourceCompletes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	source := NewPublishSubject[int]()
	trigger := NewPublishSubject[struct{}]()

	completed := false
	sub := ReplayLatest[int](trigger.AsObservable())(source.AsObservable()).Subscribe(NewObserver(
		func(int) {},
		func(error) {},
		func() { completed = true },
	))
	defer sub.Unsubscribe()

	source.Next(1)
	source.Complete()

	is.True(completed)
}
