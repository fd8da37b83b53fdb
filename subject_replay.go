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
	"sync/atomic"

	"github.com/samber/lo"
)

var _ Subject[int] = (*replaySubjectImpl[int])(nil)

// NewReplaySubject broadcasts a value to observers (fanout), replaying the
// last `bufferSize` values to every new subscriber before switching it to
// live broadcast. bufferSize<=0 replays an unbounded history.
func NewReplaySubject[T any](bufferSize int) Subject[T] {
	return &replaySubjectImpl[T]{
		status:        KindNext,
		bufferSize:    bufferSize,
		observers:     sync.Map{},
		observerIndex: 0,
		err:           lo.Tuple2[context.Context, error]{},
	}
}

type replaySubjectImpl[T any] struct {
	status Kind

	mu         sync.Mutex
	bufferSize int
	buffer     []T

	observers     sync.Map
	observerIndex uint32

	err lo.Tuple2[context.Context, error]
}

func (s *replaySubjectImpl[T]) Subscribe(destination Observer[T]) Subscription {
	return s.SubscribeWithContext(context.Background(), destination)
}

func (s *replaySubjectImpl[T]) SubscribeWithContext(subscriberCtx context.Context, destination Observer[T]) Subscription {
	subscription := NewSubscriber(destination)

	s.mu.Lock()
	history := make([]T, len(s.buffer))
	copy(history, s.buffer)
	s.mu.Unlock()

	for _, v := range history {
		subscription.NextWithContext(subscriberCtx, v)
	}

	switch s.status {
	case KindNext:
		// fallthrough
	case KindError:
		subscription.ErrorWithContext(s.err.A, s.err.B)
		return subscription
	case KindComplete:
		subscription.CompleteWithContext(subscriberCtx)
		return subscription
	}

	index := atomic.AddUint32(&s.observerIndex, 1) - 1
	s.observers.Store(index, subscription)

	subscription.Add(func() {
		s.observers.Delete(index)
	})

	return subscription
}

func (s *replaySubjectImpl[T]) unsubscribeAll() {
	s.observers.Range(func(key, _ any) bool {
		s.observers.Delete(key)
		return true
	})
}

func (s *replaySubjectImpl[T]) Next(value T) {
	s.NextWithContext(context.Background(), value)
}

func (s *replaySubjectImpl[T]) NextWithContext(ctx context.Context, value T) {
	if s.status != KindNext {
		OnDroppedNotification(ctx, NewNotificationNext(value))
		return
	}

	s.mu.Lock()
	s.buffer = append(s.buffer, value)
	if s.bufferSize > 0 && len(s.buffer) > s.bufferSize {
		s.buffer = s.buffer[len(s.buffer)-s.bufferSize:]
	}
	s.mu.Unlock()

	s.broadcastNext(ctx, value)
}

func (s *replaySubjectImpl[T]) Error(err error) {
	s.ErrorWithContext(context.Background(), err)
}

func (s *replaySubjectImpl[T]) ErrorWithContext(ctx context.Context, err error) {
	if s.status == KindNext {
		s.err = lo.T2(ctx, err)
		s.status = KindError
		s.broadcastError(ctx, err)
	} else {
		OnDroppedNotification(ctx, NewNotificationError[T](err))
	}

	s.unsubscribeAll()
}

func (s *replaySubjectImpl[T]) Complete() {
	s.CompleteWithContext(context.Background())
}

func (s *replaySubjectImpl[T]) CompleteWithContext(ctx context.Context) {
	if s.status == KindNext {
		s.status = KindComplete
		s.broadcastComplete(ctx)
	} else {
		OnDroppedNotification(ctx, NewNotificationComplete[T]())
	}

	s.unsubscribeAll()
}

func (s *replaySubjectImpl[T]) HasObserver() (has bool) {
	s.observers.Range(func(key, value any) bool {
		has = true
		return false
	})

	return has
}

func (s *replaySubjectImpl[T]) CountObservers() int {
	count := 0

	s.observers.Range(func(key, value any) bool {
		count++
		return true
	})

	return count
}

func (s *replaySubjectImpl[T]) IsClosed() bool {
	return s.status != KindNext
}

func (s *replaySubjectImpl[T]) HasThrown() bool {
	return s.status == KindError
}

func (s *replaySubjectImpl[T]) IsCompleted() bool {
	return s.status == KindComplete
}

func (s *replaySubjectImpl[T]) AsObservable() Observable[T] {
	return s
}

func (s *replaySubjectImpl[T]) AsObserver() Observer[T] {
	return s
}

func (s *replaySubjectImpl[T]) broadcastNext(ctx context.Context, value T) {
	s.observers.Range(func(_, observer any) bool {
		observer.(Observer[T]).NextWithContext(ctx, value) //nolint:errcheck,forcetypeassert
		return true
	})
}

func (s *replaySubjectImpl[T]) broadcastError(ctx context.Context, err error) {
	s.observers.Range(func(_, observer any) bool {
		observer.(Observer[T]).ErrorWithContext(ctx, err) //nolint:errcheck,forcetypeassert
		return true
	})
}

func (s *replaySubjectImpl[T]) broadcastComplete(ctx context.Context) {
	s.observers.Range(func(_, observer any) bool {
		observer.(Observer[T]).CompleteWithContext(ctx) //nolint:errcheck,forcetypeassert
		return true
	})
}

// NewBehaviorSubject is a ReplaySubject seeded with an initial value and a
// buffer of 1: every new subscriber immediately receives the current value,
// and every subsequent subscriber receives whichever value was most recently
// pushed.
func NewBehaviorSubject[T any](initial T) Subject[T] {
	s := NewReplaySubject[T](1).(*replaySubjectImpl[T])
	s.buffer = []T{initial}
	return s
}
