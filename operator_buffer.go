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

// Buffer collects upstream values into slices of exactly `size` elements and
// emits a slice every time it fills up. A trailing partial slice, pending
// when source completes, is discarded rather than flushed short. size<=0
// panics.
func Buffer[T any](size int) func(Observable[T]) Observable[[]T] {
	if size <= 0 {
		panic("ro: Buffer size must be positive")
	}

	return func(source Observable[T]) Observable[[]T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[[]T]) Teardown {
			buffer := make([]T, 0, size)

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						buffer = append(buffer, value)

						if len(buffer) == size {
							destination.NextWithContext(ctx, buffer)
							buffer = make([]T, 0, size)
						}
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// WindowCount splits source into consecutive, non-overlapping inner
// Observables of at most `size` values each. Each inner window is itself an
// Observable[T], emitted as soon as its first element arrives; it completes
// once it has received `size` values or source completes, whichever comes
// first. size<=0 panics.
func WindowCount[T any](size int) func(Observable[T]) Observable[Observable[T]] {
	if size <= 0 {
		panic("ro: WindowCount size must be positive")
	}

	return func(source Observable[T]) Observable[Observable[T]] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[Observable[T]]) Teardown {
			var windowSubject Subject[T]
			count := 0

			openWindow := func(ctx context.Context) {
				windowSubject = NewPublishSubject[T]()
				destination.NextWithContext(ctx, windowSubject.AsObservable())
				count = 0
			}

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value T) {
						if windowSubject == nil {
							openWindow(ctx)
						}

						windowSubject.NextWithContext(ctx, value)
						count++

						if count == size {
							windowSubject.CompleteWithContext(ctx)
							windowSubject = nil
						}
					},
					func(ctx context.Context, err error) {
						if windowSubject != nil {
							windowSubject.ErrorWithContext(ctx, err)
						}

						destination.ErrorWithContext(ctx, err)
					},
					func(ctx context.Context) {
						if windowSubject != nil {
							windowSubject.CompleteWithContext(ctx)
						}

						destination.CompleteWithContext(ctx)
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}
