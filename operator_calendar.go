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
	"crypto/sha256"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrInvalidItem is a sentinel that a validator given to Validate can return
// to reject a value. Validate itself forwards whatever error the validator
// returns and never substitutes ErrInvalidItem.
var ErrInvalidItem = errors.New("ro: value rejected by validator")

// Serialize marshals each upstream value to its JSON representation. A
// marshal failure terminates the stream with that error.
func Serialize[T any]() func(Observable[T]) Observable[string] {
	return func(source Observable[T]) Observable[string] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[string]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, v T) {
						b, err := json.Marshal(v)
						if err != nil {
							destination.ErrorWithContext(ctx, err)
							return
						}

						destination.NextWithContext(ctx, string(b))
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// Unserialize unmarshals each upstream JSON string into T. A parse failure
// terminates the stream with that error.
func Unserialize[T any]() func(Observable[string]) Observable[T] {
	return func(source Observable[string]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, s string) {
						var out T
						if err := json.Unmarshal([]byte(s), &out); err != nil {
							destination.ErrorWithContext(ctx, err)
							return
						}

						destination.NextWithContext(ctx, out)
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// Validate runs `validator` against every upstream value, forwarding the
// (possibly derived) context and value downstream when it returns a nil
// error, and terminating the stream with that error otherwise.
func Validate[T any](validator func(ctx context.Context, item T) (context.Context, error)) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, v T) {
						newCtx, err := validator(ctx, v)
						if err != nil {
							destination.ErrorWithContext(newCtx, err)
							return
						}

						destination.NextWithContext(newCtx, v)
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// FilterByParticipant forwards only payloads that mention `participant` as a
// substring. An empty participant matches everything.
func FilterByParticipant(participant string) func(Observable[string]) Observable[string] {
	return func(source Observable[string]) Observable[string] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[string]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, s string) {
						if participant == "" || strings.Contains(s, participant) {
							destination.NextWithContext(ctx, s)
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

// FilterByTimeWindow forwards only payloads that embed an RFC3339 timestamp
// falling within [start, end].
func FilterByTimeWindow(start, end time.Time) func(Observable[string]) Observable[string] {
	return func(source Observable[string]) Observable[string] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[string]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, s string) {
						if timeWindowMatch(s, start, end) {
							destination.NextWithContext(ctx, s)
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

// Dedup suppresses payloads whose SHA-256 content hash was already seen on
// this subscription, regardless of position (unlike DistinctUntilChanged,
// which only compares against the immediately preceding value).
func Dedup() func(Observable[string]) Observable[string] {
	return func(source Observable[string]) Observable[string] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[string]) Teardown {
			seen := map[[sha256.Size]byte]struct{}{}

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, s string) {
						key := sha256.Sum256([]byte(s))
						if _, ok := seen[key]; ok {
							return
						}

						seen[key] = struct{}{}
						destination.NextWithContext(ctx, s)
					},
					destination.ErrorWithContext,
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// timeWindowMatch scans s for any RFC3339 timestamp (with a "Z" or a numeric
// offset, with or without fractional seconds) and reports whether one falls
// within [start, end].
func timeWindowMatch(s string, start, end time.Time) bool {
	const minLen = len("2006-01-02T15:04:05Z")
	const maxLen = len(time.RFC3339Nano)

	for i := 0; i+minLen <= len(s); i++ {
		for j := i + minLen; j <= len(s) && j-i <= maxLen; j++ {
			t, err := time.Parse(time.RFC3339, s[i:j])
			if err != nil {
				continue
			}

			if !t.Before(start) && !t.After(end) {
				return true
			}
		}
	}

	return false
}
