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

package roics

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/relaystream/reactor"
)

// FilterVEventByParticipant forwards only events whose ATTENDEE properties
// mention participant as a substring. An empty participant matches
// everything.
func FilterVEventByParticipant(participant string) func(ro.Observable[*ics.VEvent]) ro.Observable[*ics.VEvent] {
	return func(source ro.Observable[*ics.VEvent]) ro.Observable[*ics.VEvent] {
		return ro.NewUnsafeObservableWithContext(func(ctx context.Context, destination ro.Observer[*ics.VEvent]) ro.Teardown {
			sub := source.SubscribeWithContext(ctx, ro.NewObserverWithContext(
				func(ctx context.Context, e *ics.VEvent) {
					if participant == "" {
						destination.NextWithContext(ctx, e)
						return
					}

					for _, p := range e.GetProperties("ATTENDEE") {
						if p != nil && p.Value != "" && strings.Contains(p.Value, participant) {
							destination.NextWithContext(ctx, e)
							return
						}
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// FilterVEventByTimeWindow forwards only events whose DTSTART falls within
// [start, end]. Events with a missing or unparsable DTSTART are dropped.
func FilterVEventByTimeWindow(start, end time.Time) func(ro.Observable[*ics.VEvent]) ro.Observable[*ics.VEvent] {
	return func(source ro.Observable[*ics.VEvent]) ro.Observable[*ics.VEvent] {
		return ro.NewUnsafeObservableWithContext(func(ctx context.Context, destination ro.Observer[*ics.VEvent]) ro.Teardown {
			sub := source.SubscribeWithContext(ctx, ro.NewObserverWithContext(
				func(ctx context.Context, e *ics.VEvent) {
					dt := e.GetProperty(ics.ComponentPropertyDtStart)
					if dt == nil || dt.Value == "" {
						return
					}

					t, err := parseICSTime(dt.Value)
					if err != nil {
						return
					}

					if (t.Equal(start) || t.After(start)) && (t.Equal(end) || t.Before(end)) {
						destination.NextWithContext(ctx, e)
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// DedupVEvents suppresses events whose UID+DTSTART hash was already seen on
// this subscription.
func DedupVEvents() func(ro.Observable[*ics.VEvent]) ro.Observable[*ics.VEvent] {
	return func(source ro.Observable[*ics.VEvent]) ro.Observable[*ics.VEvent] {
		return ro.NewUnsafeObservableWithContext(func(ctx context.Context, destination ro.Observer[*ics.VEvent]) ro.Teardown {
			seen := map[[sha256.Size]byte]struct{}{}

			sub := source.SubscribeWithContext(ctx, ro.NewObserverWithContext(
				func(ctx context.Context, e *ics.VEvent) {
					var uid, dt string
					if p := e.GetProperty("UID"); p != nil {
						uid = p.Value
					}
					if p := e.GetProperty("DTSTART"); p != nil {
						dt = p.Value
					}

					key := sha256.Sum256([]byte(uid + "|" + dt))
					if _, ok := seen[key]; ok {
						return
					}

					seen[key] = struct{}{}
					destination.NextWithContext(ctx, e)
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// SerializeVEvent renders each event's UID, DTSTART and SUMMARY properties as
// a flat JSON object.
func SerializeVEvent() func(ro.Observable[*ics.VEvent]) ro.Observable[string] {
	return func(source ro.Observable[*ics.VEvent]) ro.Observable[string] {
		return ro.NewUnsafeObservableWithContext(func(ctx context.Context, destination ro.Observer[string]) ro.Teardown {
			sub := source.SubscribeWithContext(ctx, ro.NewObserverWithContext(
				func(ctx context.Context, e *ics.VEvent) {
					obj := map[string]string{}
					if p := e.GetProperty("UID"); p != nil {
						obj["uid"] = p.Value
					}
					if p := e.GetProperty("DTSTART"); p != nil {
						obj["dtstart"] = p.Value
					}
					if p := e.GetProperty("SUMMARY"); p != nil {
						obj["summary"] = p.Value
					}

					b, err := json.Marshal(obj)
					if err != nil {
						destination.ErrorWithContext(ctx, err)
						return
					}

					destination.NextWithContext(ctx, string(b))
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// UnserializeVEvent parses the flat JSON object produced by SerializeVEvent
// back into a property map. It does not reconstruct a full *ics.VEvent,
// since SUMMARY/UID/DTSTART alone do not round-trip to a valid component.
func UnserializeVEvent() func(ro.Observable[string]) ro.Observable[map[string]string] {
	return func(source ro.Observable[string]) ro.Observable[map[string]string] {
		return ro.NewUnsafeObservableWithContext(func(ctx context.Context, destination ro.Observer[map[string]string]) ro.Teardown {
			sub := source.SubscribeWithContext(ctx, ro.NewObserverWithContext(
				func(ctx context.Context, s string) {
					var m map[string]string
					if err := json.Unmarshal([]byte(s), &m); err != nil {
						destination.ErrorWithContext(ctx, err)
						return
					}

					destination.NextWithContext(ctx, m)
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// parseICSTime parses the DTSTART value formats produced by golang-ical:
// RFC3339, an all-day date (YYYYMMDD), or a UTC timestamp
// (YYYYMMDDTHHMMSSZ). A floating timestamp without the trailing "Z" is not
// parsed.
func parseICSTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}

	if t, err := time.Parse("20060102", v); err == nil {
		return t, nil
	}

	if t, err := time.Parse("20060102T150405Z", v); err == nil {
		return t, nil
	}

	return time.Time{}, &time.ParseError{Layout: "RFC3339/ICSTime", Value: v}
}
