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
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatchFileAndWriteToFileAndDedup(t *testing.T) {
	t.Parallel()

	tmp, err := os.CreateTemp("", "ro_test_*.ics")
	assert.NoError(t, err)
	path := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(path)

	err = os.WriteFile(path, []byte("BEGIN:VCALENDAR\nUID:1\nEND:VCALENDAR"), 0644)
	assert.NoError(t, err)

	ch := make(chan []string, 1)

	go func() {
		vals, _ := Collect(Pipe1(WatchFile(path, 10*time.Millisecond), Take[string](2)))
		ch <- vals
	}()

	time.Sleep(30 * time.Millisecond)
	err = os.WriteFile(path, []byte("BEGIN:VCALENDAR\nUID:2\nEND:VCALENDAR"), 0644)
	assert.NoError(t, err)

	vals := <-ch
	assert.GreaterOrEqual(t, len(vals), 2)

	outPath := path + ".out"
	defer os.Remove(outPath)

	values, err := Collect(Pipe1(Of("a", "b", "a"), WriteToFile(outPath, false, 0644)))
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, values)

	b, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.Contains(t, string(b), "a")

	vals2, err := Collect(Pipe1(Of("x", "y", "x"), Dedup()))
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, vals2)
}

func TestWatchURLAndSerializeUnserializeValidateFilter(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"uid":"u1","ts":"2020-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	vals, err := Collect(Pipe1(WatchURL(srv.URL, 50*time.Millisecond), Take[string](1)))
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(vals), 1)

	type Item struct {
		UID string `json:"uid"`
	}
	items, err := Collect(Pipe2(Of(Item{UID: "u"}), Serialize[Item](), Unserialize[Item]()))
	assert.NoError(t, err)
	assert.Equal(t, []Item{{UID: "u"}}, items)

	validator := func(ctx context.Context, it Item) (context.Context, error) {
		if it.UID != "u" {
			return ctx, ErrInvalidItem
		}
		return ctx, nil
	}

	vout, err := Collect(Pipe1(Of(Item{UID: "u"}, Item{UID: "z"}), Validate(validator)))
	assert.Error(t, err)
	assert.Equal(t, []Item{{UID: "u"}}, vout)

	fvals, err := Collect(Pipe1(Of("attendee:alice@example.com", "other"), FilterByParticipant("alice@example.com")))
	assert.NoError(t, err)
	assert.Equal(t, []string{"attendee:alice@example.com"}, fvals)

	now := time.Now()
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)
	payload := now.UTC().Format(time.RFC3339)
	tw, err := Collect(Pipe1(Of("some text "+payload), FilterByTimeWindow(start, end)))
	assert.NoError(t, err)
	assert.Equal(t, []string{"some text " + payload}, tw)
}
