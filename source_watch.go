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
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"time"
)

// WatchFile polls `path` every `interval` and emits its contents, as a
// string, whenever they differ from the previous read. The current contents
// (if the file exists) are emitted immediately on subscribe. It never
// completes on its own; the poller stops when the subscription is
// unsubscribed.
func WatchFile(path string, interval time.Duration) Observable[string] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[string]) Teardown {
		var last []byte

		if b, err := os.ReadFile(path); err == nil {
			last = b
			destination.NextWithContext(ctx, string(b))
		}

		ticker := time.NewTicker(interval)
		done := make(chan struct{})

		go recoverUnhandledError(func() {
			defer destination.CompleteWithContext(ctx)

			for {
				select {
				case <-done:
					return
				case <-ctx.Done():
					return
				case <-ticker.C:
					b, err := os.ReadFile(path)
					if err != nil {
						if !os.IsNotExist(err) {
							destination.ErrorWithContext(ctx, err)
							return
						}
						continue
					}

					if !bytes.Equal(b, last) {
						last = b
						destination.NextWithContext(ctx, string(b))
					}
				}
			}
		})

		return func() {
			ticker.Stop()
			close(done)
		}
	})
}

// WatchURL polls `url` every `interval` and emits the response body, as a
// string, whenever it differs from the previous fetch. The initial body is
// emitted immediately on subscribe. It never completes on its own.
func WatchURL(url string, interval time.Duration) Observable[string] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[string]) Teardown {
		client := &http.Client{Timeout: 10 * time.Second}
		var last []byte

		fetch := func() ([]byte, error) {
			resp, err := client.Get(url)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()

			return io.ReadAll(resp.Body)
		}

		if b, err := fetch(); err == nil {
			last = b
			destination.NextWithContext(ctx, string(b))
		}

		ticker := time.NewTicker(interval)
		done := make(chan struct{})

		go recoverUnhandledError(func() {
			defer destination.CompleteWithContext(ctx)

			for {
				select {
				case <-done:
					return
				case <-ctx.Done():
					return
				case <-ticker.C:
					b, err := fetch()
					if err != nil {
						destination.ErrorWithContext(ctx, err)
						return
					}

					if !bytes.Equal(b, last) {
						last = b
						destination.NextWithContext(ctx, string(b))
					}
				}
			}
		})

		return func() {
			ticker.Stop()
			close(done)
		}
	})
}
