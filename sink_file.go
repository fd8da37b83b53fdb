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
	"os"
)

// WriteToFile is a binding-sink operator: it writes every upstream string,
// newline-terminated, to `path`, opening the file lazily on the first value
// (appending if appendMode is set, truncating otherwise), and forwards each
// value downstream unchanged so it can still be observed or further piped.
func WriteToFile(path string, appendMode bool, perm os.FileMode) func(Observable[string]) Observable[string] {
	return func(source Observable[string]) Observable[string] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[string]) Teardown {
			var f *os.File
			var opened bool

			openFile := func() error {
				if opened {
					return nil
				}

				flag := os.O_CREATE | os.O_WRONLY
				if appendMode {
					flag |= os.O_APPEND
				} else {
					flag |= os.O_TRUNC
				}

				var err error
				f, err = os.OpenFile(path, flag, perm)
				if err != nil {
					return err
				}

				opened = true
				return nil
			}

			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					func(ctx context.Context, value string) {
						if err := openFile(); err != nil {
							destination.ErrorWithContext(ctx, err)
							return
						}

						if _, err := f.WriteString(value + "\n"); err != nil {
							destination.ErrorWithContext(ctx, err)
							return
						}

						destination.NextWithContext(ctx, value)
					},
					destination.ErrorWithContext,
					func(ctx context.Context) {
						if opened {
							_ = f.Close()
						}

						destination.CompleteWithContext(ctx)
					},
				),
			)

			return sub.Unsubscribe
		})
	}
}
