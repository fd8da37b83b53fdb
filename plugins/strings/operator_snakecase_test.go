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

package rostrings

import (
	"testing"

	"github.com/relaystream/reactor"
	"github.com/stretchr/testify/assert"
)

type snakeCaseTest struct {
	input    string
	expected string
}

var allSnakeCaseTests = []snakeCaseTest{
	{input: "HelloWorld", expected: "hello_world"},
	{input: "helloWorld", expected: "hello_world"},
	{input: "hello world", expected: "hello_world"},
	{input: "hello-world", expected: "hello_world"},
	{input: "HTTPServer", expected: "http_server"},
	{input: "already_snake", expected: "already_snake"},
	{input: "", expected: ""},
}

func TestSnakeCase(t *testing.T) {
	t.Run("Test Simple cases", func(t *testing.T) {
		t.Parallel()
		is := assert.New(t)

		for _, tt := range allSnakeCaseTests {
			values, err := ro.Collect(
				ro.Pipe1(
					ro.Just(tt.input),
					SnakeCase[string](),
				),
			)
			is.Nil(err)
			is.Equal([]string{tt.expected}, values)
		}
	})

	t.Run("Test empty observable case", func(t *testing.T) {
		t.Parallel()
		is := assert.New(t)

		values, err := ro.Collect(
			ro.Pipe1(
				ro.Empty[string](),
				SnakeCase[string](),
			),
		)
		is.Nil(err)
		is.Equal([]string{}, values)
	})

	t.Run("Test error handling case", func(t *testing.T) {
		t.Parallel()
		is := assert.New(t)

		values, err := ro.Collect(
			ro.Pipe1(
				ro.Throw[string](assert.AnError),
				SnakeCase[string](),
			),
		)
		is.Equal([]string{}, values)
		is.EqualError(err, assert.AnError.Error())
	})
}
