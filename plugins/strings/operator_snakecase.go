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
	"strings"
	"unicode"

	"github.com/relaystream/reactor"
)

// words splits str into its constituent words, the same way common
// case-conversion libraries do: on any run of non-letter/non-digit
// separators, before an upper-case letter that follows a lower-case letter or
// a digit, and before an upper-case letter that follows another upper-case
// letter and precedes a lower-case one ("HTTPServer" -> "HTTP", "Server"). A
// digit followed by a lower-case letter does not start a new word.
func words(str string) []string {
	var result []string
	var current []rune

	runes := []rune(str)

	flush := func() {
		if len(current) > 0 {
			result = append(result, string(current))
			current = nil
		}
	}

	for i, r := range runes {
		switch {
		case unicode.IsSpace(r) || (!unicode.IsLetter(r) && !unicode.IsDigit(r)):
			flush()
		case i > 0 && unicode.IsUpper(r) && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])):
			flush()
			current = append(current, r)
		case i > 0 && unicode.IsUpper(r) && unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}

	flush()

	return result
}

func snakeCase(str string) string {
	items := words(str)
	for i := range items {
		items[i] = strings.ToLower(items[i])
	}
	return strings.Join(items, "_")
}

// SnakeCase converts the string to snake case.
func SnakeCase[T ~string]() func(destination ro.Observable[T]) ro.Observable[T] {
	return ro.Map(
		func(value T) T {
			return T(snakeCase(string(value)))
		},
	)
}
