// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utf8codec

// Validate reports whether p is entirely made of well-formed UTF-8
// sequences. Every failure (malformed, truncated) collapses into false.
//
// Unlike unicode/utf8.Valid, the noncharacters U+FFFE and U+FFFF are
// rejected.
func Validate(p []byte) bool {
	_, _, err := scan(p)
	return err == nil
}

// ValidString is Validate for a string.
func ValidString(s string) bool {
	return Validate([]byte(s))
}

// scan walks p one scalar at a time and returns the number of scalars.
// On failure it returns the offset of the offending sequence.
func scan(p []byte) (count int, offset int, err error) {
	for i := 0; i < len(p); count++ {
		// ASCII fast path.
		if p[i] < locb {
			i++
			continue
		}
		_, size, serr := next(p, i)
		if serr != nil {
			return count, i, serr
		}
		i += size
	}
	return count, len(p), nil
}
