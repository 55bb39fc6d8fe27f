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

// ToEnd is the hi value selecting every scalar up to the end of the buffer.
const ToEnd = -1

// Substring returns the bytes of the scalars lo through hi, both inclusive,
// where lo and hi count scalars, not bytes.
//
// Bounds follow these rules:
//
//   - hi < 0 (see ToEnd) selects everything from lo to the end.
//   - lo < 0 is treated as 0.
//   - lo > hi, with hi >= 0, yields an empty slice.
//   - lo at or past the last scalar yields an empty slice.
//   - hi at or past the last scalar is clamped to the last scalar.
//
// The buffer is scanned from the start until scalar hi ends; bytes after it
// are not inspected. A malformed or truncated sequence met before that point
// fails the call and no slice is returned.
//
// The returned slice shares p's storage. Its capacity equals its length so
// appending to it never writes into p.
func Substring(p []byte, lo, hi int) Result[[]byte] {
	if lo < 0 {
		lo = 0
	}
	toEnd := hi < 0
	if !toEnd && lo > hi {
		return Ok([]byte{})
	}

	start, end := -1, len(p)
	idx := 0
	for i := 0; i < len(p); idx++ {
		if idx == lo {
			start = i
		}
		size := 1
		if p[i] >= locb {
			var err error
			if _, size, err = next(p, i); err != nil {
				return Fail[[]byte](newError(opSubstring, i, err))
			}
		}
		i += size
		if !toEnd && idx == hi {
			end = i
			break
		}
	}
	if start < 0 {
		// The buffer holds lo scalars or fewer.
		return Ok([]byte{})
	}
	return Ok(p[start:end:end])
}

// SubstringString is Substring for a string.
func SubstringString(s string, lo, hi int) Result[string] {
	r := Substring([]byte(s), lo, hi)
	if err := r.Err(); err != nil {
		return Fail[string](err)
	}
	return Ok(string(r.Value()))
}
