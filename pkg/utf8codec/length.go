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

// Length returns the number of scalars encoded in p.
// It fails with ErrMalformed or ErrTruncated under the same conditions as
// Validate. An empty buffer has length 0.
func Length(p []byte) Result[int] {
	n, offset, err := scan(p)
	if err != nil {
		return Fail[int](newError(opLength, offset, err))
	}
	return Ok(n)
}

// LengthString is Length for a string.
func LengthString(s string) Result[int] {
	return Length([]byte(s))
}
