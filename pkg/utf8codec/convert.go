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

// IsScalar reports whether r can be encoded: r <= 0x10FFFF, outside the
// surrogate range, and neither U+FFFE nor U+FFFF.
func IsScalar(r uint32) bool {
	switch {
	case r > MaxScalar:
		return false
	case surrogateMin <= r && r <= surrogateMax:
		return false
	case r == nonCharFFFE || r == nonCharFFFF:
		return false
	}
	return true
}

// EncodedLen returns the number of bytes needed to encode r,
// or -1 when r is not a legal scalar.
func EncodedLen(r uint32) int {
	switch {
	case !IsScalar(r):
		return -1
	case r < 1<<7:
		return 1
	case r < 1<<11:
		return 2
	case r < 1<<16:
		return 3
	}
	return 4
}

// AppendScalar appends the UTF-8 encoding of r to dst.
// dst is returned unchanged when r is not a legal scalar.
func AppendScalar(dst []byte, r uint32) []byte {
	switch EncodedLen(r) {
	case 1:
		return append(dst, byte(r))
	case 2:
		return append(dst,
			0xC0|byte(r>>6),
			locb|byte(r)&maskx)
	case 3:
		return append(dst,
			0xE0|byte(r>>12),
			locb|byte(r>>6)&maskx,
			locb|byte(r)&maskx)
	case 4:
		return append(dst,
			0xF0|byte(r>>18),
			locb|byte(r>>12)&maskx,
			locb|byte(r>>6)&maskx,
			locb|byte(r)&maskx)
	}
	return dst
}

// EncodeUTF32 encodes a sequence of scalars as UTF-8.
//
// The first illegal scalar fails the whole call with ErrOutOfRange; the
// Error offset is its index in scalars. The output is allocated once with
// its exact size.
func EncodeUTF32(scalars []uint32) Result[[]byte] {
	total := 0
	for i, r := range scalars {
		n := EncodedLen(r)
		if n < 0 {
			return Fail[[]byte](newError(opEncode, i, ErrOutOfRange))
		}
		total += n
	}
	out := make([]byte, 0, total)
	for _, r := range scalars {
		out = AppendScalar(out, r)
	}
	return Ok(out)
}

// DecodeUTF32 decodes p into its scalars.
// It fails under the same conditions as Validate.
func DecodeUTF32(p []byte) Result[[]uint32] {
	n, offset, err := scan(p)
	if err != nil {
		return Fail[[]uint32](newError(opDecode, offset, err))
	}
	out := make([]uint32, n)
	for i, k := 0, 0; i < len(p); k++ {
		// p is known to be well-formed.
		r, size, _ := next(p, i)
		out[k] = r
		i += size
	}
	return Ok(out)
}
