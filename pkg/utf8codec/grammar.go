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

const (
	// MaxScalar is the highest Unicode scalar value.
	MaxScalar = 0x10FFFF
	// MaxSize is the maximum number of bytes of one encoded scalar.
	MaxSize = 4

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	// The two noncharacters rejected by the codec.
	nonCharFFFE = 0xFFFE
	nonCharFFFF = 0xFFFF

	// Default bounds of a continuation byte (10xxxxxx).
	locb = 0x80
	hicb = 0xBF

	maskx = 0x3F // payload bits of a continuation byte
)

// acceptRange bounds the first continuation byte following a lead byte.
type acceptRange struct {
	lo byte
	hi byte
}

func (a acceptRange) contains(b byte) bool {
	return a.lo <= b && b <= a.hi
}

// leadInfo describes what a lead byte announces.
// A zero size marks a byte that can never start a sequence.
type leadInfo struct {
	size   int
	mask   byte        // payload bits kept from the lead byte
	accept acceptRange // bounds of the first continuation byte
}

// leadRange is one row of the grammar: every byte in [from, to] starts a
// sequence of the same size with the same first-continuation bounds.
type leadRange struct {
	from   byte
	to     byte
	size   int
	accept acceptRange
}

var continuation = acceptRange{locb, hicb}

// grammar is the whole lead-byte classification. Bytes it does not mention
// (0x80-0xC1 and 0xF5-0xFF) are invalid leads.
//
//   - 0xE0 first continuation >= 0xA0 rejects overlong 3-byte forms.
//   - 0xED first continuation <= 0x9F rejects surrogates.
//   - 0xF0 first continuation >= 0x90 rejects overlong 4-byte forms.
//   - 0xF4 first continuation <= 0x8F caps scalars at 0x10FFFF.
var grammar = [...]leadRange{
	{0x00, 0x7F, 1, acceptRange{}},
	{0xC2, 0xDF, 2, continuation},
	{0xE0, 0xE0, 3, acceptRange{0xA0, hicb}},
	{0xE1, 0xEC, 3, continuation},
	{0xED, 0xED, 3, acceptRange{locb, 0x9F}},
	{0xEE, 0xEF, 3, continuation},
	{0xF0, 0xF0, 4, acceptRange{0x90, hicb}},
	{0xF1, 0xF3, 4, continuation},
	{0xF4, 0xF4, 4, acceptRange{locb, 0x8F}},
}

// leadMasks keeps the payload bits of a lead byte, indexed by sequence size.
var leadMasks = [MaxSize + 1]byte{0, 0x7F, 0x1F, 0x0F, 0x07}

// leads is grammar expanded into a lookup table indexed by byte value.
// It is read-only after package initialisation.
var leads = buildLeads()

func buildLeads() [256]leadInfo {
	var t [256]leadInfo
	for _, r := range grammar {
		for b := int(r.from); b <= int(r.to); b++ {
			t[b] = leadInfo{
				size:   r.size,
				mask:   leadMasks[r.size],
				accept: r.accept,
			}
		}
	}
	return t
}

// SequenceLen reports the size of the sequence announced by lead,
// or 0 when lead can not start a well-formed sequence.
func SequenceLen(lead byte) int {
	return leads[lead].size
}

// next decodes the scalar starting at p[i].
//
// On failure size is the number of bytes inspected and err is ErrMalformed
// or ErrTruncated. An out-of-range continuation byte wins over a short
// buffer: [0xE0 0x41] is malformed, [0xE0 0xA0] is truncated.
func next(p []byte, i int) (r uint32, size int, err error) {
	b := p[i]
	if b < locb {
		return uint32(b), 1, nil
	}
	info := leads[b]
	if info.size == 0 {
		return 0, 1, ErrMalformed
	}
	r = uint32(b & info.mask)
	for k := 1; k < info.size; k++ {
		if i+k >= len(p) {
			return 0, k, ErrTruncated
		}
		c := p[i+k]
		if k == 1 {
			if !info.accept.contains(c) {
				return 0, k + 1, ErrMalformed
			}
		} else if !continuation.contains(c) {
			return 0, k + 1, ErrMalformed
		}
		r = r<<6 | uint32(c&maskx)
	}
	if r == nonCharFFFE || r == nonCharFFFF {
		return 0, info.size, ErrMalformed
	}
	return r, info.size, nil
}
