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

import (
	"bytes"
	"errors"
	"testing"
)

func TestSubstring(t *testing.T) {
	const word = "Программа"
	tests := []struct {
		name string
		in   string
		lo   int
		hi   int
		want string
	}{
		{"head", word, 0, 2, "Про"},
		{"single", word, 3, 3, "г"},
		{"tail", word, 6, ToEnd, "мма"},
		{"whole", word, 0, ToEnd, word},
		{"hi past end", word, 7, 100, "ма"},
		{"lo past end", word, 100, 100, ""},
		{"lo at end", word, 9, ToEnd, ""},
		{"lo greater than hi", word, 5, 2, ""},
		{"negative lo", word, -3, 1, "Пр"},
		{"empty input", "", 0, ToEnd, ""},
		{"mixed widths", "aé€😀z", 1, 3, "é€😀"},
		{"four byte head", "😀😀", 0, 0, "😀"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Substring([]byte(tt.in), tt.lo, tt.hi).Get()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatalf("unexpected nil slice")
			}
			if string(got) != tt.want {
				t.Fatalf("unexpected substring: got %q want %q", got, tt.want)
			}
			s, err := SubstringString(tt.in, tt.lo, tt.hi).Get()
			if err != nil || s != tt.want {
				t.Fatalf("unexpected SubstringString: got %q, %v want %q", s, err, tt.want)
			}
		})
	}
}

// TestSubstring_MatchesRuneSlicing compares every range of a mixed-width
// text with slicing its []rune form.
func TestSubstring_MatchesRuneSlicing(t *testing.T) {
	const text = "aé€\U0001F600bж\U0010FFFF"
	runes := []rune(text)
	for lo := 0; lo <= len(runes)+1; lo++ {
		for hi := -1; hi <= len(runes)+1; hi++ {
			var want string
			switch {
			case lo >= len(runes):
				want = ""
			case hi < 0 || hi >= len(runes):
				want = string(runes[lo:])
			case lo > hi:
				want = ""
			default:
				want = string(runes[lo : hi+1])
			}
			got, err := Substring([]byte(text), lo, hi).Get()
			if err != nil {
				t.Fatalf("Substring(%d, %d): unexpected error: %v", lo, hi, err)
			}
			if string(got) != want {
				t.Fatalf("Substring(%d, %d): got %q want %q", lo, hi, got, want)
			}
			if len(got) > 0 && SequenceLen(got[0]) == 0 {
				t.Fatalf("Substring(%d, %d) starts inside a sequence: % x", lo, hi, got)
			}
		}
	}
}

func TestSubstring_DoesNotClobberInput(t *testing.T) {
	in := []byte("Программа")
	orig := bytes.Clone(in)

	head := Substring(in, 0, 1).Value()
	if cap(head) != len(head) {
		t.Fatalf("unexpected capacity: got %d want %d", cap(head), len(head))
	}
	_ = append(head, 'X')
	if !bytes.Equal(in, orig) {
		t.Fatalf("input modified: got %q want %q", in, orig)
	}
}

func TestSubstring_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		lo      int
		hi      int
		wantErr error
		offset  int
	}{
		{"malformed inside range", []byte{'a', 0xFF, 'b'}, 0, 2, ErrMalformed, 1},
		{"malformed before range", []byte{0xC0, 0xAF, 'a', 'b'}, 2, 3, ErrMalformed, 0},
		{"truncated to end", []byte{'a', 'b', 0xE2, 0x82}, 0, ToEnd, ErrTruncated, 2},
		{"malformed past lo", []byte{'a', 0x80}, 5, 6, ErrMalformed, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Substring(tt.in, tt.lo, tt.hi)
			if res.Value() != nil {
				t.Fatalf("failed Result leaked a slice: %q", res.Value())
			}
			if !errors.Is(res.Err(), tt.wantErr) {
				t.Fatalf("unexpected error: got %v want %v", res.Err(), tt.wantErr)
			}
			var e *Error
			if !errors.As(res.Err(), &e) {
				t.Fatalf("error is not an *Error: %T", res.Err())
			}
			if e.Offset != tt.offset {
				t.Fatalf("unexpected offset: got %d want %d", e.Offset, tt.offset)
			}
		})
	}
}

// TestSubstring_IgnoresBytesAfterRange checks that only the prefix up to
// the end of the range is inspected.
func TestSubstring_IgnoresBytesAfterRange(t *testing.T) {
	in := []byte{'a', 'b', 0xFF}
	got, err := Substring(in, 0, 1).Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "ab" {
		t.Fatalf("unexpected substring: got %q want %q", got, "ab")
	}
	if Substring(in, 0, ToEnd).IsOk() {
		t.Fatalf("expected failure when the range covers the bad byte")
	}
}
