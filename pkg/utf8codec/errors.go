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
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports a byte sequence that breaks the UTF-8 grammar:
	// invalid lead byte, bad continuation byte, overlong form, surrogate,
	// scalar above 0x10FFFF, or one of U+FFFE / U+FFFF.
	ErrMalformed = errors.New("malformed UTF-8 encoding")
	// ErrTruncated reports a buffer that ends inside a multi-byte sequence.
	ErrTruncated = errors.New("truncated UTF-8 encoding")
	// ErrOutOfRange reports a scalar that can not be encoded.
	ErrOutOfRange = errors.New("scalar value out of range")
)

// Error reports where an operation failed.
//
// Offset is a byte offset for operations reading UTF-8 and an element index
// for EncodeUTF32. Err is one of ErrMalformed, ErrTruncated or ErrOutOfRange.
type Error struct {
	Op     string
	Offset int
	Err    error
}

// Error formats the failure with its operation and position.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Op == opEncode {
		return fmt.Sprintf("utf8codec: %s: %v at index %d", e.Op, e.Err, e.Offset)
	}
	return fmt.Sprintf("utf8codec: %s: %v at offset %d", e.Op, e.Err, e.Offset)
}

// Unwrap exposes the underlying sentinel.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

const (
	opLength    = "length"
	opSubstring = "substring"
	opEncode    = "encode"
	opDecode    = "decode"
)

func newError(op string, offset int, err error) *Error {
	return &Error{Op: op, Offset: offset, Err: err}
}
