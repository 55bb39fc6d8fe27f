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

// Package carrier transports lines of an untrusted document together with
// the outcome of their UTF-8 check.
package carrier

import (
	"errors"
	"fmt"
	"sort"

	"github.com/benoit-pereira-da-silva/utf8codec/pkg/utf8codec"
)

// Line is one line of a document, as raw bytes.
//
// Index is the zero-based line number (CheckLines sets it to the scan
// sequence number). Count is the number of scalars in Value once Checked
// succeeded. Error carries a per-line failure: it is data, the other lines
// are still reported.
type Line struct {
	Value []byte
	Index int
	Count int
	Error error
}

// LineFrom builds a Line holding b.
func LineFrom(b []byte) Line {
	return (*new(Line)).FromBytes(b)
}

// UTF8String returns Value as a string. It is only guaranteed to be
// well-formed UTF-8 when the line was checked without error.
func (l Line) UTF8String() string {
	return string(l.Value)
}

// FromBytes creates a new Line from b. The receiver is only a prototype.
func (l Line) FromBytes(b []byte) Line {
	return Line{
		Value: b,
		Index: 0,
	}
}

func (l Line) WithIndex(idx int) Line {
	l.Index = idx
	return l
}

func (l Line) GetIndex() int {
	return l.Index
}

// Aggregate concatenates lines into one.
//
// The input slice is copied and stably sorted by Index, so lines checked out
// of order still produce the original document. Counts are summed and errors
// are merged with errors.Join.
func (l Line) Aggregate(lines []Line) Line {
	items := make([]Line, len(lines))
	copy(items, lines)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Index < items[j].Index
	})

	total := 0
	for _, it := range items {
		total += len(it.Value)
	}

	value := make([]byte, 0, total)
	count := 0
	var aggErr error
	for _, it := range items {
		value = append(value, it.Value...)
		count += it.Count
		if it.Error != nil {
			aggErr = errors.Join(aggErr, it.Error)
		}
	}
	return Line{Value: value, Index: 0, Count: count, Error: aggErr}
}

func (l Line) WithError(err error) Line {
	if err == nil {
		return l
	}
	if l.Error == nil {
		l.Error = err
	} else {
		l.Error = errors.Join(l.Error, err)
	}
	return l
}

func (l Line) GetError() error {
	return l.Error
}

// Checked validates Value and returns the line with Count set, or with a
// *LineError attached when Value is not well-formed UTF-8.
func (l Line) Checked() Line {
	n, err := utf8codec.Length(l.Value).Get()
	if err != nil {
		l.Count = 0
		return l.WithError(&LineError{Line: l.Index + 1, Err: err})
	}
	l.Count = n
	return l
}

// LineError locates a UTF-8 failure in a document.
type LineError struct {
	Line int // 1-based line number
	Err  error
}

func (e *LineError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying *utf8codec.Error.
func (e *LineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
