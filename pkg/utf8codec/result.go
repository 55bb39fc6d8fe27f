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

// Result holds either a value or an error, never both.
//
// It is what Length, Substring, EncodeUTF32 and DecodeUTF32 return, so a
// failed call can not leak partial output: Value is the zero value whenever
// Err is non-nil. Use Get at call sites that prefer the usual (value, error)
// pair:
//
//	n, err := utf8codec.Length(buf).Get()
//	if err != nil {
//		return err
//	}
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed Result carrying err.
// It panics when err is nil: a Result always holds one of the two cases.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("utf8codec: Fail called with a nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the value, or the zero value of T when r failed.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error, or nil when r succeeded.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the value and the error.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Or returns the value, or fallback when r failed.
func (r Result[T]) Or(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}
