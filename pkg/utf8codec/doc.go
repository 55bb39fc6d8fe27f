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

// Package utf8codec validates UTF-8 byte buffers and converts between UTF-8
// and UTF-32 scalar sequences.
//
// Every operation shares one byte grammar, kept as a single lead-byte table
// (see SequenceLen). It is stricter than unicode/utf8 in one respect: the
// noncharacters U+FFFE and U+FFFF are rejected both when decoding and when
// encoding. Other noncharacters (U+FDD0..U+FDEF, ...) are accepted.
//
// Operations that produce a value return a Result, which carries either the
// value or an *Error wrapping ErrMalformed, ErrTruncated or ErrOutOfRange:
//
//	res := utf8codec.Substring(buf, 0, 2)
//	if err := res.Err(); err != nil {
//		if errors.Is(err, utf8codec.ErrTruncated) {
//			// wait for more input
//		}
//		return err
//	}
//	head := res.Value()
//
// All functions are pure and safe for concurrent use.
package utf8codec
