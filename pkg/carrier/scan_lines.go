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

package carrier

import "bytes"

// ScanLines is a bufio.SplitFunc returning each line with its trailing
// '\n' (and '\r', if any) kept, so concatenating the tokens gives back the
// input byte for byte.
//
// It never looks inside a line: '\n' can not appear within a multi-byte
// UTF-8 sequence, so malformed bytes end up in the line that holds them.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	// Final line without a newline.
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
