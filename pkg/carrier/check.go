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

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxLineSize is the longest line CheckLines accepts by default.
const DefaultMaxLineSize = bufio.MaxScanTokenSize

var errNilReader = errors.New("carrier: nil reader")

type checkConfig struct {
	maxLineSize int
}

// Option configures CheckLines.
type Option func(*checkConfig)

// WithMaxLineSize sets the longest accepted line, in bytes.
// Values <= 0 keep DefaultMaxLineSize.
func WithMaxLineSize(n int) Option {
	return func(c *checkConfig) {
		if n > 0 {
			c.maxLineSize = n
		}
	}
}

// CheckLines reads r to the end and returns every line, checked.
//
// Lines are split with ScanLines and each one is validated as a whole
// buffer with Line.Checked; a malformed line carries a *LineError and does
// not stop the scan. The returned error only reports a failure to read r
// (including a line longer than the configured maximum); the lines read
// before it are still returned.
func CheckLines(r io.Reader, opts ...Option) ([]Line, error) {
	if r == nil {
		return nil, errNilReader
	}
	cfg := checkConfig{maxLineSize: DefaultMaxLineSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, cfg.maxLineSize)), cfg.maxLineSize)
	scanner.Split(ScanLines)

	prototype := *new(Line)
	lines := make([]Line, 0, 16)
	for scanner.Scan() {
		// The scanner reuses its buffer between tokens.
		value := bytes.Clone(scanner.Bytes())
		lines = append(lines, prototype.FromBytes(value).WithIndex(len(lines)).Checked())
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("carrier: reading line %d: %w", len(lines)+1, err)
	}
	return lines, nil
}

// Failed returns the lines carrying an error, in their original order.
func Failed(lines []Line) []Line {
	out := make([]Line, 0)
	for _, l := range lines {
		if l.GetError() != nil {
			out = append(out, l)
		}
	}
	return out
}
