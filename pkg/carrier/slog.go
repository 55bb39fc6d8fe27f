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
	"errors"
	"log/slog"

	"github.com/benoit-pereira-da-silva/utf8codec/pkg/utf8codec"
)

// Slog logs the outcome of a checked line with its 1-based number.
// Failed lines are logged at error level with the byte offset of the
// offending sequence; the others at debug level. A nil logger means
// slog.Default().
func Slog(logger *slog.Logger, label string, l Line) {
	if logger == nil {
		logger = slog.Default()
	}
	err := l.GetError()
	if err == nil {
		logger.Debug(label, "line", l.Index+1, "bytes", len(l.Value), "count", l.Count)
		return
	}
	attrs := []any{"err", err, "line", l.Index + 1, "bytes", len(l.Value)}
	var cerr *utf8codec.Error
	if errors.As(err, &cerr) {
		attrs = append(attrs, "offset", cerr.Offset)
	}
	logger.Error(label, attrs...)
}
