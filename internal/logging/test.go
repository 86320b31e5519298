// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

type TestLogger struct {
	Test testing.TB
}

var _ io.Writer = (*TestLogger)(nil)

func (l *TestLogger) Write(b []byte) (int, error) {
	s := string(b)
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
	}
	l.Test.Log(s)
	return len(b), nil
}

// NewTestLogger returns a logger that writes to the test log.
func NewTestLogger(t testing.TB, format string, level slog.Level) *slog.Logger {
	var w io.Writer = &TestLogger{Test: t}
	switch strings.ToLower(format) {
	case "plain", "text":
		w = ConsoleSlogWriter(w, false)
	case "json":
	default:
		t.Fatalf("Unsupported log format: %s", format)
	}

	h, err := NewSlogHandler(SlogConfig{DefaultLevel: level}, w)
	if err != nil {
		t.Fatal(err)
	}
	return slog.New(h)
}
