// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, rules string, plain bool) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	cfg, err := ParseLogLevel(rules)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	var w io.Writer = buf
	if plain {
		w = ConsoleSlogWriter(buf, false)
	}
	h, err := NewSlogHandler(cfg, w)
	require.NoError(t, err)
	return slog.New(stripTime{h}), buf
}

func TestOutputFormats(t *testing.T) {
	ts := testTime.Format(time.RFC3339)
	ctx := With(context.Background(), "target", "5Ck3")

	logger, buf := newTestHandler(t, "debug", false)
	logger.DebugContext(ctx, "Composed", "module", "compose")
	require.Equal(t, `{`+
		`"time":"`+ts+`",`+
		`"level":"DEBUG",`+
		`"message":"Composed",`+
		`"target":"5Ck3",`+
		`"module":"compose"`+
		`}`+"\n", buf.String())

	logger, buf = newTestHandler(t, "debug", true)
	logger.DebugContext(ctx, "Composed", "module", "compose")
	require.Equal(t, ts+" DEBUG Composed module=compose target=5Ck3\n", buf.String())
}

func TestModuleLevels(t *testing.T) {
	cases := []struct {
		Rules  string
		Module string
		Level  slog.Level
		Shown  bool
	}{
		{"warn;compose=debug", "compose", slog.LevelDebug, true},
		{"warn;compose=debug", "authority", slog.LevelDebug, false},
		{"warn;compose=debug", "authority", slog.LevelWarn, true},
		{"warn;compose=debug", "", slog.LevelInfo, false},
		{"debug,rpc=error", "rpc", slog.LevelWarn, false},
		{"debug,rpc=error", "deposit", slog.LevelDebug, true},
		{"*=error;records=info", "records", slog.LevelInfo, true},
	}

	for _, c := range cases {
		t.Run(c.Rules+"/"+c.Module+"/"+c.Level.String(), func(t *testing.T) {
			logger, buf := newTestHandler(t, c.Rules, true)
			if c.Module != "" {
				// Both ways of naming the module must filter the same
				logger.With("module", c.Module).Log(context.Background(), c.Level, "Via logger")
				logger.Log(context.Background(), c.Level, "Via attr", "module", c.Module)
			} else {
				logger.Log(context.Background(), c.Level, "No module")
			}
			if c.Shown {
				require.NotEmpty(t, buf.String())
			} else {
				require.Empty(t, buf.String())
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	cfg, err := ParseLogLevel("warn;compose=debug")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, cfg.DefaultLevel)
	require.Equal(t, map[string]slog.Level{"compose": slog.LevelDebug}, cfg.ModuleLevels)

	_, err = ParseLogLevel("compose=loud")
	require.Error(t, err)
}

func TestHexValue(t *testing.T) {
	logger, buf := newTestHandler(t, "info", true)
	logger.Info("Stored", "key", AsHex([]byte{0xca, 0xfe}))
	require.Contains(t, buf.String(), "key=0xcafe")
}

type stripTime struct {
	slog.Handler
}

var testTime = time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)

func (s stripTime) Handle(ctx context.Context, r slog.Record) error {
	r.Time = testTime
	return s.Handler.Handle(ctx, r)
}

func (s stripTime) WithAttrs(attrs []slog.Attr) slog.Handler {
	return stripTime{s.Handler.WithAttrs(attrs)}
}

func (s stripTime) WithGroup(name string) slog.Handler {
	return stripTime{s.Handler.WithGroup(name)}
}
