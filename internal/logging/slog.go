// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const messageKey = "message"
const moduleKey = "module"

// SlogConfig is the level configuration of a handler.
type SlogConfig struct {
	DefaultLevel slog.Level
	ModuleLevels map[string]slog.Level
}

// NewSlogHandler returns a handler that writes JSON records to w, filtered by
// module. Wrap w with [ConsoleSlogWriter] for plain text.
func NewSlogHandler(cfg SlogConfig, w io.Writer) (slog.Handler, error) {
	h := new(logHandler)
	h.defaultLevel = cfg.DefaultLevel
	h.modules = cfg.ModuleLevels
	h.lowestLevel = cfg.DefaultLevel
	for _, l := range cfg.ModuleLevels {
		if l < h.lowestLevel {
			h.lowestLevel = l
		}
	}

	h.handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: h.lowestLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.MessageKey:
				// The message is added as an attribute by the log handler
				return slog.Attr{}
			case slog.TimeKey:
				return slog.String(a.Key, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	})
	return h, nil
}

// ConsoleSlogWriter formats the JSON output of a handler as plain text.
func ConsoleSlogWriter(w io.Writer, color bool) io.Writer {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}
}

type logHandler struct {
	handler      slog.Handler
	defaultLevel slog.Level
	lowestLevel  slog.Level
	modules      map[string]slog.Level
	module       string
}

func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lowestLevel
}

func (h *logHandler) Handle(ctx context.Context, r slog.Record) error {
	module := h.module
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == moduleKey {
			module = a.Value.String()
			return false
		}
		return true
	})

	level, ok := h.modules[module]
	if !ok {
		level = h.defaultLevel
	}
	if r.Level < level {
		return nil
	}

	s := slog.NewRecord(r.Time, r.Level, "", r.PC)
	s.AddAttrs(slog.String(messageKey, r.Message))
	s.AddAttrs(Attrs(ctx)...)
	r.Attrs(func(a slog.Attr) bool {
		s.AddAttrs(a)
		return true
	})
	return h.handler.Handle(ctx, s)
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	g := *h
	g.handler = h.handler.WithAttrs(attrs)
	for _, a := range attrs {
		if a.Key == moduleKey {
			g.module = a.Value.String()
		}
	}
	return &g
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	g := *h
	g.handler = h.handler.WithGroup(name)
	return &g
}
