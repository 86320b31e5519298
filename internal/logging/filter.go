// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"log/slog"
	"strings"

	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// ParseLogLevel parses a list of level rules such as "error;compose=debug".
// An entry without a module, or with the module "*", sets the default level.
func ParseLogLevel(s string) (SlogConfig, error) {
	cfg := SlogConfig{DefaultLevel: slog.LevelInfo, ModuleLevels: map[string]slog.Level{}}
	modules := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' })
	for _, module := range modules {
		parts := strings.Split(strings.TrimSpace(module), "=")
		var level slog.Level
		err := level.UnmarshalText([]byte(parts[len(parts)-1]))
		if err != nil {
			return SlogConfig{}, errors.BadRequest.WithFormat("invalid log level %q: %w", module, err)
		}

		if len(parts) == 1 || parts[0] == "*" {
			cfg.DefaultLevel = level
		} else {
			cfg.ModuleLevels[parts[0]] = level
		}
	}
	return cfg, nil
}
