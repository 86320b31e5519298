// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cmdutil

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"golang.org/x/term"
)

// Exit codes by error kind
const (
	ExitFailure    = 1
	ExitMalformed  = 2
	ExitRace       = 3
	ExitCapability = 4
)

// ExitCode returns the process exit code for an error.
func ExitCode(err error) int {
	switch errors.KindOf(err) {
	case errors.KindMalformed:
		return ExitMalformed
	case errors.KindRace:
		return ExitRace
	case errors.KindCapability:
		return ExitCapability
	default:
		return ExitFailure
	}
}

func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(ExitFailure)
}

func Check(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.KindOf(err) == errors.KindRace {
		Warnf("the chain changed since the route was chosen; list the routes again and retry")
	}
	os.Exit(ExitCode(err))
}

func Checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: "+format+": %v\n", append(otherArgs, err)...)
		os.Exit(ExitCode(err))
	}
}

func Warnf(format string, args ...interface{}) {
	format = "WARNING: " + format + "\n"
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprint(os.Stderr, color.RedString(format, args...))
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
