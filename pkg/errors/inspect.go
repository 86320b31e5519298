// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import "errors"

// As calls stdlib errors.As.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is calls stdlib errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }

// Unwrap calls stdlib errors.Unwrap.
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join calls stdlib errors.Join.
func Join(errs ...error) error { return errors.Join(errs...) }

// Code returns the status code of the error, or 0. Errors that are not an
// [Error] but unwrap to a [Status] report that status.
func Code(err error) Status {
	var err2 *Error
	if !As(err, &err2) {
		var s Status
		if As(err, &s) {
			return s
		}
		return 0
	}
	for err2.Code == UnknownError && err2.Cause != nil {
		err2 = err2.Cause
	}
	return err2.Code
}

// Kind tells a caller how to react to a failed request.
type Kind int

const (
	// KindUnknown is anything not covered below. Abort.
	KindUnknown Kind = iota

	// KindRace means the state moved underneath the request, for example
	// another signer finalized the action. Re-derive the route and restart.
	KindRace

	// KindStaleness means the observed state differs from what was expected
	// but the request is still valid. Warn and proceed.
	KindStaleness

	// KindCapability means the chosen route cannot be executed under the
	// current chain capabilities. Pick a different route.
	KindCapability

	// KindMalformed is a programmer error.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindRace:
		return "race"
	case KindStaleness:
		return "staleness"
	case KindCapability:
		return "capability"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// KindOf classifies an error.
func KindOf(err error) Kind {
	switch Code(err) {
	case Conflict:
		return KindRace
	case Stale:
		return KindStaleness
	case NotFound, NotAllowed:
		return KindCapability
	case BadRequest, DepthExceeded:
		return KindMalformed
	default:
		return KindUnknown
	}
}
