// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import "fmt"

// Status is a request status code.
type Status uint64

const (
	// OK means the request completed successfully.
	OK Status = 200

	// BadRequest means the request was malformed or invalid.
	BadRequest Status = 400

	// NotFound means a record could not be found.
	NotFound Status = 404

	// NotAllowed means the requested action could not be performed.
	NotAllowed Status = 405

	// Conflict means the request failed due to a conflict, such as a state
	// change that happened between building a request and submitting it.
	Conflict Status = 409

	// Stale means the observed state differs from the expected state but the
	// request can still proceed.
	Stale Status = 412

	// InternalError means an internal error occurred.
	InternalError Status = 500

	// UnknownError means an unknown error occurred.
	UnknownError Status = 501

	// EncodingError means encoding or decoding failed.
	EncodingError Status = 502

	// DepthExceeded means a traversal exceeded its depth bound.
	DepthExceeded Status = 508
)

var statusNames = map[Status]string{
	OK:            "OK",
	BadRequest:    "BadRequest",
	NotFound:      "NotFound",
	NotAllowed:    "NotAllowed",
	Conflict:      "Conflict",
	Stale:         "Stale",
	InternalError: "InternalError",
	UnknownError:  "UnknownError",
	EncodingError: "EncodingError",
	DepthExceeded: "DepthExceeded",
}

// String returns the name of the status.
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(%d)", uint64(s))
}

// CallSite records where an error was created or wrapped.
type CallSite struct {
	FuncName string
	File     string
	Line     int64
}

// Error is an error with a status code, an optional cause, and the call
// sites that created it.
type Error struct {
	Message   string
	Code      Status
	Cause     *Error
	CallStack []*CallSite
}

var trackLocation bool

// EnableLocationTracking enables recording call sites on errors.
func EnableLocationTracking() { trackLocation = true }

// DisableLocationTracking disables recording call sites on errors.
func DisableLocationTracking() { trackLocation = false }
