// Error kinds this package returns, distinct from the verbatim IO errors
// a Reader/Writer may return: a ProtocolError marks a structural wire
// violation (bad tag, unbalanced collection), a ValueFormatError marks a
// value whose framing is sound but whose contents don't parse.

package ipp

import "fmt"

// ProtocolError reports a structural violation of the wire format: an
// unrecognized delimiter tag, a delimiter where a value was expected
// inside a collection, or a collection whose braces don't balance.
type ProtocolError struct{ Msg string }

func (e *ProtocolError) Error() string { return e.Msg }

func protocolErrorf(format string, a ...interface{}) error {
	return &ProtocolError{Msg: fmt.Sprintf(format, a...)}
}

// NewProtocolError builds a *ProtocolError from a formatted message, for
// callers outside this package (package ippjob reports a missing or
// malformed job-id the same way this package reports a malformed wire
// message) that need the same errors.As-distinguishable error kind.
func NewProtocolError(format string, a ...interface{}) error {
	return protocolErrorf(format, a...)
}

// ValueFormatError reports a value whose length and tag were read fine
// but whose content doesn't parse: a bad UTF-8 string, a DateTime field
// out of range, a Boolean byte that is neither 0 nor 1.
type ValueFormatError struct{ Msg string }

func (e *ValueFormatError) Error() string { return e.Msg }

func valueFormatErrorf(format string, a ...interface{}) error {
	return &ValueFormatError{Msg: fmt.Sprintf(format, a...)}
}
