// Error kinds this package returns on top of whatever ipp/IO errors an
// exchange surfaces.

package ippjob

import (
	"fmt"

	"github.com/openprinting/go-ipp-client/ipp"
)

// StatusError reports a logical IPP failure: the request reached the
// printer and came back as a well-formed response, but its status code
// was client-error or server-error (>= 0x0400). This is distinct from a
// transport failure or a malformed response, both of which are returned
// as plain errors from the Doer or the ipp package.
type StatusError struct {
	Op     ipp.Op
	Status ipp.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Status)
}

func statusErr(op ipp.Op, status ipp.Status) error {
	return &StatusError{Op: op, Status: status}
}
