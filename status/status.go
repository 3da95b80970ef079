// Package status shows the same three-valued outcome written two ways: as a
// closed integer enumeration (Status) and as a restricted set of string
// literals backed by a lookup table (Literal, Codes).
//
// Both forms share one policy: Pending and any unrecognized value produce the
// same message. Nothing here returns an error for an out-of-set value.
package status

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Status is the enumeration form. The codes are fixed.
type Status int

const (
	Success Status = 1
	Failure Status = -1
	Pending Status = 0
)

const (
	msgSuccess = "Operation was successful!"
	msgFailure = "Operation failed!"
	msgPending = "Operation is pending!"
)

// Message returns the outcome sentence for s. Values outside the enumeration
// are reported as pending.
func Message(s Status) string {
	switch s {
	case Success:
		return msgSuccess
	case Failure:
		return msgFailure
	case Pending:
		fallthrough
	default:
		return msgPending
	}
}

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case Pending:
		return "Pending"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Literal converts s to the literal form. Unknown codes map to LiteralPending.
func (s Status) Literal() Literal {
	switch s {
	case Success:
		return LiteralSuccess
	case Failure:
		return LiteralFailure
	default:
		return LiteralPending
	}
}

// All returns the enumeration in declaration order.
func All() []Status {
	return []Status{Success, Failure, Pending}
}

// ErrUnknownStatus is returned by Parse for input that names no status.
var ErrUnknownStatus = errors.New("unknown status")

// Parse accepts a status name (case-insensitive) or its numeric code.
func Parse(s string) (Status, error) {
	in := strings.TrimSpace(s)
	for _, st := range All() {
		if strings.EqualFold(in, st.String()) {
			return st, nil
		}
	}
	if code, err := strconv.Atoi(in); err == nil {
		for _, st := range All() {
			if int(st) == code {
				return st, nil
			}
		}
	}
	return Pending, fmt.Errorf("%q: %w", s, ErrUnknownStatus)
}
