// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package invariant

import (
	"errors"
	"fmt"
	"strings"
)

var (
	_ error = (*UnknownInvariantError)(nil)
	_ error = (*ViolationError)(nil)

	ErrDuplicateName  = errors.New("invariant already registered")
	ErrAlreadyEnabled = errors.New("invariant already enabled")
)

// UnknownInvariantError is returned when enabling a name that was never
// registered.
type UnknownInvariantError struct {
	Name string
	// Registered lists every registered name in ascending order.
	Registered []string
}

func (e *UnknownInvariantError) Error() string {
	if len(e.Registered) == 0 {
		return fmt.Sprintf("invariant %s is not registered. There are no registered invariants", e.Name)
	}
	return fmt.Sprintf(
		"invariant %s is not registered. Registered invariants are: %s",
		e.Name,
		strings.Join(e.Registered, ", "),
	)
}

// ViolationError reports that a strict invariant does not hold. It is not
// recoverable: the ledger being applied must not be persisted and the node
// must stop applying ledgers.
type ViolationError struct {
	Invariant string
	Message   string
}

func (e *ViolationError) Error() string {
	return e.Message
}

// IsViolation reports whether [err] is, or wraps, a *ViolationError.
func IsViolation(err error) bool {
	var violation *ViolationError
	return errors.As(err, &violation)
}
