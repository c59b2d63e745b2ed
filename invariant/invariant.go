// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package invariant manages the consistency checks run while ledgers are
// applied. Checks are registered once at startup, a subset of them is enabled
// by name, and the ledger-apply pipeline then invokes the enabled checks when a
// ledger closes, when a bucket is applied and when an operation is applied.
//
// A check that does not hold is counted and logged. If the check is strict the
// failing dispatch call returns a *ViolationError, which the caller must treat
// as fatal: the node stops applying ledgers.
package invariant

import (
	"github.com/luxfi/ledgercheck/bucketlist"
	"github.com/luxfi/ledgercheck/state"
	"github.com/luxfi/ledgercheck/txs"
)

// Invariant is a consistency property of the ledger.
//
// Each Check method returns the empty string if the property holds and a
// human readable description of the violation otherwise. Checks must not
// retain or modify their arguments and may be called concurrently.
type Invariant interface {
	// Name uniquely identifies the invariant. It must not change once the
	// invariant is registered.
	Name() string

	// Strict reports whether a violation must halt the node. It must not
	// change once the invariant is registered.
	Strict() bool

	// CheckOnLedgerClose is called with the changes applied while closing a
	// ledger.
	CheckOnLedgerClose(delta *state.Delta) string

	// CheckOnBucketApply is called with a bucket and the inclusive range of
	// ledgers it covers.
	CheckOnBucketApply(bucket bucketlist.Bucket, oldestLedger, newestLedger uint32) string

	// CheckOnOperationApply is called after [op] was applied with [result].
	CheckOnOperationApply(op *txs.Operation, result *txs.OperationResult, delta *state.Delta) string
}
