// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs defines the transactions applied while closing a ledger.
package txs

// OperationType identifies what an operation does, e.g. "payment".
type OperationType string

// Operation is the smallest unit of ledger state change.
type Operation struct {
	Source string        `json:"source,omitempty"`
	Type   OperationType `json:"type"`
	Body   []byte        `json:"body,omitempty"`
}

type ResultCode int32

const (
	ResultSuccess ResultCode = 0
	ResultFailed  ResultCode = -1
)

// OperationResult is the outcome of applying an Operation.
type OperationResult struct {
	Code   ResultCode `json:"code"`
	Detail string     `json:"detail,omitempty"`
}

type Tx struct {
	Source         string       `json:"source"`
	Fee            uint32       `json:"fee"`
	SequenceNumber int64        `json:"sequenceNumber"`
	Operations     []*Operation `json:"operations"`
}

// TxSet is the ordered set of transactions that produced a ledger.
type TxSet struct {
	Transactions []*Tx `json:"transactions"`
}
