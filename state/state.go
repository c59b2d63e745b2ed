// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state defines the ledger state handed to invariant checks. Values
// are produced by the ledger-apply pipeline and are immutable once handed out.
package state

import (
	"fmt"

	"github.com/luxfi/geth/common"
)

// Header is the header of a closed (or closing) ledger.
type Header struct {
	Sequence         uint32      `json:"sequence"`
	Version          uint32      `json:"version"`
	PreviousLedgerID common.Hash `json:"previousLedgerID"`
	TotalCoins       int64       `json:"totalCoins"`
	FeePool          int64       `json:"feePool"`
}

type ChangeType uint8

const (
	Created ChangeType = iota
	Updated
	Removed
)

func (t ChangeType) String() string {
	switch t {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("ChangeType(%d)", uint8(t))
	}
}

// Change is a single ledger entry modification. Previous is nil for created
// entries and Current is nil for removed entries.
type Change struct {
	Type     ChangeType `json:"type"`
	Key      string     `json:"key"`
	Previous []byte     `json:"previous,omitempty"`
	Current  []byte     `json:"current,omitempty"`
}

// Delta is the set of changes applied on top of the previous ledger.
type Delta struct {
	Header  Header   `json:"header"`
	Changes []Change `json:"changes"`
}
