// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bucketlist describes how ledgers age through the levels of the
// bucket list, the tiered storage hierarchy that persists ledger state.
//
// Every level has a curr and a snap bucket. When ledger L closes, each level
// i-1 with L a multiple of half the size of level i-1 spills: its snap is merged into the
// curr of level i and its curr becomes its snap. Ledger L is then added to the
// curr of level 0. The buckets therefore tile [1, L], level 0 curr holding the
// newest ledgers and the curr of the last level holding the oldest.
package bucketlist

import (
	"errors"
	"fmt"
	"math"

	"github.com/luxfi/geth/common"
)

// NumLevels is the number of levels in the bucket list.
const NumLevels = 11

var (
	ErrInvalidLevel = errors.New("invalid bucket list level")
	ErrInvalidHalf  = errors.New("invalid bucket list half")
)

// Bucket is an immutable segment of persisted ledger state.
type Bucket interface {
	Hash() common.Hash
}

// Half selects one of the two buckets of a level.
type Half uint8

const (
	Curr Half = iota
	Snap
)

func (h Half) String() string {
	switch h {
	case Curr:
		return "Curr"
	case Snap:
		return "Snap"
	default:
		return fmt.Sprintf("Half(%d)", uint8(h))
	}
}

// levelSize returns the number of ledgers after which [level] has spilled
// twice. The size helpers below assume level < NumLevels; LedgerRange checks
// it before calling them.
func levelSize(level uint32) uint32 {
	return 1 << (2 * (level + 1))
}

// levelHalf returns the spill period of [level].
func levelHalf(level uint32) uint32 {
	return levelSize(level) >> 1
}

// sizeOfCurr returns the number of ledgers held by the curr bucket of [level]
// once [ledger] has closed.
func sizeOfCurr(ledger, level uint32) uint32 {
	if ledger == 0 {
		return 0
	}
	if level == 0 {
		if ledger == 1 || ledger%2 == 0 {
			return 1
		}
		return 2
	}

	size := levelSize(level)
	half := levelHalf(level)
	if level == NumLevels-1 || roundDown(ledger, half) == 0 {
		return ledger - sizeOfLevelsBelow(ledger, level)
	}

	// Each spill of the level below hands over a full snap.
	delta := levelHalf(level - 1)
	if roundDown(ledger, half) == ledger || roundDown(ledger, size) == ledger {
		return delta
	}

	prevSize := levelSize(level - 1)
	prevHalf := levelHalf(level - 1)
	previous := max(
		roundDown(ledger-1, prevHalf),
		roundDown(ledger-1, prevSize),
		roundDown(ledger-1, half),
		roundDown(ledger-1, size),
	)
	if roundDown(ledger, prevHalf) == ledger || roundDown(ledger, prevSize) == ledger {
		return sizeOfCurr(previous, level) + delta
	}
	return sizeOfCurr(previous, level)
}

// sizeOfSnap returns the number of ledgers held by the snap bucket of [level]
// once [ledger] has closed.
func sizeOfSnap(ledger, level uint32) uint32 {
	if level == NumLevels-1 {
		return 0
	}
	if roundDown(ledger, levelSize(level)) != 0 {
		return levelHalf(level)
	}
	return ledger - sizeOfLevelsBelow(ledger, level) - sizeOfCurr(ledger, level)
}

// oldestLedgerInCurr returns the first ledger held by the curr bucket of
// [level], or math.MaxUint32 if the bucket is empty.
func oldestLedgerInCurr(ledger, level uint32) uint32 {
	size := sizeOfCurr(ledger, level)
	if size == 0 {
		return math.MaxUint32
	}
	return ledger - sizeOfLevelsBelow(ledger, level) - size + 1
}

// oldestLedgerInSnap returns the first ledger held by the snap bucket of
// [level], or math.MaxUint32 if the bucket is empty.
func oldestLedgerInSnap(ledger, level uint32) uint32 {
	size := sizeOfSnap(ledger, level)
	if size == 0 {
		return math.MaxUint32
	}
	return ledger - sizeOfLevelsBelow(ledger, level) - sizeOfCurr(ledger, level) - size + 1
}

// LedgerRange returns the inclusive range of ledgers covered by the [half]
// bucket of [level] once [ledger] has closed. An empty bucket reports
// oldest = math.MaxUint32 and newest = math.MaxUint32-1.
func LedgerRange(ledger, level uint32, half Half) (oldest uint32, newest uint32, err error) {
	if level >= NumLevels {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	var size uint32
	switch half {
	case Curr:
		oldest = oldestLedgerInCurr(ledger, level)
		size = sizeOfCurr(ledger, level)
	case Snap:
		oldest = oldestLedgerInSnap(ledger, level)
		size = sizeOfSnap(ledger, level)
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalidHalf, half)
	}
	return oldest, oldest - 1 + size, nil
}

func sizeOfLevelsBelow(ledger, level uint32) uint32 {
	var size uint32
	for l := uint32(0); l < level; l++ {
		size += sizeOfCurr(ledger, l) + sizeOfSnap(ledger, l)
	}
	return size
}

// roundDown rounds [v] down to a multiple of [m], which must be a power of two.
func roundDown(v, m uint32) uint32 {
	return v &^ (m - 1)
}
