// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bucketlist

// Range is the span of ledgers held by one bucket.
type Range struct {
	Level  uint32 `json:"level"`
	Half   Half   `json:"half"`
	Oldest uint32 `json:"oldest"`
	Newest uint32 `json:"newest"`
}

// Empty reports whether the bucket holds no ledgers.
func (r Range) Empty() bool {
	return r.Oldest > r.Newest
}

// Size returns the number of ledgers in the range.
func (r Range) Size() uint32 {
	if r.Empty() {
		return 0
	}
	return r.Newest - r.Oldest + 1
}

// Layout returns the range of every bucket once [ledger] has closed, from the
// newest (level 0 curr) to the oldest.
func Layout(ledger uint32) []Range {
	ranges := make([]Range, 0, 2*NumLevels)
	for level := uint32(0); level < NumLevels; level++ {
		for _, half := range []Half{Curr, Snap} {
			// level and half are always valid here
			oldest, newest, _ := LedgerRange(ledger, level, half)
			ranges = append(ranges, Range{
				Level:  level,
				Half:   half,
				Oldest: oldest,
				Newest: newest,
			})
		}
	}
	return ranges
}
