// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rangecmd

import (
	"github.com/spf13/pflag"

	"github.com/luxfi/ledgercheck/bucketlist"
)

const (
	LedgerKey = "ledger"
	LevelKey  = "level"
	SnapKey   = "snap"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.Uint32(LedgerKey, 1, "Ledger that was last closed")
	flags.Uint32(LevelKey, 0, "Level of the bucket")
	flags.Bool(SnapKey, false, "Inspect the snap bucket instead of the curr bucket")
}

type Config struct {
	Ledger uint32
	Level  uint32
	Half   bucketlist.Half
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	ledger, err := flags.GetUint32(LedgerKey)
	if err != nil {
		return nil, err
	}

	level, err := flags.GetUint32(LevelKey)
	if err != nil {
		return nil, err
	}

	snap, err := flags.GetBool(SnapKey)
	if err != nil {
		return nil, err
	}

	half := bucketlist.Curr
	if snap {
		half = bucketlist.Snap
	}
	return &Config{
		Ledger: ledger,
		Level:  level,
		Half:   half,
	}, nil
}
