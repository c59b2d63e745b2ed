// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rangecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/ledgercheck/bucketlist"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "range",
		Short: "Prints the ledgers covered by one bucket",
		RunE:  rangeFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func rangeFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	oldest, newest, err := bucketlist.LedgerRange(config.Ledger, config.Level, config.Half)
	if err != nil {
		return err
	}

	r := bucketlist.Range{
		Level:  config.Level,
		Half:   config.Half,
		Oldest: oldest,
		Newest: newest,
	}
	if r.Empty() {
		_, err = fmt.Fprintf(c.OutOrStdout(), "%s[%d] is empty at ledger %d\n", r.Half, r.Level, config.Ledger)
		return err
	}
	_, err = fmt.Fprintf(c.OutOrStdout(), "%s[%d] = [%d, %d] (%d ledgers)\n", r.Half, r.Level, r.Oldest, r.Newest, r.Size())
	return err
}
