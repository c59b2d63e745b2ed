// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package layout

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/luxfi/ledgercheck/bucketlist"
)

const (
	LedgerKey = "ledger"
	JSONKey   = "json"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "layout",
		Short: "Prints the ledgers covered by every bucket",
		RunE:  layoutFunc,
	}
	AddFlags(c.Flags())
	return c
}

func AddFlags(flags *pflag.FlagSet) {
	flags.Uint32(LedgerKey, 1, "Ledger that was last closed")
	flags.Bool(JSONKey, false, "Print the layout as JSON")
}

func layoutFunc(c *cobra.Command, _ []string) error {
	flags := c.Flags()
	ledger, err := flags.GetUint32(LedgerKey)
	if err != nil {
		return err
	}
	asJSON, err := flags.GetBool(JSONKey)
	if err != nil {
		return err
	}

	ranges := bucketlist.Layout(ledger)
	out := c.OutOrStdout()
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(ranges)
	}

	for _, r := range ranges {
		if r.Empty() {
			_, err = fmt.Fprintf(out, "%s[%d] empty\n", r.Half, r.Level)
		} else {
			_, err = fmt.Fprintf(out, "%s[%d] = [%d, %d] (%d ledgers)\n", r.Half, r.Level, r.Oldest, r.Newest, r.Size())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
