// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/ledgercheck/cmd/bucketlist/layout"
	"github.com/luxfi/ledgercheck/cmd/bucketlist/rangecmd"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	cmd := &cobra.Command{
		Use:   "bucketlist",
		Short: "Inspects which ledgers the buckets of the bucket list cover",
	}
	cmd.AddCommand(
		rangecmd.Command(),
		layout.Command(),
	)
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}
