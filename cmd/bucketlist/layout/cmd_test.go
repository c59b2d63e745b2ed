// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package layout

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ledgercheck/bucketlist"
)

func TestLayoutCommand(t *testing.T) {
	require := require.New(t)

	out := &bytes.Buffer{}
	cmd := Command()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--ledger", "8"})
	require.NoError(cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(lines, 2*bucketlist.NumLevels)
	require.Equal("Curr[0] = [8, 8] (1 ledgers)", lines[0])
	require.Equal("Snap[0] = [6, 7] (2 ledgers)", lines[1])
	require.Equal("Curr[1] = [4, 5] (2 ledgers)", lines[2])
	require.Equal("Snap[1] = [1, 3] (3 ledgers)", lines[3])
	require.Equal("Curr[2] empty", lines[4])
}

func TestLayoutCommandJSON(t *testing.T) {
	require := require.New(t)

	out := &bytes.Buffer{}
	cmd := Command()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--ledger", "2", "--json"})
	require.NoError(cmd.Execute())

	var ranges []bucketlist.Range
	require.NoError(json.Unmarshal(out.Bytes(), &ranges))
	require.Equal(bucketlist.Layout(2), ranges)
}
