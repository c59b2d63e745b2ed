// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package invariant

import "encoding/json"

// DefaultOperationCheckMinVersion is the first ledger protocol version whose
// operations are checked.
const DefaultOperationCheckMinVersion = 8

var DefaultConfig = Config{
	OperationCheckMinVersion: DefaultOperationCheckMinVersion,
}

type Config struct {
	// Checks are the names of the invariants to enable, in dispatch order.
	Checks []string `json:"invariant-checks"`
	// Operation checks are skipped for ledgers with a lower protocol version.
	OperationCheckMinVersion uint32 `json:"operation-check-min-version"`
}

// GetConfig returns a Config
// input is unmarshalled into a Config previously
// initialized with default values
func GetConfig(b []byte) (*Config, error) {
	c := DefaultConfig

	// if bytes are empty keep default values
	if len(b) == 0 {
		return &c, nil
	}

	return &c, json.Unmarshal(b, &c)
}
