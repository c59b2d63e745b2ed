// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package invariant

import (
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/luxfi/ledgercheck/bucketlist"
	"github.com/luxfi/ledgercheck/state"
	"github.com/luxfi/ledgercheck/txs"
)

var _ Invariant = (*testInvariant)(nil)

// testInvariant holds unless one of its check functions is set.
type testInvariant struct {
	name   string
	strict bool

	checkOnLedgerCloseF    func(*state.Delta) string
	checkOnBucketApplyF    func(bucketlist.Bucket, uint32, uint32) string
	checkOnOperationApplyF func(*txs.Operation, *txs.OperationResult, *state.Delta) string
}

func (i *testInvariant) Name() string {
	return i.name
}

func (i *testInvariant) Strict() bool {
	return i.strict
}

func (i *testInvariant) CheckOnLedgerClose(delta *state.Delta) string {
	if i.checkOnLedgerCloseF != nil {
		return i.checkOnLedgerCloseF(delta)
	}
	return ""
}

func (i *testInvariant) CheckOnBucketApply(bucket bucketlist.Bucket, oldestLedger, newestLedger uint32) string {
	if i.checkOnBucketApplyF != nil {
		return i.checkOnBucketApplyF(bucket, oldestLedger, newestLedger)
	}
	return ""
}

func (i *testInvariant) CheckOnOperationApply(op *txs.Operation, result *txs.OperationResult, delta *state.Delta) string {
	if i.checkOnOperationApplyF != nil {
		return i.checkOnOperationApplyF(op, result, delta)
	}
	return ""
}

type testBucket struct {
	hash common.Hash
}

func (b *testBucket) Hash() common.Hash {
	return b.hash
}

type testEnv struct {
	manager  *Manager
	registry metric.Registry
	logs     *observer.ObservedLogs
}

func newTestEnv(t *testing.T, config Config) *testEnv {
	return newTestEnvWithCore(t, config, func(core zapcore.Core) zapcore.Core {
		return core
	})
}

// newTestEnvWithCore logs through [wrap] applied to the observed core.
func newTestEnvWithCore(t *testing.T, config Config, wrap func(zapcore.Core) zapcore.Core) *testEnv {
	core, logs := observer.New(zapcore.DebugLevel)
	registry := metric.NewRegistry()
	manager, err := NewManager(config, registry, log.NewZapLogger(zap.New(wrap(core))))
	require.NoError(t, err)
	return &testEnv{
		manager:  manager,
		registry: registry,
		logs:     logs,
	}
}

// add registers and enables each invariant in order.
func (e *testEnv) add(t *testing.T, invariants ...Invariant) {
	for _, inv := range invariants {
		require.NoError(t, e.manager.Register(inv))
		require.NoError(t, e.manager.Enable(inv.Name()))
	}
}

func (e *testEnv) failures(name string) float64 {
	return testutil.ToFloat64(e.manager.metrics.doesNotHold.WithLabelValues(name))
}

// failureLogs returns the error and fatal entries, which are only written for
// violations.
func (e *testEnv) failureLogs() []observer.LoggedEntry {
	return e.logs.Filter(func(entry observer.LoggedEntry) bool {
		return entry.Level >= zapcore.ErrorLevel
	}).All()
}

func testDelta(sequence, version uint32) *state.Delta {
	return &state.Delta{
		Header: state.Header{
			Sequence: sequence,
			Version:  version,
		},
		Changes: []state.Change{
			{
				Type:    state.Created,
				Key:     "account/alice",
				Current: []byte{0x01},
			},
		},
	}
}

func testOperation() *txs.Operation {
	return &txs.Operation{
		Source: "alice",
		Type:   "payment",
	}
}

func testTxSet() *txs.TxSet {
	return &txs.TxSet{
		Transactions: []*txs.Tx{
			{
				Source:         "alice",
				Fee:            100,
				SequenceNumber: 7,
				Operations:     []*txs.Operation{testOperation()},
			},
		},
	}
}
