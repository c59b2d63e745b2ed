// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package invariant

import (
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/sanity-io/litter"
	"go.uber.org/zap"

	"github.com/luxfi/ledgercheck/bucketlist"
	"github.com/luxfi/ledgercheck/state"
	"github.com/luxfi/ledgercheck/txs"
)

var dumper = litter.Options{
	HidePrivateFields: true,
	StripPackageNames: true,
}

// CheckOnLedgerClose runs the enabled invariants against the changes of a
// closed ledger. [txSet] is the transaction set that produced [delta].
func (m *Manager) CheckOnLedgerClose(txSet *txs.TxSet, delta *state.Delta) error {
	for _, index := range m.enabled {
		e := m.invariants[index]
		result := e.invariant.CheckOnLedgerClose(delta)
		if result == "" {
			continue
		}

		message := fmt.Sprintf(
			"invariant \"%s\" does not hold on ledger %d: %s\n%s",
			e.name,
			delta.Header.Sequence,
			result,
			dumper.Sdump(txSet),
		)
		if err := m.onFailure(e, message,
			zap.Uint32("ledger", delta.Header.Sequence),
		); err != nil {
			return err
		}
	}
	return nil
}

// CheckOnBucketApply runs the enabled invariants against [bucket], the [half]
// bucket of [level] once [ledger] closed.
func (m *Manager) CheckOnBucketApply(bucket bucketlist.Bucket, ledger, level uint32, half bucketlist.Half) error {
	oldest, newest, err := bucketlist.LedgerRange(ledger, level, half)
	if err != nil {
		return err
	}

	for _, index := range m.enabled {
		e := m.invariants[index]
		result := e.invariant.CheckOnBucketApply(bucket, oldest, newest)
		if result == "" {
			continue
		}

		hash := bucket.Hash()
		message := fmt.Sprintf(
			"invariant \"%s\" does not hold on bucket %s[%d] = %s: %s",
			e.name,
			half,
			level,
			common.Bytes2Hex(hash[:]),
			result,
		)
		if err := m.onFailure(e, message,
			zap.Uint32("ledger", ledger),
			zap.Uint32("level", level),
			zap.Stringer("half", half),
			zap.Uint32("oldestLedger", oldest),
			zap.Uint32("newestLedger", newest),
		); err != nil {
			return err
		}
	}
	return nil
}

// CheckOnOperationApply runs the enabled invariants against an applied
// operation. Ledgers older than the configured protocol version are not
// checked.
func (m *Manager) CheckOnOperationApply(op *txs.Operation, result *txs.OperationResult, delta *state.Delta) error {
	if delta.Header.Version < m.config.OperationCheckMinVersion {
		return nil
	}

	for _, index := range m.enabled {
		e := m.invariants[index]
		verdict := e.invariant.CheckOnOperationApply(op, result, delta)
		if verdict == "" {
			continue
		}

		message := fmt.Sprintf(
			"invariant \"%s\" does not hold on operation: %s\n%s",
			e.name,
			verdict,
			dumper.Sdump(op),
		)
		if err := m.onFailure(e, message,
			zap.Uint32("ledger", delta.Header.Sequence),
			zap.String("operationType", string(op.Type)),
		); err != nil {
			return err
		}
	}
	return nil
}

// onFailure counts the failure and logs [message] as the entry message. Only a
// strict invariant returns an error, after both the counter and the log entry
// are written.
func (m *Manager) onFailure(e entry, message string, fields ...zap.Field) error {
	m.metrics.markDoesNotHold(e.name)

	logger := m.log.WithFields(append([]zap.Field{
		zap.String("invariant", e.name),
		zap.Bool("strict", e.strict),
	}, fields...)...)
	if e.strict {
		logger.Fatal(message)
		return &ViolationError{
			Invariant: e.name,
			Message:   message,
		}
	}

	logger.Error(message)
	return nil
}
