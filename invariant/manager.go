// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package invariant

import (
	"fmt"
	"slices"
	"sort"

	"github.com/luxfi/log"
	"github.com/luxfi/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Manager owns the registered invariants and dispatches the enabled ones.
//
// Register and Enable must only be called while the node initializes. Once
// dispatch starts the manager is read only and the Check methods may be
// called concurrently.
type Manager struct {
	config  Config
	log     log.Logger
	metrics *metrics

	// registry in registration order
	invariants []entry
	indices    map[string]int
	// indices into invariants, in enable order
	enabled []int
}

// entry pins the identity and strictness an invariant had when it was
// registered.
type entry struct {
	invariant Invariant
	name      string
	strict    bool
}

// Info describes a registered invariant.
type Info struct {
	Strict   bool   `json:"strict"`
	Enabled  bool   `json:"enabled"`
	Failures uint64 `json:"failures"`
}

// NewManager returns a manager with no registered invariants.
//
// Strict violations are logged at fatal level but the manager never exits the
// process itself; the Check methods return a *ViolationError instead.
func NewManager(config Config, registerer metric.Registerer, logger log.Logger) (*Manager, error) {
	managerMetrics, err := newMetrics(registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register invariant metrics: %w", err)
	}
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	return &Manager{
		config:  config,
		log:     logger.WithOptions(zap.WithFatalHook(deferredHalt{})),
		metrics: managerMetrics,
		indices: make(map[string]int),
	}, nil
}

// Register adds [inv] to the registry. A name can only be registered once,
// even by the same invariant.
func (m *Manager) Register(inv Invariant) error {
	name := inv.Name()
	if _, ok := m.indices[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	m.indices[name] = len(m.invariants)
	m.invariants = append(m.invariants, entry{
		invariant: inv,
		name:      name,
		strict:    inv.Strict(),
	})
	m.metrics.track(name)
	return nil
}

// Enable appends the registered invariant [name] to the dispatch order.
func (m *Manager) Enable(name string) error {
	index, ok := m.indices[name]
	if !ok {
		return &UnknownInvariantError{
			Name:       name,
			Registered: m.Registered(),
		}
	}
	if slices.Contains(m.enabled, index) {
		return fmt.Errorf("%w: %s", ErrAlreadyEnabled, name)
	}

	m.enabled = append(m.enabled, index)
	m.metrics.enabled.Set(float64(len(m.enabled)))
	m.log.Info("enabled invariant",
		"invariant", name,
		"strict", m.invariants[index].strict,
	)
	return nil
}

// EnableAll enables [names] in order, stopping at the first failure.
func (m *Manager) EnableAll(names []string) error {
	for i, name := range names {
		if err := m.Enable(name); err != nil {
			return fmt.Errorf("failed to enable invariant check %d: %w", i, err)
		}
	}
	return nil
}

// EnableConfigured enables the checks named by the manager's config.
func (m *Manager) EnableConfigured() error {
	return m.EnableAll(m.config.Checks)
}

// Registered returns the registered names in ascending order.
func (m *Manager) Registered() []string {
	names := make([]string, 0, len(m.invariants))
	for _, e := range m.invariants {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// Enabled returns the enabled names in dispatch order.
func (m *Manager) Enabled() []string {
	names := make([]string, len(m.enabled))
	for i, index := range m.enabled {
		names[i] = m.invariants[index].name
	}
	return names
}

// Info returns the state of every registered invariant, keyed by name.
func (m *Manager) Info() (map[string]Info, error) {
	info := make(map[string]Info, len(m.invariants))
	for index, e := range m.invariants {
		failures, err := m.metrics.failures(e.name)
		if err != nil {
			return nil, fmt.Errorf("failed to read failures of %s: %w", e.name, err)
		}
		info[e.name] = Info{
			Strict:   e.strict,
			Enabled:  slices.Contains(m.enabled, index),
			Failures: failures,
		}
	}
	return info, nil
}

// deferredHalt leaves the fatal entry written and returns control to the
// manager, which hands the halt to its caller as a *ViolationError.
type deferredHalt struct{}

func (deferredHalt) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {}
