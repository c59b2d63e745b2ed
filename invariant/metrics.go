// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package invariant

import (
	"github.com/luxfi/metric"

	dto "github.com/prometheus/client_model/go"
)

const (
	namespace = "invariant"
	nameLabel = "name"
)

type metrics struct {
	doesNotHold metric.CounterVec
	enabled     metric.Gauge
}

func newMetrics(registerer metric.Registerer) (*metrics, error) {
	m := &metrics{
		doesNotHold: metric.NewCounterVec(
			metric.CounterOpts{
				Namespace: namespace,
				Name:      "does_not_hold",
				Help:      "Number of times an invariant did not hold",
			},
			[]string{nameLabel},
		),
		enabled: metric.NewGauge(metric.GaugeOpts{
			Namespace: namespace,
			Name:      "enabled",
			Help:      "Number of enabled invariants",
		}),
	}

	errs := metric.Errs{}
	errs.Add(
		registerer.Register(m.doesNotHold),
		registerer.Register(m.enabled),
	)
	return m, errs.Err
}

// track creates the failure counter of [name] at zero.
func (m *metrics) track(name string) {
	m.doesNotHold.WithLabelValues(name)
}

func (m *metrics) markDoesNotHold(name string) {
	m.doesNotHold.WithLabelValues(name).Inc()
}

// failures reads the counter through its collector. Get on a counter backed by
// prometheus always reports zero.
func (m *metrics) failures(name string) (uint64, error) {
	ch := make(chan metric.Metric, 1)
	m.doesNotHold.WithLabelValues(name).Collect(ch)

	var value dto.Metric
	if err := (<-ch).Write(&value); err != nil {
		return 0, err
	}
	return uint64(value.GetCounter().GetValue()), nil
}
