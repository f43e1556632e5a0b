/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics counts resolved handler failures with Prometheus.
package metrics

import (
	"strconv"

	"dirpx.dev/outcome/apis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "outcome"

// Metrics implements apis.FailureRecorder.
type Metrics struct {
	failures *prometheus.CounterVec
}

var _ apis.FailureRecorder = (*Metrics)(nil)

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		failures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failures_total",
				Help:      "Total number of handler failures by resolved status and source",
			},
			[]string{"transport", "status", "source", "kind"},
		),
	}
}

// RecordFailure increments the failure counter for res.
func (m *Metrics) RecordFailure(transport string, res apis.Resolution) {
	m.failures.WithLabelValues(transport, strconv.Itoa(res.HTTP), string(res.Source), res.Kind.String()).Inc()
}

// Failures exposes the failure counter.
func (m *Metrics) Failures() *prometheus.CounterVec {
	return m.failures
}
