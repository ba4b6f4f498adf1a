// Copyright 2025 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verifier

import (
	"time"

	ct "github.com/google/ctverify"
	"github.com/prometheus/client_golang/prometheus"
)

// Operation label values.
const (
	opVerifySTH         = "verify_sth"
	opVerifyConsistency = "verify_sth_consistency"
	opVerifyTemporal    = "verify_sth_temporal_consistency"
	opVerifySCT         = "verify_sct"
	opVerifyEmbedded    = "verify_embedded_scts"
	opEmbeddedSCT       = "embedded_sct"
)

// Metrics counts LogVerifier outcomes. A nil *Metrics records nothing.
type Metrics struct {
	verifications *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// NewMetrics creates the verifier metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ctverify_verifications_total",
			Help: "Number of verification operations, labeled by operation and result",
		}, []string{"operation", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ctverify_verification_latency_seconds",
			Help:    "Latency of verification operations, labeled by operation",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}, []string{"operation"}),
	}
	if reg != nil {
		reg.MustRegister(m.verifications, m.latency)
	}
	return m
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return ct.ErrorKind(err)
}

func (m *Metrics) observe(op string, start time.Time, errp *error) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(op, resultLabel(*errp)).Inc()
	m.latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeEmbeddedSCT(err error) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(opEmbeddedSCT, resultLabel(err)).Inc()
}
