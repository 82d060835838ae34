/*
Copyright 2025 The hazardlab Authors

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

// Package metrics exposes prometheus counters for model usage. Counters are
// registered with the default registry; consumers that scrape it see them,
// everyone else pays only the increment cost.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groundmotion_predictions_total",
			Help: "Number of model responses computed, by model.",
		},
		[]string{"model"},
	)

	parameterViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groundmotion_parameter_violations_total",
			Help: "Number of advisory parameter-validation findings, by model and severity.",
		},
		[]string{"model", "severity"},
	)
)

// Prediction records one computed model response.
func Prediction(model string) {
	predictionsTotal.WithLabelValues(model).Inc()
}

// ParameterViolation records one advisory validation finding.
func ParameterViolation(model, severity string) {
	parameterViolationsTotal.WithLabelValues(model, severity).Inc()
}
