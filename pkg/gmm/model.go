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

package gmm

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"github.com/spf13/cast"

	"github.com/hazardlab/groundmotion/internal/config"
	"github.com/hazardlab/groundmotion/internal/logging"
	"github.com/hazardlab/groundmotion/internal/metrics"
	"github.com/hazardlab/groundmotion/pkg/params"
)

// ParamSet is the resolved parameter mapping of a model instance. Values are
// float64 for numeric parameters, string for categorical ones, and nil for
// optional parameters that were absent and declare no default. A ParamSet is
// built once at construction and must be treated as read-only afterwards.
type ParamSet map[string]any

// Float returns the named parameter as a float64, or 0 if unset.
func (ps ParamSet) Float(name string) float64 {
	v, err := cast.ToFloat64E(ps[name])
	if err != nil {
		return 0
	}
	return v
}

// Str returns the named parameter as a string, or "" if unset.
func (ps ParamSet) Str(name string) string {
	v, err := cast.ToStringE(ps[name])
	if err != nil {
		return ""
	}
	return v
}

// Has reports whether the named parameter resolved to a value.
func (ps ParamSet) Has(name string) bool {
	v, ok := ps[name]
	return ok && v != nil
}

// Computer is the regression logic of a model variant: the one operation a
// concrete model must supply. It maps a resolved parameter set to natural-log
// response and natural-log standard deviation arrays, both with one slot per
// declared period.
type Computer interface {
	Compute(ps ParamSet) (lnResp, lnStd []float64, err error)
}

// ComputerFunc adapts a plain function to the Computer interface.
type ComputerFunc func(ps ParamSet) ([]float64, []float64, error)

// Compute implements Computer.
func (f ComputerFunc) Compute(ps ParamSet) ([]float64, []float64, error) {
	return f(ps)
}

// Option configures model construction.
type Option func(*options)

type options struct {
	logger      *logr.Logger
	useDefaults bool
}

// WithLogger routes validation diagnostics to the provided logger instead of
// the package-wide one.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// WithoutConfigDefaults disables filling absent optional parameters from the
// loaded per-model defaults configuration.
func WithoutConfigDefaults() Option {
	return func(o *options) { o.useDefaults = false }
}

// Model is a single prediction query: input parameters resolved and validated
// once, response arrays computed once, then queried any number of times
// through read-only accessors. Instances must not be reused across different
// parameter sets.
type Model struct {
	spec   Spec
	ps     ParamSet
	diags  []params.Diagnostic
	lnResp []float64
	lnStd  []float64
}

// New constructs a model from its spec, its regression logic, and the named
// input values. Construction fails if the spec is inconsistent, a required
// parameter is absent, or the computer returns arrays of the wrong length.
// Soft violations never fail construction: they are logged and retained on
// the model (see Diagnostics).
func New(spec Spec, comp Computer, values map[string]any, opts ...Option) (*Model, error) {
	o := options{useDefaults: true}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.Log()
	if o.logger != nil {
		logger = *o.logger
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if comp == nil {
		return nil, fmt.Errorf("model %s: computer cannot be nil", spec.Abbrev)
	}

	var defaults map[string]any
	if o.useDefaults {
		defaults = config.GetModelDefaults().ForModel(spec.Abbrev).Values
	}

	m := &Model{spec: spec, ps: make(ParamSet, len(spec.Params))}
	for _, p := range spec.Params {
		value := values[p.Name()]
		// Config defaults fill optional parameters only: a required
		// parameter must come from the caller, never from a preset.
		if value == nil && defaults != nil && !p.Required() {
			value = defaults[p.Name()]
		}

		resolved, diags, err := p.Check(value)
		if err != nil {
			return nil, err
		}
		m.ps[p.Name()] = resolved

		for _, d := range diags {
			metrics.ParameterViolation(spec.Abbrev, d.Severity.String())
			switch d.Severity {
			case params.SeverityError:
				logger.Error(nil, d.Message, "model", spec.Abbrev, "parameter", d.Param)
			default:
				logger.Info(d.Message, "model", spec.Abbrev, "parameter", d.Param)
			}
		}
		m.diags = append(m.diags, diags...)
	}

	lnResp, lnStd, err := comp.Compute(m.ps)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", spec.Abbrev, err)
	}
	if len(lnResp) != len(spec.Periods) || len(lnStd) != len(spec.Periods) {
		return nil, fmt.Errorf("model %s: computed %d response and %d deviation slots, want %d",
			spec.Abbrev, len(lnResp), len(lnStd), len(spec.Periods))
	}
	m.lnResp = lnResp
	m.lnStd = lnStd

	metrics.Prediction(spec.Abbrev)
	logger.V(logging.DEBUG).Info("computed model response",
		"model", spec.Abbrev, "periods", len(spec.Periods))
	return m, nil
}

// Name returns the full model name.
func (m *Model) Name() string { return m.spec.Name }

// Abbrev returns the short model identifier.
func (m *Model) Abbrev() string { return m.spec.Abbrev }

// Params returns the resolved parameter set. The returned map is shared with
// the model and must be treated as read-only.
func (m *Model) Params() ParamSet { return m.ps }

// Diagnostics returns the validation findings recorded at construction, in
// parameter declaration order.
func (m *Model) Diagnostics() []params.Diagnostic { return m.diags }

// Periods returns the periods (sec) with spectral-acceleration estimates.
func (m *Model) Periods() []float64 { return m.spec.psaPeriods() }

// SpecAccels returns the pseudo-spectral accelerations computed by the
// model (g), one per period reported by Periods.
func (m *Model) SpecAccels() []float64 {
	out := m.lnRespPSA()
	for i, v := range out {
		out[i] = math.Exp(v)
	}
	return out
}

// LnStds returns the logarithmic standard deviations of the pseudo-spectral
// accelerations, one per period reported by Periods.
func (m *Model) LnStds() []float64 {
	return m.lnStdsPSA()
}

// PGA returns the peak ground acceleration computed by the model (g).
func (m *Model) PGA() (float64, error) {
	if m.spec.IndexPGA == NoIndex {
		return 0, &UnsupportedQuantityError{Model: m.spec.Abbrev, Quantity: "PGA"}
	}
	return math.Exp(m.lnResp[m.spec.IndexPGA]), nil
}

// LnStdPGA returns the logarithmic standard deviation of the peak ground
// acceleration.
func (m *Model) LnStdPGA() (float64, error) {
	if m.spec.IndexPGA == NoIndex {
		return 0, &UnsupportedQuantityError{Model: m.spec.Abbrev, Quantity: "PGA"}
	}
	return m.lnStd[m.spec.IndexPGA], nil
}

// PGV returns the peak ground velocity computed by the model (cm/sec).
func (m *Model) PGV() (float64, error) {
	if m.spec.IndexPGV == NoIndex {
		return 0, &UnsupportedQuantityError{Model: m.spec.Abbrev, Quantity: "PGV"}
	}
	return math.Exp(m.lnResp[m.spec.IndexPGV]) * m.spec.pgvScale(), nil
}

// LnStdPGV returns the logarithmic standard deviation of the peak ground
// velocity. The unit scale factor does not apply in the log domain.
func (m *Model) LnStdPGV() (float64, error) {
	if m.spec.IndexPGV == NoIndex {
		return 0, &UnsupportedQuantityError{Model: m.spec.Abbrev, Quantity: "PGV"}
	}
	return m.lnStd[m.spec.IndexPGV], nil
}

// PGD returns the peak ground displacement computed by the model (cm).
func (m *Model) PGD() (float64, error) {
	if m.spec.IndexPGD == NoIndex {
		return 0, &UnsupportedQuantityError{Model: m.spec.Abbrev, Quantity: "PGD"}
	}
	return math.Exp(m.lnResp[m.spec.IndexPGD]) * m.spec.pgdScale(), nil
}

// LnStdPGD returns the logarithmic standard deviation of the peak ground
// displacement.
func (m *Model) LnStdPGD() (float64, error) {
	if m.spec.IndexPGD == NoIndex {
		return 0, &UnsupportedQuantityError{Model: m.spec.Abbrev, Quantity: "PGD"}
	}
	return m.lnStd[m.spec.IndexPGD], nil
}
