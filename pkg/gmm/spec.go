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

	"github.com/hazardlab/groundmotion/pkg/params"
)

// NoIndex marks a scalar quantity (PGA, PGV, PGD) the model does not provide.
const NoIndex = -1

// Spec is the per-variant constant configuration of a ground-motion model.
// It is built once when a variant is declared and treated as immutable
// afterwards; Model never modifies it.
type Spec struct {
	// Name is the full model name.
	Name string

	// Abbrev is the short identifier used in registry lookups, log messages,
	// and metrics labels.
	Abbrev string

	// Periods are the oscillator periods (sec) of every response slot the
	// model's regression natively supports. The response arrays produced by
	// a Computer must have exactly this length.
	Periods []float64

	// IndicesPSA selects the response slots populated with pseudo-spectral
	// acceleration estimates. Indices must be strictly increasing; the
	// periods they select must be positive and strictly increasing for the
	// log-log interpolation to be well defined.
	IndicesPSA []int

	// IndexPGA, IndexPGV, and IndexPGD designate the response slots holding
	// the peak ground motion values, or NoIndex when unsupported.
	IndexPGA int
	IndexPGV int
	IndexPGD int

	// PGVScale converts the exponentiated PGV slot to cm/sec. Applied only
	// at the accessor boundary, never stored in the log arrays. A zero value
	// means no scaling (factor 1).
	PGVScale float64

	// PGDScale converts the exponentiated PGD slot to cm. Same rules as
	// PGVScale.
	PGDScale float64

	// Params are the input-parameter specifications in declaration order.
	// The order determines the order of validation diagnostics.
	Params []params.Parameter
}

// NewSpec returns a Spec with the scalar indices unset and unit scale
// factors. Callers fill in IndicesPSA, the scalar indices, and Params.
func NewSpec(name, abbrev string, periods []float64) Spec {
	return Spec{
		Name:     name,
		Abbrev:   abbrev,
		Periods:  periods,
		IndexPGA: NoIndex,
		IndexPGV: NoIndex,
		IndexPGD: NoIndex,
		PGVScale: 1,
		PGDScale: 1,
	}
}

// Validate checks the spec for internal consistency.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	if s.Abbrev == "" {
		return fmt.Errorf("model abbreviation cannot be empty")
	}
	if len(s.Periods) == 0 {
		return fmt.Errorf("model %s declares no periods", s.Abbrev)
	}

	prev := 0.0
	for i, idx := range s.IndicesPSA {
		if idx < 0 || idx >= len(s.Periods) {
			return fmt.Errorf("model %s: PSA index %d out of range [0, %d)",
				s.Abbrev, idx, len(s.Periods))
		}
		p := s.Periods[idx]
		if p <= 0 {
			return fmt.Errorf("model %s: PSA period must be positive, got %g", s.Abbrev, p)
		}
		if i > 0 && p <= prev {
			return fmt.Errorf("model %s: PSA periods must be strictly increasing, got %g after %g",
				s.Abbrev, p, prev)
		}
		prev = p
	}

	for _, q := range []struct {
		name string
		idx  int
	}{
		{"PGA", s.IndexPGA},
		{"PGV", s.IndexPGV},
		{"PGD", s.IndexPGD},
	} {
		if q.idx != NoIndex && (q.idx < 0 || q.idx >= len(s.Periods)) {
			return fmt.Errorf("model %s: %s index %d out of range [0, %d)",
				s.Abbrev, q.name, q.idx, len(s.Periods))
		}
	}

	if s.PGVScale < 0 || s.PGDScale < 0 {
		return fmt.Errorf("model %s: scale factors must be non-negative", s.Abbrev)
	}

	seen := make(map[string]bool, len(s.Params))
	for _, p := range s.Params {
		if p.Name() == "" {
			return fmt.Errorf("model %s: parameter name cannot be empty", s.Abbrev)
		}
		if seen[p.Name()] {
			return fmt.Errorf("model %s: duplicate parameter %q", s.Abbrev, p.Name())
		}
		seen[p.Name()] = true
	}
	return nil
}

// psaPeriods returns the subsequence of Periods selected by IndicesPSA.
func (s *Spec) psaPeriods() []float64 {
	out := make([]float64, len(s.IndicesPSA))
	for i, idx := range s.IndicesPSA {
		out[i] = s.Periods[idx]
	}
	return out
}

// pgvScale and pgdScale treat the zero value as no scaling so that a bare
// Spec literal behaves like one built with NewSpec.
func (s *Spec) pgvScale() float64 {
	if s.PGVScale == 0 {
		return 1
	}
	return s.PGVScale
}

func (s *Spec) pgdScale() float64 {
	if s.PGDScale == 0 {
		return 1
	}
	return s.PGDScale
}
