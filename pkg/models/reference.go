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

// Package models holds concrete ground-motion model variants. Each variant
// supplies a coefficient table and a Computer conforming to the gmm contract;
// registration happens at package init so variants can be instantiated by
// identifier through gmm.Create.
package models

import (
	"embed"
	"math"

	"github.com/hazardlab/groundmotion/pkg/gmm"
	"github.com/hazardlab/groundmotion/pkg/params"
	"github.com/hazardlab/groundmotion/pkg/tabular"
)

//go:embed data/*.csv
var dataFS embed.FS

// AbbrevReference is the registry identifier of the generic reference model.
const AbbrevReference = "GRM"

// refVs30 is the reference shear-wave velocity (m/sec) of the site term.
const refVs30 = 760.0

// refCoeffs holds the coefficient columns loaded once at init; read-only
// afterwards.
var refCoeffs struct {
	c1, c2, c3, c4, c5, lnStd []float64
}

func init() {
	t, err := tabular.Load(dataFS, "data/grm_coeffs.csv", 0)
	if err != nil {
		panic(err)
	}
	periods := mustColumn(t, "period")
	refCoeffs.c1 = mustColumn(t, "c1")
	refCoeffs.c2 = mustColumn(t, "c2")
	refCoeffs.c3 = mustColumn(t, "c3")
	refCoeffs.c4 = mustColumn(t, "c4")
	refCoeffs.c5 = mustColumn(t, "c5")
	refCoeffs.lnStd = mustColumn(t, "ln_std")

	spec := gmm.NewSpec("Generic Reference Model", AbbrevReference, periods)
	for i, p := range periods {
		switch {
		case p > 0:
			spec.IndicesPSA = append(spec.IndicesPSA, i)
		case p == 0:
			spec.IndexPGA = i
		case p == -1:
			spec.IndexPGV = i
		}
	}
	// Regression yields PGV in m/sec; report cm/sec.
	spec.PGVScale = 100
	spec.Params = []params.Parameter{
		params.NewNumeric("mag", true, params.Bounds(4, 8.5)),
		params.NewNumeric("dist_rup", true, params.Bounds(0, 300)),
		params.NewNumeric("v_s30", false, params.Default(refVs30), params.Bounds(150, 1500)),
		params.NewCategorical("mechanism", false, "SS", "NM", "RS").WithDefault("SS"),
	}

	gmm.MustRegister(spec, gmm.ComputerFunc(computeReference))
}

// NewReference instantiates the generic reference model. Recognized
// parameters: mag, dist_rup (km), v_s30 (m/sec), mechanism (SS, NM, RS).
func NewReference(values map[string]any, opts ...gmm.Option) (*gmm.Model, error) {
	return gmm.Create(AbbrevReference, values, opts...)
}

// computeReference evaluates the reference functional form
//
//	ln y = c1 + c2 (M - 6) + c3 ln sqrt(R^2 + c4^2) + c5 ln(v_s30 / 760) + f_mech
//
// per response slot.
func computeReference(ps gmm.ParamSet) ([]float64, []float64, error) {
	mag := ps.Float("mag")
	dist := ps.Float("dist_rup")
	vs30 := ps.Float("v_s30")

	var fMech float64
	switch ps.Str("mechanism") {
	case "RS":
		fMech = 0.08
	case "NM":
		fMech = -0.06
	}

	n := len(refCoeffs.c1)
	lnResp := make([]float64, n)
	lnStd := make([]float64, n)
	for i := 0; i < n; i++ {
		r := math.Sqrt(dist*dist + refCoeffs.c4[i]*refCoeffs.c4[i])
		lnResp[i] = refCoeffs.c1[i] +
			refCoeffs.c2[i]*(mag-6) +
			refCoeffs.c3[i]*math.Log(r) +
			refCoeffs.c5[i]*math.Log(vs30/refVs30) +
			fMech
		lnStd[i] = refCoeffs.lnStd[i]
	}
	return lnResp, lnStd, nil
}

func mustColumn(t *tabular.Table, name string) []float64 {
	col, err := t.Column(name)
	if err != nil {
		panic(err)
	}
	return col
}
