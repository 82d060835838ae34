package gmm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// InterpSpecAccels returns pseudo-spectral accelerations (g) at the provided
// periods (sec) by piecewise-linear interpolation in (log period, log
// response) space. Response spectra are smooth in log-log space, so the
// interpolates between tabulated periods are physically reasonable. Query
// periods need not be sorted; output preserves query order. Periods outside
// the supported range take the value at the nearest endpoint.
func (m *Model) InterpSpecAccels(periods []float64) ([]float64, error) {
	lnSA, err := m.interpLn(periods, m.lnRespPSA())
	if err != nil {
		return nil, err
	}
	for i, v := range lnSA {
		lnSA[i] = math.Exp(v)
	}
	return lnSA, nil
}

// InterpLnStds returns the logarithmic standard deviations of spectral
// acceleration at the provided periods (sec). Interpolation is
// piecewise-linear in (log period, log-std) space; the result stays in the
// log domain.
func (m *Model) InterpLnStds(periods []float64) ([]float64, error) {
	return m.interpLn(periods, m.lnStdsPSA())
}

func (m *Model) interpLn(periods, ys []float64) ([]float64, error) {
	for _, p := range periods {
		if p <= 0 {
			return nil, fmt.Errorf("model %s: period must be positive, got %g", m.spec.Abbrev, p)
		}
	}

	native := m.spec.psaPeriods()
	if len(native) == 0 {
		return nil, fmt.Errorf("model %s provides no spectral accelerations", m.spec.Abbrev)
	}

	// A single supported period degenerates to a constant spectrum.
	if len(native) == 1 {
		out := make([]float64, len(periods))
		for i := range out {
			out[i] = ys[0]
		}
		return out, nil
	}

	xs := make([]float64, len(native))
	for i, p := range native {
		xs[i] = math.Log(p)
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("model %s: %w", m.spec.Abbrev, err)
	}

	out := make([]float64, len(periods))
	for i, p := range periods {
		out[i] = pl.Predict(math.Log(p))
	}
	return out, nil
}

func (m *Model) lnRespPSA() []float64 {
	out := make([]float64, len(m.spec.IndicesPSA))
	for i, idx := range m.spec.IndicesPSA {
		out[i] = m.lnResp[idx]
	}
	return out
}

func (m *Model) lnStdsPSA() []float64 {
	out := make([]float64, len(m.spec.IndicesPSA))
	for i, idx := range m.spec.IndicesPSA {
		out[i] = m.lnStd[idx]
	}
	return out
}
