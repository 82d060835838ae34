// Package gmm provides the shared abstraction for ground-motion prediction
// models (GMPMs) used in seismic hazard analysis.
//
// A model variant is described by two pieces:
//
//   - Spec: the immutable configuration record for the variant — its period
//     table, which response slots hold spectral accelerations, where (if
//     anywhere) PGA/PGV/PGD live, unit scale factors, and the list of input
//     parameter specifications.
//   - Computer: the variant's regression logic, one required operation that
//     maps a resolved parameter set to natural-log response and natural-log
//     standard deviation arrays.
//
// The Model type is the generic wrapper around both: it performs parameter
// intake and advisory validation, invokes the Computer once, and exposes
// read-only period-indexed and scalar accessors with unit scaling and
// log-log interpolation.
//
// Example usage:
//
//	spec := gmm.NewSpec("Example Model", "EX", []float64{0.01, 0.1, 1.0})
//	spec.IndicesPSA = []int{0, 1, 2}
//	spec.IndexPGA = 0
//	spec.Params = []params.Parameter{
//	    params.NewNumeric("mag", true, params.Bounds(4, 8)),
//	    params.NewNumeric("dist_rup", true, params.Bounds(0, 300)),
//	}
//
//	m, err := gmm.New(spec, computer, map[string]any{
//	    "mag":      6.5,
//	    "dist_rup": 20.0,
//	})
//	if err != nil {
//	    return err
//	}
//
//	sa, err := m.InterpSpecAccels([]float64{0.2, 0.5})
//
// Models are designed to be:
//   - Immutable after construction (one instance per prediction query)
//   - Safe for concurrent read access
//   - Advisory in validation: out-of-range inputs warn, they never abort
package gmm
