package gmm

import (
	"errors"
	"math"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"

	"github.com/hazardlab/groundmotion/internal/config"
	"github.com/hazardlab/groundmotion/pkg/params"
)

// testSpec declares a small variant with PGV in slot 0, PGA in slot 1, and
// four spectral periods.
func testSpec() Spec {
	s := NewSpec("Test Model", "TM", []float64{-1, 0, 0.1, 0.5, 1.0, 2.0})
	s.IndicesPSA = []int{2, 3, 4, 5}
	s.IndexPGV = 0
	s.IndexPGA = 1
	s.Params = []params.Parameter{
		params.NewNumeric("mag", true, params.Bounds(4, 8)),
		params.NewNumeric("dist_rup", true, params.Bounds(0, 300)),
		params.NewNumeric("v_s30", false, params.Default(760)),
		params.NewCategorical("mechanism", false, "SS", "NM", "RS").WithDefault("SS"),
	}
	return s
}

// constComputer returns fixed response arrays regardless of the parameters.
func constComputer(lnResp, lnStd []float64) Computer {
	return ComputerFunc(func(ParamSet) ([]float64, []float64, error) {
		return lnResp, lnStd, nil
	})
}

var (
	testLnResp = []float64{0.2, -0.8, -0.7, -1.1, -1.9, -2.6}
	testLnStd  = []float64{0.63, 0.57, 0.58, 0.62, 0.67, 0.71}
)

func newTestModel(t *testing.T, values map[string]any) *Model {
	t.Helper()
	m, err := New(testSpec(), constComputer(testLnResp, testLnStd), values,
		WithLogger(logr.Discard()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func validValues() map[string]any {
	return map[string]any{"mag": 6.5, "dist_rup": 20.0}
}

func TestNewMissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{name: "missing mag", values: map[string]any{"dist_rup": 20.0}},
		{name: "missing dist_rup", values: map[string]any{"mag": 6.5}},
		{name: "missing both", values: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(testSpec(), constComputer(testLnResp, testLnStd), tt.values,
				WithLogger(logr.Discard()))
			if !errors.Is(err, params.ErrMissingParameter) {
				t.Errorf("New() error = %v, want ErrMissingParameter", err)
			}
		})
	}
}

func TestNewResolvesDefaults(t *testing.T) {
	m := newTestModel(t, validValues())
	if got := m.Params().Float("v_s30"); got != 760 {
		t.Errorf("v_s30 = %g, want 760", got)
	}
	if got := m.Params().Str("mechanism"); got != "SS" {
		t.Errorf("mechanism = %q, want SS", got)
	}
	if len(m.Diagnostics()) != 0 {
		t.Errorf("Diagnostics() = %v, want none", m.Diagnostics())
	}
}

func TestNewSoftViolations(t *testing.T) {
	m := newTestModel(t, map[string]any{"mag": 9.0, "dist_rup": 20.0, "mechanism": "XX"})

	// Values are accepted unchanged.
	if got := m.Params().Float("mag"); got != 9.0 {
		t.Errorf("mag = %g, want 9 (unclamped)", got)
	}
	if got := m.Params().Str("mechanism"); got != "XX" {
		t.Errorf("mechanism = %q, want XX", got)
	}

	diags := m.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("Diagnostics() has %d entries, want 2: %v", len(diags), diags)
	}
	if diags[0].Param != "mag" || diags[0].Severity != params.SeverityWarning {
		t.Errorf("first diagnostic = %+v, want mag warning", diags[0])
	}
	if diags[1].Param != "mechanism" || diags[1].Severity != params.SeverityWarning {
		t.Errorf("second diagnostic = %+v, want mechanism warning", diags[1])
	}
}

func TestNewComputerErrors(t *testing.T) {
	tests := []struct {
		name string
		comp Computer
	}{
		{
			name: "nil computer",
			comp: nil,
		},
		{
			name: "computation failure",
			comp: ComputerFunc(func(ParamSet) ([]float64, []float64, error) {
				return nil, nil, errors.New("singular scenario")
			}),
		},
		{
			name: "short response array",
			comp: constComputer([]float64{0.1}, testLnStd),
		},
		{
			name: "short deviation array",
			comp: constComputer(testLnResp, []float64{0.5}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(testSpec(), tt.comp, validValues(), WithLogger(logr.Discard())); err == nil {
				t.Error("New() succeeded, want error")
			}
		})
	}
}

func TestModelPeriods(t *testing.T) {
	m := newTestModel(t, validValues())
	want := []float64{0.1, 0.5, 1.0, 2.0}
	if diff := cmp.Diff(want, m.Periods()); diff != "" {
		t.Errorf("Periods() mismatch (-want +got):\n%s", diff)
	}
}

func TestModelSpecAccels(t *testing.T) {
	m := newTestModel(t, validValues())
	got := m.SpecAccels()
	for i, idx := range []int{2, 3, 4, 5} {
		want := math.Exp(testLnResp[idx])
		if got[i] != want {
			t.Errorf("SpecAccels()[%d] = %g, want %g", i, got[i], want)
		}
	}
}

func TestModelLnStds(t *testing.T) {
	m := newTestModel(t, validValues())
	want := []float64{0.58, 0.62, 0.67, 0.71}
	if diff := cmp.Diff(want, m.LnStds()); diff != "" {
		t.Errorf("LnStds() mismatch (-want +got):\n%s", diff)
	}
}

func TestModelScalars(t *testing.T) {
	m := newTestModel(t, validValues())

	pga, err := m.PGA()
	if err != nil {
		t.Fatalf("PGA() error = %v", err)
	}
	if want := math.Exp(testLnResp[1]); pga != want {
		t.Errorf("PGA() = %g, want %g", pga, want)
	}

	lnStdPGA, err := m.LnStdPGA()
	if err != nil {
		t.Fatalf("LnStdPGA() error = %v", err)
	}
	if lnStdPGA != testLnStd[1] {
		t.Errorf("LnStdPGA() = %g, want %g", lnStdPGA, testLnStd[1])
	}
}

func TestModelPGVScaling(t *testing.T) {
	// ln PGV of 0 with a scale of 2 must give exactly 2: the scale applies
	// after exponentiation.
	spec := testSpec()
	spec.PGVScale = 2.0
	lnResp := append([]float64(nil), testLnResp...)
	lnResp[0] = 0

	m, err := New(spec, constComputer(lnResp, testLnStd), validValues(),
		WithLogger(logr.Discard()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pgv, err := m.PGV()
	if err != nil {
		t.Fatalf("PGV() error = %v", err)
	}
	if pgv != 2.0 {
		t.Errorf("PGV() = %g, want 2.0", pgv)
	}

	// The log-domain deviation is never scaled.
	lnStdPGV, err := m.LnStdPGV()
	if err != nil {
		t.Fatalf("LnStdPGV() error = %v", err)
	}
	if lnStdPGV != testLnStd[0] {
		t.Errorf("LnStdPGV() = %g, want %g", lnStdPGV, testLnStd[0])
	}
}

func TestModelUnsupportedQuantities(t *testing.T) {
	spec := testSpec()
	spec.IndexPGA = NoIndex
	spec.IndexPGV = NoIndex

	m, err := New(spec, constComputer(testLnResp, testLnStd), validValues(),
		WithLogger(logr.Discard()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	queries := []struct {
		name string
		call func() (float64, error)
	}{
		{"PGA", m.PGA},
		{"LnStdPGA", m.LnStdPGA},
		{"PGV", m.PGV},
		{"LnStdPGV", m.LnStdPGV},
		{"PGD", m.PGD},
		{"LnStdPGD", m.LnStdPGD},
	}
	for _, q := range queries {
		t.Run(q.name, func(t *testing.T) {
			_, err := q.call()
			if !errors.Is(err, ErrUnsupportedQuantity) {
				t.Errorf("%s error = %v, want ErrUnsupportedQuantity", q.name, err)
			}
			var unsupported *UnsupportedQuantityError
			if !errors.As(err, &unsupported) {
				t.Fatalf("%s error is not an *UnsupportedQuantityError", q.name)
			}
			if unsupported.Model != "TM" {
				t.Errorf("error names model %q, want TM", unsupported.Model)
			}
		})
	}
}

func TestNewConfigDefaults(t *testing.T) {
	config.UpdateModelDefaults(config.ModelDefaultsData{
		"TM": {ModelID: "TM", Values: map[string]any{"v_s30": 555.0}},
	})
	t.Cleanup(func() { config.UpdateModelDefaults(nil) })

	m := newTestModel(t, validValues())
	if got := m.Params().Float("v_s30"); got != 555 {
		t.Errorf("v_s30 with config defaults = %g, want 555", got)
	}

	// Explicit values win over config defaults.
	values := validValues()
	values["v_s30"] = 300.0
	m = newTestModel(t, values)
	if got := m.Params().Float("v_s30"); got != 300 {
		t.Errorf("v_s30 with explicit value = %g, want 300", got)
	}

	// Config defaults never satisfy a required parameter: a defaults entry
	// naming one must not mask the missing-parameter failure.
	config.UpdateModelDefaults(config.ModelDefaultsData{
		"TM": {ModelID: "TM", Values: map[string]any{"mag": 6.0, "v_s30": 555.0}},
	})
	_, err := New(testSpec(), constComputer(testLnResp, testLnStd),
		map[string]any{"dist_rup": 20.0}, WithLogger(logr.Discard()))
	if !errors.Is(err, params.ErrMissingParameter) {
		t.Errorf("New() with required parameter only in config defaults: error = %v, want ErrMissingParameter", err)
	}

	// Opting out falls back to the parameter's declared default.
	m2, err := New(testSpec(), constComputer(testLnResp, testLnStd), validValues(),
		WithLogger(logr.Discard()), WithoutConfigDefaults())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := m2.Params().Float("v_s30"); got != 760 {
		t.Errorf("v_s30 without config defaults = %g, want 760", got)
	}
}
