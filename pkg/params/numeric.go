package params

import (
	"fmt"

	"github.com/spf13/cast"
)

// NumericParameter is a Parameter for scalar numeric inputs with optional
// soft bounds. Bounds are advisory: a value outside [Min, Max] is returned
// unchanged and reported with a single warning diagnostic.
type NumericParameter struct {
	name     string
	required bool
	def      float64
	hasDef   bool
	min      *float64
	max      *float64
}

// NumericOption configures a NumericParameter at construction.
type NumericOption func(*NumericParameter)

// Bounds sets both recommended limits.
func Bounds(min, max float64) NumericOption {
	return func(p *NumericParameter) {
		p.min = &min
		p.max = &max
	}
}

// Min sets only the lower recommended limit.
func Min(v float64) NumericOption {
	return func(p *NumericParameter) { p.min = &v }
}

// Max sets only the upper recommended limit.
func Max(v float64) NumericOption {
	return func(p *NumericParameter) { p.max = &v }
}

// Default sets the value resolved when an optional parameter is absent.
func Default(v float64) NumericOption {
	return func(p *NumericParameter) {
		p.def = v
		p.hasDef = true
	}
}

// NewNumeric creates a numeric parameter specification.
func NewNumeric(name string, required bool, opts ...NumericOption) *NumericParameter {
	p := &NumericParameter{name: name, required: required}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the parameter name.
func (p *NumericParameter) Name() string { return p.name }

// Required reports whether the parameter must be provided.
func (p *NumericParameter) Required() bool { return p.required }

// HasDefault reports whether an explicit default was declared.
func (p *NumericParameter) HasDefault() bool { return p.hasDef }

// Check implements Parameter. Absent required values fail with a
// *MissingParameterError; absent optional values resolve to the default.
// A present value outside the recommended limits produces exactly one
// warning diagnostic (lower bound checked first) and is never modified:
// clamping an input would silently change the prediction.
func (p *NumericParameter) Check(value any) (any, []Diagnostic, error) {
	if value == nil {
		if p.required {
			return nil, nil, &MissingParameterError{Param: p.name}
		}
		if !p.hasDef {
			// No declared default: the parameter stays unset so model
			// computations can branch on its absence.
			return nil, nil, nil
		}
		return p.def, nil, nil
	}

	v, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, nil, fmt.Errorf("parameter %q: %w", p.name, err)
	}

	var diags []Diagnostic
	if p.min != nil && v < *p.min {
		diags = append(diags, Diagnostic{
			Param:    p.name,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("%s (%g) is less than the recommended limit (%g).",
				p.name, v, *p.min),
		})
	} else if p.max != nil && *p.max < v {
		diags = append(diags, Diagnostic{
			Param:    p.name,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("%s (%g) is greater than the recommended limit (%g).",
				p.name, v, *p.max),
		})
	}
	return v, diags, nil
}
