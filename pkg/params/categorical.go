package params

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// CategoricalParameter is a Parameter for inputs restricted to an ordered set
// of allowed values, such as fault mechanism or site class. Membership is
// advisory like numeric bounds, but the severity of a violation depends on
// whether the parameter is required.
type CategoricalParameter struct {
	name     string
	required bool
	options  []string
	def      string
}

// NewCategorical creates a categorical parameter specification with the
// allowed options in their declared order. The default for an absent optional
// value is the empty string unless overridden with WithDefault.
func NewCategorical(name string, required bool, options ...string) *CategoricalParameter {
	return &CategoricalParameter{name: name, required: required, options: options}
}

// WithDefault sets the value resolved when an optional parameter is absent
// and returns the receiver. Intended for use at declaration time only.
func (p *CategoricalParameter) WithDefault(def string) *CategoricalParameter {
	p.def = def
	return p
}

// Name returns the parameter name.
func (p *CategoricalParameter) Name() string { return p.name }

// Required reports whether the parameter must be provided.
func (p *CategoricalParameter) Required() bool { return p.required }

// Options returns the allowed values in declared order.
func (p *CategoricalParameter) Options() []string { return p.options }

// Check implements Parameter. A present value outside the option set is
// accepted and returned unchanged, with a diagnostic at error severity when
// the parameter is required and warning severity otherwise.
func (p *CategoricalParameter) Check(value any) (any, []Diagnostic, error) {
	if value == nil {
		if p.required {
			return nil, nil, &MissingParameterError{Param: p.name}
		}
		return p.def, nil, nil
	}

	v, err := cast.ToStringE(value)
	if err != nil {
		return nil, nil, fmt.Errorf("parameter %q: %w", p.name, err)
	}

	var diags []Diagnostic
	if !p.contains(v) {
		sev := SeverityWarning
		if p.required {
			sev = SeverityError
		}
		diags = append(diags, Diagnostic{
			Param:    p.name,
			Severity: sev,
			Message: fmt.Sprintf("%s value of %q is not one of the options."+
				" The following options are possible: %s",
				p.name, v, strings.Join(p.options, ", ")),
		})
	}
	return v, diags, nil
}

func (p *CategoricalParameter) contains(v string) bool {
	for _, o := range p.options {
		if o == v {
			return true
		}
	}
	return false
}
