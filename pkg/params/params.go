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

// Package params defines the input-parameter specifications used by
// ground-motion models.
//
// A Parameter validates a single named input value against its declared
// constraints and supplies a default when the value is absent. Validation is
// advisory: empirical models are routinely evaluated outside their calibration
// range, so out-of-range values are reported through Diagnostics but never
// rejected. The only fatal condition is a missing required parameter.
package params

// Severity classifies a validation diagnostic.
type Severity int

const (
	// SeverityWarning marks an advisory finding; computation proceeds.
	SeverityWarning Severity = iota
	// SeverityError marks a finding on a required parameter; the value is
	// still accepted, but the input is considered outside the model contract.
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	default:
		return "warning"
	}
}

// Diagnostic is a single validation finding for a parameter value.
// Diagnostics are the side-channel for soft violations: they carry the same
// content that is logged, so validation behavior is testable without
// capturing log output.
type Diagnostic struct {
	// Param is the name of the parameter the finding refers to.
	Param string
	// Severity is the level of the finding.
	Severity Severity
	// Message is a human-readable description including the offending value
	// and the violated bound or option set.
	Message string
}

// Parameter is the specification of a single named model input. A Parameter
// is immutable: Check never modifies the receiver, it only resolves a value.
type Parameter interface {
	// Name returns the parameter name, unique within a model.
	Name() string

	// Required reports whether the parameter must be provided.
	Required() bool

	// Check resolves the provided value against the specification. A nil
	// value means absent: required parameters fail with a
	// *MissingParameterError, optional parameters resolve to their default.
	// Present values are returned unchanged; constraint violations are
	// reported as diagnostics, never as errors.
	Check(value any) (resolved any, diags []Diagnostic, err error)
}
