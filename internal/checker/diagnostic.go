package checker

import "github.com/roselang/rose/internal/roseerr"

// Diagnostic is one static type error, reported by line rather than
// aborting the check (spec §4.4: "first failure does not abort").
type Diagnostic struct {
	Line    int
	Message string
}

// String formats the diagnostic as a roseerr Type-category error, the
// same "<category> error at line <n>: <message>" shape runtime errors use.
func (d Diagnostic) String() string {
	return roseerr.NewTypeError(d.Line, d.Message).Error()
}

// Diagnostics is an ordered collection of Diagnostic, in the order
// they were raised.
type Diagnostics []Diagnostic

// OK reports whether no diagnostics were raised (TypeChecker::Success,
// in spec.md's terms).
func (ds Diagnostics) OK() bool {
	return len(ds) == 0
}
