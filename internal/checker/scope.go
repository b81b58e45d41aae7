package checker

import "github.com/roselang/rose/internal/rosetype"

// typeScope is a compile-time symbol table: a chain of name-to-Type
// maps, one per lexical scope. Grounded on the teacher's
// semantic.SymbolTable, simplified to this language's single concern
// (no read-only/const/overload bookkeeping: a ConstDecl is bound exactly
// like a LetDecl, and assignment to it is not rejected).
type typeScope struct {
	vars  map[string]rosetype.Type
	outer *typeScope
}

func newTypeScope(outer *typeScope) *typeScope {
	return &typeScope{vars: make(map[string]rosetype.Type), outer: outer}
}

// define binds name in the current scope only.
func (s *typeScope) define(name string, t rosetype.Type) {
	s.vars[name] = t
}

// lookup walks from this scope up through outers until name is found.
func (s *typeScope) lookup(name string) (rosetype.Type, bool) {
	for sc := s; sc != nil; sc = sc.outer {
		if t, ok := sc.vars[name]; ok {
			return t, true
		}
	}
	return nil, false
}
