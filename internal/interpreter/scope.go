package interpreter

// Variable is a single binding inside a Scope: its declared mutability,
// name, and current value. Initialized is false only for a mutable
// declaration with no initializer, until its first Assignment.
type Variable struct {
	Mutable     bool
	Identifier  string
	Value       Value
	Initialized bool
}

// Scope is a parent-chained list of Variables. Entering a function call
// creates a fresh root scope (parent nil); entering a block statement
// pushes a child scope. valueExpected records whether the nearest
// enclosing function call expects Return to carry a value.
type Scope struct {
	variables     []*Variable
	parent        *Scope
	valueExpected bool
}

// NewScope creates a scope. Pass parent=nil for a function's root scope;
// its valueExpected is inherited by nested blocks via Push.
func NewScope(parent *Scope, valueExpected bool) *Scope {
	return &Scope{parent: parent, valueExpected: valueExpected}
}

// Push enters a nested block, inheriting valueExpected from the current
// function scope.
func (s *Scope) Push() *Scope {
	return NewScope(s, s.valueExpected)
}

// lookupLocal finds a variable declared directly in this scope, ignoring
// ancestors.
func (s *Scope) lookupLocal(name string) *Variable {
	for _, v := range s.variables {
		if v.Identifier == name {
			return v
		}
	}
	return nil
}

// Lookup walks the parent chain looking for name, returning the owning
// Scope and the Variable, or (nil, nil) if unbound.
func (s *Scope) Lookup(name string) (*Scope, *Variable) {
	for cur := s; cur != nil; cur = cur.parent {
		if v := cur.lookupLocal(name); v != nil {
			return cur, v
		}
	}
	return nil, nil
}

// IsDeclaredAnywhere reports whether name is already bound in this scope
// or any ancestor, the redeclaration check a Declaration must run against
// the whole visible chain, not just the innermost scope.
func (s *Scope) IsDeclaredAnywhere(name string) bool {
	_, v := s.Lookup(name)
	return v != nil
}

// Declare binds a new, initialized Variable directly in this scope. The
// caller is responsible for first checking IsDeclaredAnywhere / name
// clashes with function definitions.
func (s *Scope) Declare(mutable bool, name string, value Value) {
	s.variables = append(s.variables, &Variable{Mutable: mutable, Identifier: name, Value: value, Initialized: true})
}

// DeclareUninitialized binds a new Variable with no value yet, for a
// mutable declaration with no initializer.
func (s *Scope) DeclareUninitialized(mutable bool, name string) {
	s.variables = append(s.variables, &Variable{Mutable: mutable, Identifier: name})
}
