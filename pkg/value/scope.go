package value

// Scope is a lexically nested binding environment: every block and
// function call frame gets one, chained to its lexical parent. Lookup
// walks the chain outward; Define always binds in the current frame,
// shadowing anything with the same name further out.
type Scope struct {
	vars   map[string]Value
	parent *Scope
}

// NewScope creates a Scope chained to parent. parent is nil for the
// root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]Value), parent: parent}
}

// Define binds name in this frame, shadowing any same-named binding in
// an enclosing frame.
func (s *Scope) Define(name string, v Value) {
	s.vars[name] = v
}

// Get resolves name by walking outward through enclosing scopes.
func (s *Scope) Get(name string) (Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Assign rebinds the nearest existing binding for name, walking
// outward. It does not create a new binding; it reports false if name
// is undefined anywhere in the chain.
func (s *Scope) Assign(name string, v Value) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = v
			return true
		}
	}
	return false
}
