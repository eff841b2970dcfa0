package equal

// Built-in method names, fixed at their strictness positions. The "none"
// sentinel terminates every ordering and never resolves to a predicate.
const (
	MethodStrict  = "strict"
	MethodLoose   = "loose"
	MethodUniform = "uniform"
	MethodNone    = "none"
)

// Registry maps predicate names to implementations and keeps them in a
// strictness ordering, strictest first, terminated by the "none" sentinel.
// Built-ins cannot be replaced or removed.
//
// A Registry is not safe for concurrent mutation; registration from multiple
// goroutines requires external serialization. Concurrent reads over stable
// contents are safe.
type Registry struct {
	methods map[string]Predicate
	order   []string
}

// NewRegistry returns a registry holding only the built-ins, for callers
// that need isolation from the process-wide instance
func NewRegistry() *Registry {
	return &Registry{
		methods: map[string]Predicate{
			MethodStrict:  strictEqual,
			MethodLoose:   looseEqual,
			MethodUniform: Compare,
		},
		order: []string{MethodStrict, MethodLoose, MethodUniform, MethodNone},
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry backing the package-level
// functions
func Default() *Registry {
	return defaultRegistry
}

// isBuiltin reports whether a name is reserved for a built-in method
func isBuiltin(name string) bool {
	switch name {
	case MethodStrict, MethodLoose, MethodUniform, MethodNone:
		return true
	}
	return false
}

// Register inserts a predicate into the ordering immediately before precedes
// (default "none", the loosest position). Registering an existing custom
// name moves it to the requested position; a nil predicate deregisters name.
func (r *Registry) Register(name string, p Predicate, precedes ...string) error {
	if p == nil {
		return r.Deregister(name)
	}
	if name == "" {
		return errUnknownMethod(name)
	}
	if isBuiltin(name) {
		return errProtectedPredicate(name)
	}
	before := MethodNone
	if len(precedes) > 0 {
		before = precedes[0]
	}
	if before == name || indexOf(r.order, before) < 0 {
		return errUnknownMethod(before)
	}
	// Move semantics: drop any previous position first
	r.remove(name)
	idx := indexOf(r.order, before)
	r.order = append(r.order[:idx], append([]string{name}, r.order[idx:]...)...)
	r.methods[name] = p
	return nil
}

// Deregister removes a custom predicate and closes the ordering gap
func (r *Registry) Deregister(name string) error {
	if isBuiltin(name) {
		return errProtectedPredicate(name)
	}
	if _, ok := r.methods[name]; !ok {
		return errUnknownMethod(name)
	}
	r.remove(name)
	return nil
}

func (r *Registry) remove(name string) {
	delete(r.methods, name)
	if idx := indexOf(r.order, name); idx >= 0 {
		r.order = append(r.order[:idx], r.order[idx+1:]...)
	}
}

// Resolve returns the predicate for a registered name, or passes a direct
// predicate reference through (loosely typed references are coerced by
// truthiness)
func (r *Registry) Resolve(method interface{}) (Predicate, error) {
	switch m := method.(type) {
	case string:
		if p, ok := r.methods[m]; ok {
			return p, nil
		}
	case Predicate:
		if m != nil {
			return m, nil
		}
	case func(a, b interface{}) bool:
		if m != nil {
			return m, nil
		}
	case func(a, b interface{}) interface{}:
		if m != nil {
			return Truthy(m), nil
		}
	}
	return nil, errUnknownMethod(method)
}

// resolveDefault resolves an optional method argument, falling back to
// "strict"
func (r *Registry) resolveDefault(method []interface{}) (Predicate, error) {
	if len(method) == 0 {
		return r.Resolve(MethodStrict)
	}
	return r.Resolve(method[0])
}

// Classify walks the ordering strictest-first and returns the first name
// whose predicate holds for (a, b), or "none" if every predicate fails
func (r *Registry) Classify(a, b interface{}) string {
	for _, name := range r.order {
		p, ok := r.methods[name]
		if !ok {
			// The "none" sentinel carries no predicate
			continue
		}
		if p(a, b) {
			return name
		}
	}
	return MethodNone
}

// ClassifyAssert resolves method and returns its verdict for (a, b)
// directly, ignoring the strictness ordering
func (r *Registry) ClassifyAssert(a, b interface{}, method interface{}) (bool, error) {
	p, err := r.Resolve(method)
	if err != nil {
		return false, err
	}
	return p(a, b), nil
}

// IsNone reports whether no registered predicate relates a and b
func (r *Registry) IsNone(a, b interface{}) bool {
	return r.Classify(a, b) == MethodNone
}

// Ordering returns a snapshot of the current strictness ordering
func (r *Registry) Ordering() Ordering {
	return append(Ordering{}, r.order...)
}

// indexOf returns the position of name within list, or -1
func indexOf(list []string, name string) int {
	for z, current := range list {
		if current == name {
			return z
		}
	}
	return -1
}

// Register registers a predicate with the process-wide registry
func Register(name string, p Predicate, precedes ...string) error {
	return defaultRegistry.Register(name, p, precedes...)
}

// Deregister removes a custom predicate from the process-wide registry
func Deregister(name string) error {
	return defaultRegistry.Deregister(name)
}

// Resolve resolves a method against the process-wide registry
func Resolve(method interface{}) (Predicate, error) {
	return defaultRegistry.Resolve(method)
}

// Classify classifies (a, b) against the process-wide registry
func Classify(a, b interface{}) string {
	return defaultRegistry.Classify(a, b)
}

// ClassifyAssert asserts a single method against the process-wide registry
func ClassifyAssert(a, b interface{}, method interface{}) (bool, error) {
	return defaultRegistry.ClassifyAssert(a, b, method)
}

// IsNone reports whether no predicate of the process-wide registry relates
// a and b
func IsNone(a, b interface{}) bool {
	return defaultRegistry.IsNone(a, b)
}
