package builtin

// Registry maps a builtin name to its Handler (spec.md §4.5's
// BuiltinRegistry). Unlike the teacher's package-level Registry map,
// this is an explicit, constructed service the Shell engine owns and
// passes to collaborators by reference (spec.md §9 design note: "do
// not replicate the ambient-global style").
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds a Registry with every required builtin
// pre-registered (spec.md §4.5).
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.Register("exit", Exit)
	r.Register("echo", Echo)
	r.Register("pwd", Pwd)
	r.Register("cd", Cd)
	r.Register("type", Type)
	r.Register("history", History)
	return r
}

// Register adds or replaces the handler for name.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Lookup returns the handler registered for name, if any.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Has reports whether name is a registered builtin, without returning
// the handler — used by `type`.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Names returns every registered builtin name, unsorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}
