package internal

import "sort"

// Env holds the variables of a program. There is a single flat scope:
// blocks share the environment of the statement that encloses them.
type Env struct {
	state *interpreterState

	values map[string]Value
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{values: make(map[string]Value)}
}

func (e *Env) get(name *token) Value {
	if value, ok := e.values[name.lexeme]; ok {
		return value
	}
	e.state.runtimeErr(ErrUndefined, name)
	return nil
}

func (e *Env) define(name string, value Value) {
	e.values[name] = value
}

// Lookup returns the value bound to name.
func (e *Env) Lookup(name string) (Value, bool) {
	value, ok := e.values[name]
	return value, ok
}

// Names returns the defined variable names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined variables.
func (e *Env) Len() int {
	return len(e.values)
}
