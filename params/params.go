// Package params provides the named-parameter store shared by the
// form-factor and decay packages, together with option validation.
//
// Parameters are string-keyed scalar values. Calculators fetch a Handle
// per parameter at construction and read the live value through it on
// every evaluation, so a host may mutate the store between calls.
package params

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownParameter is returned when a parameter name has not been
// declared in the store.
var ErrUnknownParameter = errors.New("params: unknown parameter")

// Store maps fully-qualified parameter names to scalar values and
// tracks which parameters have been bound by calculators. It is not
// safe for concurrent mutation.
type Store struct {
	values map[string]float64
	used   map[string]bool
}

// NewStore creates a store seeded with the default parameter set.
func NewStore() *Store {
	values := make(map[string]float64, len(defaults))
	for name, v := range defaults {
		values[name] = v
	}

	return &Store{values: values, used: make(map[string]bool)}
}

// Get returns the current value of a declared parameter.
func (s *Store) Get(name string) (float64, error) {
	v, ok := s.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	return v, nil
}

// Set updates the value of a declared parameter.
func (s *Store) Set(name string, value float64) error {
	if _, ok := s.values[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	s.values[name] = value

	return nil
}

// Declare adds a parameter to the store, overwriting any previous value.
func (s *Store) Declare(name string, value float64) {
	s.values[name] = value
}

// Handle binds a parameter for repeated reads and registers it as used.
func (s *Store) Handle(name string) (Handle, error) {
	if _, ok := s.values[name]; !ok {
		return Handle{}, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	s.used[name] = true

	return Handle{store: s, name: name}, nil
}

// Used returns the sorted names of all parameters bound via Handle.
func (s *Store) Used() []string {
	names := make([]string, 0, len(s.used))
	for name := range s.used {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Handle is a live reference to one parameter in a Store.
type Handle struct {
	store *Store
	name  string
}

// Value returns the current value of the bound parameter.
func (h Handle) Value() float64 {
	return h.store.values[h.name]
}

// Name returns the fully-qualified parameter name.
func (h Handle) Name() string {
	return h.name
}
