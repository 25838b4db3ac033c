package params

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is returned when an option value is not among the
// allowed values of its specification.
var ErrInvalidOption = errors.New("params: invalid option value")

// Options maps option names to discrete string values.
type Options map[string]string

// OptionSpec declares an option together with its allowed values and
// the default used when the option is absent.
type OptionSpec struct {
	Name    string
	Allowed []string
	Default string
}

// Select resolves an option against its specification. A missing
// option yields the default; a value outside the allowed set is an
// error identifying the offending combination.
func (o Options) Select(spec OptionSpec) (string, error) {
	value, ok := o[spec.Name]
	if !ok {
		return spec.Default, nil
	}

	for _, allowed := range spec.Allowed {
		if value == allowed {
			return value, nil
		}
	}

	return "", fmt.Errorf("%w: %q = %q (allowed: %v)", ErrInvalidOption, spec.Name, value, spec.Allowed)
}
