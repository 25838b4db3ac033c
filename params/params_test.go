package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_DefaultsSeeded(t *testing.T) {
	s := NewStore()

	v, err := s.Get("mass::pi^+")
	require.NoError(t, err)
	require.InDelta(t, 0.13957, v, 1e-12)
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore()

	_, err := s.Get("no::such_parameter")
	require.ErrorIs(t, err, ErrUnknownParameter)
}

func TestStore_SetVisibleThroughHandle(t *testing.T) {
	s := NewStore()

	h, err := s.Handle("D->pi::M^2@KKMO2009")
	require.NoError(t, err)

	require.NoError(t, s.Set("D->pi::M^2@KKMO2009", 18.0))
	require.InDelta(t, 18.0, h.Value(), 1e-12)
}

func TestStore_SetUnknown(t *testing.T) {
	s := NewStore()

	err := s.Set("no::such_parameter", 1.0)
	require.ErrorIs(t, err, ErrUnknownParameter)
}

func TestStore_Declare(t *testing.T) {
	s := NewStore()
	s.Declare("custom::value", 2.5)

	v, err := s.Get("custom::value")
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
}

func TestStore_UsedRegistry(t *testing.T) {
	s := NewStore()

	_, err := s.Handle("mass::D_d")
	require.NoError(t, err)
	_, err = s.Handle("decay-constant::pi")
	require.NoError(t, err)

	require.Equal(t, []string{"decay-constant::pi", "mass::D_d"}, s.Used())
}

func TestOptions_SelectDefault(t *testing.T) {
	spec := OptionSpec{Name: "rescale-borel", Allowed: []string{"1", "0"}, Default: "1"}

	v, err := Options{}.Select(spec)
	require.NoError(t, err)
	require.Equal(t, "1", v)
}

func TestOptions_SelectExplicit(t *testing.T) {
	spec := OptionSpec{Name: "rescale-borel", Allowed: []string{"1", "0"}, Default: "1"}

	v, err := Options{"rescale-borel": "0"}.Select(spec)
	require.NoError(t, err)
	require.Equal(t, "0", v)
}

func TestOptions_SelectInvalid(t *testing.T) {
	spec := OptionSpec{Name: "l", Allowed: []string{"e", "mu", "tau"}, Default: "mu"}

	_, err := Options{"l": "positron"}.Select(spec)
	require.ErrorIs(t, err, ErrInvalidOption)
}
