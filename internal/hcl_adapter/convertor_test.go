package hcl_adapter

import (
	"testing"

	"github.com/specialistvlad/stepliteral/internal/juliaenc"
	"github.com/specialistvlad/stepliteral/internal/renc"
	"github.com/specialistvlad/stepliteral/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestCtyToValue(t *testing.T) {
	cases := []struct {
		name string
		in   cty.Value
		want string
	}{
		{"string", cty.StringVal("x"), "x"},
		{"int", cty.NumberIntVal(3), "3"},
		{"float", cty.NumberFloatVal(1.5), "1.5"},
		{"bool", cty.True, "True"},
		{"null", cty.NullVal(cty.String), "None"},
		{"list", cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}), "['a', 'b']"},
		{"set", cty.SetVal([]cty.Value{cty.NumberIntVal(1)}), "[1]"},
		{"object sorted", cty.ObjectVal(map[string]cty.Value{
			"z": cty.NumberIntVal(1),
			"a": cty.NumberIntVal(2),
		}), "{'a': 2, 'z': 1}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ctyToValue(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, value.Text(got))
		})
	}
}

func TestCtyToValue_Unknown(t *testing.T) {
	_, err := ctyToValue(cty.UnknownVal(cty.String))
	require.ErrorContains(t, err, "not known")
}

func TestCoerceCty_ThroughEncoders(t *testing.T) {
	r := renc.New(renc.WithCoercer(NewConverter().Coerce))
	got, err := r.EncodeValue(value.Seq(value.Foreign(cty.NumberIntVal(7)), value.Foreign(cty.False)))
	require.NoError(t, err)
	assert.Equal(t, "c(7, FALSE)", got)

	j := juliaenc.New(juliaenc.WithCoercer(CoerceCty))
	got, err = j.EncodeValue(value.Foreign(cty.NumberFloatVal(0.5)))
	require.NoError(t, err)
	assert.Equal(t, "0.5", got)

	_, ok := CoerceCty("not cty")
	assert.False(t, ok)
	_, ok = CoerceCty(cty.UnknownVal(cty.Number))
	assert.False(t, ok)
}
