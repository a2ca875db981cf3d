package juliaenc

import (
	"math"
	"testing"

	"github.com/specialistvlad/stepliteral/internal/value"
	"github.com/stretchr/testify/require"
)

func TestEncodeValue(t *testing.T) {
	m := value.NewMapping()
	m.Set("foo", value.Int(1))
	m.Set("bar", value.Null())
	m.Set("baz", value.String("test"))

	cases := []struct {
		name string
		in   value.Value
		want string
	}{
		{"null", value.Null(), "nothing"},
		{"string", value.String("test.in"), `"test.in"`},
		{"path", value.Path("a/b.txt"), `"a/b.txt"`},
		{"true", value.Bool(true), "true"},
		{"false", value.Bool(false), "false"},
		{"int", value.Int(-7), "-7"},
		{"float", value.Float(1.2), "1.2"},
		{"small float", value.Float(0.00001), "1e-05"},
		{"inf", value.Float(math.Inf(1)), "Inf"},
		{"list", value.Seq(value.Int(1), value.Int(2), value.Null()), "[1, 2, nothing]"},
		{"empty list", value.Seq(), "[]"},
		{"dict", value.Map(m), `Dict("foo" => 1, "bar" => nothing, "baz" => "test")`},
		{"empty dict", value.Map(nil), "Dict()"},
	}

	enc := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := enc.EncodeValue(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeValue_BoolIsNotNumeric(t *testing.T) {
	got, err := New().EncodeValue(value.Bool(true))
	require.NoError(t, err)
	require.NotEqual(t, "1", got)
	require.Equal(t, "true", got)
}

func TestEncodeNamedList_PositionsThenNames(t *testing.T) {
	nl := value.NewNamedList(value.String("test.in"), value.String("named.in"))
	require.NoError(t, nl.SetName("named", 1))

	got, err := New().EncodeNamedList(nl)
	require.NoError(t, err)
	require.Equal(t, `Dict(1 => "test.in", 2 => "named.in", "named" => "named.in")`, got)
}

func TestEncodeNamedList_DuplicateNameEmittedOnce(t *testing.T) {
	nl := value.NewNamedList()
	require.NoError(t, nl.AppendNamed("x", value.Int(1)))
	require.NoError(t, nl.AppendNamed("x", value.Int(2)))

	got, err := New().EncodeNamedList(nl)
	require.NoError(t, err)
	require.Equal(t, `Dict(1 => 1, 2 => 2, "x" => 2)`, got)
}

func TestEncodeNamedList_Empty(t *testing.T) {
	got, err := New().EncodeNamedList(value.NewNamedList())
	require.NoError(t, err)
	require.Equal(t, "Dict()", got)
}

func TestEncodeValue_Unsupported(t *testing.T) {
	m := value.NewMapping()
	m.Set("bad", value.Foreign(make(chan int)))

	_, err := New().EncodeDict(m)
	require.ErrorIs(t, err, value.ErrUnsupportedValue)
	require.Contains(t, err.Error(), `key "bad"`)
	require.Contains(t, err.Error(), "Julia")
}

func TestQuote_EscapesInterpolation(t *testing.T) {
	require.Equal(t, `"cost: \$5 \"net\"\n"`, Quote("cost: $5 \"net\"\n"))
}
