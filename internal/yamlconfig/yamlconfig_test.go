package yamlconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/stepliteral/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PreservesOrderAndTypes(t *testing.T) {
	doc := `
zeta: 1
alpha: 2.5
flag: true
none: ~
name: sample
samples:
  B: b.fq
  A: a.fq
list: [1, two, 3.0]
`
	m, err := Decode([]byte(doc))
	require.NoError(t, err)

	require.Equal(t, []string{"zeta", "alpha", "flag", "none", "name", "samples", "list"}, m.Keys())

	get := func(k string) value.Value {
		v, ok := m.Get(k)
		require.True(t, ok, k)
		return v
	}
	assert.Equal(t, value.Int(1), get("zeta"))
	assert.Equal(t, value.Float(2.5), get("alpha"))
	assert.Equal(t, value.Bool(true), get("flag"))
	assert.True(t, get("none").IsNull())
	assert.Equal(t, value.String("sample"), get("name"))
	assert.Equal(t, []string{"B", "A"}, get("samples").AsMapping().Keys())
	assert.Equal(t, "[1, 'two', 3.0]", value.Text(get("list")))
}

func TestDecode_AliasesAndMerge(t *testing.T) {
	doc := `
base: &base
  threads: 2
  mem: 100
job:
  mem: 500
  <<: *base
copy: *base
`
	m, err := Decode([]byte(doc))
	require.NoError(t, err)

	job, _ := m.Get("job")
	assert.Equal(t, "{'mem': 500, 'threads': 2}", value.Text(job))
	cp, _ := m.Get("copy")
	assert.Equal(t, "{'threads': 2, 'mem': 100}", value.Text(cp))
}

func TestDecode_EmptyDocument(t *testing.T) {
	m, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	m, err = Decode([]byte("~\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestDecode_RootMustBeMapping(t *testing.T) {
	_, err := Decode([]byte("- a\n- b\n"))
	require.ErrorContains(t, err, "config root must be a mapping")
}

func TestDecode_InvalidYAML(t *testing.T) {
	_, err := Decode([]byte("a: [unclosed\n"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ref: genome.fa\n"), 0o644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	v, ok := m.Get("ref")
	require.True(t, ok)
	assert.Equal(t, "genome.fa", v.AsString())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")
}
