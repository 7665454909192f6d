package yamlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unsorted struct {
	Zeta  string  `yaml:"Zeta"`
	Alpha *string `yaml:"Alpha"`
	Mid   int     `yaml:"Mid"`
}

func TestMarshalSortsKeysAndCanonicalNulls(t *testing.T) {
	got, err := Marshal([]unsorted{{Zeta: "z", Mid: 1}})
	require.NoError(t, err)

	assert.Equal(t, "- Alpha: ~\n  Mid: 1\n  Zeta: z\n", string(got))
}

func TestMarshalSortsNestedMaps(t *testing.T) {
	got, err := Marshal(map[string]any{
		"b": map[string]any{"z": 1, "x": nil},
		"a": []any{"one"},
	})
	require.NoError(t, err)

	assert.Equal(t, "a:\n  - one\nb:\n  x: ~\n  z: 1\n", string(got))
}

func TestMarshalIsDeterministic(t *testing.T) {
	v := map[string]string{"c": "3", "a": "1", "b": "2"}

	first, err := Marshal(v)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Marshal(v)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yml")
	alpha := "a"
	in := []unsorted{{Zeta: "z", Alpha: &alpha, Mid: 2}, {Zeta: "only"}}

	require.NoError(t, Write(path, in))

	var out []unsorted
	require.NoError(t, Read(path, &out))
	assert.Equal(t, in, out)
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	out := []unsorted{}
	require.NoError(t, Read(path, &out))
	assert.Empty(t, out)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	err := Read(filepath.Join(dir, "missing.yml"), &[]unsorted{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("- [unterminated\n"), 0644))
	err = Read(bad, &[]unsorted{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}
