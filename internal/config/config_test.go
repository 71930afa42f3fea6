package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homology/internal/config"
)

const kleinCUE = `
name:         "klein"
coefficients: "Z"
boundaries: [
	{rows: 0, cols: 1, entries: []},
	{rows: 1, cols: 2, entries: [0, 0]},
	{rows: 2, cols: 1, entries: [2, "0"]},
]
`

const ringTOML = `
name = "ring"
voxels = [[0, 0, 0], [1, 0, 0], [2, 0, 0], [0, 1, 0], [2, 1, 0], [0, 2, 0], [1, 2, 0], [2, 2, 0]]

[bounds]
lower = [0, 0, 0]
upper = [3, 3, 1]
`

const kleinTOML = `
coefficients = "Z2"

[[boundaries]]
rows = 0
cols = 1
entries = []

[[boundaries]]
rows = 1
cols = 2
entries = [0, 0]

[[boundaries]]
rows = 2
cols = 1
entries = ["123456789012345678901234567890", 0]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadCUE(t *testing.T) {
	in, err := config.LoadInput(writeFile(t, "klein.cue", kleinCUE))
	require.NoError(t, err)
	assert.Equal(t, "klein", in.Name)
	assert.Equal(t, "Z", in.Coefficients)
	require.Len(t, in.Boundaries, 3)

	bs, err := in.IntegerBoundaries()
	require.NoError(t, err)
	require.Len(t, bs, 3)
	assert.Equal(t, 0, bs[0].Rows())
	assert.Equal(t, 1, bs[0].Cols())
	v, err := bs[2].At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
}

func TestLoadTOML(t *testing.T) {
	in, err := config.LoadInput(writeFile(t, "ring.toml", ringTOML))
	require.NoError(t, err)
	assert.Len(t, in.VoxelList(), 8)
	assert.Len(t, in.VoxelOptions(), 1)
	assert.Empty(t, in.Boundaries)

	big, err := config.LoadInput(writeFile(t, "klein.toml", kleinTOML))
	require.NoError(t, err)
	bs, err := big.IntegerBoundaries()
	require.NoError(t, err)
	v, err := bs[2].At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", v.String())
}

func TestLoadInputErrors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		err     error
	}{
		{"UnknownExtension", "x.json", `{}`, config.ErrUnknownInput},
		{"CUEUnknownField", "a.cue", `voxels: [[0, 0, 0]]` + "\nfoo: 1\n", config.ErrInvalidInput},
		{"CUEShortVoxel", "b.cue", `voxels: [[0, 0]]`, config.ErrInvalidInput},
		{"CUEBadEntry", "c.cue", `boundaries: [{rows: 1, cols: 1, entries: ["x"]}]`, config.ErrInvalidInput},
		{"CUESyntax", "d.cue", `boundaries: [`, config.ErrInvalidInput},
		{"CUEBadCoefficients", "e.cue", `coefficients: "Q"` + "\nvoxels: [[0, 0, 0]]\n", config.ErrInvalidInput},
		{"EntryCount", "f.cue", `boundaries: [{rows: 2, cols: 2, entries: [1]}]`, config.ErrInvalidInput},
		{"Neither", "g.cue", `name: "nothing"`, config.ErrInvalidInput},
		{"Both", "h.toml", "voxels = [[0, 0, 0]]\n[[boundaries]]\nrows = 0\ncols = 0\nentries = []\n", config.ErrInvalidInput},
		{"TOMLShortVoxel", "i.toml", "voxels = [[0, 0]]\n", config.ErrInvalidInput},
		{"TOMLUnknownKey", "j.toml", "voxels = [[0, 0, 0]]\ncolour = 1\n", config.ErrInvalidInput},
		{"TOMLCoefficients", "k.toml", "coefficients = \"Q\"\nvoxels = [[0, 0, 0]]\n", config.ErrCoefficients},
		{"CUEShapeOverflow", "l.cue", `boundaries: [{rows: 4294967296, cols: 4294967296, entries: []}]`, config.ErrInvalidInput},
		{"TOMLShapeOverflow", "m.toml", "[[boundaries]]\nrows = 4294967296\ncols = 4294967296\nentries = []\n", config.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadInput(writeFile(t, tc.file, tc.content))
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := config.LoadInput(filepath.Join(t.TempDir(), "missing.cue"))
	require.Error(t, err)
}

func TestLoadInputTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.toml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(config.MaxInputSize+1))
	require.NoError(t, f.Close())

	_, err = config.LoadInput(path)
	require.ErrorIs(t, err, config.ErrInvalidInput)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestParseCoefficients(t *testing.T) {
	cases := []struct {
		name  string
		prime uint64
		p     uint64
		ok    bool
		err   bool
	}{
		{"Z", 0, 0, false, false},
		{"Z2", 0, 2, true, false},
		{"Z3", 0, 3, true, false},
		{"Z101", 0, 101, true, false},
		{"Zp", 7, 7, true, false},
		{"Zp", 0, 0, false, true},
		{"Z1", 0, 0, false, true},
		{"Q", 0, 0, false, true},
		{"Zx", 0, 0, false, true},
	}
	for _, tc := range cases {
		p, ok, err := config.ParseCoefficients(tc.name, tc.prime)
		if tc.err {
			require.ErrorIs(t, err, config.ErrCoefficients, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.p, p, tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
	}
}

func TestSettingsDefaults(t *testing.T) {
	s, err := config.Decode(config.NewViper())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
	_, ok := s.Modulus()
	assert.False(t, ok)
}

func TestSettingsEnvAndFile(t *testing.T) {
	t.Setenv("HOMOLOGY_COEFFICIENTS", "Zp")
	t.Setenv("HOMOLOGY_PRIME", "5")

	v := config.NewViper()
	path := writeFile(t, "settings.toml", "format = \"latex\"\ndocument = true\n")
	require.NoError(t, config.ReadSettingsFile(v, path))

	s, err := config.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, config.FormatLaTeX, s.Format)
	assert.True(t, s.Document)
	p, ok := s.Modulus()
	assert.True(t, ok)
	assert.Equal(t, uint64(5), p)
}

func TestSettingsErrors(t *testing.T) {
	v := config.NewViper()
	v.Set(config.KeyFormat, "html")
	_, err := config.Decode(v)
	require.ErrorIs(t, err, config.ErrFormat)

	v = config.NewViper()
	v.Set(config.KeyCoefficients, "R")
	_, err = config.Decode(v)
	require.ErrorIs(t, err, config.ErrCoefficients)

	require.Error(t, config.ReadSettingsFile(config.NewViper(), filepath.Join(t.TempDir(), "nope.toml")))
}
