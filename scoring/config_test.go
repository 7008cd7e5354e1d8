package scoring_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseConfig_Defaults fills omitted fields from DefaultConfig.
func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := scoring.ParseConfig([]byte("match: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, scoring.TypeBasic, cfg.Type)
	assert.Equal(t, 3, cfg.Match)
	assert.Equal(t, -1, cfg.Mismatch)
	assert.Equal(t, -1, cfg.Gap)
}

// TestParseConfig_Invalid rejects unknown kinds, a matrix without a source
// and broken YAML.
func TestParseConfig_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown type":   "type: affine\n",
		"matrix no name": "type: matrix\n",
		"bad yaml":       "type: [basic\n",
	} {
		_, err := scoring.ParseConfig([]byte(doc))
		assert.ErrorIs(t, err, scoring.ErrInvalidConfig, name)
	}
}

// TestConfig_BuildBasic builds a case-insensitive basic scheme by default.
func TestConfig_BuildBasic(t *testing.T) {
	s, err := scoring.DefaultConfig().Build()
	require.NoError(t, err)
	v, err := s.Substitution('g', 'G')
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	cfg := scoring.DefaultConfig()
	cfg.CaseSensitive = true
	s, err = cfg.Build()
	require.NoError(t, err)
	v, err = s.Substitution('g', 'G')
	require.NoError(t, err)
	assert.Equal(t, -1, v)
}

// TestConfig_BuildMatrix resolves the builtin name and file paths.
func TestConfig_BuildMatrix(t *testing.T) {
	cfg, err := scoring.ParseConfig([]byte("type: matrix\nmatrix: BLOSUM62\n"))
	require.NoError(t, err)
	s, err := cfg.Build()
	require.NoError(t, err)
	assert.True(t, s.PartialMatch())

	cfg.Matrix = filepath.Join(t.TempDir(), "absent.mat")
	_, err = cfg.Build()
	assert.Error(t, err)

	_, err = scoring.Config{Type: "nope"}.Build()
	assert.ErrorIs(t, err, scoring.ErrInvalidConfig)
}

// TestLoadConfig reads YAML from disk and enforces the size limit.
func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: basic\nmatch: 5\ngap: -2\n"), 0o600))

	cfg, err := scoring.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Match)
	assert.Equal(t, -2, cfg.Gap)

	big := filepath.Join(dir, "big.yaml")
	require.NoError(t, os.WriteFile(big, make([]byte, scoring.MaxConfigSize+1), 0o600))
	_, err = scoring.LoadConfig(big)
	assert.ErrorIs(t, err, scoring.ErrInvalidConfig)
}
