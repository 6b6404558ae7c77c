package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "_rawenum.go", cfg.Suffix)
	assert.Empty(t, cfg.DefaultName)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
version: "1"
default_name: Unknown
suffix: _enum_gen.go
header: Copyright The Sample Authors.
`))
	require.NoError(t, err)
	assert.Equal(t, "Unknown", cfg.DefaultName)
	assert.Equal(t, "_enum_gen.go", cfg.Suffix)
	assert.Equal(t, "Copyright The Sample Authors.", cfg.Header)
}

func TestParseRejectsBadSuffix(t *testing.T) {
	_, err := Parse([]byte("suffix: _rawenum.txt\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must end in .go")
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("suffix: [\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	require.NoError(t, os.WriteFile(path, []byte("default_name: Rest\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Rest", cfg.DefaultName)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	// t.Chdir requires Go 1.24; the equivalent under the available toolchain.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// No file anywhere: the built-in configuration, silently.
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// A default-named file in the working directory is picked up.
	require.NoError(t, os.WriteFile(DefaultPath, []byte("default_name: Rest\n"), 0o644))
	cfg, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "Rest", cfg.DefaultName)

	// Explicit paths must exist.
	_, err = LoadOrDefault("missing.yml")
	assert.Error(t, err)
}
