package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.Verbose)
	assert.Contains(t, cfg.WorksURL, "gid=1920935035")
	assert.Contains(t, cfg.SettingsURL, "gid=352265221")
	assert.Contains(t, cfg.ResumeURL, "gid=699763124")
	assert.Contains(t, cfg.ContactURL, "gid=838679064")
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("SHEETFOLIO_WORKS_URL", "http://sheets.test/works.csv")
	t.Setenv("SHEETFOLIO_HTTP_TIMEOUT", "5s")
	t.Setenv("SHEETFOLIO_VERBOSE", "true")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "http://sheets.test/works.csv", cfg.WorksURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.Verbose)
}

func TestParse_InvalidValue(t *testing.T) {
	t.Setenv("SHEETFOLIO_HTTP_TIMEOUT", "soon")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SHEETFOLIO_ADDR=0.0.0.0:9999\n"), 0o644))
	// Registers cleanup so the variable does not leak into other tests.
	t.Setenv("SHEETFOLIO_ADDR", "")
	require.NoError(t, os.Unsetenv("SHEETFOLIO_ADDR"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9999", cfg.Addr)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
}

func TestParse_RejectsInvalidSourceURL(t *testing.T) {
	t.Setenv("SHEETFOLIO_CONTACT_URL", "not a url")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "ContactURL")
}

func TestValidate_AddrAndTimeout(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	bad := cfg
	bad.Addr = "nowhere"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.HTTPTimeout = 0
	assert.Error(t, bad.Validate())

	assert.NoError(t, cfg.Validate())
}
