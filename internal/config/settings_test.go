package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewSettingTypeDefaults(t *testing.T) {
	s, err := NewSettingType(false)
	require.NoError(t, err)

	assert.Equal(t, ":8080", s.Get(LISTEN_ADDR))
	assert.Equal(t, "Vidyodaya", s.Get(SITE_NAME))
	assert.Equal(t, sourceDefault, s.Source(SITE_NAME))
	assert.False(t, s.IsTrue(TLS_ENABLED))
	assert.True(t, s.IsTrue(METRICS_ENABLED))

	d, err := s.Duration(SHUTDOWN_TIMEOUT)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, d)
}

func TestNewSettingTypeEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "site_name: Campus\nlisten_addr: \":9000\"\ntls_hosts:\n  - a.example\n  - b.example\n")
	t.Setenv(CONFIG_FILE, path)
	t.Setenv(LISTEN_ADDR, ":7000")

	s, err := NewSettingType(false)
	require.NoError(t, err)

	assert.Equal(t, "Campus", s.Get(SITE_NAME))
	assert.Equal(t, sourceFile, s.Source(SITE_NAME))
	assert.Equal(t, ":7000", s.Get(LISTEN_ADDR))
	assert.Equal(t, sourceEnv, s.Source(LISTEN_ADDR))
	assert.Equal(t, []string{"a.example", "b.example"}, s.List(TLS_HOSTS))
}

func TestNewSettingTypeExpandsEnvInFile(t *testing.T) {
	t.Setenv("VIDYODAYA_TEST_NAME", "Expanded")
	t.Setenv(CONFIG_FILE, writeConfigFile(t, "SITE_NAME: ${VIDYODAYA_TEST_NAME}\n"))

	s, err := NewSettingType(false)
	require.NoError(t, err)
	assert.Equal(t, "Expanded", s.Get(SITE_NAME))
}

func TestNewSettingTypeBadFile(t *testing.T) {
	t.Setenv(CONFIG_FILE, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := NewSettingType(false)
	require.Error(t, err)

	t.Setenv(CONFIG_FILE, writeConfigFile(t, "site_name: [unterminated\n"))
	_, err = NewSettingType(false)
	require.Error(t, err)

	t.Setenv(CONFIG_FILE, writeConfigFile(t, "site_name:\n  nested: value\n"))
	_, err = NewSettingType(false)
	require.Error(t, err)
}

func TestSettingsAccessors(t *testing.T) {
	t.Setenv(TLS_ENABLED, "YES")
	t.Setenv(SHUTDOWN_TIMEOUT, "soon")
	t.Setenv(TLS_HOSTS, " a , ,b ")

	s, err := NewSettingType(false)
	require.NoError(t, err)

	assert.True(t, s.IsTrue(TLS_ENABLED))
	assert.Equal(t, []string{"a", "b"}, s.List(TLS_HOSTS))
	_, err = s.Duration(SHUTDOWN_TIMEOUT)
	assert.Error(t, err)
	assert.False(t, s.Has("UNKNOWN_KEY"))
}

func TestSettingsPrint(t *testing.T) {
	s, err := NewSettingType(false)
	require.NoError(t, err)

	var buf bytes.Buffer
	s.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "LISTEN_ADDR")
	assert.Contains(t, out, "Vidyodaya")
}
