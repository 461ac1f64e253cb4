package skikt_test

import (
	"errors"
	"path/filepath"
	"testing"

	skikt "github.com/0xalexb/skikt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ServerConfig is a typical typed view over a merged section.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	TLS  bool   `yaml:"tls"`
}

// SetDefaults sets default values for the configuration.
func (c *ServerConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Port == 0 {
		c.Port = 8080
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

func mergedFixture(t *testing.T, files map[string]string, targetRel string) *skikt.Result {
	t.Helper()

	base := t.TempDir()
	writeTree(t, base, files)

	result, err := skikt.Merge(base, filepath.Join(base, filepath.FromSlash(targetRel)))
	require.NoError(t, err)

	return result
}

func TestProvider_DecodesSection(t *testing.T) {
	t.Parallel()

	result := mergedFixture(t, map[string]string{
		"config.yaml":     "service:\n  server:\n    host: api.internal\n    port: 80\n",
		"env/config.yaml": "service:\n  server:\n    port: 443\n    tls: true\n",
	}, "env")

	cfg, err := skikt.Provider(&ServerConfig{}, "service:server")(result)

	require.NoError(t, err)
	assert.Equal(t, "api.internal", cfg.Host, "shallow default survives the merge")
	assert.Equal(t, 443, cfg.Port, "deep override reaches the typed view")
	assert.True(t, cfg.TLS)
}

func TestProvider_EmptyPathDecodesWholeTree(t *testing.T) {
	t.Parallel()

	result := mergedFixture(t, map[string]string{
		"config.yaml": "host: whole.tree\nport: 9000\n",
	}, ".")

	cfg, err := skikt.Provider(&ServerConfig{}, "")(result)

	require.NoError(t, err)
	assert.Equal(t, "whole.tree", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
}

func TestProvider_AppliesDefaults(t *testing.T) {
	t.Parallel()

	result := mergedFixture(t, map[string]string{
		"config.yaml": "server:\n  tls: true\n",
	}, ".")

	cfg, err := skikt.Provider(&ServerConfig{}, "server")(result)

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.TLS)
}

func TestProvider_ValidationFailure(t *testing.T) {
	t.Parallel()

	result := mergedFixture(t, map[string]string{
		"config.yaml": "server:\n  port: 70000\n",
	}, ".")

	cfg, err := skikt.Provider(&ServerConfig{}, "server")(result)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "validating error")
}

func TestProvider_PathNotFound(t *testing.T) {
	t.Parallel()

	result := mergedFixture(t, map[string]string{
		"config.yaml": "server:\n  port: 80\n",
	}, ".")

	cfg, err := skikt.Provider(&ServerConfig{}, "server:nested:missing")(result)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, skikt.ErrPathNotFound)
}

func TestProvider_PlainStructWithoutHooks(t *testing.T) {
	t.Parallel()

	type flags struct {
		Verbose bool `yaml:"verbose"`
	}

	result := mergedFixture(t, map[string]string{
		"config.yaml": "flags:\n  verbose: true\n",
	}, ".")

	cfg, err := skikt.Provider(&flags{}, "flags")(result)

	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}
