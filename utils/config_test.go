package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
url: https://testbooru.donmai.us
username: alice
api_key: secret
output: images
page_limit: 20
extensions: "*"
timeout: 30s
debug: true
`), 0o644))

	config, err := ParseConfig(file)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.ApplyConfig(config)

	assert.Equal(t, "https://testbooru.donmai.us", opts.URL)
	assert.Equal(t, "alice", opts.Username)
	assert.Equal(t, "secret", opts.ApiKey)
	assert.Equal(t, "images", opts.Output)
	assert.Equal(t, 20, opts.PageLimit)
	assert.Equal(t, "*", opts.Extensions)
	assert.Equal(t, 30*time.Second, opts.Timeout)
	assert.True(t, opts.Debug)
	assert.Equal(t, DefaultUserAgent, opts.UserAgent)
	assert.Equal(t, DefaultLogDir, opts.LogDir)
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestOptionsValidate(t *testing.T) {
	opts := DefaultOptions()
	err := opts.Validate()
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))

	opts.Tags = "long_hair"
	opts.TagsOnly = true
	require.NoError(t, opts.Validate())
	assert.True(t, opts.SaveTags)

	assert.Error(t, opts.SetPageLimit("zero"))
	assert.Error(t, opts.SetPageLimit("0"))
	require.NoError(t, opts.SetPageLimit("7"))
	assert.Equal(t, 7, opts.PageLimit)
	require.NoError(t, opts.SetPageLimit(""))
	assert.Equal(t, 7, opts.PageLimit)
}
