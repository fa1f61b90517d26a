package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:3000", cfg.Api.BaseUrl)
	assert.Equal(t, 30, cfg.Api.Timeout)
	assert.Equal(t, int64(1), cfg.Chain.ChainId)
	assert.Equal(t, "crowdtrust.db", cfg.Cart.Path)
	assert.Equal(t, "cart", cfg.Cart.Name)
	assert.Equal(t, 3, cfg.Cart.Version)
	assert.Equal(t, 300, cfg.Task.RefreshInterval)
	assert.Equal(t, int64(16*1024*1024), cfg.Upload.MaxImageSize)
	assert.Equal(t, int64(150*1024*1024), cfg.Upload.MaxVideoSize)
	assert.Equal(t, 4, cfg.Upload.Concurrency)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLogConfigInterface(t *testing.T) {
	cfg := LogConfig{Level: "debug", Output: "file", File: "logs/test.log"}
	assert.Equal(t, "debug", cfg.GetLevel())
	assert.Equal(t, "file", cfg.GetOutput())
	assert.Equal(t, "logs/test.log", cfg.GetFile())
}
