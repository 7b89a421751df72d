package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elir-elirlab/elirdeskclock/config"
)

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deskclock.yaml")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "wrote")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.NewDefault(), cfg)

	cmd = newRootCmd()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "already exists")
}

func TestLoadConfigFlags(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--image", "bg.jpg"}))

	cfg, err := loadConfig(cmd, flags{
		configFile: filepath.Join(t.TempDir(), "missing.yaml"),
		image:      "bg.jpg",
		windowed:   true,
		logLevel:   "warn",
	})
	require.NoError(t, err)
	assert.Equal(t, "bg.jpg", cfg.DefaultImage)
	assert.False(t, cfg.Fullscreen)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestLoadConfigKeepsDefaultImageWithoutFlag(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cmd := newRootCmd()
	cfg, err := loadConfig(cmd, flags{configFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, err)
	assert.Equal(t, "image.png", cfg.DefaultImage)
	assert.True(t, cfg.Fullscreen)
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	cmd := newRootCmd()
	_, err := loadConfig(cmd, flags{
		configFile: filepath.Join(t.TempDir(), "missing.yaml"),
		logLevel:   "shouty",
	})
	assert.Error(t, err)
}
