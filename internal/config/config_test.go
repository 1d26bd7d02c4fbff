package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"data/rust.yaml", "data/python.yaml", "data/perl.yaml"}, cfg.Sources)
	assert.Equal(t, "_site", cfg.OutputDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Empty(t, cfg.TemplateDir)
	assert.Equal(t, "Virtual Events", cfg.SiteTitle)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.PreviewAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("SOURCES", " events/python.yaml , events/rust.json,, ")
	t.Setenv("OUTPUT_DIR", "public")
	t.Setenv("STATIC_DIR", "assets")
	t.Setenv("TEMPLATE_DIR", "tmpl")
	t.Setenv("SITE_TITLE", "Online Meetups")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("PREVIEW_ADDR", ":8000")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"events/python.yaml", "events/rust.json"}, cfg.Sources)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "assets", cfg.StaticDir)
	assert.Equal(t, "tmpl", cfg.TemplateDir)
	assert.Equal(t, "Online Meetups", cfg.SiteTitle)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":8000", cfg.PreviewAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EmptySources(t *testing.T) {
	t.Setenv("SOURCES", " , ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOURCES")
}

func TestLoad_EmptyOutputDir(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "  ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTPUT_DIR")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseList("a,b"))
	assert.Equal(t, []string{"b", "a"}, parseList(" b ,a"))
	assert.Nil(t, parseList(""))
}
