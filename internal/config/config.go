package config

import (
	"errors"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// DefaultSources is the ingestion order used when SOURCES is unset.
const DefaultSources = "data/rust.yaml,data/python.yaml,data/perl.yaml"

// Config holds all build settings, populated from environment variables.
type Config struct {
	// Sources are read and concatenated in this order.
	Sources     []string
	OutputDir   string
	StaticDir   string
	TemplateDir string // empty means the embedded templates
	SiteTitle   string

	LogLevel  string
	LogFormat string

	// PreviewAddr, when set, serves the built site until interrupted.
	PreviewAddr     string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Sources:         parseList(sharedcfg.EnvOrDefault("SOURCES", DefaultSources)),
		OutputDir:       strings.TrimSpace(sharedcfg.EnvOrDefault("OUTPUT_DIR", "_site")),
		StaticDir:       strings.TrimSpace(sharedcfg.EnvOrDefault("STATIC_DIR", "static")),
		TemplateDir:     strings.TrimSpace(sharedcfg.EnvOrDefault("TEMPLATE_DIR", "")),
		SiteTitle:       sharedcfg.EnvOrDefault("SITE_TITLE", "Virtual Events"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		PreviewAddr:     strings.TrimSpace(sharedcfg.EnvOrDefault("PREVIEW_ADDR", "")),
		ShutdownTimeout: shutdownTimeout,
	}

	if len(cfg.Sources) == 0 {
		return nil, errors.New("SOURCES is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, errors.New("LOG_FORMAT must be json or text")
	}

	return cfg, nil
}

// parseList splits a comma-separated value, dropping blanks but keeping order.
func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
