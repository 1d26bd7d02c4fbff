package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/virtual-events/internal/domain"
)

func writeSource(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	good := writeSource(t, "rust.yaml", `
- title: Rust one
  url: https://example.org/1
  name: Rust Online
  address: https://meet.example.org/1
  language: English
  start: 2024-06-06T18:00:00Z
  category: Rust
`)
	bad := writeSource(t, "perl.yaml", `
- title: Perl one
  url: https://example.org/2
  name: Perl Online
  address: https://meet.example.org/2
  language: Klingon
  start: 2024-06-06T18:00:00Z
  category: Perl
`)

	assert.Equal(t, 0, run([]string{good}, clock))
	assert.Equal(t, 1, run([]string{good, bad}, clock))
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.yaml")}, clock))
}

func TestCheckCoverage(t *testing.T) {
	parts := domain.Partitions([]domain.Event{{Title: "a", Category: domain.Rust, Language: domain.English}})

	p := checkCoverage(parts)

	assert.False(t, p.passed())
	assert.Len(t, p.errors, 10)
	assert.Contains(t, p.errors, "perl has no upcoming events")
	assert.NotContains(t, p.errors, "rust-english has no upcoming events")
}
