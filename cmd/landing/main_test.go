package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/maestrohq/landing/internal/overrides"
	"github.com/maestrohq/landing/sections"
)

// run executes the command line against a config in a fresh directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "landing.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logging:\n  level: error\n"), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeOverrides(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	out, err := run(t, "defaults", "pricing")
	require.NoError(t, err)

	got, err := overrides.Decode("defaults.yaml", []byte(out))
	require.NoError(t, err)
	require.Len(t, got, 1)
	if diff := cmp.Diff(sections.Pricing.Defaults.Override(), got["pricing"]); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	table := doc.Content[0].Content[1]
	var keys []string
	for i := 0; i < len(table.Content); i += 2 {
		keys = append(keys, table.Content[i].Value)
	}
	assert.Equal(t, sections.Pricing.Defaults.Keys(), keys)
}

func TestDefaultsAllSections(t *testing.T) {
	out, err := run(t, "defaults")
	require.NoError(t, err)
	got, err := overrides.Decode("defaults.yaml", []byte(out))
	require.NoError(t, err)
	assert.Len(t, got, len(sections.All))
	assert.Equal(t, "#pricing", got["hero"]["primaryCTAHref"])
}

func TestDefaultsUnknownSection(t *testing.T) {
	_, err := run(t, "defaults", "nope")
	assert.ErrorContains(t, err, `unknown section "nope"`)
}

func TestAudit(t *testing.T) {
	ov := writeOverrides(t, "pricing:\n  plan2Price: \"$999\"\n")
	out, err := run(t, "--overrides", ov, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "0 findings")

	out, err = run(t, "audit", "--json", "--billing", "annual")
	require.NoError(t, err)
	assert.Contains(t, out, `"sections": 6`)
}

func TestAuditBadOverrides(t *testing.T) {
	ov := writeOverrides(t, "pricing: [")
	_, err := run(t, "--overrides", ov, "audit")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	ov := writeOverrides(t, "pricing:\n  plan2Price: \"$999\"\n")
	out, err := run(t, "--overrides", ov, "export", "pricing")
	require.NoError(t, err)
	assert.Contains(t, out, "$999")
	assert.NotContains(t, out, "Run Every Warehouse")
}

func TestExportHTMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	_, err := run(t, "export", "--html", "--out", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.ToLower(string(data)), "<!doctype html>"))
}

func TestRoutes(t *testing.T) {
	out, err := run(t, "routes")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "POST")
	assert.Contains(t, lines[1], "/contact")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "routes")
	assert.ErrorContains(t, err, "invalid config")
}
