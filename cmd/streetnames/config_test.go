package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no streetnames.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "map.osm.pbf", cfg.OSM.File)
	assert.Equal(t, defaultTags, cfg.OSM.Tags)
	assert.Equal(t, "meters", cfg.OSM.CostType)
	assert.InDelta(t, 5.0, cfg.OSM.LayerHeight, 0.001)
	assert.Equal(t, "data/prefixes.csv", cfg.Rules.Prefixes)
	assert.Equal(t, "data/suffixes.csv", cfg.Rules.Suffixes)
	assert.Equal(t, 0, cfg.Naming.Variation)
	assert.Equal(t, "names.csv", cfg.Export.Out)
	assert.Equal(t, "wkt", cfg.Export.GeomFormat)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
osm:
  file: city.osm
  tags: [residential, primary]
naming:
  variation: 42
export:
  geom_format: geojson
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "streetnames.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "city.osm", cfg.OSM.File)
	assert.Equal(t, []string{"residential", "primary"}, cfg.OSM.Tags)
	assert.Equal(t, 42, cfg.Naming.Variation)
	assert.Equal(t, "geojson", cfg.Export.GeomFormat)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Untouched keys keep defaults
	assert.Equal(t, "names.csv", cfg.Export.Out)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("STREETNAMES_OSM_FILE", "env.osm.pbf")
	t.Setenv("STREETNAMES_NAMING_VARIATION", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env.osm.pbf", cfg.OSM.File)
	assert.Equal(t, 7, cfg.Naming.Variation)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "streetnames.yaml"), []byte("osm: [unclosed"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
