package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type nested struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type testConfig struct {
	City   string `json:"city"`
	Delay  int    `json:"delay_ms"`
	Nested nested `json:"nested"`
}

var defaults = testConfig{
	City:   "PROVO",
	Delay:  500,
	Nested: nested{Index: 5, Name: "panel"},
}

func write(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfigMissing(t *testing.T) {
	cfg, err := ReadConfig(filepath.Join(t.TempDir(), "config.json5"), defaults)
	require.True(t, os.IsNotExist(err))
	require.Equal(t, defaults, cfg)
}

func TestReadConfigLayers(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "config.json5"), `{
		// comments and trailing commas are fine
		city: "OREM",
		nested: { index: 0 },
	}`)
	write(t, filepath.Join(dir, "config.local.json5"), `{ delay_ms: 0 }`)

	cfg, err := ReadConfig(filepath.Join(dir, "config.json5"), defaults)
	require.Nil(t, err)
	require.Equal(t, testConfig{
		City:   "OREM",
		Delay:  0,
		Nested: nested{Index: 0, Name: "panel"},
	}, cfg)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "config.json5"), `{ city: `)

	cfg, err := ReadConfig(filepath.Join(dir, "config.json5"), defaults)
	require.NotNil(t, err)
	require.Equal(t, defaults, cfg)
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	err := os.MkdirAll(child, 0755)
	if err != nil {
		t.Fatal(err)
	}
	write(t, filepath.Join(root, "telemetry-test.json5"), `{ city: "LEHI" }`)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	err = os.Chdir(child)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := ReadRecursively("telemetry-test.json5", defaults)
	require.Nil(t, err)
	require.Equal(t, "LEHI", cfg.City)
}

func TestOverride(t *testing.T) {
	cfg := defaults
	err := Override(&cfg, testConfig{City: "OREM"})
	require.Nil(t, err)
	require.Equal(t, "OREM", cfg.City)
	require.Equal(t, 500, cfg.Delay)
	require.Equal(t, defaults.Nested, cfg.Nested)
}
