package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	root := t.TempDir()
	productDir := filepath.Join(root, "products")
	require.NoError(t, os.MkdirAll(productDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(productDir, "export.csv"),
		[]byte("Handle,Title,Tags,Variant SKU,Variant Price\nmug,Mug,Kitchen,MUG-1,4\n"), 0o644))

	configPath := filepath.Join(root, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"company_name": "Acme"}`), 0o644))

	t.Setenv("PRICEBOOK_PRODUCT_DIR", productDir)
	t.Setenv("PRICEBOOK_TRANSLATION_DIR", filepath.Join(root, "translations"))
	t.Setenv("PRICEBOOK_SCRATCH_DIR", filepath.Join(root, "temp"))
	t.Setenv("LOG_LEVEL", "error")

	outDir := filepath.Join(root, "out")
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", configPath, "--env-file", filepath.Join(root, "missing.env"), "-o", outDir})
	require.NoError(t, cmd.Execute())

	matches, err := filepath.Glob(filepath.Join(outDir, "pricebook_*.xlsx"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestRootCommand_MissingConfig(t *testing.T) {
	root := t.TempDir()
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", filepath.Join(root, "nope.json"), "--env-file", filepath.Join(root, "missing.env")})
	assert.Error(t, cmd.Execute())
}
