package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "folio dev\n", out)
}

func TestValidateSample(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "sample is valid: 3 characters")
}

func TestValidatePayloadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, content.SampleData(), 0o644))

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, path+" is valid")
}

func TestValidateRejectsBadPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"characters": [`), 0o644))

	_, err := execute(t, "validate", path)
	assert.Error(t, err)
}

func TestBuildWritesSite(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "build", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Static site exported: "+dir)

	for _, name := range []string{"index.html", "blog.html", "manifest.json"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestImportIntoDatabase(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(payload, content.SampleData(), 0o644))
	dbPath := filepath.Join(dir, "content.db")

	out, err := execute(t, "import", payload, "--database", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "3 characters")
	assert.FileExists(t, dbPath)
}

func TestScaffoldSeedsContent(t *testing.T) {
	for _, name := range []string{"data.json", "data.yaml", "data.js"} {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			c := config.DefaultConfig()
			c.Content.Source = config.SourceFile
			c.Content.Path = name

			var out bytes.Buffer
			require.NoError(t, scaffold(&out, c, root))
			assert.Equal(t, defaultPagesDir, c.PagesDir)
			assert.FileExists(t, filepath.Join(root, "pages", "home.md"))

			p, err := content.FileSource{Path: filepath.Join(root, name)}.Fetch(context.Background())
			require.NoError(t, err)
			store, err := content.New(p)
			require.NoError(t, err)
			assert.Equal(t, 3, store.Counts()[content.KindCharacter])
		})
	}
}

func TestScaffoldKeepsExistingFiles(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "data.json")
	require.NoError(t, os.WriteFile(existing, []byte(`{}`), 0o644))

	c := config.DefaultConfig()
	c.Content.Source = config.SourceFile
	c.Content.Path = "data.json"
	require.NoError(t, scaffold(&bytes.Buffer{}, c, root))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestScaffoldRejectsUnknownFormat(t *testing.T) {
	c := config.DefaultConfig()
	c.Content.Source = config.SourceFile
	c.Content.Path = "data.txt"
	assert.Error(t, scaffold(&bytes.Buffer{}, c, t.TempDir()))
}
