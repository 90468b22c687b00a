package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
)

// defaultPagesDir receives the sample static pages on init.
const defaultPagesDir = "pages"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize folio configuration with an interactive wizard",
	Long: `Runs an interactive wizard to configure the content source, export directory
and server port, and writes a .folio.yml file. With the file source, a missing
payload and the static pages are seeded from the built-in sample site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		if err := scaffold(cmd.OutOrStdout(), c, "."); err != nil {
			return err
		}
		return c.Save(cfgFile)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// scaffold seeds root with the sample payload (file source only) and the
// sample static pages. Existing files are left alone.
func scaffold(out io.Writer, c *config.Config, root string) error {
	if c.Content.Source == config.SourceFile {
		path := filepath.Join(root, c.Content.Path)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			data, err := samplePayload(path)
			if err != nil {
				return err
			}
			if err := writeNew(path, data); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote sample content to %s\n", c.Content.Path)
		}
	}

	if c.PagesDir == "" {
		c.PagesDir = defaultPagesDir
	}
	pages := content.SamplePages()
	return fs.WalkDir(pages, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		dst := filepath.Join(root, c.PagesDir, filepath.FromSlash(name))
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
		data, err := fs.ReadFile(pages, name)
		if err != nil {
			return err
		}
		if err := writeNew(dst, data); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", filepath.Join(c.PagesDir, name))
		return nil
	})
}

// samplePayload encodes the sample content in the format path's extension
// selects.
func samplePayload(path string) ([]byte, error) {
	raw := content.SampleData()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return raw, nil
	case ".js":
		return []byte("window.websiteData = " + strings.TrimSpace(string(raw)) + ";\n"), nil
	case ".yml", ".yaml":
		p, err := content.DecodePayload("data.json", raw)
		if err != nil {
			return nil, err
		}
		return yaml.Marshal(p)
	}
	return nil, fmt.Errorf("cannot write sample content to %s: use a .json, .yaml or .js file", path)
}

func writeNew(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
