package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/db"
)

var importCmd = &cobra.Command{
	Use:   "import <payload>",
	Short: "Import a content payload into the SQLite database",
	Long: `Validates a data.json, data.yaml or data.js payload and replaces the
contents of the database at content.database with it. Serve it afterwards
with content.source: sqlite.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("database", "", "override database path (defaults to content.database)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := cfg.Content.Database
	if override, _ := cmd.Flags().GetString("database"); override != "" {
		path = override
	}
	if path == "" {
		return fmt.Errorf("no database configured: set content.database or pass --database")
	}

	src := content.FileSource{Path: args[0]}
	p, err := src.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	d, err := db.Open(path)
	if err != nil {
		return err
	}
	defer d.Close()

	res, err := content.SaveToDB(cmd.Context(), d, p, src.String())
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s: %d characters, %d archives, %d blog posts (import %s)\n",
		args[0], path, res.Characters, res.Archives, res.BlogPosts, res.ID)
	return nil
}
