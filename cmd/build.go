package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long:  `Renders every page, detail page and blog category fragment into the output directory, ready for any static host.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "override output directory (defaults to output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	cfg, err := validConfig()
	if err != nil {
		return err
	}

	theme, pages, err := app.Assets(cfg)
	if err != nil {
		return err
	}
	store, err := loadConfiguredStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	g := site.NewGenerator(cfg.OutputDir, theme, pages, logger)
	g.Reporter = progress.NewReporter(cmd.ErrOrStderr(), "Exporting site")
	m, err := g.Generate(cmd.Context(), store)
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site exported: %s (%d files, build %s)\n", cfg.OutputDir, len(m.Files), m.BuildID)
	return nil
}
