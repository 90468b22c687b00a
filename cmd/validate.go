package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate [payload]",
	Short: "Check the config and content payload",
	Long:  `Validates the configuration, then loads the configured content (or the given payload file) and reports the first problem found in it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := validConfig()
		if err != nil {
			return err
		}

		var (
			store *content.Store
			name  = string(cfg.Content.Source)
		)
		if len(args) == 1 {
			name = args[0]
			store, err = loadStore(cmd.Context(), cfg, content.FileSource{Path: args[0]})
		} else {
			store, err = loadConfiguredStore(cmd.Context(), cfg)
		}
		if err != nil {
			return err
		}

		counts := store.Counts()
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d characters, %d archives, %d blog posts\n",
			name, counts[content.KindCharacter], counts[content.KindArchive], counts[content.KindBlog])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
