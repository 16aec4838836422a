package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minon",
	Short: "minon - minimal object notation tool",
	Long: `minon encodes and decodes minimal object notation, a text format of
tagged, length-prefixed records of the shape name|length~content.

Content is opaque and may itself hold further records; decoding into
nested records is always explicit (see "minon decode --nested").`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
