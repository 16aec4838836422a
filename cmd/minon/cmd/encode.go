package cmd

import (
	"io"
	"os"

	"github.com/oy3o/minon"
	"github.com/spf13/cobra"
)

var encodeOutput string

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <name> [content]",
	Short: "Encode a single record",
	Long: `Encode a single record and write its canonical form to stdout.
With no content argument the record is encoded with length 0.

Example:
  minon encode greeting "Hello, world!"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := minon.NewRecord(args[0])
		if len(args) == 2 {
			rec.SetContent([]byte(args[1]))
		}
		if err := rec.Validate(); err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if encodeOutput != "" {
			f, err := os.Create(encodeOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		_, err := rec.WriteTo(out)
		return err
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Write the encoding to a file instead of stdout")
	rootCmd.AddCommand(encodeCmd)
}
