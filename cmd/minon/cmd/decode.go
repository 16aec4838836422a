package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oy3o/minon"
	"github.com/spf13/cobra"
)

var decodeNested bool

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a sequence of records",
	Long: `Decode a file (or stdin) as a back-to-back sequence of records and
print one line per record. With --nested, each record's content is
re-parsed as a sequence and any sub-records are printed indented;
content that is not itself a valid sequence is shown as-is.

Example:
  minon decode notes.mon --nested`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return err
		}

		seq, err := minon.ParseAll(data)
		if err != nil {
			return err
		}
		printSequence(cmd.OutOrStdout(), seq, 0)
		return nil
	},
}

// printSequence prints records one per line. Nested decoding is opt-in
// per the format's opaqueness rules: content is only re-parsed when
// --nested is set, and only shown as sub-records when it parses cleanly
// as a sequence.
func printSequence(w io.Writer, seq minon.Sequence, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := range seq {
		rec := &seq[i]
		fmt.Fprintf(w, "%s%s (%d bytes)", indent, rec.Name, rec.Length)
		if rec.Length == 0 {
			fmt.Fprintln(w)
			continue
		}
		if decodeNested {
			if sub, err := minon.ParseAll(rec.Content); err == nil && len(sub) > 0 {
				fmt.Fprintln(w)
				printSequence(w, sub, depth+1)
				continue
			}
		}
		fmt.Fprintf(w, ": %s\n", preview(rec.Content))
	}
}

// previewLimit bounds how much content is shown per record.
const previewLimit = 60

func preview(content []byte) string {
	if len(content) > previewLimit {
		return fmt.Sprintf("%q...", content[:previewLimit])
	}
	return fmt.Sprintf("%q", content)
}

func init() {
	decodeCmd.Flags().BoolVarP(&decodeNested, "nested", "n", false, "Re-parse each record's content as a nested sequence")
	rootCmd.AddCommand(decodeCmd)
}
