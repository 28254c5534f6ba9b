package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/verdict/internal/ingest"
	"github.com/spf13/cobra"
)

// batchCmd reads claims from stdin
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify claims read from stdin, one per line",
	Long: `Batch reads claims from standard input until end of file (Ctrl+D), then
verifies them concurrently:
- Blank lines and lines starting with # are ignored
- Every other line is verified, repeated lines included
- Results are printed in submission order and saved to the results directory

Example:
  verdict batch < claims.txt
  printf "La Tour Eiffel est à Paris.\nBonjour à tous !\n" | verdict batch --md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(os.Stderr, "Saisissez les affirmations, une par ligne (Ctrl+D pour terminer) :\n")
		texts, err := ingest.ReadPasted(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Loaded %d claims from stdin\n", len(texts))
		return runClaims("batch", "stdin", texts)
	},
}

// fileCmd reads claims from a text or WebVTT file
var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Verify claims read from a file",
	Long: `File verifies one claim per line of a text file. WebVTT transcripts (.vtt)
are parsed first: headers and cue timings are dropped and the spoken text is
split into sentences.

Example:
  verdict file claims.txt
  verdict file debate.vtt --html`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		texts, err := ingest.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read claims: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Loaded %d claims from %s\n", len(texts), args[0])
		return runClaims("file", "file:"+args[0], texts)
	},
}

// demoCmd runs the built-in claim list
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Verify the built-in demonstration claims",
	Long:  `Demo runs a fixed list of claims covering every category of the taxonomy.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClaims("demo", "demo", ingest.DemoClaims)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{batchCmd, fileCmd, demoCmd} {
		addRunFlags(cmd)
		rootCmd.AddCommand(cmd)
	}
}
