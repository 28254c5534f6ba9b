package cli

import (
	"fmt"
	"io"

	"github.com/ppiankov/verdict/internal/history"
	"github.com/ppiankov/verdict/internal/report"
	"github.com/spf13/cobra"
)

var (
	historyClear bool
	historyLast  int
)

// historyCmd inspects the persisted verdicts
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the verdict history",
	Long: `History prints the most recent verdicts, newest first. The history file keeps
the last verdicts of every mode (default: results/history.json).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := historyOnly()
		if err != nil {
			return err
		}

		if historyClear {
			if err := log.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared history: %s\n", log.Path())
			return nil
		}

		return printHistory(cmd.OutOrStdout(), log, historyLast, cfg.Output.Color)
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "erase the history file")
	historyCmd.Flags().IntVarP(&historyLast, "last", "n", 10, "number of verdicts to show")
	rootCmd.AddCommand(historyCmd)
}

// printHistory writes the n most recent records, newest first
func printHistory(w io.Writer, log *history.Log, n int, color bool) error {
	records, err := log.Recent(n)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "Historique vide.")
		return err
	}
	for _, rec := range records {
		if err := report.Record(w, rec, color); err != nil {
			return err
		}
	}
	return nil
}
