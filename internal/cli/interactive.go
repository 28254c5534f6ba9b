package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/report"
	"github.com/spf13/cobra"
)

// interactiveCmd is the read-eval-print loop
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Verify claims one at a time",
	Long: `Interactive reads one claim per line and prints its verdict immediately.

Commands:
  history      show the last verdicts
  clear        erase the history file
  quit, exit, q  leave the session`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		a.serveMetrics(ctx, metricsAddr)
		return a.repl(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	interactiveCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the session (e.g. :9090)")
	rootCmd.AddCommand(interactiveCmd)
}

// repl processes lines from in until EOF, a quit command or cancellation
func (a *app) repl(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Verdict %s - mode interactif. Tapez 'quit' pour sortir, 'history' pour l'historique.\n", Version)

	scanner := bufio.NewScanner(in)
	index := 0
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Au revoir.")
			return nil
		case "history":
			if err := printHistory(out, a.history, 10, a.cfg.Output.Color); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			}
			continue
		case "clear":
			if err := a.history.Clear(); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Historique effacé.")
			continue
		}

		rec := a.pipeline.Process(ctx, model.Claim{Text: line, Source: "interactive", Index: index})
		index++
		a.record(rec)
		if err := report.Record(out, rec, a.cfg.Output.Color); err != nil {
			return err
		}
	}
}
