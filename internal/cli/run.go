package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/report"
	"github.com/spf13/cobra"
)

var (
	outMD       bool
	outHTML     bool
	metricsAddr string
)

// addRunFlags registers the report flags shared by batch-like modes
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&outMD, "md", false, "also write a Markdown report next to the JSON results")
	cmd.Flags().BoolVar(&outHTML, "html", false, "also write an HTML report next to the JSON results")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the run (e.g. :9090)")
}

// signalContext is canceled on Ctrl+C so that in-flight claims finish as canceled records
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runClaims verifies texts with the batch orchestrator, prints the text report
// and writes the results files for mode.
func runClaims(mode, source string, texts []string) error {
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

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Verdict - mode %s\n", mode)
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Affirmations: %d\n", len(texts))
	fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", a.provider.Name(), a.provider.Model(a.verifyTier))
	fmt.Fprintf(os.Stderr, "  Recherche:    %s\n", cfg.Search.Backend)
	fmt.Fprintf(os.Stderr, "  Parallélisme: %d affirmations, %d appels\n", cfg.Concurrency.MaxClaims, a.gate.Capacity())
	a.serveMetrics(ctx, metricsAddr)
	fmt.Fprintf(os.Stderr, "\n")

	if len(texts) == 0 {
		fmt.Fprintf(os.Stderr, "Aucune affirmation à analyser.\n")
		return nil
	}

	records := a.batch.Run(ctx, model.NewClaims(texts, source))

	if err := report.Text(os.Stdout, records, cfg.Output.Color); err != nil {
		return fmt.Errorf("print report: %w", err)
	}

	return writeResults(cfg.Output.ResultsDir, mode, records, time.Now(), outMD, outHTML)
}

// writeResults writes the JSON results file and the optional Markdown/HTML reports
func writeResults(dir, mode string, records []model.VerdictRecord, now time.Time, md, html bool) error {
	results := report.NewResults(mode, records, now)

	jsonPath := report.ResultsPath(dir, mode, "json", now)
	if err := report.WriteJSON(jsonPath, results); err != nil {
		return fmt.Errorf("write JSON results: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)

	if md {
		mdPath := report.ResultsPath(dir, mode, "md", now)
		if err := report.WriteMarkdown(mdPath, results); err != nil {
			return fmt.Errorf("write Markdown report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
	}

	if html {
		htmlPath := report.ResultsPath(dir, mode, "html", now)
		if err := report.WriteHTML(htmlPath, results); err != nil {
			return fmt.Errorf("write HTML report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote HTML: %s\n", htmlPath)
	}

	return nil
}
