package cli

import (
	"strings"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/report"
	"github.com/spf13/cobra"
)

// askCmd is the compact one-shot mode
var askCmd = &cobra.Command{
	Use:   "ask <claim>",
	Short: "Classify and briefly verify a single claim",
	Long: `Ask classifies one claim and, when it is factual, returns a short report
from the model's own knowledge. No web search is performed.

Example:
  verdict ask "La Tour Eiffel mesure 330 mètres."`,
	Args: cobra.MinimumNArgs(1),
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

		claim := model.Claim{Text: strings.Join(args, " "), Source: "ask"}
		rec := a.pipeline.Ask(ctx, claim)
		a.record(rec)
		return report.Record(cmd.OutOrStdout(), rec, cfg.Output.Color)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
