package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the release reported by `verdict version`
const Version = "v0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "verdict",
	Short: "Verdict - vérification automatique d'affirmations",
	Long: `Verdict classe chaque affirmation dans une taxonomie fermée, puis la vérifie
auprès d'un modèle de langage en s'appuyant sur des sources web.

Les affirmations factuelles (statistiques, droit, doctrine, consensus scientifique
ou historique, sophismes) reçoivent un verdict sourcé. Les opinions, conseils,
politesses et intentions sont simplement pris en compte.

Verdict does not decide what is true on its own: every verdict is bounded by the
evidence it was shown.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of Verdict.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "verdict %s\n", Version)
	},
}

// envKeys are the nested config keys overridable through VERDICT_* variables
var envKeys = []string{
	"llm.provider",
	"llm.model",
	"llm.fast_model",
	"llm.strong_model",
	"llm.base_url",
	"search.backend",
	"search.max_results",
	"concurrency.max_claims",
	"concurrency.max_calls",
	"concurrency.pacing",
	"history.path",
	"output.results_dir",
	"output.color",
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.verdict/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	defaults := model.DefaultConfig()
	rootCmd.PersistentFlags().String("provider", defaults.LLM.Provider, "LLM provider (openai, mistral, anthropic, gemini, ollama)")
	rootCmd.PersistentFlags().String("model", defaults.LLM.Model, "LLM model for verification (default: provider's balanced model)")
	rootCmd.PersistentFlags().String("search", defaults.Search.Backend, "search backend (duckduckgo, serper, none)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("llm.provider", rootCmd.PersistentFlags().Lookup("provider"))
	_ = viper.BindPFlag("llm.model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("search.backend", rootCmd.PersistentFlags().Lookup("search"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.verdict")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match VERDICT_* (llm.model -> VERDICT_LLM_MODEL)
	viper.SetEnvPrefix("VERDICT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range envKeys {
		_ = viper.BindEnv(key)
	}

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
