package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile    string
	logger     *zap.SugaredLogger
	resultsDir string
	verbose    bool
)

const (
	jsonPrefix = ""
	jsonIndent = "  "
)

var rootCmd = &cobra.Command{
	Use:   "headgrade",
	Short: "Grade security response headers across crawled pages",
	Long: `headgrade collects response headers for a set of crawled pages and
evaluates them against a fixed catalog of security header checks,
producing per-page pass/fail breakdowns, weighted scores, and letter
grades that can be filtered, sorted, and exported.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".headgrade")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()
		if resultsDir == "" {
			resultsDir = viper.GetString("results_dir")
		}
		if resultsDir == "" {
			resultsDir = "./results"
		}

		if err := os.MkdirAll(resultsDir, 0o755); err != nil {
			return fmt.Errorf("failed to create results directory: %s", err.Error())
		}
		if abs, err := filepath.Abs(resultsDir); err == nil {
			resultsDir = abs
		}

		var l *zap.Logger
		var err error
		if verbose {
			l, err = zap.NewDevelopment()
		} else {
			l, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l.Sugar()

		return nil
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.headgrade.yaml)")
	rootCmd.PersistentFlags().StringVar(&resultsDir, "results-dir", "", "directory for crawl output and reports (default ./results)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (development) logging")

	rootCmd.AddCommand(crawlCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
