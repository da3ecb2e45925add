package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"zhprep/config"
	"zhprep/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zhprep",
	Short: "Chinese text cleaning and keyword extraction",
	Long: `zhprep cleans Chinese text: full-width normalization, symbol and digit
removal, jieba segmentation, stop-word filtering, TF-IDF (or count)
vectorization, and keyword extraction by weight threshold.

Example usage:
  zhprep prompt                    # Interactive prompt loop
  zhprep batch data/questions.csv  # Process a CSV file`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log = logging.New(cfg.Logging.Level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./zhprep.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetLogger() *slog.Logger {
	return log
}
