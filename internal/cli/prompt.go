package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Interactive cleaning loop",
	Long: `Read lines from standard input, run each through the pipeline, and log
the resulting tokens and keywords. Exits on end-of-input, "quit", or "exit".

Example:
  zhprep prompt`,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	log := GetLogger()

	pre, cleanup, err := buildPreprocessor(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stderr, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "quit", "exit":
			return nil
		case "":
			fmt.Fprint(os.Stderr, "> ")
			continue
		}

		// A prompt line is a corpus of one; keywords use its own weights.
		results, err := pre.ProcessCorpus([]string{line})
		if err != nil {
			log.Error("processing failed", "error", err)
		} else {
			r := results[0]
			keywords := make([]string, len(r.Keywords))
			for i, kw := range r.Keywords {
				keywords[i] = fmt.Sprintf("%s(%.3f)", kw.Term, kw.Weight)
			}
			log.Info("processed",
				"tokens", strings.Join(r.Tokens, " "),
				"keywords", strings.Join(keywords, " "),
			)
		}
		fmt.Fprint(os.Stderr, "> ")
	}

	return scanner.Err()
}
