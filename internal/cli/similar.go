package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zhprep/internal/domain"
)

var (
	similarQuery     string
	similarThreshold float64
	similarTop       int
)

var similarCmd = &cobra.Command{
	Use:   "similar [input]",
	Short: "Find similar documents in a processed CSV",
	Long: `Compare documents of a processed CSV by cosine similarity over their
TF-IDF vectors. Without --query, report every pair of documents whose
similarity exceeds the threshold. With --query, preprocess the query text and
rank the documents most similar to it.

Examples:
  zhprep similar data/questions_processed.csv
  zhprep similar data/questions_processed.csv --threshold 0.8
  zhprep similar data/questions_processed.csv --query "磁盘故障怎么处理" --top 3`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilar,
}

func init() {
	rootCmd.AddCommand(similarCmd)
	similarCmd.Flags().StringVarP(&similarQuery, "query", "q", "", "rank documents most similar to this text")
	similarCmd.Flags().Float64VarP(&similarThreshold, "threshold", "t", -1, "pair similarity threshold (default from config)")
	similarCmd.Flags().IntVarP(&similarTop, "top", "n", 0, "query results to return (default from config)")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	log := GetLogger()

	threshold := cfg.Similar.Threshold
	if similarThreshold >= 0 {
		threshold = similarThreshold
	}
	topN := cfg.Similar.TopN
	if similarTop > 0 {
		topN = similarTop
	}

	texts, tokenized, err := readProcessed(args[0], cfg.Batch.TextColumn, cfg.Similar.TokensColumn)
	if err != nil {
		return err
	}

	pre, cleanup, err := buildPreprocessor(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if similarQuery != "" {
		matches, err := pre.MostSimilar(similarQuery, tokenized, topN)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Printf("%.4f\t%s\n", m.Score, texts[m.Index])
		}
		log.Info("query ranked", "matches", len(matches), "documents", len(tokenized))
		return nil
	}

	pairs, err := pre.SimilarPairs(tokenized, threshold)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		fmt.Printf("%.4f\t%s\t%s\n", p.Score, texts[p.I], texts[p.J])
	}
	log.Info("pairs compared", "pairs", len(pairs), "documents", len(tokenized), "threshold", threshold)
	return nil
}

// readProcessed loads the text and tokens columns of a CSV produced by the
// batch command. Tokens are split on whitespace; rows with an empty tokens
// cell are kept as empty documents so indices line up with the file.
func readProcessed(path, textColumn, tokensColumn string) ([]string, [][]string, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: empty csv file", domain.ErrInput)
	}

	header := rows[0]
	textCol, tokensCol := -1, -1
	for i, name := range header {
		switch {
		case strings.EqualFold(strings.TrimSpace(name), textColumn):
			textCol = i
		case strings.EqualFold(strings.TrimSpace(name), tokensColumn):
			tokensCol = i
		}
	}
	if tokensCol < 0 {
		return nil, nil, fmt.Errorf("%w: column %q not found in header %v", domain.ErrInput, tokensColumn, header)
	}

	data := rows[1:]
	texts := make([]string, len(data))
	tokenized := make([][]string, len(data))
	for i, row := range data {
		if tokensCol < len(row) {
			tokenized[i] = strings.Fields(row[tokensCol])
		}
		if textCol >= 0 && textCol < len(row) {
			texts[i] = row[textCol]
		} else {
			texts[i] = strings.Join(tokenized[i], " ")
		}
	}
	return texts, tokenized, nil
}
