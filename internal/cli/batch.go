package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"zhprep/internal/adapter/fs"
	"zhprep/internal/domain"
	"zhprep/internal/usecase"
)

var (
	batchOutput string
	batchColumn string
)

var batchCmd = &cobra.Command{
	Use:   "batch [input]",
	Short: "Process CSV files",
	Long: `Process the designated text column of one or more CSV files. The input
may be a file, a directory, or a glob; each output CSV mirrors the input rows
with appended tokens and keywords columns.

Examples:
  zhprep batch data/questions.csv
  zhprep batch data/ --column question
  zhprep batch "data/**/*.csv"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output file (default <input>_processed.csv)")
	batchCmd.Flags().StringVarP(&batchColumn, "column", "c", "", "text column header (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	log := GetLogger()

	input := "."
	if len(args) > 0 {
		input = args[0]
	}

	column := cfg.Batch.TextColumn
	if batchColumn != "" {
		column = batchColumn
	}

	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes)
	files, err := walker.Discover(input)
	if err != nil {
		return err
	}
	if batchOutput != "" && len(files) > 1 {
		return fmt.Errorf("%w: --output is only valid with a single input file", domain.ErrConfig)
	}

	pre, cleanup, err := buildPreprocessor(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, file := range files {
		output := batchOutput
		if output == "" {
			output = strings.TrimSuffix(file, ".csv") + "_processed.csv"
		}
		if err := processFile(pre, file, output, column); err != nil {
			// Keep going: a bad file must not stop the batch.
			log.Error("batch file failed", "file", file, "error", err)
			continue
		}
		log.Info("batch file done", "file", file, "output", output)
	}

	return nil
}

func processFile(pre *usecase.Preprocessor, input, output, column string) error {
	log := GetLogger()

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: empty csv file", domain.ErrInput)
	}

	header := rows[0]
	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			col = i
			break
		}
	}
	if col < 0 {
		return fmt.Errorf("%w: column %q not found in header %v", domain.ErrInput, column, header)
	}

	data := rows[1:]
	tokens := make([][]string, len(data))
	processed := make([]int, 0, len(data))

	bar := progressbar.NewOptions(len(data),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
	)

	for i, row := range data {
		bar.Add(1)
		if col >= len(row) {
			log.Warn("row has no text column, skipping", "file", input, "row", i+2)
			continue
		}
		toks, err := pre.Process(row[col])
		if err != nil {
			// Log and continue with the next row.
			log.Warn("row processing failed", "file", input, "row", i+2, "error", err)
			continue
		}
		tokens[i] = toks
		processed = append(processed, i)
	}

	// Fit the vectorizer across the whole file so IDF reflects the corpus.
	keywords := make([][]domain.Keyword, len(data))
	if len(processed) > 0 {
		corpus := make([][]string, len(processed))
		for j, i := range processed {
			corpus[j] = tokens[i]
		}
		kws, err := pre.Keywords(corpus)
		if err != nil {
			log.Warn("keyword extraction skipped", "file", input, "error", err)
		} else {
			for j, i := range processed {
				keywords[i] = kws[j]
			}
		}
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	if err := writer.Write(append(append([]string{}, header...), "tokens", "keywords")); err != nil {
		return err
	}
	for i, row := range data {
		kwTerms := make([]string, len(keywords[i]))
		for j, kw := range keywords[i] {
			kwTerms[j] = kw.Term
		}
		record := append(append([]string{}, row...),
			strings.Join(tokens[i], " "),
			strings.Join(kwTerms, " "),
		)
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
