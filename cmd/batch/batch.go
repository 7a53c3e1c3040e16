// Package batch handles batch processing of sentence files
package batch

import (
	"fmt"

	"fjacquet/expense-parse/cmd/root"
	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch parse a file of sentences into a CSV of records",
	Long: `Batch parse a plain-text file containing one expense sentence per line
and write the extracted records to a CSV file.

Example:
  expense-parse batch -i sentences.txt -o records.csv`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputFile := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output

	logger := root.GetLogrusAdapter()
	if inputFile == "" || outputFile == "" {
		logger.Fatal("Input and output files must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	csvStore := appContainer.GetStore()
	sentences, err := csvStore.ReadSentences(inputFile)
	if err != nil {
		logger.Fatalf("Failed to read sentences: %v", err)
	}
	if len(sentences) == 0 {
		logger.Warn("No sentences found in input file")
	}

	ex := appContainer.GetExtractor()
	rows := make([]store.RecordRow, 0, len(sentences))
	for _, sentence := range sentences {
		record, err := ex.Extract(cmd.Context(), sentence)
		if err != nil {
			logger.WithError(err).Error("Failed to parse sentence, skipping",
				logging.Field{Key: "sentence", Value: sentence})
			continue
		}
		rows = append(rows, store.NewRecordRow(sentence, record))
	}

	if err := csvStore.WriteRecords(rows, outputFile); err != nil {
		logger.Fatalf("Failed to write CSV: %v", err)
	}

	root.Log.Info(fmt.Sprintf("Batch processing completed. %d records written.", len(rows)))
}
