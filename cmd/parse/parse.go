// Package parse handles one-shot extraction of a single sentence
package parse

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"fjacquet/expense-parse/cmd/root"

	"github.com/spf13/cobra"
)

var text string

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [sentence]",
	Short: "Parse one sentence into an expense record",
	Long: `Parse a natural-language expense sentence into a structured record
printed as JSON. The sentence is taken from the --text flag or from the
positional arguments.

Example:
  expense-parse parse "Alice paid 450 for dinner with Bob and Carol yesterday"`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&text, "text", "t", "", "Sentence to parse")
}

func parseFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	sentence := text
	if sentence == "" {
		sentence = strings.Join(args, " ")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	record, err := appContainer.GetExtractor().Extract(cmd.Context(), sentence)
	if err != nil {
		logger.Fatalf("Failed to parse sentence: %v", err)
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		logger.Fatalf("Failed to encode record: %v", err)
	}

	if out := root.SharedFlags.Output; out != "" {
		if err := os.WriteFile(out, append(payload, '\n'), 0600); err != nil {
			logger.Fatalf("Failed to write output file: %v", err)
		}
		return
	}
	fmt.Println(string(payload))
}
