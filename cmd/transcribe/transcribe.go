// Package transcribe handles one-shot transcription of an audio file
package transcribe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"fjacquet/expense-parse/cmd/root"
	"fjacquet/expense-parse/internal/transcribe"

	"github.com/spf13/cobra"
)

var parseAfter bool

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe [audio-file]",
	Short: "Transcribe an audio clip to text",
	Long: `Transcribe an audio file to text using the configured whisper binary.
With --parse the transcript is additionally run through the extraction
pipeline and printed as an expense record.

Example:
  expense-parse transcribe -i clip.webm --parse`,
	Run: transcribeFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&parseAfter, "parse", "p", false, "Parse the transcript into an expense record")
}

func transcribeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	audioFile := root.SharedFlags.Input
	if audioFile == "" && len(args) > 0 {
		audioFile = args[0]
	}
	if audioFile == "" {
		logger.Fatal("An audio file must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	tr := appContainer.GetTranscriber()
	if !tr.Available() {
		logger.Fatal("Transcription binary not found, check transcribe.binary in the configuration")
	}

	audio, err := os.ReadFile(audioFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.Fatalf("Failed to read audio file: %v", err)
	}

	text, err := tr.Transcribe(cmd.Context(), audio, audioFile)
	if err != nil {
		if errors.Is(err, transcribe.ErrUnavailable) {
			logger.Fatal("Transcription unavailable")
		}
		logger.Fatalf("Failed to transcribe audio: %v", err)
	}

	if !parseAfter {
		fmt.Println(text)
		return
	}

	record, err := appContainer.GetExtractor().Extract(cmd.Context(), text)
	if err != nil {
		logger.Fatalf("Failed to parse transcript: %v", err)
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		logger.Fatalf("Failed to encode record: %v", err)
	}
	fmt.Println(string(payload))
}
