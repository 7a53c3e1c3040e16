// Package transcribe turns short audio clips into text by shelling out
// to a local whisper.cpp style command line binary.
package transcribe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"fjacquet/expense-parse/internal/logging"
)

// ErrUnavailable is returned when no transcription binary was found at
// construction time. Callers can detect it to degrade gracefully.
var ErrUnavailable = errors.New("transcription backend unavailable")

// Transcriber converts raw audio bytes into plain text.
type Transcriber interface {
	// Available reports whether the backend can accept work.
	Available() bool
	// Transcribe converts the audio clip to text. filenameHint carries the
	// uploaded file name so the temp file keeps a meaningful extension.
	Transcribe(ctx context.Context, audio []byte, filenameHint string) (string, error)
}

// WhisperCLI runs a whisper command line binary on a temp file per clip.
type WhisperCLI struct {
	binary    string
	model     string
	language  string
	available bool
	log       logging.Logger
}

// NewWhisperCLI probes PATH for the configured binary once; the result is
// cached for the life of the process.
func NewWhisperCLI(binary, model, language string, logger logging.Logger) *WhisperCLI {
	w := &WhisperCLI{
		binary:   binary,
		model:    model,
		language: language,
		log:      logger,
	}
	if _, err := exec.LookPath(binary); err != nil {
		logger.Warn("transcription binary not found, /transcribe will be disabled",
			logging.Field{Key: "binary", Value: binary})
	} else {
		w.available = true
	}
	return w
}

// Available reports whether the binary was found on PATH at startup.
func (w *WhisperCLI) Available() bool {
	return w.available
}

// Transcribe writes the clip to a temp file, runs the binary on it and
// returns the trimmed stdout.
func (w *WhisperCLI) Transcribe(ctx context.Context, audio []byte, filenameHint string) (string, error) {
	if !w.available {
		return "", ErrUnavailable
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("transcribing audio: empty clip")
	}

	ext := filepath.Ext(filenameHint)
	if ext == "" {
		ext = ".webm"
	}
	tmp, err := os.CreateTemp("", "expense-clip-*"+ext)
	if err != nil {
		return "", fmt.Errorf("transcribing audio: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return "", fmt.Errorf("transcribing audio: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("transcribing audio: %w", err)
	}

	args := w.commandArgs(tmp.Name())
	cmd := exec.CommandContext(ctx, w.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	w.log.Debug("running transcription binary",
		logging.Field{Key: "binary", Value: w.binary},
		logging.Field{Key: "clip_bytes", Value: len(audio)})

	if err := cmd.Run(); err != nil {
		w.log.WithError(err).Error("transcription binary failed",
			logging.Field{Key: "stderr", Value: strings.TrimSpace(stderr.String())})
		return "", fmt.Errorf("transcribing audio: %w", err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (w *WhisperCLI) commandArgs(path string) []string {
	args := []string{"-np", "-nt"}
	if w.model != "" {
		args = append(args, "-m", w.model)
	}
	if w.language != "" {
		args = append(args, "-l", w.language)
	}
	return append(args, "-f", path)
}
