package transcribe

import (
	"context"
	"testing"

	"fjacquet/expense-parse/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWhisperCLIMissingBinary(t *testing.T) {
	logger := logging.NewLogrusAdapter("error", "text")
	w := NewWhisperCLI("definitely-not-a-real-binary-3141", "", "en", logger)

	assert.False(t, w.Available())

	_, err := w.Transcribe(context.Background(), []byte{0x01}, "clip.webm")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTranscribeRejectsEmptyClip(t *testing.T) {
	logger := logging.NewLogrusAdapter("error", "text")
	w := &WhisperCLI{binary: "true", available: true, log: logger}

	_, err := w.Transcribe(context.Background(), nil, "clip.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty clip")
}

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		name     string
		cli      *WhisperCLI
		expected []string
	}{
		{
			name:     "model and language",
			cli:      &WhisperCLI{model: "base.en", language: "en"},
			expected: []string{"-np", "-nt", "-m", "base.en", "-l", "en", "-f", "/tmp/clip.webm"},
		},
		{
			name:     "defaults only",
			cli:      &WhisperCLI{},
			expected: []string{"-np", "-nt", "-f", "/tmp/clip.webm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cli.commandArgs("/tmp/clip.webm"))
		})
	}
}
