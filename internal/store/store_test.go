package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(delimiter rune) *CSVStore {
	return NewCSVStore(delimiter, logging.NewLogrusAdapter("error", "text"))
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestNewRecordRow(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		record   models.ExpenseRecord
		expected RecordRow
	}{
		{
			name: "full record",
			text: "Alice paid 450 for dinner with Bob and Carol",
			record: models.ExpenseRecord{
				Desc:         strPtr("dinner with Bob and Carol"),
				Amount:       floatPtr(450),
				Payer:        strPtr("Alice"),
				Participants: []string{"Bob", "Carol"},
				DateISO:      strPtr("2024-03-14"),
			},
			expected: RecordRow{
				Text:         "Alice paid 450 for dinner with Bob and Carol",
				Desc:         "dinner with Bob and Carol",
				Amount:       "450.00",
				Payer:        "Alice",
				Participants: "Bob;Carol",
				DateISO:      "2024-03-14",
			},
		},
		{
			name:   "empty record",
			text:   "gibberish",
			record: models.EmptyExpenseRecord(),
			expected: RecordRow{
				Text: "gibberish",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewRecordRow(tt.text, tt.record))
		})
	}
}

func TestReadSentences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentences.txt")
	content := "Alice paid 450 for dinner\n\n  \nBob paid 20 for coffee\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	sentences, err := testStore(',').ReadSentences(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Alice paid 450 for dinner",
		"Bob paid 20 for coffee",
	}, sentences)
}

func TestReadSentencesMissingFile(t *testing.T) {
	_, err := testStore(',').ReadSentences(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWriteAndReadRecords(t *testing.T) {
	store := testStore(';')
	path := filepath.Join(t.TempDir(), "out", "records.csv")

	rows := []RecordRow{
		NewRecordRow("Alice paid 450 for dinner with Bob", models.ExpenseRecord{
			Desc:         strPtr("dinner with Bob"),
			Amount:       floatPtr(450),
			Payer:        strPtr("Alice"),
			Participants: []string{"Bob"},
			DateISO:      strPtr("2024-03-14"),
		}),
	}
	require.NoError(t, store.WriteRecords(rows, path))

	read, err := store.ReadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, rows, read)
}

func TestWriteRecordsNil(t *testing.T) {
	err := testStore(',').WriteRecords(nil, filepath.Join(t.TempDir(), "records.csv"))
	assert.Error(t, err)
}
