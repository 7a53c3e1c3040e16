// Package store handles batch file IO: plain-text sentence input and
// CSV output of parsed expense records.
package store

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/models"

	"github.com/gocarina/gocsv"
)

// participantSeparator joins participant names inside a single CSV cell.
const participantSeparator = ";"

// RecordRow is the flat CSV projection of an ExpenseRecord.
type RecordRow struct {
	Text         string `csv:"Text"`
	Desc         string `csv:"Description"`
	Amount       string `csv:"Amount"`
	Payer        string `csv:"Payer"`
	Participants string `csv:"Participants"`
	DateISO      string `csv:"Date"`
}

// NewRecordRow flattens a record for CSV output. Missing fields become
// empty cells.
func NewRecordRow(text string, record models.ExpenseRecord) RecordRow {
	row := RecordRow{
		Text:         text,
		Participants: strings.Join(record.Participants, participantSeparator),
	}
	if record.Desc != nil {
		row.Desc = *record.Desc
	}
	if record.Amount != nil {
		row.Amount = fmt.Sprintf("%.2f", *record.Amount)
	}
	if record.Payer != nil {
		row.Payer = *record.Payer
	}
	if record.DateISO != nil {
		row.DateISO = *record.DateISO
	}
	return row
}

// CSVStore reads sentence files and writes record CSVs.
type CSVStore struct {
	delimiter rune
	log       logging.Logger
}

// NewCSVStore creates a store writing CSV cells separated by delimiter.
func NewCSVStore(delimiter rune, logger logging.Logger) *CSVStore {
	return &CSVStore{delimiter: delimiter, log: logger}
}

// ReadSentences reads one sentence per line, skipping blank lines.
func (s *CSVStore) ReadSentences(path string) ([]string, error) {
	s.log.Info("reading sentence file", logging.Field{Key: "file", Value: path})

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sentence file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("failed to close file")
		}
	}()

	var sentences []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sentence file: %w", err)
	}

	s.log.Info("read sentences", logging.Field{Key: "count", Value: len(sentences)})
	return sentences, nil
}

// WriteRecords writes rows to csvFile, creating parent directories.
func (s *CSVStore) WriteRecords(rows []RecordRow, csvFile string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	s.log.Info("writing records to CSV file",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(rows)})

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = s.delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("writing CSV data: %w", err)
	}
	return nil
}

// ReadRecords reads a previously written record CSV back into rows.
func (s *CSVStore) ReadRecords(csvFile string) ([]RecordRow, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("failed to close file")
		}
	}()

	csvReader := csv.NewReader(file)
	csvReader.Comma = s.delimiter

	var rows []RecordRow
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		return nil, fmt.Errorf("parsing CSV file: %w", err)
	}
	return rows, nil
}
