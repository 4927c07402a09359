package bank

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/quiz-night/backend/internal/models"
)

var requiredColumns = []string{
	"id", "question", "choice1", "choice2", "choice3", "choice4", "answer", "explanation",
}

// Load builds a bank from a tabular source, dispatching on file extension.
func Load(path string) (*Bank, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported quiz file type: %s", filepath.Ext(path))
	}
}

func LoadCSV(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("quiz file is empty: %s", filepath.Base(path))
	}
	return fromRows(records[0], records[1:])
}

func LoadXLSX(path string) (*Bank, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("quiz file is empty: %s", filepath.Base(path))
	}
	return fromRows(rows[0], rows[1:])
}

// fromRows validates the header, then every data row in source order. The
// first violation on a row rejects the entire source; a partially valid
// bank is never returned. Row order defines the bank's natural order.
func fromRows(header []string, rows [][]string) (*Bank, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	required := make(map[string]bool, len(requiredColumns))
	for _, name := range requiredColumns {
		required[name] = true
	}

	questions := make([]models.Question, 0, len(rows))
	for i, row := range rows {
		q, err := parseRow(cols, required, header, row)
		if err != nil {
			return nil, &RowError{Row: i + 1, Err: err}
		}
		questions = append(questions, q)
	}

	return New(questions)
}

func parseRow(cols map[string]int, required map[string]bool, header, row []string) (models.Question, error) {
	cell := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var q models.Question

	if q.ID = cell("id"); q.ID == "" {
		return q, fmt.Errorf("id is empty")
	}
	if q.Text = cell("question"); q.Text == "" {
		return q, fmt.Errorf("question is empty")
	}

	q.Choices = make([]string, 0, 4)
	for i := 1; i <= 4; i++ {
		name := fmt.Sprintf("choice%d", i)
		v := cell(name)
		if v == "" {
			return q, fmt.Errorf("%s is empty", name)
		}
		q.Choices = append(q.Choices, v)
	}

	raw := cell("answer")
	if raw == "" {
		return q, fmt.Errorf("answer is empty")
	}
	answer, err := parseAnswer(raw)
	if err != nil {
		return q, err
	}
	if answer < 1 || answer > 4 {
		return q, fmt.Errorf("answer must be between 1 and 4, got %d", answer)
	}
	q.Answer = answer

	if q.Explanation = cell("explanation"); q.Explanation == "" {
		return q, fmt.Errorf("explanation is empty")
	}

	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || required[name] || i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			if q.Extra == nil {
				q.Extra = make(map[string]string)
			}
			q.Extra[name] = v
		}
	}

	return q, nil
}

// parseAnswer accepts plain integers plus the "2.0" style rendering that
// spreadsheet numeric cells sometimes come back as.
func parseAnswer(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("answer %q is not an integer", raw)
	}
	return int(f), nil
}
