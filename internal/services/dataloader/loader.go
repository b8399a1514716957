// Package dataloader turns uploaded spreadsheets into canonical transactions.
// It normalizes the heterogeneous column names of bank exports onto a fixed
// schema and builds one Transaction per row.
package dataloader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"finsight/internal/models"
)

// columnMappings lists the accepted header spellings for each canonical
// field, in priority order. The first spelling found among the actual
// headers wins; fields with no match are left absent and defaulted later.
var columnMappings = map[string][]string{
	"amount":      {"amount", "Amount", "AMOUNT", "transaction_amount", "value"},
	"description": {"description", "Description", "DESCRIPTION", "memo", "details"},
	"date":        {"date", "Date", "DATE", "transaction_date", "posted_date"},
	"category":    {"category", "Category", "CATEGORY", "type"},
	"merchant":    {"merchant", "Merchant", "MERCHANT", "payee", "vendor"},
}

// Table is a parsed spreadsheet: one header row plus data rows.
// Rows may be ragged; missing cells read as empty strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadCSV parses the CSV file at path into a Table
func ReadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row: %w", err)
		}
		rows = append(rows, record)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// ReadWorkbook parses the first sheet of an Excel workbook into a Table.
// Only the modern xlsx container is readable; legacy xls files fail at open.
func ReadWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// buildColumnIndex maps each canonical field to its column position.
// For every canonical field the accepted spellings are checked in list
// order against the actual headers; the first spelling present wins.
func buildColumnIndex(header []string) map[string]int {
	headerIndex := make(map[string]int)
	for i, col := range header {
		col = strings.TrimSpace(col)
		if _, exists := headerIndex[col]; !exists {
			headerIndex[col] = i
		}
	}

	colIndex := make(map[string]int)
	for canonical, variants := range columnMappings {
		for _, variant := range variants {
			if idx, ok := headerIndex[variant]; ok {
				colIndex[canonical] = idx
				break
			}
		}
	}
	return colIndex
}

// cell returns the trimmed value of the canonical field in a row, or ""
// when the column is absent or the row is too short
func cell(row []string, colIndex map[string]int, field string) string {
	idx, ok := colIndex[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseAmount coerces an amount string to a float. Currency symbols,
// thousands separators, and accounting-style parentheses are stripped
// first. An empty string coerces to 0; anything else that fails to parse
// is an error and aborts the whole upload.
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, nil
	}

	// (100.00) -> -100.00
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("could not convert %q to a number", s)
	}
	return d.InexactFloat64(), nil
}

// BuildTransactions converts every row of a table into a canonical
// transaction, in original row order. Any row-level failure aborts the
// whole batch; the caller keeps its prior state.
func BuildTransactions(table *Table) ([]models.Transaction, error) {
	colIndex := buildColumnIndex(table.Header)
	today := time.Now().Format("2006-01-02")

	transactions := make([]models.Transaction, 0, len(table.Rows))
	for i, row := range table.Rows {
		raw, err := parseAmount(cell(row, colIndex, "amount"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		// The sign is read before the absolute value is taken; zero or
		// missing amounts classify as income.
		txType := models.Income
		if raw < 0 {
			txType = models.Expense
		}

		description := cell(row, colIndex, "description")
		if description == "" {
			description = "Unknown"
		}

		category := strings.ToLower(cell(row, colIndex, "category"))
		if category == "" {
			category = "other"
		}

		date := cell(row, colIndex, "date")
		if date == "" {
			date = today
		}

		transactions = append(transactions, models.Transaction{
			ID:          strconv.Itoa(i + 1),
			Amount:      abs(raw),
			Description: description,
			Category:    category,
			Type:        txType,
			Date:        date,
			Merchant:    cell(row, colIndex, "merchant"),
		})
	}

	return transactions, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
