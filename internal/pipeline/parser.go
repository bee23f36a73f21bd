// internal/pipeline/parser.go
package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sales report column headers as exported by the vendor. The double spaces
// are part of the export format.
const (
	colDealerName   = "Customer - Parent  Account"
	colProductGroup = "Product Group - C O L0"
	colValue        = "Value"
	colQuantity     = "Quantity"
	colCount        = "Count"
)

// SalesLine is one typed row of the monthly sales report.
type SalesLine struct {
	DealerName   string
	ProductGroup string
	Value        float64
	Quantity     float64
	Orders       int
}

// parseAmount parses a currency or quantity cell. Thousands separators are
// stripped first; empty or malformed cells yield 0 rather than an error so a
// single bad cell never aborts the batch.
func parseAmount(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseCount parses an order-count cell with the same tolerance as parseAmount.
func parseCount(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ParseSalesReport reads a monthly sales CSV into typed lines. Rows missing a
// dealer name or product group are skipped. A missing required header or an
// unreadable file is a structural failure and aborts the whole batch.
func ParseSalesReport(r io.Reader) ([]SalesLine, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colMap := make(map[string]int, len(header))
	for i, col := range header {
		colMap[col] = i
	}
	for _, required := range []string{colDealerName, colProductGroup, colValue} {
		if _, ok := colMap[required]; !ok {
			return nil, fmt.Errorf("sales report missing required column %q", required)
		}
	}

	var lines []SalesLine
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}

		name := strings.TrimSpace(field(record, colMap, colDealerName))
		group := strings.TrimSpace(field(record, colMap, colProductGroup))
		if name == "" || group == "" {
			continue
		}

		lines = append(lines, SalesLine{
			DealerName:   name,
			ProductGroup: group,
			Value:        parseAmount(field(record, colMap, colValue)),
			Quantity:     parseAmount(field(record, colMap, colQuantity)),
			Orders:       parseCount(field(record, colMap, colCount)),
		})
	}

	return lines, nil
}

func field(record []string, colMap map[string]int, name string) string {
	idx, ok := colMap[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}
