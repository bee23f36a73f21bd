// internal/pipeline/account_mapping.go
package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/territoryiq/backend-go/internal/domain"
)

// Account-mapping file column headers.
const (
	colMappingDealerName    = "Customer - Parent  Account"
	colMappingAccountNumber = "Customer - Account  Number"
	colMappingBuyingGroup   = "Buying Group"
	colMappingEWProgram     = "EW Program"
)

// ParseAccountMapping reads the dealer list CSV. Rows missing the dealer name
// or account number are counted as errors and skipped; everything else is
// returned as an identity row ready for upsert.
func ParseAccountMapping(r io.Reader) ([]domain.DealerIdentity, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colMap := make(map[string]int, len(header))
	for i, col := range header {
		colMap[col] = i
	}
	for _, required := range []string{colMappingDealerName, colMappingAccountNumber} {
		if _, ok := colMap[required]; !ok {
			return nil, 0, fmt.Errorf("account mapping missing required column %q", required)
		}
	}

	var (
		rows    []domain.DealerIdentity
		skipped int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("error reading record: %w", err)
		}

		name := strings.TrimSpace(field(record, colMap, colMappingDealerName))
		account := strings.TrimSpace(field(record, colMap, colMappingAccountNumber))
		if name == "" || account == "" {
			skipped++
			continue
		}

		rows = append(rows, domain.DealerIdentity{
			DealerName:    name,
			AccountNumber: account,
			BuyingGroup:   optionalField(record, colMap, colMappingBuyingGroup),
			EWProgram:     optionalField(record, colMap, colMappingEWProgram),
		})
	}

	return rows, skipped, nil
}

func optionalField(record []string, colMap map[string]int, name string) *string {
	v := strings.TrimSpace(field(record, colMap, name))
	if v == "" {
		return nil
	}
	return &v
}
