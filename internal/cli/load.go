package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/normalizer"
)

// readJSON decodes path into v. Numbers are kept as json.Number so ids and
// amounts reach the normalizer unchanged.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// loadTransactions reads an export of raw rows keyed by source slug and
// normalizes them. Sources are processed in registration order.
func loadTransactions(path string) ([]models.Transaction, error) {
	var bySource map[string][]models.RawRecord
	if err := readJSON(path, &bySource); err != nil {
		return nil, err
	}
	for slug := range bySource {
		if !models.IsValidSource(slug) {
			return nil, fmt.Errorf("%s: unknown source %q", path, slug)
		}
	}

	var txs []models.Transaction
	for _, slug := range models.Sources() {
		txs = append(txs, normalizer.NormalizeAll(slug, bySource[slug])...)
	}
	return txs, nil
}

func loadCategories(path string) ([]models.CategoryDefinition, error) {
	if path == "" {
		return nil, nil
	}
	var cats []models.CategoryDefinition
	if err := readJSON(path, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
