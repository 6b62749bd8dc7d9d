// Package csvio loads product and transaction records from CSV. A malformed
// row fails the whole load; rows are never skipped.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/stock-ledger/internal/models"
)

var productColumns = []string{"product_id", "product_name", "quantity", "unit_price", "threshold"}

var transactionColumns = []string{"product_id", "type", "quantity"}

// readHeader maps lowercase column names to their positions and verifies
// every required column is present.
func readHeader(reader *csv.Reader, required []string) (map[string]int, error) {
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return index, nil
}

// LoadProducts reads product records from r, in input order. Duplicate ids
// are kept as-is.
func LoadProducts(r io.Reader) ([]models.Product, error) {
	reader := csv.NewReader(r)
	index, err := readHeader(reader, productColumns)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		row++

		quantity, err := strconv.Atoi(record[index["quantity"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity %q", row, record[index["quantity"]])
		}
		unitPrice, err := strconv.ParseFloat(record[index["unit_price"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid unit_price %q", row, record[index["unit_price"]])
		}
		threshold, err := strconv.Atoi(record[index["threshold"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid threshold %q", row, record[index["threshold"]])
		}

		products = append(products, models.Product{
			ProductID:   record[index["product_id"]],
			ProductName: record[index["product_name"]],
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Threshold:   threshold,
		})
	}
	return products, nil
}

// LoadTransactions reads transaction records from r, in input order. The type
// column is not validated here; the processor owns that rule.
func LoadTransactions(r io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	index, err := readHeader(reader, transactionColumns)
	if err != nil {
		return nil, err
	}

	var txs []models.Transaction
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		row++

		quantity, err := strconv.Atoi(record[index["quantity"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity %q", row, record[index["quantity"]])
		}

		txs = append(txs, models.Transaction{
			ProductID: record[index["product_id"]],
			Type:      record[index["type"]],
			Quantity:  quantity,
		})
	}
	return txs, nil
}

// LoadProductsFile loads product records from a CSV file on disk.
func LoadProductsFile(path string) ([]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer f.Close()
	return LoadProducts(f)
}

// LoadTransactionsFile loads transaction records from a CSV file on disk.
func LoadTransactionsFile(path string) ([]models.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions file: %w", err)
	}
	defer f.Close()
	return LoadTransactions(f)
}
