package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleInventoryCSV = `product_id,product_name,quantity,unit_price,threshold
PROD001,Notebook PC,150,150000.0,10
PROD002,Mouse,500,2500.0,50
`

const sampleTransactionsCSV = `product_id,type,quantity
PROD001,ADD,20
PROD002,SUB,100
`

func TestLoadProducts(t *testing.T) {
	products, err := LoadProducts(strings.NewReader(sampleInventoryCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	p := products[0]
	if p.ProductID != "PROD001" || p.ProductName != "Notebook PC" ||
		p.Quantity != 150 || p.UnitPrice != 150000.0 || p.Threshold != 10 {
		t.Errorf("unexpected first product %+v", p)
	}
}

func TestLoadProducts_ColumnOrderIndependent(t *testing.T) {
	csv := `threshold,product_id,unit_price,product_name,quantity
10,PROD001,150000.0,Notebook PC,150
`
	products, err := LoadProducts(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products[0].ProductID != "PROD001" || products[0].Threshold != 10 {
		t.Errorf("unexpected product %+v", products[0])
	}
}

func TestLoadProducts_Malformed(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "bad quantity",
			csv:  "product_id,product_name,quantity,unit_price,threshold\nP1,Thing,abc,10.0,1\n",
		},
		{
			name: "bad unit_price",
			csv:  "product_id,product_name,quantity,unit_price,threshold\nP1,Thing,5,notaprice,1\n",
		},
		{
			name: "bad threshold",
			csv:  "product_id,product_name,quantity,unit_price,threshold\nP1,Thing,5,10.0,x\n",
		},
		{
			name: "missing column",
			csv:  "product_id,product_name,quantity\nP1,Thing,5\n",
		},
		{
			name: "empty input",
			csv:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadProducts(strings.NewReader(tt.csv)); err == nil {
				t.Error("expected a hard error, got nil")
			}
		})
	}
}

func TestLoadProducts_DuplicateIDsKept(t *testing.T) {
	csv := `product_id,product_name,quantity,unit_price,threshold
DUP,first,1,1.0,0
DUP,second,2,2.0,0
`
	products, err := LoadProducts(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected duplicates preserved, got %d products", len(products))
	}
}

func TestLoadTransactions(t *testing.T) {
	txs, err := LoadTransactions(strings.NewReader(sampleTransactionsCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].ProductID != "PROD001" || txs[0].Type != "ADD" || txs[0].Quantity != 20 {
		t.Errorf("unexpected first transaction %+v", txs[0])
	}
	if txs[1].Type != "SUB" || txs[1].Quantity != 100 {
		t.Errorf("unexpected second transaction %+v", txs[1])
	}
}

func TestLoadTransactions_UnknownTypePasses(t *testing.T) {
	// Type validation belongs to the processor, not the loader.
	csv := "product_id,type,quantity\nP1,XXX,5\n"
	txs, err := LoadTransactions(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txs[0].Type != "XXX" {
		t.Errorf("expected type passed through, got %q", txs[0].Type)
	}
}

func TestLoadTransactions_Malformed(t *testing.T) {
	csv := "product_id,type,quantity\nP1,ADD,many\n"
	if _, err := LoadTransactions(strings.NewReader(csv)); err == nil {
		t.Error("expected a hard error, got nil")
	}
}

func TestLoadProductsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.csv")
	if err := os.WriteFile(path, []byte(sampleInventoryCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	products, err := LoadProductsFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
}

func TestLoadProductsFile_Missing(t *testing.T) {
	if _, err := LoadProductsFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
