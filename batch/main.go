package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rogerio-castellano/stock-ledger/internal/config"
	"github.com/rogerio-castellano/stock-ledger/internal/csvio"
	"github.com/rogerio-castellano/stock-ledger/internal/ledger"
	"github.com/rogerio-castellano/stock-ledger/internal/report"
)

// One-shot run: load the inventory, apply the transaction batch, print the
// alerts, write the report.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("❌ Could not load config: %v", err)
	}

	products, err := csvio.LoadProductsFile(cfg.Data.InventoryFile)
	if err != nil {
		log.Fatalf("❌ Could not load inventory: %v", err)
	}
	l := ledger.New(products)
	fmt.Printf("Inventory loaded: %d items\n", l.Len())

	if _, err := os.Stat(cfg.Data.TransactionsFile); err == nil {
		txs, err := csvio.LoadTransactionsFile(cfg.Data.TransactionsFile)
		if err != nil {
			log.Fatalf("❌ Could not load transactions: %v", err)
		}
		for _, result := range l.ProcessAll(txs) {
			fmt.Println(result.Message)
		}
	}

	alerts := l.CheckLowStock()
	for _, alert := range alerts {
		fmt.Printf("ALERT: Low stock - %s qty=%d threshold=%d\n",
			alert.ProductName, alert.Quantity, alert.Threshold)
	}
	fmt.Printf("Low stock alerts: %d items\n", len(alerts))

	if err := report.Write(cfg.Report.OutputFile, l.GenerateReport()); err != nil {
		log.Fatalf("❌ Could not write report: %v", err)
	}
	fmt.Printf("Report generated: %s\n", cfg.Report.OutputFile)
}
