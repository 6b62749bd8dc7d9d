package handlers

import (
	"log"
	"net/http"

	"github.com/rogerio-castellano/stock-ledger/internal/csvio"
	"github.com/rogerio-castellano/stock-ledger/internal/models"
)

// ApplyTransactionHandler godoc
// @Summary Apply one stock movement
// @Description Applies an ADD or SUB transaction to the ledger. Business-rule
// @Description failures come back as success=false in the payload, not as an
// @Description error status.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body TransactionRequest true "Movement to apply"
// @Success 200 {object} models.TransactionResult
// @Failure 400 {string} string "Invalid input"
// @Router /transactions [post]
func ApplyTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	tx := models.Transaction{ProductID: req.ProductID, Type: req.Type, Quantity: req.Quantity}

	mu.Lock()
	result := ldg.ProcessTransaction(tx)
	var lowStock bool
	if product, ok := ldg.FindProduct(tx.ProductID); ok {
		lowStock = product.LowStock()
	}
	mu.Unlock()

	if result.Success && lowStock {
		log.Printf("⚠️ ALERT: Product %s is at or below threshold after %s", tx.ProductID, tx.Type)
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}

// ImportTransactionsHandler godoc
// @Summary Apply a batch of stock movements via CSV
// @Description Parses a transactions CSV (product_id,type,quantity) and applies
// @Description each row in order against the ledger. A malformed row rejects
// @Description the whole file before anything is applied.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportTransactionsResult
// @Failure 400 {string} string "Invalid file"
// @Router /transactions/import [post]
func ImportTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	txs, err := csvio.LoadTransactions(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mu.Lock()
	results := ldg.ProcessAll(txs)
	mu.Unlock()

	applied := 0
	for _, res := range results {
		if res.Success {
			applied++
		}
	}

	if err := writeJSON(w, http.StatusOK, ImportTransactionsResult{Applied: applied, Results: results}); err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}
