package ledger

import (
	"fmt"

	"github.com/rogerio-castellano/stock-ledger/internal/models"
)

// ProcessTransaction applies one transaction to the ledger and reports the
// outcome. Business-rule failures (unknown product, insufficient stock,
// invalid type) come back as Success=false results, never as errors.
func (l *Ledger) ProcessTransaction(tx models.Transaction) models.TransactionResult {
	result := models.TransactionResult{
		ProductID: tx.ProductID,
		Type:      tx.Type,
		Quantity:  tx.Quantity,
	}

	switch tx.Type {
	case models.TypeAdd:
		if l.AddStock(tx.ProductID, tx.Quantity) {
			result.Success = true
			result.Message = fmt.Sprintf("Stock in:  %s +%d", tx.ProductID, tx.Quantity)
		} else {
			result.Message = fmt.Sprintf("ERROR: Product not found %s", tx.ProductID)
		}
	case models.TypeSub:
		// Look the product up directly so not-found and insufficient-stock
		// failures stay distinguishable in the message.
		product, ok := l.FindProduct(tx.ProductID)
		switch {
		case !ok:
			result.Message = fmt.Sprintf("ERROR: Product not found %s", tx.ProductID)
		case product.Quantity < tx.Quantity:
			result.Message = fmt.Sprintf("ERROR: Insufficient stock %s", tx.ProductID)
		default:
			l.RemoveStock(tx.ProductID, tx.Quantity)
			result.Success = true
			result.Message = fmt.Sprintf("Stock out: %s -%d", tx.ProductID, tx.Quantity)
		}
	default:
		result.Message = fmt.Sprintf("ERROR: Invalid type %s", tx.Type)
	}

	return result
}

// ProcessAll applies the transactions in order against the same ledger,
// returning one result per input. Later transactions see the effects of
// earlier ones; a failure does not roll back or block the rest.
func (l *Ledger) ProcessAll(txs []models.Transaction) []models.TransactionResult {
	results := make([]models.TransactionResult, 0, len(txs))
	for _, tx := range txs {
		results = append(results, l.ProcessTransaction(tx))
	}
	return results
}
