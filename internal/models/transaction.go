package models

// Transaction types. Anything else is rejected by the processor.
const (
	TypeAdd = "ADD"
	TypeSub = "SUB"
)

// Transaction is a requested stock movement against one product.
type Transaction struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
}

// TransactionResult is the outcome of applying one transaction.
type TransactionResult struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
}
