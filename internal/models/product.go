package models

// Product represents one stock-keeping entry in the ledger.
type Product struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Threshold   int     `json:"threshold"`
}

// LowStock reports whether the product sits at or below its threshold.
func (p Product) LowStock() bool {
	return p.Quantity <= p.Threshold
}
