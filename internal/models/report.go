package models

// Alert flags a product whose quantity has reached its threshold.
type Alert struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Threshold   int    `json:"threshold"`
}

// ReportItem is the per-product valuation snapshot inside a report.
type ReportItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ItemValue   float64 `json:"item_value"`
}

// Report is a derived snapshot of the whole ledger. It holds no reference
// back to the ledger and is recomputed on demand.
type Report struct {
	ItemCount  int          `json:"item_count"`
	Items      []ReportItem `json:"items"`
	TotalValue float64      `json:"total_value"`
	Alerts     []Alert      `json:"alerts"`
}
