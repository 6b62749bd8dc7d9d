package handlers

import "github.com/rogerio-castellano/stock-ledger/internal/models"

type ProductResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Threshold   int     `json:"threshold"`
	LowStock    bool    `json:"low_stock"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Threshold:   p.Threshold,
		LowStock:    p.LowStock(),
	}
}

type TransactionRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
}

type ImportTransactionsResult struct {
	Applied int                        `json:"applied"`
	Results []models.TransactionResult `json:"results"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}
