package ledger

import (
	"github.com/rogerio-castellano/stock-ledger/internal/models"
)

// CheckLowStock returns one alert per product at or below its threshold, in
// ledger order. The result is empty, not nil, when nothing qualifies.
func (l *Ledger) CheckLowStock() []models.Alert {
	alerts := []models.Alert{}
	for _, p := range l.products {
		if p.Quantity <= p.Threshold {
			alerts = append(alerts, models.Alert{
				ProductID:   p.ProductID,
				ProductName: p.ProductName,
				Quantity:    p.Quantity,
				Threshold:   p.Threshold,
			})
		}
	}
	return alerts
}

// InventoryValue returns the sum of quantity * unit_price over all products.
func (l *Ledger) InventoryValue() float64 {
	var total float64
	for _, p := range l.products {
		total += float64(p.Quantity) * p.UnitPrice
	}
	return total
}

// GenerateReport builds a full snapshot of the ledger: every item with its
// computed value, the total, and the current low-stock alerts. It reads the
// ledger and mutates nothing.
func (l *Ledger) GenerateReport() models.Report {
	report := models.Report{
		ItemCount: len(l.products),
		Items:     make([]models.ReportItem, 0, len(l.products)),
	}

	for _, p := range l.products {
		report.Items = append(report.Items, models.ReportItem{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			ItemValue:   float64(p.Quantity) * p.UnitPrice,
		})
	}

	report.TotalValue = l.InventoryValue()
	report.Alerts = l.CheckLowStock()
	return report
}
