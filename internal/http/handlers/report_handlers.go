package handlers

import (
	"net/http"
)

// GetAlertsHandler godoc
// @Summary List products at or below their low-stock threshold
// @Tags alerts
// @Produce json
// @Success 200 {array} models.Alert
// @Router /alerts [get]
func GetAlertsHandler(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	alerts := ldg.CheckLowStock()
	mu.Unlock()

	if err := writeJSON(w, http.StatusOK, alerts); err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}

// GetReportHandler godoc
// @Summary Full valuation report of the current ledger
// @Tags report
// @Produce json
// @Success 200 {object} models.Report
// @Router /report [get]
func GetReportHandler(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	report := ldg.GenerateReport()
	mu.Unlock()

	if err := writeJSON(w, http.StatusOK, report); err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}
