package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/stock-ledger/internal/auth"
	api "github.com/rogerio-castellano/stock-ledger/internal/http"
	handler "github.com/rogerio-castellano/stock-ledger/internal/http/handlers"
	rl "github.com/rogerio-castellano/stock-ledger/internal/http/rate_limiter"
	"github.com/rogerio-castellano/stock-ledger/internal/ledger"
	"github.com/rogerio-castellano/stock-ledger/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var token string

func init() {
	// Every httptest request comes from the same remote address, so the
	// per-visitor limiter has to be effectively off.
	rl.Configure(10000, 10000)
	auth.SetSecret("test-secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	handler.SetCredentials("admin", string(hash))
	resetLedger()

	r := api.NewRouter()
	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func resetLedger() {
	handler.SetLedger(ledger.New([]models.Product{
		{ProductID: "PROD001", ProductName: "Notebook PC", Quantity: 150, UnitPrice: 150000.0, Threshold: 10},
		{ProductID: "PROD002", ProductName: "Mouse", Quantity: 500, UnitPrice: 2500.0, Threshold: 50},
		{ProductID: "PROD003", ProductName: "Keyboard", Quantity: 300, UnitPrice: 4500.0, Threshold: 30},
		{ProductID: "PROD004", ProductName: "Monitor", Quantity: 20, UnitPrice: 35000.0, Threshold: 5},
		{ProductID: "PROD005", ProductName: "USB Cable", Quantity: 1000, UnitPrice: 800.0, Threshold: 100},
	}))
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func applyTransaction(r http.Handler, tx handler.TransactionRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(tx)
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func importTransactionsCSV(r http.Handler, csv string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "transactions.csv")
	fmt.Fprint(part, csv)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/transactions/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getJSON(r http.Handler, path string, out any) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			return w, err
		}
	}
	return w, nil
}
