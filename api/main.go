package main

import (
	"log"
	"net/http"

	"github.com/rogerio-castellano/stock-ledger/internal/auth"
	"github.com/rogerio-castellano/stock-ledger/internal/config"
	"github.com/rogerio-castellano/stock-ledger/internal/csvio"
	api "github.com/rogerio-castellano/stock-ledger/internal/http"
	"github.com/rogerio-castellano/stock-ledger/internal/http/handlers"
	rl "github.com/rogerio-castellano/stock-ledger/internal/http/rate_limiter"
	"github.com/rogerio-castellano/stock-ledger/internal/ledger"
)

// @title Stock Ledger API
// @version 1.0
// @description REST API over an in-memory inventory ledger: stock movements, low-stock alerts and valuation reports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("❌ Could not load config: %v", err)
	}

	auth.SetSecret(cfg.Auth.JWTSecret)
	if cfg.Auth.AdminPasswordHash == "" {
		log.Println("⚠️ No admin password hash configured; mutating endpoints will reject every login")
	}
	handlers.SetCredentials(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash)

	rl.Configure(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go rl.StartVisitorCleanupLoop()

	products, err := csvio.LoadProductsFile(cfg.Data.InventoryFile)
	if err != nil {
		log.Fatalf("❌ Could not load inventory: %v", err)
	}
	handlers.SetLedger(ledger.New(products))
	log.Printf("Inventory loaded: %d items", len(products))

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatal(err)
	}
}
