package handlers

import (
	"sync"

	"github.com/rogerio-castellano/stock-ledger/internal/ledger"
)

// The ledger itself is single-caller by contract, so every handler touch goes
// through one exclusive lock.
var (
	ldg *ledger.Ledger
	mu  sync.Mutex

	adminUsername     string
	adminPasswordHash string
)

// SetLedger installs the ledger instance served by the handlers.
func SetLedger(l *ledger.Ledger) {
	mu.Lock()
	defer mu.Unlock()
	ldg = l
}

// SetCredentials installs the admin login accepted by LoginHandler. The hash
// is a bcrypt digest.
func SetCredentials(username, passwordHash string) {
	adminUsername = username
	adminPasswordHash = passwordHash
}
