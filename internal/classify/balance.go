package classify

import (
	"math"

	"github.com/keutrack-dev/keutrack/internal/model"
)

// Balance folds a list of ledger transactions into the final signed
// balance of one account, consistent with the account's normal balance
// side. Transaction order is irrelevant.
//
// Degraded input never errors: a missing account name yields 0, a
// non-finite opening balance counts as 0, transactions with a zero,
// NaN or infinite amount are skipped, and a non-finite accumulated
// result collapses to 0.
func Balance(account model.Account, transactions []model.Transaction) float64 {
	if account.Name == "" {
		return 0
	}

	normal := Classify(account.Name, account.Code).NormalBalance

	balance := account.Balance
	if !isFinite(balance) {
		balance = 0
	}

	for _, txn := range transactions {
		balance += Effect(normal, account.ID, txn)
	}

	if !isFinite(balance) {
		return 0
	}
	return balance
}

// Effect returns the signed contribution of a single transaction to an
// account with the given normal balance side. A transaction that
// references the account on both legs contributes through both; the
// two adjustments cancel for any amount.
func Effect(normal model.NormalBalance, accountID int64, txn model.Transaction) float64 {
	amount := txn.Amount
	if amount == 0 || !isFinite(amount) {
		return 0
	}

	var effect float64
	if txn.DebitAccountID == accountID {
		if normal == model.NormalDebit {
			effect += amount
		} else {
			effect -= amount
		}
	}
	if txn.CreditAccountID == accountID {
		if normal == model.NormalDebit {
			effect -= amount
		} else {
			effect += amount
		}
	}
	return effect
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
