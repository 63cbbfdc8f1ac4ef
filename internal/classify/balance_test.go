package classify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keutrack-dev/keutrack/internal/model"
)

func kasAccount(balance float64) model.Account {
	return model.Account{ID: 1, Name: "Kas", Code: "1001", Balance: balance}
}

func utangAccount() model.Account {
	return model.Account{ID: 2, Name: "Utang Usaha", Code: "2101"}
}

func TestBalance_DebitNormal(t *testing.T) {
	account := kasAccount(1000)
	txns := []model.Transaction{
		{ID: 1, DebitAccountID: 1, CreditAccountID: 9, Amount: 500},
		{ID: 2, DebitAccountID: 9, CreditAccountID: 1, Amount: 200},
	}
	assert.Equal(t, 1300.0, Balance(account, txns))
}

func TestBalance_CreditNormal(t *testing.T) {
	account := utangAccount()

	debit := []model.Transaction{{ID: 1, DebitAccountID: 2, CreditAccountID: 9, Amount: 300}}
	assert.Equal(t, -300.0, Balance(account, debit))

	credit := []model.Transaction{{ID: 1, DebitAccountID: 9, CreditAccountID: 2, Amount: 300}}
	assert.Equal(t, 300.0, Balance(account, credit))
}

func TestBalance_SkipsInvalidAmounts(t *testing.T) {
	account := kasAccount(1000)
	txns := []model.Transaction{
		{ID: 1, DebitAccountID: 1, CreditAccountID: 9, Amount: 0},
		{ID: 2, DebitAccountID: 1, CreditAccountID: 9, Amount: math.NaN()},
		{ID: 3, DebitAccountID: 1, CreditAccountID: 9, Amount: math.Inf(1)},
		{ID: 4, DebitAccountID: 1, CreditAccountID: 9, Amount: math.Inf(-1)},
	}
	assert.Equal(t, 1000.0, Balance(account, txns))
}

func TestBalance_InvalidOpeningBalance(t *testing.T) {
	account := kasAccount(math.NaN())
	txns := []model.Transaction{
		{ID: 1, DebitAccountID: 1, CreditAccountID: 9, Amount: 250},
	}
	assert.Equal(t, 250.0, Balance(account, txns))

	account = kasAccount(math.Inf(1))
	assert.Equal(t, 250.0, Balance(account, txns))
}

func TestBalance_MissingAccount(t *testing.T) {
	assert.Equal(t, 0.0, Balance(model.Account{}, nil))
	assert.Equal(t, 0.0, Balance(model.Account{ID: 7, Balance: 100}, nil))
}

func TestBalance_SelfReferencingTransaction(t *testing.T) {
	// Both legs hit the same account; the adjustments cancel.
	account := kasAccount(1000)
	txns := []model.Transaction{
		{ID: 1, DebitAccountID: 1, CreditAccountID: 1, Amount: 400},
	}
	assert.Equal(t, 1000.0, Balance(account, txns))
}

func TestBalance_UnrelatedTransactions(t *testing.T) {
	account := kasAccount(50)
	txns := []model.Transaction{
		{ID: 1, DebitAccountID: 8, CreditAccountID: 9, Amount: 700},
	}
	assert.Equal(t, 50.0, Balance(account, txns))
}

func TestBalance_NonFiniteResultDegradesToZero(t *testing.T) {
	account := kasAccount(math.MaxFloat64)
	txns := []model.Transaction{
		{ID: 1, DebitAccountID: 1, CreditAccountID: 9, Amount: math.MaxFloat64},
	}
	assert.Equal(t, 0.0, Balance(account, txns))
}

func TestBalance_OrderIrrelevant(t *testing.T) {
	account := kasAccount(100)
	txns := []model.Transaction{
		{ID: 1, DebitAccountID: 1, CreditAccountID: 9, Amount: 10},
		{ID: 2, DebitAccountID: 9, CreditAccountID: 1, Amount: 30},
		{ID: 3, DebitAccountID: 1, CreditAccountID: 9, Amount: 20},
	}
	reversed := []model.Transaction{txns[2], txns[1], txns[0]}
	assert.Equal(t, Balance(account, txns), Balance(account, reversed))
	assert.Equal(t, 100.0, Balance(account, txns))
}

func TestEffect(t *testing.T) {
	txn := model.Transaction{DebitAccountID: 1, CreditAccountID: 2, Amount: 100}

	assert.Equal(t, 100.0, Effect(model.NormalDebit, 1, txn))
	assert.Equal(t, -100.0, Effect(model.NormalDebit, 2, txn))
	assert.Equal(t, -100.0, Effect(model.NormalCredit, 1, txn))
	assert.Equal(t, 100.0, Effect(model.NormalCredit, 2, txn))
	assert.Equal(t, 0.0, Effect(model.NormalDebit, 3, txn))
}
