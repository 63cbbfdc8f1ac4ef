package model

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionUnmarshal_Canonical(t *testing.T) {
	data := `{
		"id": 7,
		"debit_account_id": 1,
		"credit_account_id": 2,
		"amount": 150.5,
		"description": "Pembelian perlengkapan",
		"transaction_date": "2025-03-14"
	}`
	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &txn))

	assert.Equal(t, int64(7), txn.ID)
	assert.Equal(t, int64(1), txn.DebitAccountID)
	assert.Equal(t, int64(2), txn.CreditAccountID)
	assert.Equal(t, 150.5, txn.Amount)
	assert.Equal(t, "Pembelian perlengkapan", txn.Description)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), txn.Date)
}

func TestTransactionUnmarshal_CamelCreditField(t *testing.T) {
	data := `{"id": 1, "debit_account_id": 1, "creditAccountId": 5, "amount": 10}`
	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &txn))
	assert.Equal(t, int64(5), txn.CreditAccountID)
}

func TestTransactionUnmarshal_SnakeCreditFieldWins(t *testing.T) {
	data := `{"credit_account_id": 3, "creditAccountId": 5, "amount": 10}`
	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &txn))
	assert.Equal(t, int64(3), txn.CreditAccountID)
}

func TestTransactionUnmarshal_NominalField(t *testing.T) {
	data := `{"debit_account_id": 1, "credit_account_id": 2, "nominal": 75}`
	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &txn))
	assert.Equal(t, 75.0, txn.Amount)
}

func TestTransactionUnmarshal_AmountFieldWins(t *testing.T) {
	data := `{"amount": 20, "nominal": 75}`
	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &txn))
	assert.Equal(t, 20.0, txn.Amount)
}

func TestTransactionUnmarshal_StringAmount(t *testing.T) {
	data := `{"amount": "42.25"}`
	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &txn))
	assert.Equal(t, 42.25, txn.Amount)
}

func TestTransactionUnmarshal_MalformedAmountBecomesNaN(t *testing.T) {
	data := `{"amount": "not a number"}`
	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &txn))
	assert.True(t, math.IsNaN(txn.Amount))
}

func TestTransactionUnmarshal_MissingAmountIsZero(t *testing.T) {
	data := `{"debit_account_id": 1}`
	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &txn))
	assert.Equal(t, 0.0, txn.Amount)
}

func TestTransactionUnmarshal_DateFallbacks(t *testing.T) {
	var txn Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"date": "2025-01-02"}`), &txn))
	assert.Equal(t, 2025, txn.Date.Year())

	require.NoError(t, json.Unmarshal([]byte(`{"transaction_date": "garbage"}`), &txn))
	assert.True(t, txn.Date.IsZero())
}

func TestTransactionMarshal_CanonicalFields(t *testing.T) {
	txn := Transaction{
		DebitAccountID:  1,
		CreditAccountID: 2,
		Amount:          100,
		Description:     "Setoran modal",
		Date:            time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(txn)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, float64(2), m["credit_account_id"])
	assert.Equal(t, "2025-05-01", m["transaction_date"])
	assert.NotContains(t, m, "creditAccountId")
	assert.NotContains(t, m, "nominal")
}
