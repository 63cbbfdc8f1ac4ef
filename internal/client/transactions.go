package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/keutrack-dev/keutrack/internal/model"
)

// TransactionParams are the writable fields of a transaction.
type TransactionParams struct {
	DebitAccountID  int64   `json:"debit_account_id"`
	CreditAccountID int64   `json:"credit_account_id"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description,omitempty"`
	Date            string  `json:"transaction_date,omitempty"`
}

// Transactions returns all transactions.
func (c *Client) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := c.call(ctx, http.MethodGet, "/transactions", nil, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// CreateTransaction creates a transaction and returns the stored record.
func (c *Client) CreateTransaction(ctx context.Context, params TransactionParams) (model.Transaction, error) {
	var txn model.Transaction
	if err := c.call(ctx, http.MethodPost, "/transactions", params, &txn); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// UpdateTransaction updates a transaction by ID.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, params TransactionParams) (model.Transaction, error) {
	var txn model.Transaction
	path := fmt.Sprintf("/transactions/%d", id)
	if err := c.call(ctx, http.MethodPut, path, params, &txn); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// DeleteTransaction deletes a transaction by ID.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil)
}
