package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/keutrack-dev/keutrack/internal/model"
)

// AccountParams are the writable fields of an account.
type AccountParams struct {
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
	Code     string  `json:"code,omitempty"`
	Category string  `json:"category,omitempty"`
}

// Accounts returns all accounts.
func (c *Client) Accounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.call(ctx, http.MethodGet, "/accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount creates an account and returns the stored record.
func (c *Client) CreateAccount(ctx context.Context, params AccountParams) (model.Account, error) {
	var account model.Account
	if err := c.call(ctx, http.MethodPost, "/accounts", params, &account); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// UpdateAccount updates an account by ID.
func (c *Client) UpdateAccount(ctx context.Context, id int64, params AccountParams) (model.Account, error) {
	var account model.Account
	path := fmt.Sprintf("/accounts/%d", id)
	if err := c.call(ctx, http.MethodPut, path, params, &account); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// DeleteAccount deletes an account by ID.
func (c *Client) DeleteAccount(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/accounts/%d", id), nil, nil)
}

// DefaultAccounts returns the backend's starter chart of accounts.
func (c *Client) DefaultAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.call(ctx, http.MethodGet, "/default-accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
