package model

import (
	"encoding/json"
	"time"
)

// Transaction is one double-entry ledger transaction: a single amount
// moved from the credit-side account to the debit-side account.
type Transaction struct {
	ID              int64
	DebitAccountID  int64
	CreditAccountID int64
	Amount          float64
	Description     string
	Date            time.Time
}

// Accepted date layouts, tried in order. An unparsable date decodes to
// the zero time; the record is still usable.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON canonicalizes the two historical wire forms: the
// credit-side reference arrives as credit_account_id or creditAccountId
// and the amount as amount or nominal. Both are accepted; the rest of
// the codebase only ever sees the canonical fields. A malformed amount
// decodes to NaN so the balance fold skips it instead of erroring.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID              int64           `json:"id"`
		DebitAccountID  int64           `json:"debit_account_id"`
		CreditSnake     json.RawMessage `json:"credit_account_id"`
		CreditCamel     json.RawMessage `json:"creditAccountId"`
		Amount          json.RawMessage `json:"amount"`
		Nominal         json.RawMessage `json:"nominal"`
		Description     string          `json:"description"`
		TransactionDate string          `json:"transaction_date"`
		Date            string          `json:"date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.ID = raw.ID
	t.DebitAccountID = raw.DebitAccountID
	t.CreditAccountID = rawID(raw.CreditSnake)
	if t.CreditAccountID == 0 {
		t.CreditAccountID = rawID(raw.CreditCamel)
	}
	t.Amount = rawNumber(raw.Amount)
	if t.Amount == 0 && len(raw.Nominal) > 0 {
		t.Amount = rawNumber(raw.Nominal)
	}
	t.Description = raw.Description

	date := raw.TransactionDate
	if date == "" {
		date = raw.Date
	}
	t.Date = parseDate(date)
	return nil
}

// MarshalJSON writes the canonical wire form the backend stores.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var date string
	if !t.Date.IsZero() {
		date = t.Date.Format("2006-01-02")
	}
	return json.Marshal(struct {
		ID              int64   `json:"id,omitempty"`
		DebitAccountID  int64   `json:"debit_account_id"`
		CreditAccountID int64   `json:"credit_account_id"`
		Amount          float64 `json:"amount"`
		Description     string  `json:"description,omitempty"`
		TransactionDate string  `json:"transaction_date,omitempty"`
	}{t.ID, t.DebitAccountID, t.CreditAccountID, t.Amount, t.Description, date})
}

func rawID(raw json.RawMessage) int64 {
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}
	var id int64
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}
	return 0
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return time.Time{}
}
