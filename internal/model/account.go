package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Account is a ledger account as served by the KeuTrack API.
//
// Balance holds the opening balance. The API is lenient about numeric
// fields: a balance that arrives as a quoted number is accepted, and
// anything unparsable decodes to NaN so downstream arithmetic treats it
// as zero rather than failing.
type Account struct {
	ID       int64
	Name     string
	Code     string
	Balance  float64
	Category string
}

// UnmarshalJSON canonicalizes the wire form once at the ingestion
// boundary: code may arrive as a number or a string, balance as a
// number, a numeric string, or garbage.
func (a *Account) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       int64           `json:"id"`
		Name     string          `json:"name"`
		Code     json.RawMessage `json:"code"`
		Balance  json.RawMessage `json:"balance"`
		Category string          `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.ID = raw.ID
	a.Name = raw.Name
	a.Code = rawString(raw.Code)
	a.Balance = rawNumber(raw.Balance)
	a.Category = raw.Category
	return nil
}

// MarshalJSON writes the canonical wire form.
func (a Account) MarshalJSON() ([]byte, error) {
	balance := a.Balance
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		balance = 0
	}
	return json.Marshal(struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Code     string  `json:"code,omitempty"`
		Balance  float64 `json:"balance"`
		Category string  `json:"category,omitempty"`
	}{a.ID, a.Name, a.Code, balance, a.Category})
}

// rawString decodes a JSON value that may be a string, a number, or
// absent into its text form.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}

// rawNumber decodes a JSON value that may be a number or a numeric
// string. Absent or null becomes 0; anything unparsable becomes NaN.
func rawNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return math.NaN()
}
