package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/keutrack-dev/keutrack/internal/model"
)

const (
	numFields   = 5
	colID       = 0
	colName     = 1
	colCode     = 2
	colBalance  = 3
	colCategory = 4
)

// ReadAccounts reads an accounts.csv export. A balance that does not
// parse becomes NaN, matching the lenient wire ingestion.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes an accounts.csv export.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "name", "code", "balance", "category"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colID] = strconv.FormatInt(acct.ID, 10)
	row[colName] = acct.Name
	row[colCode] = acct.Code
	balance := acct.Balance
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		balance = 0
	}
	row[colBalance] = strconv.FormatFloat(balance, 'f', -1, 64)
	row[colCategory] = acct.Category
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.ParseInt(record[colID], 10, 64)
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	balance, err := strconv.ParseFloat(record[colBalance], 64)
	if err != nil {
		balance = math.NaN()
	}

	return model.Account{
		ID:       id,
		Name:     record[colName],
		Code:     record[colCode],
		Balance:  balance,
		Category: record[colCategory],
	}, nil
}
