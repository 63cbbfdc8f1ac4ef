package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/keutrack-dev/keutrack/internal/model"
)

const (
	numFields  = 6
	colID      = 0
	colDebit   = 1
	colCredit  = 2
	colAmount  = 3
	colDesc    = 4
	colDate    = 5
	dateFormat = "2006-01-02"
)

// ReadTransactions reads a transactions.csv export. An amount that does
// not parse becomes NaN and an unparsable date becomes the zero time;
// the row is kept either way, matching the lenient wire ingestion.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := unmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes a transactions.csv export.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"id", "debit_account_id", "credit_account_id", "amount", "description", "date"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(marshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.FormatInt(txn.ID, 10)
	row[colDebit] = strconv.FormatInt(txn.DebitAccountID, 10)
	row[colCredit] = strconv.FormatInt(txn.CreditAccountID, 10)
	amount := txn.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	row[colAmount] = strconv.FormatFloat(amount, 'f', -1, 64)
	row[colDesc] = txn.Description
	if !txn.Date.IsZero() {
		row[colDate] = txn.Date.Format(dateFormat)
	}
	return row
}

func unmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.ParseInt(record[colID], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}
	debit, err := strconv.ParseInt(record[colDebit], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing debit_account_id %q: %w", record[colDebit], err)
	}
	credit, err := strconv.ParseInt(record[colCredit], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing credit_account_id %q: %w", record[colCredit], err)
	}

	amount, err := strconv.ParseFloat(record[colAmount], 64)
	if err != nil {
		amount = math.NaN()
	}

	var date time.Time
	if record[colDate] != "" {
		date, _ = time.Parse(dateFormat, record[colDate])
	}

	return model.Transaction{
		ID:              id,
		DebitAccountID:  debit,
		CreditAccountID: credit,
		Amount:          amount,
		Description:     record[colDesc],
		Date:            date,
	}, nil
}
