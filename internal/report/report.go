// Package report computes the standard SAK EMKM reports from a set of
// accounts and their ledger transactions: general journal, ledger,
// trial balance, income statement and balance sheet. Totals are
// presented as exact decimals.
package report

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/keutrack-dev/keutrack/internal/classify"
	"github.com/keutrack-dev/keutrack/internal/model"
)

// JournalEntry is one row of the general journal.
type JournalEntry struct {
	Transaction model.Transaction
	DebitName   string
	CreditName  string
}

// GeneralJournal returns all transactions in date order with the two
// account names resolved. Transactions referencing unknown accounts are
// kept; the missing name stays empty.
func GeneralJournal(accounts []model.Account, txns []model.Transaction) []JournalEntry {
	names := make(map[int64]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	entries := make([]JournalEntry, 0, len(txns))
	for _, txn := range txns {
		entries = append(entries, JournalEntry{
			Transaction: txn,
			DebitName:   names[txn.DebitAccountID],
			CreditName:  names[txn.CreditAccountID],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Transaction.Date.Before(entries[j].Transaction.Date)
	})
	return entries
}

// LedgerLine is one movement on a ledger account with the balance after
// applying it.
type LedgerLine struct {
	Transaction model.Transaction
	Effect      float64
	Balance     float64
}

// LedgerAccount is the ledger of one account.
type LedgerAccount struct {
	Account        model.Account
	Classification model.Classification
	Opening        float64
	Lines          []LedgerLine
	Closing        float64
}

// Ledger builds the ledger (buku besar) for every account.
func Ledger(accounts []model.Account, txns []model.Transaction) []LedgerAccount {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	ledgers := make([]LedgerAccount, 0, len(accounts))
	for _, account := range accounts {
		c := classify.Classify(account.Name, account.Code)

		opening := account.Balance
		if math.IsNaN(opening) || math.IsInf(opening, 0) {
			opening = 0
		}

		la := LedgerAccount{
			Account:        account,
			Classification: c,
			Opening:        opening,
		}

		running := opening
		for _, txn := range sorted {
			if txn.DebitAccountID != account.ID && txn.CreditAccountID != account.ID {
				continue
			}
			effect := classify.Effect(c.NormalBalance, account.ID, txn)
			if effect == 0 {
				continue
			}
			running += effect
			la.Lines = append(la.Lines, LedgerLine{
				Transaction: txn,
				Effect:      effect,
				Balance:     running,
			})
		}
		la.Closing = classify.Balance(account, txns)
		ledgers = append(ledgers, la)
	}
	return ledgers
}

// TrialBalanceRow places one account's final balance on its normal
// side; a negative balance flips to the opposite column.
type TrialBalanceRow struct {
	Account model.Account
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// TrialBalance is the neraca saldo: one row per account plus column
// totals.
type TrialBalance struct {
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// ComputeTrialBalance folds every account's balance and arranges the
// debit and credit columns.
func ComputeTrialBalance(accounts []model.Account, txns []model.Transaction) TrialBalance {
	tb := TrialBalance{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, account := range accounts {
		balance := classify.Balance(account, txns)
		normal := classify.Classify(account.Name, account.Code).NormalBalance

		amount := decimal.NewFromFloat(balance)
		side := normal
		if amount.IsNegative() {
			amount = amount.Neg()
			side = opposite(normal)
		}

		row := TrialBalanceRow{Account: account}
		if side == model.NormalDebit {
			row.Debit = amount
			tb.TotalDebit = tb.TotalDebit.Add(amount)
		} else {
			row.Credit = amount
			tb.TotalCredit = tb.TotalCredit.Add(amount)
		}
		tb.Rows = append(tb.Rows, row)
	}
	return tb
}

func opposite(nb model.NormalBalance) model.NormalBalance {
	if nb == model.NormalDebit {
		return model.NormalCredit
	}
	return model.NormalDebit
}

// IncomeStatement is the laporan laba rugi.
type IncomeStatement struct {
	Revenue   decimal.Decimal
	Expense   decimal.Decimal
	NetIncome decimal.Decimal
}

// ComputeIncomeStatement totals revenue and expense balances.
func ComputeIncomeStatement(accounts []model.Account, txns []model.Transaction) IncomeStatement {
	is := IncomeStatement{
		Revenue: decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, account := range accounts {
		switch classify.Classify(account.Name, account.Code).Type {
		case model.TypeRevenue:
			is.Revenue = is.Revenue.Add(decimal.NewFromFloat(classify.Balance(account, txns)))
		case model.TypeExpense:
			is.Expense = is.Expense.Add(decimal.NewFromFloat(classify.Balance(account, txns)))
		}
	}
	is.NetIncome = is.Revenue.Sub(is.Expense)
	return is
}

// BalanceSheet is the laporan posisi keuangan. Net income closes into
// the equity side so the statement balances mid-period.
type BalanceSheet struct {
	Assets               decimal.Decimal
	Liabilities          decimal.Decimal
	Equity               decimal.Decimal
	NetIncome            decimal.Decimal
	LiabilitiesAndEquity decimal.Decimal
}

// ComputeBalanceSheet totals the balance sheet sides.
func ComputeBalanceSheet(accounts []model.Account, txns []model.Transaction) BalanceSheet {
	bs := BalanceSheet{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Equity:      decimal.Zero,
	}
	for _, account := range accounts {
		balance := decimal.NewFromFloat(classify.Balance(account, txns))
		switch classify.Classify(account.Name, account.Code).Type {
		case model.TypeAsset:
			bs.Assets = bs.Assets.Add(balance)
		case model.TypeLiability:
			bs.Liabilities = bs.Liabilities.Add(balance)
		case model.TypeEquity:
			bs.Equity = bs.Equity.Add(balance)
		}
	}
	bs.NetIncome = ComputeIncomeStatement(accounts, txns).NetIncome
	bs.LiabilitiesAndEquity = bs.Liabilities.Add(bs.Equity).Add(bs.NetIncome)
	return bs
}
