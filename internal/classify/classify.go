// Package classify is the account classification and balance computation
// core of KeuTrack. Given an account name and optional numeric code it
// infers the account's fundamental type, normal balance side and
// category; given an account plus its ledger transactions it folds them
// into a final signed balance.
//
// Every function here is pure and total: identical inputs always yield
// identical outputs, no I/O, and no input ever produces an error. Bad
// input degrades to a safe default instead.
package classify

import (
	"strings"

	"github.com/keutrack-dev/keutrack/internal/model"
)

// Classify infers the classification of an account from its name and
// optional numeric code. The code is consulted first and wins whenever
// its first digit is conclusive; otherwise the name rule chain runs.
// Unrecognized input yields OTHER / DEBIT / LAIN.
func Classify(name, code string) model.Classification {
	accountName := strings.ToUpper(strings.TrimSpace(name))
	accountCode := strings.TrimSpace(code)

	if accountName == "" {
		return other()
	}

	if accountCode != "" {
		if c := classifyByCode(accountCode, accountName); c.Type != model.TypeOther {
			return c
		}
	}

	for _, rule := range nameRules {
		if rule.matches(accountName) {
			return classification(rule.result, accountName)
		}
	}
	return other()
}

// Category returns only the category label of Classify(name, "").
// Retained for callers of the pre-classification API.
func Category(name string) string {
	return Classify(name, "").Category
}

// creditNormalCategories is the fixed set of category labels whose
// accounts increase on the credit side.
var creditNormalCategories = map[string]bool{
	model.CategoryUtang:      true,
	model.CategoryModal:      true,
	model.CategoryPendapatan: true,
	"LIABILITAS":             true,
	"EKUITAS":                true,
}

// IsCreditNormal reports whether the given category label is
// credit-normal.
func IsCreditNormal(category string) bool {
	return creditNormalCategories[strings.ToUpper(strings.TrimSpace(category))]
}

// classifyByCode maps the first digit of a SAK EMKM account code to a
// type: 1 aset, 2 liabilitas, 3 ekuitas, 4 pendapatan, 5 beban. Any
// other leading character is inconclusive and yields OTHER so the name
// chain gets a chance.
func classifyByCode(code, name string) model.Classification {
	switch code[0] {
	case '1':
		return classification(model.TypeAsset, name)
	case '2':
		return classification(model.TypeLiability, name)
	case '3':
		return classification(model.TypeEquity, name)
	case '4':
		return classification(model.TypeRevenue, name)
	case '5':
		return classification(model.TypeExpense, name)
	default:
		return other()
	}
}

// classification builds the result for a type, deriving the normal
// balance from the type and the category from the fixed per-type label
// (or the asset refiner for assets).
func classification(t model.AccountType, name string) model.Classification {
	category := model.CategoryLain
	switch t {
	case model.TypeAsset:
		category = assetCategory(name)
	case model.TypeLiability:
		category = model.CategoryUtang
	case model.TypeEquity:
		category = model.CategoryModal
	case model.TypeRevenue:
		category = model.CategoryPendapatan
	case model.TypeExpense:
		category = model.CategoryBeban
	}
	return model.Classification{
		Type:          t,
		NormalBalance: t.NormalBalance(),
		Category:      category,
	}
}

func other() model.Classification {
	return model.Classification{
		Type:          model.TypeOther,
		NormalBalance: model.NormalDebit,
		Category:      model.CategoryLain,
	}
}

// assetCategoryRules refine an asset name into a subcategory. Checked
// in order, first match wins; BARANG must stay under PERSEDIAAN even
// though it also appears in asset keywords.
var assetCategoryRules = []struct {
	category string
	terms    []string
}{
	{model.CategoryKas, []string{"KAS", "TUNAI", "CASH"}},
	{model.CategoryBank, []string{"BANK", "REKENING", "GIRO"}},
	{model.CategoryPiutang, []string{"PIUTANG", "TAGIHAN"}},
	{model.CategoryPersediaan, []string{"PERSEDIAAN", "STOK", "BARANG"}},
	{model.CategoryPerlengkapan, []string{"PERLENGKAPAN", "SUPPLIES"}},
}

// assetCategory maps an asset account name to its subcategory label.
func assetCategory(name string) string {
	for _, rule := range assetCategoryRules {
		for _, term := range rule.terms {
			if strings.Contains(name, term) {
				return rule.category
			}
		}
	}
	return model.CategoryAset
}
