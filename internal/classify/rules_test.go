package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keutrack-dev/keutrack/internal/model"
)

func TestHasLeadToken(t *testing.T) {
	assert.True(t, hasLeadToken("BEBAN", "BEBAN"))
	assert.True(t, hasLeadToken("BEBAN LISTRIK", "BEBAN"))
	assert.False(t, hasLeadToken("BEBANI PELANGGAN", "BEBAN"))
	assert.False(t, hasLeadToken("PRA BEBAN", "BEBAN"))
}

func TestRules_ExclusionSuppression(t *testing.T) {
	// PENYUSUTAN is an expense keyword, but MESIN is an asset
	// indicator, so the expense rule must stand down and let the asset
	// rule claim the name.
	got := Classify("Akumulasi Penyusutan Mesin", "")
	assert.Equal(t, model.TypeAsset, got.Type)

	// MODAL is an equity keyword, but a revenue indicator in the name
	// keeps it out of equity.
	got = Classify("Pendapatan Penjualan", "")
	assert.Equal(t, model.TypeRevenue, got.Type)

	// SAHAM is an equity keyword and nothing revenue-like interferes.
	got = Classify("Modal Saham", "")
	assert.Equal(t, model.TypeEquity, got.Type)
}

func TestRules_AssetRejectsExpensePrefix(t *testing.T) {
	// An expense-prefixed name never reaches the asset vocabulary,
	// even when the remainder is a textbook asset term.
	for _, name := range []string{"Beban Perlengkapan", "Biaya Perlengkapan", "Beban Sewa Gedung"} {
		got := Classify(name, "")
		assert.Equal(t, model.TypeExpense, got.Type, name)
	}
}

func TestRules_FirstMatchOrder(t *testing.T) {
	// The chain order is expense, revenue, asset, liability, equity.
	types := make([]model.AccountType, len(nameRules))
	for i, r := range nameRules {
		types[i] = r.result
	}
	assert.Equal(t, []model.AccountType{
		model.TypeExpense,
		model.TypeRevenue,
		model.TypeAsset,
		model.TypeLiability,
		model.TypeEquity,
	}, types)
}
