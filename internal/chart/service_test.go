package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keutrack-dev/keutrack/internal/classify"
	"github.com/keutrack-dev/keutrack/internal/model"
)

func TestNewService(t *testing.T) {
	svc := NewService(DefaultChart())
	assert.Len(t, svc.All(), len(DefaultChart()))

	// Sorted by code: Kas (1001) first.
	assert.Equal(t, "Kas", svc.All()[0].Name)
}

func TestGetExists(t *testing.T) {
	svc := NewService(DefaultChart())

	acct, ok := svc.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "Kas", acct.Name)

	_, ok = svc.Get(999)
	assert.False(t, ok)

	assert.True(t, svc.Exists(1))
	assert.False(t, svc.Exists(999))
}

func TestFindByName(t *testing.T) {
	svc := NewService(DefaultChart())

	acct, ok := svc.FindByName("  modal pemilik ")
	assert.True(t, ok)
	assert.Equal(t, "3101", acct.Code)

	_, ok = svc.FindByName("Nonexistent")
	assert.False(t, ok)
}

func TestByType(t *testing.T) {
	svc := NewService(DefaultChart())

	assets := svc.ByType(model.TypeAsset)
	require.NotEmpty(t, assets)
	for _, a := range assets {
		assert.Equal(t, byte('1'), a.Code[0], a.Name)
	}

	expenses := svc.ByType(model.TypeExpense)
	assert.Len(t, expenses, 5)
}

func TestDefaultChartClassifiesCleanly(t *testing.T) {
	// Every seeded account must classify to the type its code prefix
	// declares, with or without the code present.
	prefixToType := map[byte]model.AccountType{
		'1': model.TypeAsset,
		'2': model.TypeLiability,
		'3': model.TypeEquity,
		'4': model.TypeRevenue,
		'5': model.TypeExpense,
	}
	for _, a := range DefaultChart() {
		want := prefixToType[a.Code[0]]
		assert.Equal(t, want, classify.Classify(a.Name, a.Code).Type, "%s with code", a.Name)
		assert.Equal(t, want, classify.Classify(a.Name, "").Type, "%s by name alone", a.Name)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, DefaultChart()))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(DefaultChart()))

	for i, orig := range DefaultChart() {
		assert.Equal(t, orig.Name, got[i].Name)
		assert.Equal(t, orig.Code, got[i].Code)
		assert.Equal(t, orig.Category, got[i].Category)
	}
}
