package model

// AccountType classifies accounts under the simplified SAK EMKM chart of accounts.
type AccountType string

const (
	TypeAsset     AccountType = "ASSET"
	TypeLiability AccountType = "LIABILITY"
	TypeEquity    AccountType = "EQUITY"
	TypeRevenue   AccountType = "REVENUE"
	TypeExpense   AccountType = "EXPENSE"
	TypeOther     AccountType = "OTHER"
)

// NormalBalance is the side on which an account's balance increases.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "DEBIT"
	NormalCredit NormalBalance = "CREDIT"
)

// NormalBalance returns the normal balance side for an account type.
// This mapping is fixed: ASSET, EXPENSE and OTHER increase on debit,
// LIABILITY, EQUITY and REVENUE increase on credit.
func (t AccountType) NormalBalance() NormalBalance {
	switch t {
	case TypeLiability, TypeEquity, TypeRevenue:
		return NormalCredit
	default:
		return NormalDebit
	}
}

// Category labels used by the classifier. Asset accounts get one of the
// finer-grained labels; other types map to a single fixed label.
const (
	CategoryKas          = "KAS"
	CategoryBank         = "BANK"
	CategoryPiutang      = "PIUTANG"
	CategoryPersediaan   = "PERSEDIAAN"
	CategoryPerlengkapan = "PERLENGKAPAN"
	CategoryAset         = "ASET"
	CategoryUtang        = "UTANG"
	CategoryModal        = "MODAL"
	CategoryPendapatan   = "PENDAPATAN"
	CategoryBeban        = "BEBAN"
	CategoryLain         = "LAIN"
)

// Classification is the derived account classification: fundamental type,
// normal balance side, and a finer-grained category label.
type Classification struct {
	Type          AccountType
	NormalBalance NormalBalance
	Category      string
}
