package classify

import (
	"strings"

	"github.com/keutrack-dev/keutrack/internal/model"
)

// ruleSet is the vocabulary for one account type. The name chain is an
// ordered list of these, evaluated first-match; the per-category
// exclusion lists resolve the overlapping vocabulary between types
// (e.g. "Beban Perlengkapan" vs "Perlengkapan").
type ruleSet struct {
	result model.AccountType

	// rejectLead disqualifies a name outright when it starts with one
	// of these tokens, before any positive check runs.
	rejectLead []string

	// exactNames match the whole name only.
	exactNames []string

	// phrases match anywhere in the name and bypass the exclusion list.
	phrases []string

	// phrasePrefixes match the whole name or a leading prefix of it.
	phrasePrefixes []string

	// leadTokens match when the name is the token or starts with the
	// token followed by a space.
	leadTokens []string

	// keywords match anywhere in the name, unless an exclude also
	// matches.
	keywords []string
	excludes []string
}

// nameRules is the classification chain. Expenses are tested first so
// that "BEBAN PERLENGKAPAN" never reaches the asset vocabulary, and
// revenue before equity so that "PENDAPATAN PENJUALAN" never lands on
// MODAL. Order is load-bearing; do not reorder.
var nameRules = []ruleSet{
	{
		result:     model.TypeExpense,
		leadTokens: []string{"BEBAN", "BIAYA"},
		phrases: []string{
			"BEBAN GAJI", "BEBAN LISTRIK", "BEBAN AIR", "BEBAN SEWA",
			"BEBAN PERLENGKAPAN", "BEBAN TELEPON", "BEBAN INTERNET",
			"BIAYA GAJI", "BIAYA LISTRIK", "BIAYA OPERASIONAL",
		},
		keywords: []string{
			"UPAH", "GAJI KARYAWAN", "HONORARIUM",
			"HARGA POKOK", "ONGKOS", "TRANSPORT",
			"MAKAN MINUM", "OPERASIONAL", "EXPENSE",
			"ADMINISTRASI", "MARKETING", "PROMOSI",
			"PENYUSUTAN", "PAJAK PENGHASILAN", "BUNGA PINJAMAN",
		},
		excludes: []string{
			"PIUTANG", "PERSEDIAAN", "KAS", "BANK", "TANAH", "BANGUNAN",
			"PERALATAN", "KENDARAAN", "MESIN", "INVENTARIS",
		},
	},
	{
		result: model.TypeRevenue,
		phrasePrefixes: []string{
			"PENDAPATAN JASA", "PENDAPATAN PENJUALAN", "PENDAPATAN USAHA",
			"PENJUALAN BARANG", "PENJUALAN JASA",
			"HASIL PENJUALAN", "OMZET PENJUALAN",
		},
		leadTokens: []string{"PENDAPATAN", "PENJUALAN"},
		keywords: []string{
			"JASA KONSULTASI", "KOMISI PENJUALAN",
			"BUNGA DITERIMA", "DIVIDEN DITERIMA", "ROYALTI DITERIMA",
			"SEWA DITERIMA", "REVENUE", "INCOME OPERASIONAL",
			"LABA PENJUALAN ASET",
		},
		excludes: []string{
			"MODAL ", "SAHAM ", "INVESTASI PEMILIK", "SETORAN MODAL",
			"LABA DITAHAN", "CADANGAN ",
		},
	},
	{
		result:     model.TypeAsset,
		rejectLead: []string{"BEBAN", "BIAYA"},
		exactNames: []string{
			"PERLENGKAPAN",
			"KAS", "KAS KECIL", "KAS BESAR",
			"BANK BCA", "BANK MANDIRI", "BANK BRI", "REKENING BANK",
			"PIUTANG USAHA", "PIUTANG DAGANG",
			"PERSEDIAAN BARANG", "STOK BARANG",
			"TANAH DAN BANGUNAN", "GEDUNG KANTOR",
			"KENDARAAN OPERASIONAL", "MOTOR DINAS",
			"PERALATAN KANTOR", "KOMPUTER", "PRINTER",
		},
		keywords: []string{
			"TUNAI", "CASH", "GIRO", "DEPOSITO",
			"TAGIHAN", "DEBITUR", "BARANG DAGANGAN",
			"TANAH", "BANGUNAN", "GEDUNG", "KENDARAAN", "MESIN",
			"INVENTARIS", "SUPPLIES",
			"DIBAYAR DIMUKA", "MASIH HARUS DITERIMA",
			"AKUMULASI PENYUSUTAN", "INVESTASI JANGKA PANJANG",
			"HAK PATEN", "GOODWILL", "LISENSI", "ASET TAKBERWUJUD",
		},
		excludes: []string{
			"BEBAN ", "BIAYA ", "UPAH", "GAJI", "SEWA GEDUNG", "LISTRIK", "AIR",
		},
	},
	{
		result: model.TypeLiability,
		keywords: []string{
			"UTANG", "HUTANG", "KREDIT", "PINJAMAN", "KREDITUR",
			"LIABILITAS", "KEWAJIBAN", "CICILAN",
			"BEBAN YANG MASIH HARUS DIBAYAR", "MASIH HARUS DIBAYAR",
			"PENDAPATAN DITERIMA DIMUKA", "DITERIMA DIMUKA",
			"OBLIGASI", "HIPOTIK", "HIPOTEK",
		},
	},
	{
		result: model.TypeEquity,
		phrases: []string{
			"MODAL PEMILIK", "MODAL SAHAM", "MODAL DISETOR",
			"LABA DITAHAN", "CADANGAN", "PRIVE",
			"INVESTASI PEMILIK", "SETORAN MODAL",
		},
		keywords: []string{"MODAL", "SAHAM", "EKUITAS", "CADANGAN", "PRIVE"},
		excludes: []string{"PENDAPATAN", "PENJUALAN", "JASA", "KOMISI"},
	},
}

// matches reports whether the uppercased, trimmed name satisfies this
// rule set.
func (r ruleSet) matches(name string) bool {
	for _, tok := range r.rejectLead {
		if hasLeadToken(name, tok) {
			return false
		}
	}
	for _, e := range r.exactNames {
		if name == e {
			return true
		}
	}
	for _, p := range r.phrases {
		if strings.Contains(name, p) {
			return true
		}
	}
	for _, p := range r.phrasePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	for _, tok := range r.leadTokens {
		if hasLeadToken(name, tok) {
			return true
		}
	}
	for _, kw := range r.keywords {
		if !strings.Contains(name, kw) {
			continue
		}
		if r.excluded(name) {
			return false
		}
		return true
	}
	return false
}

func (r ruleSet) excluded(name string) bool {
	for _, ex := range r.excludes {
		if strings.Contains(name, ex) {
			return true
		}
	}
	return false
}

// hasLeadToken reports whether name is tok itself or starts with tok as
// a whole word. "BEBAN LISTRIK" leads with "BEBAN"; "BEBANI" does not.
func hasLeadToken(name, tok string) bool {
	return name == tok || strings.HasPrefix(name, tok+" ")
}
