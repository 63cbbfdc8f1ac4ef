package chart

import "github.com/keutrack-dev/keutrack/internal/model"

// DefaultChart returns the starter SAK EMKM chart of accounts the
// backend seeds for a new book. Codes follow the standard prefixes:
// 1xxx aset, 2xxx liabilitas, 3xxx ekuitas, 4xxx pendapatan, 5xxx beban.
func DefaultChart() []model.Account {
	return []model.Account{
		{ID: 1, Name: "Kas", Code: "1001", Category: model.CategoryKas},
		{ID: 2, Name: "Kas Kecil", Code: "1002", Category: model.CategoryKas},
		{ID: 3, Name: "Bank BCA", Code: "1101", Category: model.CategoryBank},
		{ID: 4, Name: "Piutang Usaha", Code: "1201", Category: model.CategoryPiutang},
		{ID: 5, Name: "Persediaan Barang", Code: "1301", Category: model.CategoryPersediaan},
		{ID: 6, Name: "Perlengkapan", Code: "1401", Category: model.CategoryPerlengkapan},
		{ID: 7, Name: "Peralatan Kantor", Code: "1501", Category: model.CategoryAset},
		{ID: 8, Name: "Utang Usaha", Code: "2101", Category: model.CategoryUtang},
		{ID: 9, Name: "Utang Bank", Code: "2201", Category: model.CategoryUtang},
		{ID: 10, Name: "Modal Pemilik", Code: "3101", Category: model.CategoryModal},
		{ID: 11, Name: "Prive", Code: "3201", Category: model.CategoryModal},
		{ID: 12, Name: "Pendapatan Penjualan", Code: "4101", Category: model.CategoryPendapatan},
		{ID: 13, Name: "Pendapatan Jasa", Code: "4201", Category: model.CategoryPendapatan},
		{ID: 14, Name: "Beban Gaji", Code: "5101", Category: model.CategoryBeban},
		{ID: 15, Name: "Beban Listrik", Code: "5201", Category: model.CategoryBeban},
		{ID: 16, Name: "Beban Sewa", Code: "5301", Category: model.CategoryBeban},
		{ID: 17, Name: "Beban Perlengkapan", Code: "5401", Category: model.CategoryBeban},
		{ID: 18, Name: "Beban Telepon", Code: "5501", Category: model.CategoryBeban},
	}
}
