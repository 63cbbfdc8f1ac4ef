// Package chart provides in-memory lookup over a chart of accounts and
// the default SAK EMKM starter chart.
package chart

import (
	"sort"
	"strings"

	"github.com/keutrack-dev/keutrack/internal/classify"
	"github.com/keutrack-dev/keutrack/internal/model"
)

// Service provides in-memory lookup over a set of accounts.
type Service struct {
	accounts []model.Account
	byID     map[int64]model.Account
}

// NewService creates a Service from a slice of accounts, sorted by code.
func NewService(accounts []model.Account) *Service {
	sorted := make([]model.Account, len(accounts))
	copy(sorted, accounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Code < sorted[j].Code
	})

	byID := make(map[int64]model.Account, len(sorted))
	for _, a := range sorted {
		byID[a.ID] = a
	}
	return &Service{accounts: sorted, byID: byID}
}

// All returns all accounts in code order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id int64) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id int64) bool {
	_, ok := s.byID[id]
	return ok
}

// FindByName returns the first account whose name matches
// case-insensitively.
func (s *Service) FindByName(name string) (model.Account, bool) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, a := range s.accounts {
		if strings.ToUpper(strings.TrimSpace(a.Name)) == want {
			return a, true
		}
	}
	return model.Account{}, false
}

// ByType returns all accounts classified as the given type.
func (s *Service) ByType(t model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if classify.Classify(a.Name, a.Code).Type == t {
			result = append(result, a)
		}
	}
	return result
}
