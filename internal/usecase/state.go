package usecase

import (
	"sync"

	"github.com/iho/pixdash/internal/domain"
)

// State is the session context and entity cache of one signed-in client.
// Every mutation replaces or appends a whole slice; readers get copies.
type State struct {
	mu sync.RWMutex

	token         string
	user          *domain.User
	accounts      []*domain.Account
	recent        []*domain.Transaction
	history       []*domain.Transaction
	historyFilter domain.TransactionFilter
	summary       domain.DashboardSummary
	monthly       *domain.MonthlySummary
}

// NewState creates an anonymous State.
func NewState() *State {
	return &State{}
}

// Snapshot is a consistent read of State for rendering.
type Snapshot struct {
	Authenticated bool
	User          *domain.User
	Accounts      []*domain.Account
	Recent        []*domain.Transaction
	Summary       domain.DashboardSummary
	// Monthly is nil until a monthly summary has been loaded.
	Monthly *domain.MonthlySummary
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Authenticated: s.token != "",
		User:          s.user,
		Accounts:      cloneSlice(s.accounts),
		Recent:        cloneSlice(s.recent),
		Summary:       s.summary,
		Monthly:       s.monthly,
	}
}

// Token returns the bearer credential, or "" when anonymous.
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a credential is held.
func (s *State) Authenticated() bool {
	return s.Token() != ""
}

func (s *State) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// User returns the signed-in user, or nil.
func (s *State) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *State) setUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// Accounts returns the cached accounts.
func (s *State) Accounts() []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.accounts)
}

func (s *State) replaceAccounts(accounts []*domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = cloneSlice(accounts)
}

func (s *State) appendAccount(a *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*domain.Account, 0, len(s.accounts)+1)
	next = append(next, s.accounts...)
	s.accounts = append(next, a)
}

// replaceAccount swaps the cached account with a's id for a, appending it
// when it is not cached.
func (s *State) replaceAccount(a *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*domain.Account, 0, len(s.accounts)+1)
	replaced := false
	for _, cur := range s.accounts {
		if cur.ID == a.ID {
			next = append(next, a)
			replaced = true
			continue
		}
		next = append(next, cur)
	}
	if !replaced {
		next = append(next, a)
	}
	s.accounts = next
}

// RecentTransactions returns the cached recent transactions that feed the dashboard.
func (s *State) RecentTransactions() []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.recent)
}

func (s *State) replaceRecent(txns []*domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = cloneSlice(txns)
}

// recentStatus returns the cached status of a recent transaction.
func (s *State) recentStatus(transactionID string) (domain.TransactionStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.recent {
		if t.TransactionID == transactionID {
			return t.Status, true
		}
	}
	return "", false
}

// History returns the last history projection and the filter that produced it.
func (s *State) History() ([]*domain.Transaction, domain.TransactionFilter) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.history), s.historyFilter
}

func (s *State) replaceHistory(filter domain.TransactionFilter, txns []*domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyFilter = filter
	s.history = cloneSlice(txns)
}

// Monthly returns the last loaded monthly summary, or nil.
func (s *State) Monthly() *domain.MonthlySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.monthly
}

func (s *State) setMonthly(m *domain.MonthlySummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monthly = m
}

// Summary returns the last computed dashboard aggregates.
func (s *State) Summary() domain.DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

func (s *State) setSummary(summary domain.DashboardSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
}

// clear drops the credential, the user and every cached slice.
func (s *State) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	s.accounts = nil
	s.recent = nil
	s.history = nil
	s.historyFilter = domain.TransactionFilter{}
	s.summary = domain.DashboardSummary{}
	s.monthly = nil
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
