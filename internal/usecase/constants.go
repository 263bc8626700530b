package usecase

const (
	// DefaultRecentTransactionsLimit bounds the recent transactions feeding the dashboard.
	DefaultRecentTransactionsLimit = 10

	// DefaultHistoryLimit is the page size of history queries; the API caps it at MaxHistoryLimit.
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100
)
