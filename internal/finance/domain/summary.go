package domain

// CategoryCount reports how many transactions a single category collected in
// a month. CategoryName is nil when the category was deleted after the
// transactions were created.
type CategoryCount struct {
	CategoryID       *int64  `json:"category_id"`
	CategoryName     *string `json:"category_name"`
	TransactionCount int     `json:"transaction_count"`
}

// MonthlySummary is the derived monthly aggregate for one user. It is never
// authoritative: it can always be recomputed from the transaction store.
type MonthlySummary struct {
	TotalIncome             float64         `json:"total_income"`
	TotalExpense            float64         `json:"total_expense"`
	EndingBalance           float64         `json:"ending_balance"`
	TransactionsPerCategory []CategoryCount `json:"transactions_per_category"`
}
