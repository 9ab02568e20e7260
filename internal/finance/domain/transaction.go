package domain

import (
	"encoding/json"
	"math"
	"time"

	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Wire formats for transaction JSON: date is a bare calendar day, the
// timestamps use the API's "Y-m-d H:i:s" shape.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

// Transaction is a single income or expense row. The owning user is fixed at
// creation time and every read/update/delete is filtered by it.
type Transaction struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"` // user UUID
	CategoryID  *int64    `json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// transactionAlias breaks the MarshalJSON/UnmarshalJSON recursion.
type transactionAlias Transaction

func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		transactionAlias
		Date      string `json:"date"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	}{
		transactionAlias: transactionAlias(t),
		Date:             t.Date.Format(DateLayout),
		CreatedAt:        t.CreatedAt.Format(DateTimeLayout),
		UpdatedAt:        t.UpdatedAt.Format(DateTimeLayout),
	})
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	aux := struct {
		*transactionAlias
		Date      string `json:"date"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	}{transactionAlias: (*transactionAlias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if t.Date, err = parseWireTime(aux.Date, DateLayout); err != nil {
		return err
	}
	if t.CreatedAt, err = parseWireTime(aux.CreatedAt, DateTimeLayout); err != nil {
		return err
	}
	if t.UpdatedAt, err = parseWireTime(aux.UpdatedAt, DateTimeLayout); err != nil {
		return err
	}
	return nil
}

func parseWireTime(value, layout string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(layout, value)
}

func (t *Transaction) RoundToTwoDecimalPlaces() {
	t.Amount = math.Round(t.Amount*100) / 100
}

func (t *Transaction) Validate() error {
	if t.Amount == 0 {
		return financeErrors.NewFieldValidationError("amount", "The amount field is required.")
	}
	if !IsValidTransactionType(t.Type) {
		return financeErrors.ErrInvalidTransactionType
	}
	if len(t.Description) > 200 {
		return financeErrors.NewFieldValidationError("description", "Description must be of length less than 200")
	}
	if t.Date.IsZero() {
		return financeErrors.NewFieldValidationError("date", "The date field is required.")
	}
	return nil
}

// TransactionFilters narrows owner-scoped listings.
type TransactionFilters struct {
	Type       string
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// FilterCriteria narrows the system-wide filter endpoint. Unlike
// TransactionFilters it carries no owner: /transactions/filter deliberately
// operates across all users.
type FilterCriteria struct {
	CategoryID *int64
	Type       string
}

type TransactionRepository interface {
	FindByUser(userID string, filters TransactionFilters) ([]Transaction, error)
	FindByUserAndID(userID string, transactionID int64) (*Transaction, error)
	FindByUserAndMonth(userID string, year, month int) ([]Transaction, error)
	Filter(criteria FilterCriteria) ([]Transaction, error)
	Save(transaction *Transaction) error
	Update(transaction *Transaction) error
	Delete(userID string, transactionID int64) error
}
