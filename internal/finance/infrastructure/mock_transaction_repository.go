package infrastructure

import (
	"sort"
	"time"

	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

// MockTransactionRepository is an in-memory TransactionRepository that
// mirrors the SQL implementation's filtering and owner scoping.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	Categories   *MockCategoryRepository
	Err          error
	nextID       int64
	// FindByUserAndMonthCalls counts aggregate scans, so cache tests can
	// assert whether a summary was recomputed or served from cache.
	FindByUserAndMonthCalls int
}

func (m *MockTransactionRepository) resolveCategory(transaction *domain.Transaction) {
	transaction.Category = nil
	if transaction.CategoryID == nil || m.Categories == nil {
		return
	}
	if category, err := m.Categories.FindByID(*transaction.CategoryID); err == nil {
		transaction.Category = category
	}
}

func (m *MockTransactionRepository) FindByUser(userID string, filters domain.TransactionFilters) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if filters.Type != "" && transaction.Type != filters.Type {
			continue
		}
		if filters.CategoryID != nil && (transaction.CategoryID == nil || *transaction.CategoryID != *filters.CategoryID) {
			continue
		}
		if filters.StartDate != nil && transaction.Date.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && transaction.Date.After(*filters.EndDate) {
			continue
		}
		m.resolveCategory(&transaction)
		result = append(result, transaction)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *MockTransactionRepository) FindByUserAndID(userID string, transactionID int64) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID && transaction.UserID == userID {
			m.resolveCategory(&transaction)
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) FindByUserAndMonth(userID string, year, month int) ([]domain.Transaction, error) {
	m.FindByUserAndMonthCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	var result []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID != userID {
			continue
		}
		if transaction.Date.Year() != year || int(transaction.Date.Month()) != month {
			continue
		}
		m.resolveCategory(&transaction)
		result = append(result, transaction)
	}
	return result, nil
}

func (m *MockTransactionRepository) Filter(criteria domain.FilterCriteria) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []domain.Transaction
	for _, transaction := range m.Transactions {
		if criteria.CategoryID != nil && (transaction.CategoryID == nil || *transaction.CategoryID != *criteria.CategoryID) {
			continue
		}
		if criteria.Type != "" && transaction.Type != criteria.Type {
			continue
		}
		m.resolveCategory(&transaction)
		result = append(result, transaction)
	}
	return result, nil
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	transaction.ID = m.nextID
	transaction.CreatedAt = time.Now().Add(time.Duration(m.nextID) * time.Millisecond)
	transaction.UpdatedAt = transaction.CreatedAt
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) Update(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID && m.Transactions[i].UserID == transaction.UserID {
			transaction.CreatedAt = m.Transactions[i].CreatedAt
			transaction.UpdatedAt = time.Now()
			m.Transactions[i] = *transaction
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(userID string, transactionID int64) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}
