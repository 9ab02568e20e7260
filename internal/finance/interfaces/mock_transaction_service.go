package interfaces

import (
	"errors"
	"time"

	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

// MockTransactionService is an in-memory TransactionServiceInterface. It
// mirrors the real service's scoping rules: per-owner CRUD, unscoped filter.
type MockTransactionService struct {
	transactions []domain.Transaction
	shouldFail   bool
	nextID       int64
}

func (m *MockTransactionService) CreateTransaction(userID string, transaction *domain.Transaction) error {
	if m.shouldFail {
		return errors.New("service failure")
	}
	transaction.UserID = userID
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}
	m.nextID++
	transaction.ID = m.nextID
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = transaction.CreatedAt
	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *MockTransactionService) GetUserTransactions(userID string, filters domain.TransactionFilters) ([]domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service failure")
	}
	result := []domain.Transaction{}
	for _, transaction := range m.transactions {
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
		result = append(result, transaction)
	}
	return result, nil
}

func (m *MockTransactionService) GetTransaction(userID string, transactionID int64) (*domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service failure")
	}
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID && m.transactions[i].UserID == userID {
			return &m.transactions[i], nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) UpdateTransaction(userID string, transactionID int64, transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service failure")
	}
	transaction.ID = transactionID
	transaction.UserID = userID
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID && m.transactions[i].UserID == userID {
			m.transactions[i] = *transaction
			return transaction, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) DeleteTransaction(userID string, transactionID int64) error {
	if m.shouldFail {
		return errors.New("service failure")
	}
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID && m.transactions[i].UserID == userID {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) FilterTransactions(criteria domain.FilterCriteria) ([]domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service failure")
	}
	result := []domain.Transaction{}
	for _, transaction := range m.transactions {
		if criteria.Type != "" && transaction.Type != criteria.Type {
			continue
		}
		if criteria.CategoryID != nil && (transaction.CategoryID == nil || *transaction.CategoryID != *criteria.CategoryID) {
			continue
		}
		result = append(result, transaction)
	}
	return result, nil
}

// MockSummaryService records the last lookup and serves a canned summary.
type MockSummaryService struct {
	summary    domain.MonthlySummary
	shouldFail bool

	lastUserID string
	lastYear   int
	lastMonth  int
}

func (m *MockSummaryService) GetMonthlySummary(userID string, year, month int) (domain.MonthlySummary, error) {
	if m.shouldFail {
		return domain.MonthlySummary{}, errors.New("service failure")
	}
	m.lastUserID = userID
	m.lastYear = year
	m.lastMonth = month
	return m.summary, nil
}
