package application

import (
	"fmt"
	"time"

	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

type CategoryServiceInterface interface {
	DoesCategoryExist(categoryID int64) (bool, error)
}

// SummaryInvalidator drops the cached monthly summary covering date for the
// given user.
type SummaryInvalidator interface {
	Invalidate(userID string, date time.Time)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
	summaryCache    SummaryInvalidator
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface, summaryCache SummaryInvalidator) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService, summaryCache: summaryCache}
}

func (s *TransactionService) validate(transaction *domain.Transaction) error {
	transaction.RoundToTwoDecimalPlaces()
	if err := transaction.Validate(); err != nil {
		return err
	}
	if transaction.CategoryID != nil {
		exists, err := s.categoryService.DoesCategoryExist(*transaction.CategoryID)
		if err != nil {
			return err
		}
		if !exists {
			return financeErrors.ErrInvalidCategory
		}
	}
	return nil
}

// CreateTransaction persists a transaction owned by the caller. The owner on
// the incoming payload is always overwritten with the authenticated user.
func (s *TransactionService) CreateTransaction(userID string, transaction *domain.Transaction) error {
	transaction.UserID = userID
	if err := s.validate(transaction); err != nil {
		return err
	}
	if err := s.repo.Save(transaction); err != nil {
		fmt.Println("Error during transaction creation:", err)
		return err
	}

	s.summaryCache.Invalidate(userID, transaction.Date)
	return nil
}

func (s *TransactionService) GetUserTransactions(userID string, filters domain.TransactionFilters) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByUser(userID, filters)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetTransaction(userID string, transactionID int64) (*domain.Transaction, error) {
	return s.repo.FindByUserAndID(userID, transactionID)
}

// UpdateTransaction replaces every mutable field. When the update moves the
// transaction across a month boundary both the old and the new month's
// cached summaries are dropped.
func (s *TransactionService) UpdateTransaction(userID string, transactionID int64, transaction *domain.Transaction) (*domain.Transaction, error) {
	existing, err := s.repo.FindByUserAndID(userID, transactionID)
	if err != nil {
		return nil, err
	}
	previousDate := existing.Date

	transaction.ID = transactionID
	transaction.UserID = userID
	if err := s.validate(transaction); err != nil {
		return nil, err
	}
	if err := s.repo.Update(transaction); err != nil {
		return nil, err
	}

	s.summaryCache.Invalidate(userID, previousDate)
	s.summaryCache.Invalidate(userID, transaction.Date)
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(userID string, transactionID int64) error {
	existing, err := s.repo.FindByUserAndID(userID, transactionID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(userID, transactionID); err != nil {
		return err
	}

	s.summaryCache.Invalidate(userID, existing.Date)
	return nil
}

// FilterTransactions queries across all users, matching the original API's
// system-wide filter endpoint. It must not be owner-scoped.
func (s *TransactionService) FilterTransactions(criteria domain.FilterCriteria) ([]domain.Transaction, error) {
	transactions, err := s.repo.Filter(criteria)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}
