package interfaces

import (
	"errors"

	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

// MockCategoryService is an in-memory CategoryServiceInterface for handler tests.
type MockCategoryService struct {
	categories []domain.Category
	shouldFail bool
	nextID     int64
}

func (m *MockCategoryService) GetAllCategories() ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service failure")
	}
	return m.categories, nil
}

func (m *MockCategoryService) GetCategory(categoryID int64) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service failure")
	}
	for i := range m.categories {
		if m.categories[i].ID == categoryID {
			return &m.categories[i], nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if m.shouldFail {
		return errors.New("service failure")
	}
	if err := category.Validate(); err != nil {
		return err
	}
	m.nextID++
	category.ID = m.nextID
	m.categories = append(m.categories, *category)
	return nil
}

func (m *MockCategoryService) UpdateCategory(category *domain.Category) error {
	if m.shouldFail {
		return errors.New("service failure")
	}
	if err := category.Validate(); err != nil {
		return err
	}
	for i := range m.categories {
		if m.categories[i].ID == category.ID {
			m.categories[i] = *category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) DeleteCategory(categoryID int64) error {
	if m.shouldFail {
		return errors.New("service failure")
	}
	for i := range m.categories {
		if m.categories[i].ID == categoryID {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}
