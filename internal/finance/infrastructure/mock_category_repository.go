package infrastructure

import (
	"time"

	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

// MockCategoryRepository is an in-memory CategoryRepository used by service
// and handler tests.
type MockCategoryRepository struct {
	Categories []domain.Category
	Err        error
	nextID     int64
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]domain.Category(nil), m.Categories...), nil
}

func (m *MockCategoryRepository) FindByID(categoryID int64) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	category.ID = m.nextID
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) Update(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			category.CreatedAt = m.Categories[i].CreatedAt
			category.UpdatedAt = time.Now()
			m.Categories[i] = *category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(categoryID int64) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) ExistsByID(categoryID int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			return true, nil
		}
	}
	return false, nil
}
