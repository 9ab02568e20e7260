package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
	"github.com/umcode/SpendTrack/internal/finance/infrastructure"
)

func TestCategoryService_CRUD(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category := &domain.Category{Name: "Food", Type: "expense"}
	assert.NoError(t, service.CreateCategory(category))
	assert.NotZero(t, category.ID)

	found, err := service.GetCategory(category.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Food", found.Name)

	category.Name = "Groceries"
	assert.NoError(t, service.UpdateCategory(category))

	all, err := service.GetAllCategories()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Groceries", all[0].Name)

	assert.NoError(t, service.DeleteCategory(category.ID))

	_, err = service.GetCategory(category.ID)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestCategoryService_ValidationErrors(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	err := service.CreateCategory(&domain.Category{Name: ""})
	assert.True(t, financeErrors.IsValidationError(err))

	err = service.CreateCategory(&domain.Category{Name: "Food", Type: "transfer"})
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestCategoryService_NotFound(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	_, err := service.GetCategory(42)
	assert.True(t, financeErrors.IsNotFoundError(err))

	err = service.UpdateCategory(&domain.Category{ID: 42, Name: "Ghost"})
	assert.True(t, financeErrors.IsNotFoundError(err))

	err = service.DeleteCategory(42)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestCategoryService_EmptyListIsNotNil(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	all, err := service.GetAllCategories()
	assert.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
