package application

import (
	"github.com/umcode/SpendTrack/internal/finance/domain"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories() ([]domain.Category, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(categoryID int64) (*domain.Category, error) {
	return s.repo.FindByID(categoryID)
}

func (s *CategoryService) CreateCategory(category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return s.repo.Save(category)
}

func (s *CategoryService) UpdateCategory(category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return s.repo.Update(category)
}

func (s *CategoryService) DeleteCategory(categoryID int64) error {
	return s.repo.Delete(categoryID)
}

func (s *CategoryService) DoesCategoryExist(categoryID int64) (bool, error) {
	return s.repo.ExistsByID(categoryID)
}
