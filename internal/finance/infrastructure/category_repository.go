package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, type, created_at, updated_at FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Type, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID int64) (*domain.Category, error) {
	query := `SELECT id, name, type, created_at, updated_at FROM categories WHERE id = $1`

	var category domain.Category
	err := r.db.QueryRow(query, categoryID).Scan(&category.ID, &category.Name, &category.Type, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := `
		INSERT INTO categories (name, type, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query, category.Name, category.Type).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *CategoryRepository) Update(category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $1, type = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(query, category.Name, category.Type, category.ID).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return financeErrors.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (r *CategoryRepository) Delete(categoryID int64) error {
	result, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) ExistsByID(categoryID int64) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)"
	err := r.db.QueryRow(query, categoryID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
