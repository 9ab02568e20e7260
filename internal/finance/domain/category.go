package domain

import (
	"time"

	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

// Category is a spending/income category. Categories are global to the
// system and are not owned by any user.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // "income", "expense" or empty
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return financeErrors.NewFieldValidationError("name", "The name field is required.")
	}
	if c.Type != "" && !IsValidTransactionType(c.Type) {
		return financeErrors.NewFieldValidationError("type", "The type must be income or expense.")
	}
	return nil
}

type CategoryRepository interface {
	FindAll() ([]Category, error)
	FindByID(categoryID int64) (*Category, error)
	Save(category *Category) error
	Update(category *Category) error
	Delete(categoryID int64) error
	ExistsByID(categoryID int64) (bool, error)
}
