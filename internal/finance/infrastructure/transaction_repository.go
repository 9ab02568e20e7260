package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/umcode/SpendTrack/internal/finance/domain"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `
	t.id, t.user_id, t.category_id, t.amount, t.type, t.description, t.date, t.created_at, t.updated_at,
	c.id, c.name, c.type, c.created_at, c.updated_at
`

func scanTransaction(scanner interface{ Scan(dest ...any) error }) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var categoryID, catID sql.NullInt64
	var catName, catType sql.NullString
	var catCreatedAt, catUpdatedAt sql.NullTime

	err := scanner.Scan(
		&transaction.ID, &transaction.UserID, &categoryID, &transaction.Amount, &transaction.Type,
		&transaction.Description, &transaction.Date, &transaction.CreatedAt, &transaction.UpdatedAt,
		&catID, &catName, &catType, &catCreatedAt, &catUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		transaction.CategoryID = &categoryID.Int64
	}
	if catID.Valid {
		transaction.Category = &domain.Category{
			ID:        catID.Int64,
			Name:      catName.String,
			Type:      catType.String,
			CreatedAt: catCreatedAt.Time,
			UpdatedAt: catUpdatedAt.Time,
		}
	}
	return &transaction, nil
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByUser(userID string, filters domain.TransactionFilters) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1`
	args := []interface{}{userID}

	if filters.Type != "" {
		args = append(args, filters.Type)
		query += fmt.Sprintf(" AND t.type = $%d", len(args))
	}
	if filters.CategoryID != nil {
		args = append(args, *filters.CategoryID)
		query += fmt.Sprintf(" AND t.category_id = $%d", len(args))
	}
	if filters.StartDate != nil {
		args = append(args, *filters.StartDate)
		query += fmt.Sprintf(" AND t.date >= $%d", len(args))
	}
	if filters.EndDate != nil {
		args = append(args, *filters.EndDate)
		query += fmt.Sprintf(" AND t.date <= $%d", len(args))
	}

	query += " ORDER BY t.created_at DESC"

	return r.queryTransactions(query, args...)
}

func (r *TransactionRepository) FindByUserAndID(userID string, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.id = $2`

	transaction, err := scanTransaction(r.db.QueryRow(query, userID, transactionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

func (r *TransactionRepository) FindByUserAndMonth(userID string, year, month int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1
		  AND EXTRACT(YEAR FROM t.date) = $2
		  AND EXTRACT(MONTH FROM t.date) = $3
		ORDER BY t.created_at DESC`

	return r.queryTransactions(query, userID, year, month)
}

// Filter is deliberately not scoped by owner: /transactions/filter operates
// across all users of the system.
func (r *TransactionRepository) Filter(criteria domain.FilterCriteria) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE 1=1`
	args := []interface{}{}

	if criteria.CategoryID != nil {
		args = append(args, *criteria.CategoryID)
		query += fmt.Sprintf(" AND t.category_id = $%d", len(args))
	}
	if criteria.Type != "" {
		args = append(args, criteria.Type)
		query += fmt.Sprintf(" AND t.type = $%d", len(args))
	}

	query += " ORDER BY t.id"

	return r.queryTransactions(query, args...)
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, type, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		query,
		transaction.UserID, transaction.CategoryID, transaction.Amount,
		transaction.Type, transaction.Description, transaction.Date,
	).Scan(&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt)
}

func (r *TransactionRepository) Update(transaction *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET category_id = $1, amount = $2, type = $3, description = $4, date = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(
		query,
		transaction.CategoryID, transaction.Amount, transaction.Type,
		transaction.Description, transaction.Date, transaction.ID, transaction.UserID,
	).Scan(&transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return financeErrors.ErrTransactionNotFound
		}
		return err
	}
	return nil
}

func (r *TransactionRepository) Delete(userID string, transactionID int64) error {
	result, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}
