package auth

import (
	"database/sql"
	"errors"
	"fmt"
)

// TokenRepository persists opaque bearer tokens. A user may hold any number
// of tokens at once; each login issues a fresh one and logout revokes only
// the token used for the request.
type TokenRepository interface {
	createToken(token, userID string) error
	getUserIDByToken(token string) (string, error)
	deleteToken(token string) error
	touchToken(token string) error
}

type tokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

func (r *tokenRepository) createToken(token, userID string) error {
	query := `
		INSERT INTO access_tokens (token, user_id, created_at, last_used_at)
		VALUES ($1, $2, NOW(), NOW())
	`
	_, err := r.db.Exec(query, token, userID)
	if err != nil {
		return fmt.Errorf("could not create access token: %v", err)
	}
	return nil
}

func (r *tokenRepository) getUserIDByToken(token string) (string, error) {
	var userID string
	query := `SELECT user_id FROM access_tokens WHERE token = $1`
	err := r.db.QueryRow(query, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("could not look up access token: %v", err)
	}
	return userID, nil
}

func (r *tokenRepository) deleteToken(token string) error {
	// Deleting an already-revoked token is a no-op.
	_, err := r.db.Exec(`DELETE FROM access_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("could not delete access token: %v", err)
	}
	return nil
}

func (r *tokenRepository) touchToken(token string) error {
	_, err := r.db.Exec(`UPDATE access_tokens SET last_used_at = NOW() WHERE token = $1`, token)
	return err
}
