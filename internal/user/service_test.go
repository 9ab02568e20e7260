package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
)

type mockRepository struct {
	users       map[string]*User
	lastCreated *User
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[string]*User)}
}

func (m *mockRepository) createUser(user *User) error {
	m.users[user.Email] = user
	m.lastCreated = user
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (m *mockRepository) getUserByID(id string) (*User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) emailExists(email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func TestRegister_Success(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	user, err := service.Register("Umar Sabirin", "umar@example.com", "password123", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "umar@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash, "plaintext password must never be stored")
	assert.True(t, service.VerifyPassword(user, "password123"))
	assert.False(t, service.VerifyPassword(user, "wrongpassword"))
}

func TestRegister_CollectsAllFieldErrors(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	_, err := service.Register("", "not-an-email", "123", "321")
	assert.Error(t, err)

	validationErr := financeErrors.AsValidationError(err)
	assert.NotNil(t, validationErr)
	assert.Contains(t, validationErr.Fields, "name")
	assert.Contains(t, validationErr.Fields, "email")
	assert.Contains(t, validationErr.Fields, "password")
	assert.Len(t, validationErr.Fields["password"], 2, "short password and mismatched confirmation are both reported")
	assert.Nil(t, repo.lastCreated)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	_, err := service.Register("Umar Sabirin", "umar@example.com", "password123", "password123")
	assert.NoError(t, err)

	_, err = service.Register("Other Person", "umar@example.com", "password456", "password456")
	assert.Error(t, err)

	validationErr := financeErrors.AsValidationError(err)
	assert.NotNil(t, validationErr)
	assert.Contains(t, validationErr.Fields, "email")
}

func TestRegister_PasswordConfirmationMismatch(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	_, err := service.Register("Umar Sabirin", "umar@example.com", "password123", "password124")
	assert.Error(t, err)

	validationErr := financeErrors.AsValidationError(err)
	assert.NotNil(t, validationErr)
	assert.Contains(t, validationErr.Fields, "password")
}
