package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umcode/SpendTrack/internal/user"
)

type mockTokenRepository struct {
	tokens map[string]string // token -> userID
}

func newMockTokenRepository() *mockTokenRepository {
	return &mockTokenRepository{tokens: make(map[string]string)}
}

func (m *mockTokenRepository) createToken(token, userID string) error {
	m.tokens[token] = userID
	return nil
}

func (m *mockTokenRepository) getUserIDByToken(token string) (string, error) {
	userID, ok := m.tokens[token]
	if !ok {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func (m *mockTokenRepository) deleteToken(token string) error {
	delete(m.tokens, token)
	return nil
}

func (m *mockTokenRepository) touchToken(token string) error {
	return nil
}

type mockUserService struct {
	usersByEmail map[string]*user.User
	passwords    map[string]string // email -> plaintext
	registerErr  error
}

func newMockUserService() *mockUserService {
	return &mockUserService{
		usersByEmail: make(map[string]*user.User),
		passwords:    make(map[string]string),
	}
}

func (m *mockUserService) addUser(id, name, email, password string) *user.User {
	u := &user.User{ID: id, Name: name, Email: email}
	m.usersByEmail[email] = u
	m.passwords[email] = password
	return u
}

func (m *mockUserService) Register(name, email, password, passwordConfirmation string) (*user.User, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	u := m.addUser("user-"+name, name, email, password)
	return u, nil
}

func (m *mockUserService) GetUserByID(userID string) (*user.User, error) {
	for _, u := range m.usersByEmail {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserService) GetUserByEmail(email string) (*user.User, error) {
	u, ok := m.usersByEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserService) VerifyPassword(u *user.User, password string) bool {
	return m.passwords[u.Email] == password
}

func TestLogin_Success(t *testing.T) {
	repo := newMockTokenRepository()
	users := newMockUserService()
	users.addUser("user-1", "Umar Sabirin", "umar@example.com", "password123")
	service := NewAuthService(repo, users)

	loggedIn, token, err := service.Login("umar@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", loggedIn.ID)
	assert.Len(t, token, 64)

	userID, err := service.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockTokenRepository()
	users := newMockUserService()
	users.addUser("user-1", "Umar Sabirin", "umar@example.com", "password123")
	service := NewAuthService(repo, users)

	_, _, err := service.Login("umar@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, repo.tokens)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := newMockTokenRepository()
	service := NewAuthService(repo, newMockUserService())

	_, _, err := service.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EachLoginIssuesIndependentToken(t *testing.T) {
	repo := newMockTokenRepository()
	users := newMockUserService()
	users.addUser("user-1", "Umar Sabirin", "umar@example.com", "password123")
	service := NewAuthService(repo, users)

	_, first, err := service.Login("umar@example.com", "password123")
	assert.NoError(t, err)
	_, second, err := service.Login("umar@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Revoking one session leaves the other valid.
	assert.NoError(t, service.Logout(first))

	_, err = service.VerifyToken(first)
	assert.ErrorIs(t, err, ErrInvalidToken)

	userID, err := service.VerifyToken(second)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestLogout_UnknownTokenIsNoOp(t *testing.T) {
	repo := newMockTokenRepository()
	service := NewAuthService(repo, newMockUserService())

	assert.NoError(t, service.Logout("never-issued"))
}

func TestCurrentUser(t *testing.T) {
	repo := newMockTokenRepository()
	users := newMockUserService()
	users.addUser("user-1", "Umar Sabirin", "umar@example.com", "password123")
	service := NewAuthService(repo, users)

	_, token, err := service.Login("umar@example.com", "password123")
	assert.NoError(t, err)

	current, err := service.CurrentUser(token)
	assert.NoError(t, err)
	assert.Equal(t, "umar@example.com", current.Email)

	_, err = service.CurrentUser("bogus")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegister_IssuesToken(t *testing.T) {
	repo := newMockTokenRepository()
	service := NewAuthService(repo, newMockUserService())

	newUser, token, err := service.Register("Umar Sabirin", "umar@example.com", "password123", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := service.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, newUser.ID, userID)
}
