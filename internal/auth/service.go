package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/umcode/SpendTrack/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("access token is invalid")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Register(name, email, password, passwordConfirmation string) (*user.User, string, error)
	Login(email, password string) (*user.User, string, error)
	Logout(token string) error
	CurrentUser(token string) (*user.User, error)
	VerifyToken(token string) (string, error)
}

type service struct {
	repo        TokenRepository
	userService user.Service
}

func NewAuthService(repo TokenRepository, userService user.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
	}
}

func generateToken() (string, error) {
	tokenBytes := make([]byte, 32)

	_, err := rand.Read(tokenBytes)
	if err != nil {
		return "", ErrInternalError
	}

	return hex.EncodeToString(tokenBytes), nil
}

func (s *service) issueToken(userID string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", ErrInternalError
	}
	if err := s.repo.createToken(token, userID); err != nil {
		fmt.Println("error during token creation:", err)
		return "", ErrInternalError
	}
	return token, nil
}

// Register creates the user and issues the first bearer token for it.
// Validation failures surface unchanged from the user service.
func (s *service) Register(name, email, password, passwordConfirmation string) (*user.User, string, error) {
	newUser, err := s.userService.Register(name, email, password, passwordConfirmation)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(newUser.ID)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return newUser, token, nil
}

// Login issues a fresh token on every call: concurrent sessions per user are
// permitted and independent of each other.
func (s *service) Login(email, password string) (*user.User, string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		fmt.Println("error when getting user from database:", err)
		return nil, "", ErrInternalError
	}

	if !s.userService.VerifyPassword(existingUser, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(existingUser.ID)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return existingUser, token, nil
}

// Logout revokes only the presented token. Other sessions of the same user
// stay valid, and revoking an unknown token succeeds silently.
func (s *service) Logout(token string) error {
	if err := s.repo.deleteToken(token); err != nil {
		return ErrInternalError
	}
	return nil
}

func (s *service) CurrentUser(token string) (*user.User, error) {
	userID, err := s.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	existingUser, err := s.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, ErrInternalError
	}
	return existingUser, nil
}

func (s *service) VerifyToken(token string) (string, error) {
	userID, err := s.repo.getUserIDByToken(token)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return "", ErrInvalidToken
		}
		fmt.Println("error during token lookup:", err)
		return "", ErrInternalError
	}

	// Best effort only, a failed touch must not reject the request.
	_ = s.repo.touchToken(token)

	return userID, nil
}
