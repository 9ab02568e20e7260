package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	financeErrors "github.com/umcode/SpendTrack/internal/finance/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	bcryptCost        = 12
)

var ErrInternalError = errors.New("internal Server Error")

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	Register(name, email, password, passwordConfirmation string) (*User, error)
	GetUserByID(userID string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	VerifyPassword(user *User, password string) bool
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)

	return string(hashedPasswordBytes), err
}

// Register validates all fields the way the API contract expects: every
// offending field is reported at once, keyed by field name.
func (s *service) Register(name, email, password, passwordConfirmation string) (*User, error) {
	fields := map[string][]string{}

	if name == "" {
		fields["name"] = append(fields["name"], "The name field is required.")
	}

	if email == "" {
		fields["email"] = append(fields["email"], "The email field is required.")
	} else if err := checkmail.ValidateFormat(email); err != nil || len(email) > maxEmailLength {
		fields["email"] = append(fields["email"], "The email must be a valid email address.")
	}

	if len(password) < minPasswordLength {
		fields["password"] = append(fields["password"], fmt.Sprintf("The password must be at least %d characters.", minPasswordLength))
	}
	if password != passwordConfirmation {
		fields["password"] = append(fields["password"], "The password confirmation does not match.")
	}

	if len(fields) > 0 {
		return nil, financeErrors.NewFieldsValidationError(fields)
	}

	exists, err := s.repo.emailExists(email)
	if err != nil {
		fmt.Println("Error with database request")
		return nil, ErrInternalError
	}
	if exists {
		return nil, financeErrors.NewFieldValidationError("email", "The email has already been taken.")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		fmt.Println("Error during hashing the password")
		return nil, ErrInternalError
	}

	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.repo.createUser(user); err != nil {
		fmt.Println("Error during user creation:", err)
		return nil, ErrInternalError
	}

	return user, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(email)
}

func (s *service) VerifyPassword(user *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
