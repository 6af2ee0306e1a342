package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clauselens/contract-review-api/internal/auth"
	"github.com/clauselens/contract-review-api/internal/constants"
	"github.com/clauselens/contract-review-api/internal/models"
	"github.com/clauselens/contract-review-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired        = errors.New("email and password are required")
	ErrEmailTaken           = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles signup, login, and token issuing.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret []byte) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// Signup creates a new user and returns a freshly issued token bound to it.
func (s *AuthService) Signup(input SignupInput) (string, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return "", ErrEmailRequired
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", ErrFailedToCreateUser
	}

	return s.issueToken(user.ID)
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password return the same error so neither check leaks.
func (s *AuthService) Login(input LoginInput) (string, error) {
	if input.Email == "" || input.Password == "" {
		return "", ErrEmailRequired
	}

	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(user.ID)
}

// VerifyToken resolves a bearer token to the user ID it was issued for.
func (s *AuthService) VerifyToken(token string) (uint64, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *AuthService) issueToken(userID uint64) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, constants.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
