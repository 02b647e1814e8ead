package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourbase/internal/auth"
	apperrors "tourbase/internal/errors"
	"tourbase/internal/model"
	"tourbase/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (user *model.User, token string, err error)
	Login(ctx context.Context, email, password string) (user *model.User, token string, err error)
}

type authService struct {
	users      repository.UserRepository
	validator  *SignupValidator
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, validator *SignupValidator, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		validator:  validator,
		jwtService: jwtService,
	}
}

// Signup validates the input, enforces email uniqueness, and creates the
// identity with a bcrypt hash of the password. A signup racing another
// with the same email loses on the store's unique index, not an app lock.
func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, string, error) {
	if err := s.validator.ValidateSignup(in); err != nil {
		return nil, "", err
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrUserExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	dob, err := time.Parse(dateOfBirthLayout, in.DateOfBirth)
	if err != nil {
		return nil, "", apperrors.ErrInvalidDateOfBirth
	}
	user := &model.User{
		Name:             in.Name,
		Email:            in.Email,
		PasswordHash:     string(hashedPassword),
		PhoneNumber:      in.PhoneNumber,
		Gender:           model.Gender(in.Gender),
		DateOfBirth:      dob,
		MembershipStatus: model.MembershipStatus(in.MembershipStatus),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrUserExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login verifies the credentials and issues a fresh token. The error
// distinguishes unknown email from wrong password, matching the original
// API contract.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, "", err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrIncorrectEmail
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrIncorrectPassword
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}
