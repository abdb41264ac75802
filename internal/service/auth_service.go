package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/utils"
)

var (
	ErrValidation         = errors.New("invalid or missing input")
	ErrNameTaken          = errors.New("user with this name already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid name or password")
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, name, password string) (*model.User, error)
	Login(ctx context.Context, name, password string) (*model.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new account. The first account ever created gets
// the admin role; the repository decides that atomically. No token is
// issued here, the client logs in afterwards.
func (s *authService) Register(ctx context.Context, name, password string) (*model.User, error) {
	if strings.TrimSpace(name) == "" || password == "" {
		return nil, fmt.Errorf("name and password are required: %w", ErrValidation)
	}

	existingUser, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrNameTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			// Lost the race against a concurrent registration of the same name.
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *authService) Login(ctx context.Context, name, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by name: %w", err)
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}
