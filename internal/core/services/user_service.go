package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	portsrepo "github.com/paperfx/paperfx_app/internal/core/ports/repositories"
	"github.com/paperfx/paperfx_app/internal/dto"
	"github.com/paperfx/paperfx_app/internal/utils"
)

const minPasswordLength = 4

type UserService struct {
	userRepo      portsrepo.UserRepositoryFacade
	portfolioRepo portsrepo.PortfolioWriter
}

// NewUserService creates a new UserService. The portfolio writer is needed
// because registration creates the user's empty portfolio in the same step.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, portfolioRepo portsrepo.PortfolioWriter) *UserService {
	return &UserService{userRepo: userRepo, portfolioRepo: portfolioRepo}
}

// RegisterUser validates the credentials, stores the user with a bcrypt
// password hash and creates their empty portfolio.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	created, err := s.userRepo.CreateUser(ctx, domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		CreatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username '%s' is already taken", apperrors.ErrDuplicate, req.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.portfolioRepo.SavePortfolio(ctx, domain.NewPortfolio(created.UserID, now)); err != nil {
		return nil, fmt.Errorf("failed to create portfolio for user %d: %w", created.UserID, err)
	}
	return created, nil
}

// AuthenticateUser verifies username/password. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by their username.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// ListUsers retrieves all users ordered by ID.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
