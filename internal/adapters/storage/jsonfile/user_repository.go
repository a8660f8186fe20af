package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/paperfx/paperfx_app/pkg/jsonstore"
)

const usersFile = "users.json"

// UserRepository persists all users as one JSON array ordered by ID.
type UserRepository struct {
	store *jsonstore.Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store *jsonstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) loadAll() ([]domain.User, error) {
	var users []domain.User
	if err := r.store.Load(usersFile, &users); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.User{}, nil
		}
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// CreateUser assigns the next sequential user ID and persists the user.
// The ID assignment and the duplicate-username check share one
// read-modify-write cycle, so concurrent registrations cannot collide.
func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var created domain.User
	err := jsonstore.Update(r.store, usersFile, func(users *[]domain.User, exists bool) error {
		var maxID int64
		for _, existing := range *users {
			if existing.Username == user.Username {
				return fmt.Errorf("%w: username '%s'", apperrors.ErrDuplicate, user.Username)
			}
			if existing.UserID > maxID {
				maxID = existing.UserID
			}
		}
		user.UserID = maxID + 1
		*users = append(*users, user)
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindUserByID retrieves a specific user by their ID.
func (r *UserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	users, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].UserID == userID {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, userID)
}

// FindUserByUsername retrieves a specific user by their username.
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("%w: user '%s'", apperrors.ErrNotFound, username)
}

// FindUsers retrieves all users ordered by ID.
func (r *UserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	return r.loadAll()
}
