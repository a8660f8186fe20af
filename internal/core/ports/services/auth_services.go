package services

import (
	"context"
	"time"

	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// TokenSvcFacade issues access tokens for authenticated users
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// together with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
