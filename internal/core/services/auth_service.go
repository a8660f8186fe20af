package services

import (
	"context"
	"strconv"
	"time"

	"github.com/paperfx/paperfx_app/internal/core/domain"
	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/platform/config"
	"github.com/paperfx/paperfx_app/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
// The token subject carries the numeric user ID.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	subject := strconv.FormatInt(user.UserID, 10)
	accessToken, err := utils.GenerateJWT(subject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
