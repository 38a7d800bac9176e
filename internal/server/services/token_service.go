package services

import (
	"fmt"
	"time"

	"github.com/kamikazebr/engage-server/internal/config"
	"github.com/kamikazebr/engage-server/pkg/utils"
)

// TokenService signs the session token handed out after a code is redeemed.
type TokenService struct {
	secret     string
	expiration time.Duration
}

func NewTokenService(cfg *config.Config) (*TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not configured")
	}
	return &TokenService{secret: cfg.JWTSecret, expiration: cfg.JWTExpiration}, nil
}

func (s *TokenService) Issue(email string) (string, time.Time, error) {
	return utils.GenerateJWT(email, s.secret, s.expiration)
}
