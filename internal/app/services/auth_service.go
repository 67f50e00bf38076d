package services

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sonquang/laixe-registry/internal/app/models/dto"
	"github.com/sonquang/laixe-registry/internal/pkg/apperrors"
	"github.com/sonquang/laixe-registry/internal/pkg/auth"
)

// AuthService defines the interface for operator authentication
type AuthService interface {
	Login(username, password string) (*dto.TokenResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	jwtService        *auth.JWTService
	adminUsername     string
	adminPasswordHash string
}

// NewAuthService creates a new auth service instance. The configured admin
// password is hashed once here so only the hash stays in memory.
func NewAuthService(jwtService *auth.JWTService, adminUsername, adminPassword string) (AuthService, error) {
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authServiceImpl{
		jwtService:        jwtService,
		adminUsername:     adminUsername,
		adminPasswordHash: hash,
	}, nil
}

// Login verifies the operator credentials and issues an access token. The
// password check runs even for an unknown username so both failure paths
// cost the same.
func (s *authServiceImpl) Login(username, password string) (*dto.TokenResponse, error) {
	passwordOK := auth.CheckPassword(s.adminPasswordHash, password)
	if username != s.adminUsername || !passwordOK {
		log.Warn().Str("username", username).Msg("Rejected login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info().Str("username", username).Msg("Operator logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
