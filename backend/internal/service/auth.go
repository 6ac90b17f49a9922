package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

const (
	refreshAuthenticationUseCase = "REFRESH_AUTHENTICATION_USE_CASE"
	deleteAuthenticationUseCase  = "DELETE_AUTHENTICATION_USE_CASE"
)

type AuthService interface {
	Login(ctx context.Context, payload domain.Payload) (domain.NewAuth, error)
	Refresh(ctx context.Context, payload domain.Payload) (string, error)
	Logout(ctx context.Context, payload domain.Payload) error
}

type Auth struct {
	users  UserRepository
	tokens AuthenticationRepository
	hasher PasswordHash
	jwt    TokenManager
}

func NewAuth(users UserRepository, tokens AuthenticationRepository, hasher PasswordHash, jwt TokenManager) AuthService {
	return &Auth{users: users, tokens: tokens, hasher: hasher, jwt: jwt}
}

// Login checks credentials and issues an access/refresh pair. The refresh
// token is stored so it can later be exchanged or revoked.
func (s *Auth) Login(ctx context.Context, payload domain.Payload) (domain.NewAuth, error) {
	creds, err := domain.ParseUserLogin(payload)
	if err != nil {
		return domain.NewAuth{}, err
	}

	hashed, err := s.users.GetPasswordByUsername(ctx, creds.Username)
	if err != nil {
		return domain.NewAuth{}, err
	}
	if err := s.hasher.ComparePassword(ctx, creds.Password, hashed); err != nil {
		return domain.NewAuth{}, err
	}
	id, err := s.users.GetIdByUsername(ctx, creds.Username)
	if err != nil {
		return domain.NewAuth{}, err
	}

	claims := domain.TokenPayload{Id: id, Username: creds.Username}
	accessToken, err := s.jwt.CreateAccessToken(claims)
	if err != nil {
		return domain.NewAuth{}, err
	}
	refreshToken, err := s.jwt.CreateRefreshToken(claims)
	if err != nil {
		return domain.NewAuth{}, err
	}
	auth, err := domain.ParseNewAuth(domain.Payload{"accessToken": accessToken, "refreshToken": refreshToken})
	if err != nil {
		return domain.NewAuth{}, err
	}

	if err := s.tokens.AddToken(ctx, auth.RefreshToken); err != nil {
		return domain.NewAuth{}, err
	}
	return auth, nil
}

// Refresh exchanges a stored refresh token for a new access token.
func (s *Auth) Refresh(ctx context.Context, payload domain.Payload) (string, error) {
	refreshToken, err := domain.ParseRefreshToken(refreshAuthenticationUseCase, payload)
	if err != nil {
		return "", err
	}
	if err := s.jwt.VerifyRefreshToken(refreshToken); err != nil {
		return "", err
	}
	if err := s.tokens.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return "", err
	}
	claims, err := s.jwt.DecodePayload(refreshToken)
	if err != nil {
		return "", err
	}
	return s.jwt.CreateAccessToken(claims)
}

func (s *Auth) Logout(ctx context.Context, payload domain.Payload) error {
	refreshToken, err := domain.ParseRefreshToken(deleteAuthenticationUseCase, payload)
	if err != nil {
		return err
	}
	if err := s.tokens.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return err
	}
	return s.tokens.DeleteToken(ctx, refreshToken)
}
