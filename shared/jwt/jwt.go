package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"github.com/itchan-dev/forum-api/shared/logger"
)

// TokenManager issues and checks the access/refresh token pair.
type TokenManager interface {
	CreateAccessToken(payload domain.TokenPayload) (string, error)
	CreateRefreshToken(payload domain.TokenPayload) (string, error)
	VerifyRefreshToken(token string) error
	DecodePayload(token string) (domain.TokenPayload, error)
	VerifyAccessToken(token string) (domain.TokenPayload, error)
}

type claims struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Jwt struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	now        func() time.Time
}

func New(accessKey, refreshKey string, accessTTL time.Duration) *Jwt {
	return &Jwt{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessTTL:  accessTTL,
		now:        time.Now,
	}
}

func (j *Jwt) sign(payload domain.TokenPayload, key []byte, ttl time.Duration) (string, error) {
	now := j.now()
	c := claims{
		Id:       payload.Id,
		Username: payload.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(key)
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}
	return token, nil
}

func (j *Jwt) CreateAccessToken(payload domain.TokenPayload) (string, error) {
	return j.sign(payload, j.accessKey, j.accessTTL)
}

// CreateRefreshToken issues a token without expiry; it stays valid until it
// is removed from the authentications table.
func (j *Jwt) CreateRefreshToken(payload domain.TokenPayload) (string, error) {
	return j.sign(payload, j.refreshKey, 0)
}

func (j *Jwt) parse(tokenStr string, key []byte) (*claims, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &c, nil
}

func (j *Jwt) VerifyRefreshToken(token string) error {
	if _, err := j.parse(token, j.refreshKey); err != nil {
		return internal_errors.Invariant("refresh token is invalid")
	}
	return nil
}

// DecodePayload reads the claims without checking the signature. Callers
// verify the token first.
func (j *Jwt) DecodePayload(token string) (domain.TokenPayload, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return domain.TokenPayload{}, internal_errors.Invariant("token is malformed")
	}
	return domain.TokenPayload{Id: c.Id, Username: c.Username}, nil
}

func (j *Jwt) VerifyAccessToken(token string) (domain.TokenPayload, error) {
	c, err := j.parse(token, j.accessKey)
	if err != nil {
		return domain.TokenPayload{}, internal_errors.Authentication("access token is invalid")
	}
	if c.Id == "" {
		return domain.TokenPayload{}, internal_errors.Authentication("access token is invalid")
	}
	return domain.TokenPayload{Id: c.Id, Username: c.Username}, nil
}
