package security

import (
	"context"
	"errors"
	"fmt"

	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHash hashes and checks passwords with bcrypt.
type BcryptPasswordHash struct {
	cost int
}

// NewBcryptPasswordHash uses bcrypt.DefaultCost when cost is 0.
func NewBcryptPasswordHash(cost int) *BcryptPasswordHash {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHash{cost: cost}
}

func (b *BcryptPasswordHash) Hash(ctx context.Context, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword returns an authentication error when password does not match hashed.
func (b *BcryptPasswordHash) ComparePassword(ctx context.Context, password, hashed string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return internal_errors.Authentication("wrong credentials")
	}
	return fmt.Errorf("failed to compare password: %w", err)
}
