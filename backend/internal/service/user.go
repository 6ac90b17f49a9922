package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/logger"
)

type UserService interface {
	Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
}

type User struct {
	users  UserRepository
	hasher PasswordHash
}

func NewUser(users UserRepository, hasher PasswordHash) UserService {
	return &User{users: users, hasher: hasher}
}

func (s *User) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	user, err := domain.ParseRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := s.users.VerifyAvailableUsername(ctx, user.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	hashed, err := s.hasher.Hash(ctx, user.Password)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	user.Password = hashed

	registered, err := s.users.AddUser(ctx, user)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	logger.Log.Info("user registered", "user_id", registered.Id)
	return registered, nil
}
