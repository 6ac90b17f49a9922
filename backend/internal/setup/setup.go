package setup

import (
	"context"
	"time"

	"github.com/itchan-dev/forum-api/backend/internal/handler"
	"github.com/itchan-dev/forum-api/backend/internal/security"
	"github.com/itchan-dev/forum-api/backend/internal/service"
	"github.com/itchan-dev/forum-api/backend/internal/storage/pg"
	"github.com/itchan-dev/forum-api/backend/internal/utils"
	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/jwt"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	rl "github.com/itchan-dev/forum-api/shared/middleware/ratelimiter"
)

const (
	authLimiterBurst      = 5
	writeLimiterBurst     = 10
	authLimiterExpiration = time.Hour
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.TokenManager
	AuthMiddleware *mw.Auth
	// AuthLimiter and WriteLimiter are nil when their configured rate is 0.
	AuthLimiter  *rl.KeyRateLimiter
	WriteLimiter *rl.KeyRateLimiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg, utils.NewId)
	if err != nil {
		return nil, err
	}

	hasher := security.NewBcryptPasswordHash(cfg.Public.BcryptCost)
	tokens := jwt.New(cfg.AccessTokenKey(), cfg.RefreshTokenKey(), cfg.AccessTokenAge())

	user := service.NewUser(storage, hasher)
	auth := service.NewAuth(storage, storage, hasher, tokens)
	thread := service.NewThread(storage, storage, storage, storage)
	comment := service.NewComment(storage, storage)
	reply := service.NewReply(storage, storage, storage)

	h := handler.New(user, auth, thread, comment, reply, storage)

	var limiter *rl.KeyRateLimiter
	if cfg.Public.AuthRateLimit > 0 {
		limiter = rl.New(cfg.Public.AuthRateLimit, authLimiterBurst, authLimiterExpiration)
	}

	var writeLimiter *rl.KeyRateLimiter
	if cfg.Public.WriteRateLimit > 0 {
		writeLimiter = rl.New(cfg.Public.WriteRateLimit, writeLimiterBurst, authLimiterExpiration)
	}

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            tokens,
		AuthMiddleware: mw.NewAuth(tokens),
		AuthLimiter:    limiter,
		WriteLimiter:   writeLimiter,
	}, nil
}
