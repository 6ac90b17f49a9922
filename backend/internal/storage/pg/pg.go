package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/logger"

	_ "github.com/lib/pq"
)

// TimestampLayout is ISO-8601 UTC with milliseconds. Stored as TEXT, so
// lexicographic order matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

type Storage struct {
	db    *sql.DB
	idGen func() string
	now   func() time.Time
}

// New connects to postgres, applies pending migrations and returns a Storage
// whose new row ids are built from idGen.
func New(ctx context.Context, cfg *config.Config, idGen func() string) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	storage := &Storage{db: db, idGen: idGen, now: time.Now}
	if err := storage.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return storage, nil
}

func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.Public.Pool.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Public.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Public.Pool.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) timestamp() string {
	return s.now().UTC().Format(TimestampLayout)
}

func (s *Storage) newId(kind string) string {
	return kind + "-" + s.idGen()
}
