package config

import (
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public  `validate:"required"`
	Private Private `validate:"required"`
}

type Public struct {
	Http           Http          `yaml:"http" validate:"required"`
	Log            Log           `yaml:"log"`
	Pool           Pool          `yaml:"pool"`
	AccessTokenAge time.Duration `yaml:"access_token_age" validate:"required"`
	BcryptCost     int           `yaml:"bcrypt_cost" validate:"omitempty,min=4,max=31"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	SecureHeaders  bool          `yaml:"secure_headers"`
	AuthRateLimit  float64       `yaml:"auth_rate_limit" validate:"gte=0"`  // req/s per client IP, 0 disables
	WriteRateLimit float64       `yaml:"write_rate_limit" validate:"gte=0"` // req/s per user, 0 disables
}

type Http struct {
	Port            int           `yaml:"port" validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

type Pool struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg              Pg     `yaml:"pg" validate:"required"`
	AccessTokenKey  string `yaml:"access_token_key" validate:"required"`
	RefreshTokenKey string `yaml:"refresh_token_key" validate:"required"`
}

func (c *Config) AccessTokenKey() string {
	return c.Private.AccessTokenKey
}

func (c *Config) RefreshTokenKey() string {
	return c.Private.RefreshTokenKey
}

func (c *Config) AccessTokenAge() time.Duration {
	return c.Public.AccessTokenAge
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file " + configPath + ": " + err.Error())
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, then applies
// FORUM_* environment overrides (a .env file in configFolder is loaded first
// when present). It panics if the result does not validate.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	_ = godotenv.Load(path.Join(configFolder, ".env"))

	cfg := &Config{Public: public, Private: private}
	applyEnv(cfg)
	cfg.setDefaults()

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}

func applyEnv(cfg *Config) {
	setString(&cfg.Private.Pg.Host, "FORUM_PG_HOST")
	setInt(&cfg.Private.Pg.Port, "FORUM_PG_PORT")
	setString(&cfg.Private.Pg.User, "FORUM_PG_USER")
	setString(&cfg.Private.Pg.Password, "FORUM_PG_PASSWORD")
	setString(&cfg.Private.Pg.Dbname, "FORUM_PG_DBNAME")
	setString(&cfg.Private.AccessTokenKey, "FORUM_ACCESS_TOKEN_KEY")
	setString(&cfg.Private.RefreshTokenKey, "FORUM_REFRESH_TOKEN_KEY")
	setInt(&cfg.Public.Http.Port, "FORUM_HTTP_PORT")
}

func (c *Config) setDefaults() {
	if c.Public.Http.ShutdownTimeout == 0 {
		c.Public.Http.ShutdownTimeout = 10 * time.Second
	}
	if c.Public.Log.Level == "" {
		c.Public.Log.Level = "info"
	}
	if c.Public.Pool.MaxOpenConns == 0 {
		c.Public.Pool.MaxOpenConns = 25
	}
	if c.Public.Pool.MaxIdleConns == 0 {
		c.Public.Pool.MaxIdleConns = 10
	}
	if c.Public.Pool.ConnMaxLifetime == 0 {
		c.Public.Pool.ConnMaxLifetime = 5 * time.Minute
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
