package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPublic = `
http:
  port: 5000
access_token_age: 3h
log:
  level: debug
`

const validPrivate = `
pg:
  host: localhost
  port: 5432
  user: forum
  password: secret
  dbname: forumapi
access_token_key: access
refresh_token_key: refresh
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	cfg := MustLoad(writeConfig(t, validPublic, validPrivate))

	assert.Equal(t, 5000, cfg.Public.Http.Port)
	assert.Equal(t, 3*time.Hour, cfg.AccessTokenAge())
	assert.Equal(t, "debug", cfg.Public.Log.Level)
	assert.Equal(t, "access", cfg.AccessTokenKey())
	assert.Equal(t, "refresh", cfg.RefreshTokenKey())
	assert.Equal(t, "forumapi", cfg.Private.Pg.Dbname)

	// defaults
	assert.Equal(t, 10*time.Second, cfg.Public.Http.ShutdownTimeout)
	assert.Equal(t, 25, cfg.Public.Pool.MaxOpenConns)
}

func TestMustLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FORUM_PG_PASSWORD", "from-env")
	t.Setenv("FORUM_PG_PORT", "6543")
	t.Setenv("FORUM_ACCESS_TOKEN_KEY", "env-access")

	cfg := MustLoad(writeConfig(t, validPublic, validPrivate))

	assert.Equal(t, "from-env", cfg.Private.Pg.Password)
	assert.Equal(t, 6543, cfg.Private.Pg.Port)
	assert.Equal(t, "env-access", cfg.AccessTokenKey())
	assert.Equal(t, "refresh", cfg.RefreshTokenKey())
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// refresh_token_key is intentionally missing
	private := "pg:\n  host: localhost\n  port: 5432\n  user: forum\n  dbname: forumapi\naccess_token_key: access\n"
	dir := writeConfig(t, validPublic, private)

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_MissingFile(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}
