package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: test
  port: "9090"
  jwt_signing_key: secret
  staff_email: admin@zunde.com
  staff_password: admin123
postgres:
  host: db
  port: "5433"
  user: zunde
  password: p@ss
  db: zunde_test
notification:
  bulk_delay: 250ms
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, 12*time.Hour, conf.API.JWTTTL)
	assert.Equal(t, "db", conf.Postgres.Host)
	assert.Equal(t, "ZUN", conf.Ticket.Prefix)
	assert.Equal(t, 250*time.Millisecond, conf.Notification.BulkDelay)
	assert.Equal(t, "en", conf.Notification.Locale)
	assert.False(t, conf.SMTP.Enabled())
	assert.False(t, conf.RabbitMQ.Enabled())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("API_PORT", "7070")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "7070", conf.API.Port)
	assert.True(t, conf.SMTP.Enabled())
}

func TestLoad_MissingSigningKey(t *testing.T) {
	_, err := Load(writeConfig(t, `
api:
  staff_email: admin@zunde.com
  staff_password: admin123
`))
	assert.ErrorContains(t, err, "jwt_signing_key")
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("API_JWT_SIGNING_KEY", "secret")
	t.Setenv("API_STAFF_EMAIL", "admin@zunde.com")
	t.Setenv("API_STAFF_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", conf.API.Port)
}

func TestLoad_TicketPrefix(t *testing.T) {
	for _, prefix := range []string{"zun-2025", "ZUN_OUT", "ZUN OUT"} {
		t.Run(prefix, func(t *testing.T) {
			_, err := Load(writeConfig(t, testConfig+"ticket:\n  prefix: \""+prefix+"\"\n"))
			assert.ErrorContains(t, err, "ticket.prefix")
		})
	}

	conf, err := Load(writeConfig(t, testConfig+"ticket:\n  prefix: zun2025\n"))
	require.NoError(t, err)
	assert.Equal(t, "zun2025", conf.Ticket.Prefix)
}
