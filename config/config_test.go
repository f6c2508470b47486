package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "STORE", "SHOP_NAME", "ADMIN_USERNAME", "ADMIN_PASSWORD", "BILL_CHAT_ID"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.DB.Store)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "cafe_db", cfg.DB.Database)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "password", cfg.Admin.Password)
	assert.Equal(t, int64(0), cfg.Printer.ChatID)
	assert.NotEmpty(t, cfg.Shop.Name)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("STORE", "MEMORY")
	t.Setenv("BILL_CHAT_ID", "-100123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, StoreMemory, cfg.DB.Store)
	assert.Equal(t, int64(-100123), cfg.Printer.ChatID)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad port", "DB_PORT", "five"},
		{"bad chat id", "BILL_CHAT_ID", "chat"},
		{"unknown store", "STORE", "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnString(t *testing.T) {
	c := DBConfig{Host: "h", Port: 1, User: "u", Password: "p", Database: "d"}
	assert.Equal(t, "postgres://u:p@h:1/d", c.ConnString())

	c = DBConfig{Host: "db", Port: 5432, User: "cafe", Password: "p@ss/w:rd", Database: "cafe_db"}
	assert.Equal(t, "postgres://cafe:p%40ss%2Fw%3Ard@db:5432/cafe_db", c.ConnString())

	u, err := url.Parse(c.ConnString())
	require.NoError(t, err)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss/w:rd", pw)
	assert.Equal(t, "db:5432", u.Host)
}
