package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	DB      DBConfig
	Shop    ShopConfig
	Admin   AdminConfig
	Printer PrinterConfig
	Log     LogConfig
}

type DBConfig struct {
	Store    string // "postgres" or "memory"
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type ShopConfig struct {
	Name string // printed in the bill header
}

// AdminConfig is the account seeded into an empty admins table.
type AdminConfig struct {
	Username string
	Password string
}

type PrinterConfig struct {
	MessageToken string // bot token used to deliver rendered bills
	ChatID       int64  // chat that receives the bills
}

type LogConfig struct {
	Level string
	File  string // empty means stderr
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	var chatID int64
	if v := getEnv("BILL_CHAT_ID", ""); v != "" {
		chatID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid BILL_CHAT_ID: %w", err)
		}
	}

	store := strings.ToLower(getEnv("STORE", StorePostgres))
	if store != StorePostgres && store != StoreMemory {
		return nil, fmt.Errorf("invalid STORE %q: want %s or %s", store, StorePostgres, StoreMemory)
	}

	return &Config{
		DB: DBConfig{
			Store:    store,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "cafe_db"),
		},
		Shop: ShopConfig{
			Name: getEnv("SHOP_NAME", "SRI SHAKTHI CAFE & BAKES"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "password"),
		},
		Printer: PrinterConfig{
			MessageToken: getEnv("MESSAGE_TOKEN", ""),
			ChatID:       chatID,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
			File:  getEnv("LOG_FILE", ""),
		},
	}, nil
}

// ConnString returns the PostgreSQL connection URL for the configured database.
func (c DBConfig) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Database,
	}
	return u.String()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
