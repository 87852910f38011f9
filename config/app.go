package config

import (
	"fmt"
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	Env      string
	Debug    bool
	LogLevel string
	DB       DBConfig
	Redis    RedisConfig
}

type DBConfig struct {
	Driver     string // mysql or sqlite
	MySQLDSN   string
	SQLitePath string
	LogOff     bool
}

type RedisConfig struct {
	Addr     string
	Password string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() *Config {
	once.Do(func() {
		AppConfig = newConfig()
	})
	return AppConfig
}

func newConfig() *Config {
	return &Config{
		AppName:  GetEnv("APP_NAME", "storefront"),
		Env:      GetEnv("APP_ENV", "development"),
		Debug:    os.Getenv("DEBUG") == "true",
		LogLevel: GetEnv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Driver:     GetEnv("DB_DRIVER", DriverMySQL),
			MySQLDSN:   mysqlDSN(),
			SQLitePath: GetEnv("SQLITE_PATH", "storefront.db"),
			LogOff:     os.Getenv("GORM_LOG") == "off",
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASS"),
		},
	}
}

func mysqlDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local",
		os.Getenv("MYSQL_USER"),
		os.Getenv("MYSQL_PASS"),
		GetEnv("MYSQL_HOST", "127.0.0.1"),
		GetEnv("MYSQL_PORT", "3306"),
		os.Getenv("MYSQL_DB"),
	)
}
