package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// NewDB opens the database selected by cfg.Driver.
func NewDB(cfg DBConfig, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         newGormLogger(cfg.LogOff, log),
		TranslateError: true,
	}
	switch cfg.Driver {
	case DriverMySQL:
		return gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	case DriverSQLite:
		return gorm.Open(sqlite.Open(SQLiteDSN(cfg.SQLitePath)), gormCfg)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}
}

// OpenSQLite opens path with foreign keys enforced and SQL logging off.
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(SQLiteDSN(path)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
}

// SQLiteDSN appends the pragmas every connection needs. SQLite leaves
// foreign keys off per connection unless asked, which would skip cascades.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func newGormLogger(off bool, log *zap.Logger) logger.Interface {
	logMode := logger.Info
	if off {
		logMode = logger.Silent
	}
	if log == nil {
		log = zap.NewNop()
	}
	return logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,
			Colorful:      false,
		},
	)
}
