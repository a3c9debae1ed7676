package database

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Debug           bool
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

var (
	db      *gorm.DB
	connErr error
	mu      sync.Mutex
	once    sync.Once
)

// Connect opens the process-wide handle on first use and returns it on every later call.
func Connect(cfg Config) (*gorm.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	once.Do(func() {
		logLevel := gormlogger.Warn
		if cfg.Debug {
			logLevel = gormlogger.Info
		}

		conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(logLevel),
			TranslateError: true,
		})
		if err != nil {
			connErr = fmt.Errorf("failed to connect database: %w", err)
			return
		}

		sqlDB, err := conn.DB()
		if err != nil {
			connErr = fmt.Errorf("failed to access sql pool: %w", err)
			return
		}
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}

		db = conn
	})

	return db, connErr
}

// Close tears the handle down. A later Connect opens a fresh one.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if db == nil {
		once = sync.Once{}
		connErr = nil
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	closeErr := sqlDB.Close()

	db = nil
	connErr = nil
	once = sync.Once{}

	return closeErr
}
