package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectMySQL establishes a connection to the MySQL database using the provided DSN.
// The pool is bounded so that bursts of requests queue on a connection instead
// of exhausting the server.
func ConnectMySQL(dsn string, maxOpenConns int) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql dsn must not be empty")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
