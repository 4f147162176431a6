/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLConfig holds the connection settings of a MySQL database.
type MySQLConfig struct {
	User            string
	Password        string
	Addr            string
	Database        string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	Timeout         time.Duration
}

// DSN formats the data source name. Affected-row counts report matched rows
// so an update that changes nothing still counts as found.
func (c MySQLConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = c.Addr
	cfg.DBName = c.Database
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	return cfg.FormatDSN()
}

// OpenMySQL opens and pings a MySQL connection pool.
func OpenMySQL(ctx context.Context, c MySQLConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", c.DSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
		db.SetMaxIdleConns(c.MaxOpenConns)
	}
	if c.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(c.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}
