/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/entitymanager/datastore/ddb"
	"github.com/suparena/entitymanager/datastore/sqlstore"
	entityerrors "github.com/suparena/entitymanager/errors"
	"github.com/suparena/entitymanager/storagemodels"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ENTITYMANAGER_"

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendDynamoDB = "ddb"
	BackendMySQL    = "mysql"
)

// Config is the runtime configuration of the entitymanager command.
type Config struct {
	Backend  string   `yaml:"backend" env:"BACKEND" validate:"oneof=memory badger ddb mysql"`
	DynamoDB DynamoDB `yaml:"dynamodb" envPrefix:"DYNAMODB_"`
	MySQL    MySQL    `yaml:"mysql" envPrefix:"MYSQL_"`
	Badger   Badger   `yaml:"badger" envPrefix:"BADGER_"`
	Paging   Paging   `yaml:"paging" envPrefix:"PAGING_"`
	Log      Log      `yaml:"log" envPrefix:"LOG_"`
}

// DynamoDB configures the DynamoDB backend.
type DynamoDB struct {
	Table        string        `yaml:"table" env:"TABLE"`
	Region       string        `yaml:"region" env:"REGION"`
	Endpoint     string        `yaml:"endpoint" env:"ENDPOINT"`
	AccessKey    string        `yaml:"accessKey" env:"ACCESS_KEY"`
	SecretKey    string        `yaml:"secretKey" env:"SECRET_KEY"`
	MaxRetries   int           `yaml:"maxRetries" env:"MAX_RETRIES" validate:"gte=0"`
	RetryBackoff time.Duration `yaml:"retryBackoff" env:"RETRY_BACKOFF" validate:"gte=0"`
	PageSize     int32         `yaml:"pageSize" env:"PAGE_SIZE" validate:"gte=0"`
}

// MySQL configures the MySQL backend.
type MySQL struct {
	User            string        `yaml:"user" env:"USER"`
	Password        string        `yaml:"password" env:"PASSWORD"`
	Addr            string        `yaml:"addr" env:"ADDR"`
	Database        string        `yaml:"database" env:"DATABASE"`
	MaxOpenConns    int           `yaml:"maxOpenConns" env:"MAX_OPEN_CONNS" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime" env:"CONN_MAX_LIFETIME"`
	Timeout         time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// Badger configures the embedded badger backend.
type Badger struct {
	Path     string `yaml:"path" env:"PATH"`
	InMemory bool   `yaml:"inMemory" env:"IN_MEMORY"`
}

// Paging bounds paged listings.
type Paging struct {
	MaxLimit int `yaml:"maxLimit" env:"MAX_LIMIT" validate:"gt=0"`
}

// Log configures the process logger.
type Log struct {
	Level string `yaml:"level" env:"LEVEL"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	opts := storagemodels.DefaultQueryOptions()
	return Config{
		Backend: BackendBadger,
		DynamoDB: DynamoDB{
			MaxRetries:   opts.MaxRetries,
			RetryBackoff: opts.RetryBackoff,
			PageSize:     opts.PageSize,
		},
		MySQL: MySQL{
			Addr:         "127.0.0.1:3306",
			MaxOpenConns: 10,
			Timeout:      5 * time.Second,
		},
		Badger: Badger{Path: "./data"},
		Paging: Paging{MaxLimit: 100},
		Log:    Log{Level: "info"},
	}
}

// Load builds the configuration. Defaults are overridden by the YAML file at
// path, when path is not empty, then by ENTITYMANAGER_* environment
// variables. A .env file in the working directory is loaded first if present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration, reporting the first invalid field.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return entityerrors.NewValidationError(fe.Namespace(), fmt.Sprintf("failed on %q with value %v", fe.Tag(), fe.Value()))
		}
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return entityerrors.NewValidationError("Config.Log.Level", err.Error())
	}
	switch c.Backend {
	case BackendDynamoDB:
		if c.DynamoDB.Table == "" {
			return entityerrors.NewValidationError("Config.DynamoDB.Table", "required for the ddb backend")
		}
	case BackendMySQL:
		if c.MySQL.Database == "" {
			return entityerrors.NewValidationError("Config.MySQL.Database", "required for the mysql backend")
		}
	case BackendBadger:
		if !c.Badger.InMemory && c.Badger.Path == "" {
			return entityerrors.NewValidationError("Config.Badger.Path", "required unless inMemory is set")
		}
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level)))
	return level, err
}

// ClientConfig returns the settings of the DynamoDB client.
func (d DynamoDB) ClientConfig() ddb.ClientConfig {
	return ddb.ClientConfig{
		AccessKey: d.AccessKey,
		SecretKey: d.SecretKey,
		Region:    d.Region,
		Endpoint:  d.Endpoint,
	}
}

// QueryOptions returns the query options of the DynamoDB store.
func (d DynamoDB) QueryOptions() []storagemodels.QueryOption {
	return []storagemodels.QueryOption{
		storagemodels.WithMaxRetries(d.MaxRetries),
		storagemodels.WithRetryBackoff(d.RetryBackoff),
		storagemodels.WithPageSize(d.PageSize),
	}
}

// MySQLConfig returns the connection settings of the MySQL store.
func (m MySQL) MySQLConfig() sqlstore.MySQLConfig {
	return sqlstore.MySQLConfig{
		User:            m.User,
		Password:        m.Password,
		Addr:            m.Addr,
		Database:        m.Database,
		MaxOpenConns:    m.MaxOpenConns,
		ConnMaxLifetime: m.ConnMaxLifetime,
		Timeout:         m.Timeout,
	}
}
