// Package database provides database connection management.
package database

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"github.com/hukuksozluk/vurgu/internal/config"
)

const (
	DriverSQLite   = "sqlite3"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	// pgxDriverName is the database/sql name registered by pgx/v5/stdlib.
	pgxDriverName = "pgx"
)

// Open opens the database configured by cfg. The connection is not verified;
// callers ping or create the schema right after.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	driverName, dsn, err := DataSourceName(cfg)
	if err != nil {
		return nil, fmt.Errorf("DataSourceName() > %w", err)
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(%s) > %w", driverName, err)
	}
	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer; one connection also keeps ":memory:" databases shared
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// DataSourceName returns the database/sql driver name and DSN for cfg.
// An explicit DSN wins over the individual connection fields.
func DataSourceName(cfg config.DatabaseConfig) (string, string, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		if cfg.DSN != "" {
			return DriverSQLite, cfg.DSN, nil
		}
		if cfg.Path == "" {
			return "", "", fmt.Errorf("database.path is required for %s", DriverSQLite)
		}
		return DriverSQLite, cfg.Path, nil
	case DriverMySQL:
		if cfg.DSN != "" {
			return DriverMySQL, cfg.DSN, nil
		}
		return DriverMySQL, mysqlDSN(cfg), nil
	case DriverPostgres:
		if cfg.DSN != "" {
			return pgxDriverName, cfg.DSN, nil
		}
		return pgxDriverName, postgresDSN(cfg), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func mysqlDSN(cfg config.DatabaseConfig) string {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}
	return mysqlCfg.FormatDSN()
}

func postgresDSN(cfg config.DatabaseConfig) string {
	query := url.Values{}
	if cfg.TLS {
		query.Set("sslmode", "require")
	} else {
		query.Set("sslmode", "disable")
	}
	for key, value := range cfg.Params {
		query.Set(key, value)
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: query.Encode(),
	}
	if cfg.Username != "" {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}
	return u.String()
}
