package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	_ "github.com/go-sql-driver/mysql"

	"github.com/worasetx8/shonraApi-sub001/config"
)

// Database wraps the schema-bound MySQL session used by the bootstrap.
type Database struct {
	db   *sql.DB
	name string
}

// ConnectError reports a driver-level failure while bringing the connection
// up. Connection failures are fatal, unlike per-statement failures.
type ConnectError struct {
	Stage string
	Err   error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect: %s: %v", e.Stage, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// Connect ensures the target database exists and returns a session bound to
// it. The first session is opened without a default schema so the bootstrap
// works against a fresh server; the second enables multi-statement execution
// so each seed batch runs as one round-trip.
func Connect(cfg *config.Config) (*Database, error) {
	serverDSN := fmt.Sprintf("%s:%s@tcp(%s:%s)/",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	server, err := sql.Open("mysql", serverDSN)
	if err != nil {
		return nil, &ConnectError{Stage: "open server session", Err: err}
	}
	defer server.Close()

	if err := server.Ping(); err != nil {
		return nil, &ConnectError{Stage: "ping server", Err: err}
	}

	if _, err := server.Exec("CREATE DATABASE IF NOT EXISTS " + quoteIdentifier(cfg.DBName)); err != nil {
		return nil, &ConnectError{Stage: "create database", Err: err}
	}
	log.Infof("Database %s ready", cfg.DBName)

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, &ConnectError{Stage: "open bound session", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ConnectError{Stage: "ping bound session", Err: err}
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Infof("Connected to %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)

	return &Database{db: db, name: cfg.DBName}, nil
}

// quoteIdentifier backticks a MySQL identifier, doubling embedded backticks.
func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// Close releases the bound session.
func (d *Database) Close() error {
	return d.db.Close()
}
