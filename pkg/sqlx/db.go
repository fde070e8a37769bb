package sqlx

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	uuid "github.com/satori/go.uuid"
)

type DBDriver string
type DBFlavor string

const (
	DBDriverMySQL DBDriver = "mysql"

	DBFlavorMySQL   DBFlavor = "mysql"
	DBFlavorMariaDB DBFlavor = "mariadb"

	mysqlErrDuplicateEntry = 1062

	connectAttempts = 10
)

type DBOption func(*dbConfig)

func DBUsername(username string) DBOption {
	return func(c *dbConfig) { c.username = username }
}

func DBPassword(password string) DBOption {
	return func(c *dbConfig) { c.password = password }
}

func DBDatabaseName(dbName string) DBOption {
	return func(c *dbConfig) { c.dbName = dbName }
}

func DBHost(host string) DBOption {
	return func(c *dbConfig) { c.host = host }
}

func DBPort(port int) DBOption {
	return func(c *dbConfig) { c.port = port }
}

func DBConnectionMaxLifetime(max time.Duration) DBOption {
	return func(c *dbConfig) { c.connMaxLifetime = max }
}

func DBRootCAPool(rootCAPool *x509.CertPool) DBOption {
	return func(c *dbConfig) {
		c.tlsConfig = &tls.Config{
			RootCAs:    rootCAPool,
			MinVersion: tls.VersionTLS12,
		}
	}
}

// DB wraps a connection pool together with what was learned about the
// server when it was opened.
type DB struct {
	Conn *sql.DB

	driver  DBDriver
	flavor  DBFlavor
	version string
}

// NewDB wraps an already opened pool, e.g. one created by sqlmock.
func NewDB(conn *sql.DB, driver DBDriver) *DB {
	return &DB{
		Conn:   conn,
		driver: driver,
		flavor: DBFlavorMySQL,
	}
}

func Connect(ctx context.Context, driver DBDriver, options ...DBOption) (*DB, error) {
	cfg := &dbConfig{}

	for _, opt := range options {
		opt(cfg)
	}

	db, err := open(ctx, driver, cfg)
	if err != nil {
		return nil, err
	}

	db.Conn.SetConnMaxLifetime(cfg.connMaxLifetime)

	for attempt := 0; attempt < connectAttempts; attempt++ {
		if err = db.Conn.PingContext(ctx); err == nil {
			return db, nil
		}
	}

	if err = db.Close(); err != nil {
		return nil, err
	}

	return nil, ErrFailedToEstablishConnection
}

func (db *DB) Driver() DBDriver {
	return db.driver
}

func (db *DB) Flavor() DBFlavor {
	return db.flavor
}

func (db *DB) Version() string {
	return db.version
}

func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.Conn.Exec(query, args...)
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return db.Conn.ExecContext(ctx, query, args...)
}

func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.Conn.Query(query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return db.Conn.QueryContext(ctx, query, args...)
}

func (db *DB) QueryRow(query string, args ...interface{}) squirrel.RowScanner {
	return db.Conn.QueryRow(query, args...)
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) squirrel.RowScanner {
	return db.Conn.QueryRowContext(ctx, query, args...)
}

// BeginTx starts a transaction that remembers the connection's driver
// details.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := db.Conn.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &Tx{
		tx:      tx,
		driver:  db.driver,
		flavor:  db.flavor,
		version: db.version,
	}, nil
}

func (db *DB) Close() error {
	return db.Conn.Close()
}

func (db *DB) Ping() error {
	return db.Conn.Ping()
}

// IsDuplicateEntry reports whether err is a unique key violation.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

func open(ctx context.Context, driver DBDriver, cfg *dbConfig) (*DB, error) {
	switch driver {
	case DBDriverMySQL:
		dataSourceName, err := cfg.dataSourceNameMySQL()
		if err != nil {
			return nil, err
		}

		conn, err := sql.Open(string(driver), dataSourceName)
		if err != nil {
			return nil, err
		}

		db := &DB{
			Conn:   conn,
			driver: driver,
			flavor: DBFlavorMySQL,
		}

		var unused, dbVersion string
		// performance_schema may be missing, in which case the flavor stays mysql
		err = conn.QueryRowContext(ctx, `SHOW VARIABLES LIKE 'version'`).Scan(&unused, &dbVersion)
		if err == nil {
			db.version = dbVersion
			if i := strings.Index(dbVersion, "-MariaDB"); i >= 0 {
				db.flavor = DBFlavorMariaDB
				db.version = dbVersion[:i]
			}
		}

		return db, nil
	default:
		return nil, ErrUnsupportedSQLDriver
	}
}

type dbConfig struct {
	username string
	password string
	dbName   string
	host     string
	port     int

	tlsConfig *tls.Config

	connMaxLifetime time.Duration
}

func (c *dbConfig) dataSourceNameMySQL() (string, error) {
	cfg := mysql.NewConfig()
	cfg.User = c.username
	cfg.Passwd = c.password
	cfg.DBName = c.dbName
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.host, strconv.Itoa(c.port))
	cfg.ParseTime = true

	if c.tlsConfig != nil {
		tlsConfigName := uuid.NewV4().String()
		if err := mysql.RegisterTLSConfig(tlsConfigName, c.tlsConfig); err != nil {
			return "", err
		}

		cfg.TLSConfig = tlsConfigName
	}

	return cfg.FormatDSN(), nil
}
