package flags

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

const DBDriverInMemory sqlx.DBDriver = "in-memory"

var ErrInMemoryConnect = errors.New("Connect() unsupported for in-memory driver")

type DBFlag struct {
	Driver   sqlx.DBDriver `long:"driver" description:"Database driver to use for the assignment store" choice:"mysql" choice:"in-memory" default:"in-memory"`
	Host     string        `long:"host" description:"Host for SQL backend"`
	Port     int           `long:"port" description:"Port for SQL backend"`
	Schema   string        `long:"schema" description:"Database name to use for connecting to SQL backend"`
	Username string        `long:"username" description:"Username to use for connecting to SQL backend"`
	Password string        `long:"password" description:"Password to use for connecting to SQL backend"`

	TLS    SQLTLSFlag    `group:"TLS" namespace:"tls"`
	Tuning SQLTuningFlag `group:"Tuning" namespace:"tuning"`
}

type SQLTLSFlag struct {
	RootCAs []FileOrString `long:"root-ca" description:"CA certificate(s) for TLS connection to the SQL backend"`
}

type SQLTuningFlag struct {
	ConnMaxLifetime int `long:"connection-max-lifetime" description:"Limit the lifetime in milliseconds of a SQL connection"`
}

func (o *DBFlag) IsInMemory() bool {
	return o.Driver == DBDriverInMemory
}

func (o *DBFlag) Connect(ctx context.Context, logger logx.Logger) (*sqlx.DB, error) {
	if o.IsInMemory() {
		return nil, ErrInMemoryConnect
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	logger = logger.WithData(
		logx.Data{Key: "db_driver", Value: o.Driver},
		logx.Data{Key: "db_host", Value: o.Host},
		logx.Data{Key: "db_port", Value: o.Port},
		logx.Data{Key: "db_schema", Value: o.Schema},
		logx.Data{Key: "db_username", Value: o.Username},
	)

	dbOpts := []sqlx.DBOption{
		sqlx.DBUsername(o.Username),
		sqlx.DBPassword(o.Password),
		sqlx.DBDatabaseName(o.Schema),
		sqlx.DBHost(o.Host),
		sqlx.DBPort(o.Port),
		sqlx.DBConnectionMaxLifetime(time.Duration(o.Tuning.ConnMaxLifetime) * time.Millisecond),
	}

	if len(o.TLS.RootCAs) != 0 {
		rootCAPool, err := CertPool(o.TLS.RootCAs...)
		if err != nil {
			logger.WithName("create-sql-root-ca-pool").Error(failedToParseTLSCredentials, err)
			return nil, err
		}

		dbOpts = append(dbOpts, sqlx.DBRootCAPool(rootCAPool))
	}

	conn, err := sqlx.Connect(ctx, o.Driver, dbOpts...)
	if err != nil {
		logger.Error(failedToOpenSQLConnection, err)
		return nil, err
	}

	return conn, nil
}

func (o *DBFlag) validate() error {
	switch {
	case o.Host == "":
		return missing("host")
	case o.Port == 0:
		return missing("port")
	case o.Schema == "":
		return missing("schema")
	case o.Username == "":
		return missing("username")
	default:
		return nil
	}
}

func missing(param string) error {
	return fmt.Errorf("the required %s parameter was not specified; see --help", param)
}
