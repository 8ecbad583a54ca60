package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"wehouse/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection holds the read and write pools. Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Target describes one postgres endpoint.
type Target struct {
	Name     string
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

// DSN renders the target as a postgres URL.
func (t Target) DSN() string {
	sslMode := t.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(t.Username, t.Password),
		Host:     net.JoinHostPort(t.Host, t.Port),
		Path:     t.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}

	return dsn.String()
}

func New(config *config.Config) *Connection {
	read := ReadTarget(*config)
	write := WriteTarget(*config)

	return &Connection{
		Read:  MustConnect(read, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: MustConnect(write, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
	}
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("ping write database: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("ping read database: %w", err)
	}

	return nil
}

// Close releases both pools.
func (c *Connection) Close() error {
	return errors.Join(c.Write.Close(), c.Read.Close()) //nolint:wrapcheck
}

func dbName(config config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

// WriteTarget returns the write endpoint from the configuration.
func WriteTarget(config config.Config) Target {
	write := config.DB.Postgres.Write

	return Target{
		Name:     "write",
		Username: write.Username,
		Password: write.Password,
		Host:     write.Host,
		Port:     write.Port,
		DBName:   dbName(config, write.Name),
		SSLMode:  write.SSLMode,
	}
}

// ReadTarget returns the read endpoint, falling back to the write one when
// no separate replica is configured.
func ReadTarget(config config.Config) Target {
	read := config.DB.Postgres.Read
	if read.Host == "" {
		target := WriteTarget(config)
		target.Name = "read"

		return target
	}

	return Target{
		Name:     "read",
		Username: read.Username,
		Password: read.Password,
		Host:     read.Host,
		Port:     read.Port,
		DBName:   dbName(config, read.Name),
		SSLMode:  read.SSLMode,
	}
}

// Connect opens a pool for target, retrying maxRetry times.
func Connect(target Target, maxRetry, waitTime int) (*sqlx.DB, error) {
	var err error

	for retry := range max(maxRetry, 1) {
		var sqlDB *sqlx.DB

		sqlDB, err = sqlx.Connect("postgres", target.DSN())
		if err == nil {
			log.
				Info().
				Str("name", target.Name).
				Str("host", target.Host).
				Str("port", target.Port).
				Str("dbName", target.DBName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("name", target.Name).
			Str("host", target.Host).
			Str("port", target.Port).
			Str("dbName", target.DBName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("connecting to %s database: %w", target.Name, err)
}

// MustConnect is Connect that exits when the database stays unreachable.
func MustConnect(target Target, maxRetry, waitTime int) *sqlx.DB {
	db, err := Connect(target, maxRetry, waitTime)
	if err != nil {
		log.Fatal().Err(err).Msg("Giving up connecting to database")
	}

	return db
}
