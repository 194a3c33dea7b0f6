package postgres

//nolint:revive
import (
	"errors"
	"net/url"
	"time"

	"eventbook/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools. When both point at the same DSN a single pool is shared.
func New(config *config.Config) *Connection {
	writeDSN := config.PostgresDSN(config.DB.Postgres.Write, nil)
	readDSN := config.PostgresDSN(config.DB.Postgres.Read, nil)

	write := CreatePostgresConnection("write", writeDSN, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
	if readDSN == writeDSN {
		return &Connection{Read: write, Write: write}
	}

	return &Connection{
		Read:  CreatePostgresConnection("read", readDSN, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: write,
	}
}

// Close releases both pools.
func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(name, descriptor string, maxRetry, waitTime int) *sqlx.DB {
	host := redactedHost(descriptor)

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Str("host", host).Msg("Could not connect to database")

	return nil
}

func redactedHost(descriptor string) string {
	parsed, err := url.Parse(descriptor)
	if err != nil {
		return "unknown"
	}

	return parsed.Host + parsed.Path
}
