package postgres

import (
	"fmt"
	"net"
	"parish/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  createReadConnection(config),
		Write: createWriteConnection(config),
	}
}

func dbName(cfg *config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func createReadConnection(cfg *config.Config) *sqlx.DB {
	read := cfg.DB.Postgres.Read

	return createConnection(
		"read",
		read.Username,
		read.Password,
		read.Host,
		read.Port,
		dbName(cfg, read.Name),
		read.SSLMode,
		cfg.DB.Postgres.MaxRetry,
		cfg.DB.Postgres.RetryWaitTime,
	)
}

func createWriteConnection(cfg *config.Config) *sqlx.DB {
	write := cfg.DB.Postgres.Write

	return createConnection(
		"write",
		write.Username,
		write.Password,
		write.Host,
		write.Port,
		dbName(cfg, write.Name),
		write.SSLMode,
		cfg.DB.Postgres.MaxRetry,
		cfg.DB.Postgres.RetryWaitTime,
	)
}

func createConnection(name, username, password, host, port, database, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		database,
		sslMode,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", database).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Msg("Exhausted database connection retries")

	return nil
}
