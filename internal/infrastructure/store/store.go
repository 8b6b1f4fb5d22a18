// Package store wires the configured persistence driver into the repository
// ports and exposes health checks for it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kashxsh001/SkillStream/internal/core/ports"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/config"
	mongodb "github.com/kashxsh001/SkillStream/internal/infrastructure/db/mongo"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/db/postgres"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/db/sqlite"
)

// PingFunc reports whether a dependency is reachable.
type PingFunc func(ctx context.Context) error

// Store bundles the repositories of one driver.
type Store struct {
	Driver     string
	Users      ports.UserRepository
	Courses    ports.CourseRepository
	Favourites ports.FavouriteRepository
	Ping       PingFunc

	close func(ctx context.Context) error
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the store selected by cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
		return NewMongo(client, db), nil

	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("connected to PostgreSQL")
		return NewPostgres(pool), nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLite.Path).Msg("opened SQLite database")
		return NewSQLite(db), nil
	}
	return nil, fmt.Errorf("store: unknown driver %q", cfg.Store.Driver)
}

func NewMongo(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Driver:     config.DriverMongo,
		Users:      mongodb.NewUserRepository(db),
		Courses:    mongodb.NewCourseRepository(db),
		Favourites: mongodb.NewFavouriteRepository(db),
		Ping:       func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close:      client.Disconnect,
	}
}

func NewPostgres(pool *pgxpool.Pool) *Store {
	return &Store{
		Driver:     config.DriverPostgres,
		Users:      postgres.NewUserRepository(pool),
		Courses:    postgres.NewCourseRepository(pool),
		Favourites: postgres.NewFavouriteRepository(pool),
		Ping:       pool.Ping,
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}
}

func NewSQLite(db *sql.DB) *Store {
	return &Store{
		Driver:     config.DriverSQLite,
		Users:      sqlite.NewUserRepository(db),
		Courses:    sqlite.NewCourseRepository(db),
		Favourites: sqlite.NewFavouriteRepository(db),
		Ping:       db.PingContext,
		close:      func(context.Context) error { return db.Close() },
	}
}
