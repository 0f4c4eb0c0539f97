package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/car-rental-storefront/pkg/kvstore/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	storageTableName = `client_storage`
)

// goose keeps its dialect and base FS in package globals.
var migrateMu sync.Mutex

type SQLStore struct {
	db  *sql.DB
	qb  sq.StatementBuilderType
	log *zap.Logger
}

func NewSQLStore(ctx context.Context, driver, dsn string, log *zap.Logger) (*SQLStore, error) {
	var (
		driverName string
		dialect    string
		qb         sq.StatementBuilderType
	)
	switch driver {
	case DriverSQLite:
		driverName, dialect = "sqlite", "sqlite3"
		qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	case DriverPostgres:
		driverName, dialect = "pgx", "postgres"
		qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open")
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping")
	}
	log = log.Named("kvstore")
	if err := migrate(db, dialect, log); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migrate")
	}

	return &SQLStore{
		db:  db,
		qb:  qb,
		log: log,
	}, nil
}

// gooseLogger routes migration output into the service log.
type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Infof(strings.TrimSpace(format), v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatalf(strings.TrimSpace(format), v...)
}

func migrate(db *sql.DB, dialect string, log *zap.Logger) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetLogger(gooseLogger{log: log.Named("goose").Sugar()})
	goose.SetBaseFS(migrations.MigrationFiles)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	q, args, err := s.qb.Select("item_value").
		From(storageTableName).
		Where(sq.Eq{"item_key": key}).
		ToSql()
	if err != nil {
		return "", err
	}
	var value string
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		s.log.Error("Get", zap.String("q", q), zap.String("key", key))
		return "", err
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	q, args, err := s.qb.Insert(storageTableName).
		Columns("item_key", "item_value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		s.log.Error("Set", zap.String("q", q), zap.String("key", key))
		return err
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	q, args, err := s.qb.Delete(storageTableName).
		Where(sq.Eq{"item_key": key}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, q, args...)
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
