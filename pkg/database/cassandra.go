package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"manaibay/pkg/utils"

	"github.com/gocql/gocql"
)

// ErrNotFound is returned by Row.Scan when the statement matched nothing.
var ErrNotFound = gocql.ErrNotFound

// Row is a single-row result; *gocql.Query satisfies it.
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a multi-row result; *gocql.Iter satisfies it.
// Scan returns false once the rows are exhausted or failed, Close reports why.
type Rows interface {
	Scan(dest ...any) bool
	Close() error
}

// CassandraIface interface untuk abstraction wide-column store
type CassandraIface interface {
	Exec(ctx context.Context, stmt string, args ...any) error
	QueryRow(ctx context.Context, stmt string, args ...any) Row
	Query(ctx context.Context, stmt string, args ...any) Rows
	Ping(ctx context.Context) error
	Close()
}

// Cassandra wraps a gocql session, which is already a pooled, goroutine-safe handle.
type Cassandra struct {
	session *gocql.Session
}

func (c *Cassandra) Exec(ctx context.Context, stmt string, args ...any) error {
	return c.session.Query(stmt, args...).WithContext(ctx).Exec()
}

func (c *Cassandra) QueryRow(ctx context.Context, stmt string, args ...any) Row {
	return c.session.Query(stmt, args...).WithContext(ctx)
}

func (c *Cassandra) Query(ctx context.Context, stmt string, args ...any) Rows {
	return c.session.Query(stmt, args...).WithContext(ctx).Iter()
}

func (c *Cassandra) Ping(ctx context.Context) error {
	var version string
	return c.session.Query(`SELECT release_version FROM system.local`).WithContext(ctx).Scan(&version)
}

func (c *Cassandra) Close() {
	c.session.Close()
}

// InitCassandra opens a session on the configured keyspace, creating the
// keyspace and tables first when auto migration is on.
func InitCassandra(config utils.CassandraConfig) (CassandraIface, error) {
	consistency, err := gocql.ParseConsistencyWrapper(config.Consistency)
	if err != nil {
		return nil, fmt.Errorf("parse consistency: %w", err)
	}

	if config.AutoMigrate {
		if err := ensureKeyspace(config, consistency); err != nil {
			return nil, err
		}
	}

	cluster := newCluster(config, consistency)
	cluster.Keyspace = config.Keyspace

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("create cassandra session: %w", err)
	}
	db := &Cassandra{session: session}

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.Ping(pingCtx); err != nil {
		session.Close()
		return nil, fmt.Errorf("ping cassandra failed: %w", err)
	}

	if config.AutoMigrate {
		if err := EnsureCassandraSchema(context.Background(), db, config.SecondaryIndexes); err != nil {
			session.Close()
			return nil, err
		}
	}

	return db, nil
}

func newCluster(config utils.CassandraConfig, consistency gocql.Consistency) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(config.ContactPoints...)
	cluster.Consistency = consistency
	cluster.Timeout = config.Timeout
	cluster.ConnectTimeout = config.Timeout
	if config.NumConns > 0 {
		cluster.NumConns = config.NumConns
	}
	return cluster
}

// ensureKeyspace needs its own session: a session bound to a missing keyspace cannot be opened.
func ensureKeyspace(config utils.CassandraConfig, consistency gocql.Consistency) error {
	session, err := newCluster(config, consistency).CreateSession()
	if err != nil {
		return fmt.Errorf("create bootstrap session: %w", err)
	}
	defer session.Close()

	rf := config.ReplicationFactor
	if rf <= 0 {
		rf = 1
	}
	stmt := fmt.Sprintf(
		`CREATE KEYSPACE IF NOT EXISTS %s WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d}`,
		config.Keyspace, rf)
	if err := session.Query(stmt).Exec(); err != nil {
		return fmt.Errorf("create keyspace %s: %w", config.Keyspace, err)
	}
	return nil
}

var cassandraTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id uuid PRIMARY KEY,
		first_name text,
		last_name text,
		email text,
		hashed_password text,
		phone text,
		location text,
		role text,
		created_date timestamp,
		updated_date timestamp
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id uuid PRIMARY KEY,
		name text,
		email text
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id uuid PRIMARY KEY,
		title text,
		description text,
		image_data text,
		image_filename text,
		price text,
		created_date timestamp,
		updated_date timestamp
	)`,
	`CREATE TABLE IF NOT EXISTS product_reviews (
		id uuid PRIMARY KEY,
		product_id uuid,
		user_name text,
		rating int,
		comment text,
		created_date timestamp
	)`,
}

var cassandraIndexes = []string{
	`CREATE INDEX IF NOT EXISTS users_email_idx ON users (email)`,
	`CREATE INDEX IF NOT EXISTS product_reviews_product_id_idx ON product_reviews (product_id)`,
}

// EnsureCassandraSchema creates the four tables and, optionally, the secondary
// indexes on the two columns that are otherwise scanned with ALLOW FILTERING.
func EnsureCassandraSchema(ctx context.Context, db CassandraIface, withIndexes bool) error {
	stmts := cassandraTables
	if withIndexes {
		stmts = append(append([]string{}, cassandraTables...), cassandraIndexes...)
	}

	var errs []error
	for _, stmt := range stmts {
		if err := db.Exec(ctx, stmt); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("ensure cassandra schema: %w", err)
	}
	return nil
}
