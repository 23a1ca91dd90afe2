package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSession struct {
	stmts  []string
	failOn string
}

func (r *recordingSession) Exec(_ context.Context, stmt string, _ ...any) error {
	r.stmts = append(r.stmts, stmt)
	if r.failOn != "" && strings.Contains(stmt, r.failOn) {
		return errors.New("boom")
	}
	return nil
}

func (r *recordingSession) QueryRow(context.Context, string, ...any) Row { return nil }
func (r *recordingSession) Query(context.Context, string, ...any) Rows   { return nil }
func (r *recordingSession) Ping(context.Context) error                   { return nil }
func (r *recordingSession) Close()                                       {}

func TestEnsureCassandraSchema(t *testing.T) {
	t.Run("tables only", func(t *testing.T) {
		s := &recordingSession{}
		require.NoError(t, EnsureCassandraSchema(context.Background(), s, false))
		assert.Len(t, s.stmts, 4)
		for _, stmt := range s.stmts {
			assert.Contains(t, stmt, "CREATE TABLE IF NOT EXISTS")
		}
	})

	t.Run("with indexes", func(t *testing.T) {
		s := &recordingSession{}
		require.NoError(t, EnsureCassandraSchema(context.Background(), s, true))
		assert.Len(t, s.stmts, 6)
		assert.Contains(t, s.stmts[5], "product_reviews (product_id)")
		assert.Len(t, cassandraTables, 4)
	})

	t.Run("keeps going after a failure", func(t *testing.T) {
		s := &recordingSession{failOn: "clients"}
		err := EnsureCassandraSchema(context.Background(), s, false)
		assert.Error(t, err)
		assert.Len(t, s.stmts, 4)
	})
}
