package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"seely/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPoolMonitor_Observe(t *testing.T) {
	tests := []struct {
		name string
		prev sql.DBStats
		cur  sql.DBStats
		want string
	}{
		{
			name: "no waits",
			prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
		},
		{
			name: "short waits at debug",
			prev: sql.DBStats{WaitCount: 1},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			want: "level=DEBUG msg=\"Postgres pool wait observed\"",
		},
		{
			name: "long waits at warn",
			prev: sql.DBStats{},
			cur:  sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond, MaxOpenConnections: 20},
			want: "level=WARN msg=\"Postgres pool wait detected\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := &poolMonitor{logger: newBufferedLogger(&buf), warnThreshold: dbPoolWarnDurationThreshold}

			m.observe(context.Background(), tt.prev, tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestConstraintErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isInvalidRowError(errors.New(`ERROR: null value in column "username" violates not-null constraint (SQLSTATE 23502)`)))
	assert.True(t, isInvalidRowError(errors.Wrap(gorm.ErrCheckConstraintViolated, "insert")))
	assert.False(t, isInvalidRowError(gorm.ErrDuplicatedKey))
}
