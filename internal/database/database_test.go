package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Pool = (*pgxpool.Pool)(nil)

func TestPool_SatisfiedByMock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	var pool Pool = mock
	db := &DB{Pool: pool}

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	_, err = db.Pool.Exec(context.Background(), `CREATE TABLE IF NOT EXISTS users (id UUID)`)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNew_EmptyURL(t *testing.T) {
	db, err := New(context.Background(), "", 1)

	assert.Nil(t, db)
	assert.EqualError(t, err, "database url is empty")
}
