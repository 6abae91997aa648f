package home

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCountTable(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := &RepositoryImpl{logger: zap.NewNop(), pgpool: mockPool}

	mockPool.ExpectQuery(`SELECT COUNT\(\*\) FROM tourist_spots`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountTable(context.Background(), "tourist_spots")

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestCountTable_RejectsUnknownTable(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := &RepositoryImpl{logger: zap.NewNop(), pgpool: mockPool}

	_, err = repo.CountTable(context.Background(), "users; DROP TABLE users")

	assert.Error(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
