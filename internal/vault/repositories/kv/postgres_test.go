package kv

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/vivault/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewPostgresRepository(db, TableMetadata), mock
}

func TestPostgres_Get(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM metadata WHERE key = $1`)).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("v")))

	v, err := r.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Get_NoRows(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM metadata WHERE key = $1`)).
		WithArgs("absent").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestPostgres_Set_Upserts(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO metadata (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`)).
		WithArgs("k", []byte("v")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Clear(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM metadata`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, r.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_List(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT key, value FROM metadata`)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("a", []byte{1}).
			AddRow("b", []byte{2}))

	m, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": {1}, "b": {2}}, m)
}

func TestPostgres_ErrorsWrapped(t *testing.T) {
	r, mock := newMock(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT value`).WillReturnError(boom)
	_, err := r.Get(context.Background(), "k")
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "failed to get metadata[k]")

	mock.ExpectExec(`INSERT INTO`).WillReturnError(boom)
	err = r.Set(context.Background(), "k", []byte("v"))
	require.ErrorContains(t, err, "failed to set metadata[k]")

	mock.ExpectQuery(`SELECT key, value`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("a", []byte{1}).RowError(0, boom))
	_, err = r.List(context.Background())
	require.ErrorContains(t, err, "failed to iterate metadata rows")
}

func TestFactoryFor(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, isPG := FactoryFor(dbx.DriverPostgres)(db, TableSession).(*PostgresRepository)
	assert.True(t, isPG)
	_, isSQLite := FactoryFor(dbx.DriverSQLite)(db, TableSession).(*SQLiteRepository)
	assert.True(t, isSQLite)
}
