package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

func newTestSQLRepo(t *testing.T) (*sqlRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return &sqlRepository{db: &DB{DB: db, logger: l}, logger: l}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── ListUsers ──

func TestSQLRepository_ListUsers_Success(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "Alice", "Petrova", "customer", "2025-03-01", "alice", "p1", true, "c", "").
		AddRow(3, "Clara", "Smirnova", "customer", "2025-03-05", "clara", "cp", false, "c", "note")
	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY id").WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, "alice", users[0].Credentials.Username)
	assert.Equal(t, "p1", users[0].Credentials.Passphrase)
	assert.True(t, users[0].Active)
	assert.False(t, users[1].Active)
	assert.Equal(t, "note", users[1].Comment)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_ListUsers_Empty(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestSQLRepository_ListUsers_UndefinedTable(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	mock.ExpectQuery("FROM users").WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrDirectoryNotMigrated)
}

func TestSQLRepository_ListUsers_QueryError(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	mock.ExpectQuery("FROM users").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLRepository_ListUsers_ScanError(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	rows := sqlmock.NewRows([]string{"id"}).AddRow(1)
	mock.ExpectQuery("FROM users").WillReturnRows(rows)

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSQLRepository_ListUsers_RowError(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "Alice", "", "", "", "alice", "p1", true, "", "").
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery("FROM users").WillReturnRows(rows)

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrIteratingRows)
}

// ── products ──

func TestSQLRepository_ListProducts_Success(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	rows := sqlmock.NewRows(productColumns).
		AddRow(1, "Cold Brew", "coffee", 3.5, 330, "strong", "in_stock", "2025-02-10", "d")
	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY id").WillReturnRows(rows)

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 330, products[0].VolumeML)
	assert.InDelta(t, 3.5, products[0].Price, 1e-9)
}

func TestSQLRepository_GetProduct_Success(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	rows := sqlmock.NewRows(productColumns).
		AddRow(4, "Espresso Tonic", "coffee", 3.9, 300, "strong", "in_stock", "2025-02-20", "d")
	mock.ExpectQuery("FROM products WHERE id = \\$1").WithArgs(int64(4)).WillReturnRows(rows)

	p, err := repo.GetProduct(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Espresso Tonic", p.Name)
}

func TestSQLRepository_GetProduct_NotFound(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	mock.ExpectQuery("FROM products WHERE id = \\$1").WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProduct(context.Background(), 9)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSQLRepository_GetProduct_QueryError(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	mock.ExpectQuery("FROM products").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.GetProduct(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── errors ──

func Test_postgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(pgError(pgerrcode.UniqueViolation)))
	assert.Empty(t, postgresError(errors.New("plain")))
}
