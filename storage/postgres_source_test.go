package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSource(t *testing.T) (*PostgresSource, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewPostgresSourceFromDB(db), mock
}

func TestPostgresSourceLoad(t *testing.T) {
	src, mock := newMockSource(t)
	defer src.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, brand, full_price, stock")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "brand", "full_price", "stock"}).
			AddRow(int64(1), "Tie Fighter", "LEGO", "22.99", int64(55)).
			AddRow(int64(2), "Kite", "Skyco", "12.00", int64(3)))

	bought := time.Date(2015, time.August, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT product_id, price, purchased_at")).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "price", "purchased_at"}).
			AddRow(int64(1), "19.99", bought).
			AddRow(int64(1), "15.00", nil).
			AddRow(int64(99), "1.00", nil))

	raw, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raw.Items, 2)

	tie := raw.Items[0]
	assert.Equal(t, "Tie Fighter", *tie.Title)
	assert.Equal(t, "22.99", tie.FullPrice.StringFixed(2))
	assert.Equal(t, 55, *tie.Stock)
	require.Len(t, tie.Purchases, 2)
	assert.Equal(t, "19.99", tie.Purchases[0].Price.StringFixed(2))
	assert.Equal(t, "2015-08-01", tie.Purchases[0].Date)
	assert.Equal(t, "", tie.Purchases[1].Date)

	kite := raw.Items[1]
	assert.NotNil(t, kite.Purchases)
	assert.Empty(t, kite.Purchases)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSourceNullColumns(t *testing.T) {
	src, mock := newMockSource(t)
	defer src.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, brand, full_price, stock")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "brand", "full_price", "stock"}).
			AddRow(int64(1), "Mystery", nil, nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT product_id, price, purchased_at")).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "price", "purchased_at"}).
			AddRow(int64(1), nil, nil))

	raw, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raw.Items, 1)

	p := raw.Items[0]
	assert.NotNil(t, p.Title)
	assert.Nil(t, p.Brand)
	assert.Nil(t, p.FullPrice)
	assert.Nil(t, p.Stock)
	require.Len(t, p.Purchases, 1)
	assert.Nil(t, p.Purchases[0].Price)
}

func TestPostgresSourceQueryError(t *testing.T) {
	src, mock := newMockSource(t)
	defer src.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, brand, full_price, stock")).
		WillReturnError(errors.New("relation \"products\" does not exist"))

	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: fetch products")
}

func TestPostgresSourcePurchaseQueryError(t *testing.T) {
	src, mock := newMockSource(t)
	defer src.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, brand, full_price, stock")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "brand", "full_price", "stock"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT product_id, price, purchased_at")).
		WillReturnError(errors.New("connection reset"))

	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: fetch purchases")
}
