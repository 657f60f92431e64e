package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"toy-sales-report/models"
	"toy-sales-report/utils"
)

const (
	selectProducts = `
		SELECT id, title, brand, full_price, stock
		FROM products
		ORDER BY id`

	selectPurchases = `
		SELECT product_id, price, purchased_at
		FROM purchases
		ORDER BY product_id, id`
)

// PostgresSource reads the catalog from the products and purchases tables.
// NULL columns are passed through as missing fields so the cleaner rejects
// them like any other malformed input.
type PostgresSource struct {
	db *sql.DB
}

// NewPostgresSource opens a connection to PostgreSQL and pings it with retry.
func NewPostgresSource(ctx context.Context, dsn string, retry *utils.RetryConfig) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	err = retry.Do(ctx, "postgres-ping", func() error {
		return db.PingContext(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	return &PostgresSource{db: db}, nil
}

// NewPostgresSourceFromDB wraps an existing connection.
func NewPostgresSourceFromDB(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Load reads every product in id order and attaches its purchases.
func (ps *PostgresSource) Load(ctx context.Context) (*models.RawCatalog, error) {
	rows, err := ps.db.QueryContext(ctx, selectProducts)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch products: %w", err)
	}
	defer rows.Close()

	raw := &models.RawCatalog{Items: []models.RawProduct{}}
	index := make(map[int64]int)

	for rows.Next() {
		var (
			id        int64
			title     sql.NullString
			brand     sql.NullString
			fullPrice decimal.NullDecimal
			stock     sql.NullInt64
		)
		if err := rows.Scan(&id, &title, &brand, &fullPrice, &stock); err != nil {
			return nil, fmt.Errorf("postgres: scan product: %w", err)
		}

		p := models.RawProduct{Purchases: []models.RawPurchase{}}
		if title.Valid {
			p.Title = &title.String
		}
		if brand.Valid {
			p.Brand = &brand.String
		}
		if fullPrice.Valid {
			p.FullPrice = &fullPrice.Decimal
		}
		if stock.Valid {
			n := int(stock.Int64)
			p.Stock = &n
		}

		index[id] = len(raw.Items)
		raw.Items = append(raw.Items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate products: %w", err)
	}

	if err := ps.attachPurchases(ctx, raw, index); err != nil {
		return nil, err
	}
	return raw, nil
}

func (ps *PostgresSource) attachPurchases(ctx context.Context, raw *models.RawCatalog, index map[int64]int) error {
	rows, err := ps.db.QueryContext(ctx, selectPurchases)
	if err != nil {
		return fmt.Errorf("postgres: fetch purchases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID   int64
			price       decimal.NullDecimal
			purchasedAt sql.NullTime
		)
		if err := rows.Scan(&productID, &price, &purchasedAt); err != nil {
			return fmt.Errorf("postgres: scan purchase: %w", err)
		}

		i, ok := index[productID]
		if !ok {
			continue
		}

		pu := models.RawPurchase{}
		if price.Valid {
			pu.Price = &price.Decimal
		}
		if purchasedAt.Valid {
			pu.Date = purchasedAt.Time.Format(time.DateOnly)
		}
		raw.Items[i].Purchases = append(raw.Items[i].Purchases, pu)
	}
	return rows.Err()
}

func (ps *PostgresSource) Close() error {
	return ps.db.Close()
}
