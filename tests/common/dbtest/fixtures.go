//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var queries = sqlc.New()

// SeedUser inserts a user through the generated CreateUser query. The name is
// the local part of email.
func SeedUser(t *testing.T, db sqlc.DBTX, email string) uuid.UUID {
	t.Helper()

	row, err := queries.CreateUser(context.Background(), db, sqlc.CreateUserParams{
		Email: email,
		Name:  strings.Split(email, "@")[0],
	})
	require.NoError(t, err)
	return row.ID
}

// SeedProduct inserts a product with version 0. price is a decimal string.
func SeedProduct(t *testing.T, db sqlc.DBTX, name, price string, stock int) uuid.UUID {
	t.Helper()

	amount, err := decimal.NewFromString(price)
	require.NoError(t, err)
	n, err := pgconv.IntToInt32(stock)
	require.NoError(t, err)

	row, err := queries.CreateProduct(context.Background(), db, sqlc.CreateProductParams{
		Name:  name,
		Price: pgconv.DecimalToNumeric(amount),
		Stock: n,
	})
	require.NoError(t, err)
	require.Zero(t, row.Version)
	return row.ID
}

func ProductStock(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func PurchaseStatus(t *testing.T, db DBLike, purchaseID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM purchases WHERE id = $1", purchaseID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
