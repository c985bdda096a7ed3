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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResourceRow is the subset of a resources row the fixtures need.
type ResourceRow struct {
	ID             uuid.UUID
	Kind           string
	Title          string
	StartsAt       time.Time
	Capacity       int
	FullPriceCents int64
	// DepositCents must be nil for single slots.
	DepositCents *int64
}

func InsertResource(t *testing.T, db DBLike, r ResourceRow) uuid.UUID {
	t.Helper()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	_, err := db.Exec(context.Background(),
		`INSERT INTO resources (id, kind, title, starts_at, capacity, full_price_cents, deposit_price_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.Kind, r.Title, r.StartsAt, r.Capacity, r.FullPriceCents, r.DepositCents)
	require.NoError(t, err)
	return r.ID
}

// InsertVoucher issues a voucher directly, bypassing settlement.
func InsertVoucher(t *testing.T, db DBLike, code string, originalCents, remainingCents int64, issuedAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO vouchers (id, code, original_cents, remaining_cents, issued_at, is_used)
		 VALUES ($1, $2, $3, $4, $5, $4 = 0)`,
		id, code, originalCents, remainingCents, issuedAt)
	require.NoError(t, err)
	return id
}

func VoucherRemaining(t *testing.T, db DBLike, code string) int64 {
	t.Helper()

	var remaining int64
	err := db.QueryRow(context.Background(), "SELECT remaining_cents FROM vouchers WHERE code = $1", code).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

// CountRows counts rows of table matching where, e.g. CountRows(t, db, "bookings", "order_id = $1", id).
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
