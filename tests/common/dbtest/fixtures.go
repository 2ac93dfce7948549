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

	"care-booking/internal/domain/booking"
	"care-booking/internal/infra/converter"
	"care-booking/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Conn is satisfied by a pool, a single connection or an open transaction.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func InsertSpecialist(t *testing.T, dbx Conn, row db.SpecialistRow) {
	t.Helper()
	_, err := dbx.Exec(context.Background(),
		"INSERT INTO specialists (id, display_name, specialties, slot_times, active) VALUES ($1, $2, $3, $4, $5)",
		row.ID, row.DisplayName, row.Specialties, row.SlotTimes, row.Active)
	require.NoError(t, err)
}

func InsertQuotaAccount(t *testing.T, dbx Conn, row db.QuotaAccountRow) {
	t.Helper()
	_, err := dbx.Exec(context.Background(),
		"INSERT INTO quota_accounts (requester_id, company_allocated, company_used, personal_allocated, personal_used) VALUES ($1, $2, $3, $4, $5)",
		row.RequesterID, row.CompanyAllocated, row.CompanyUsed, row.PersonalAllocated, row.PersonalUsed)
	require.NoError(t, err)
}

// InsertBooking writes a booking directly, bypassing the committer.
func InsertBooking(t *testing.T, dbx Conn, b *booking.Booking) {
	t.Helper()
	p := converter.BookingToInsertParams(b)
	_, err := dbx.Exec(context.Background(), `
		INSERT INTO bookings (
			id, requester_id, company_id, specialist_id, pillar, topics, notes, modality,
			session_date, start_time, end_time, status, quota_source, assessment_session_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.RequesterID, p.CompanyID, p.SpecialistID, p.Pillar, p.Topics, p.Notes, p.Modality,
		p.SessionDate, p.StartTime, p.EndTime, p.Status, p.QuotaSource, p.AssessmentSessionID,
		p.CreatedAt, p.UpdatedAt)
	require.NoError(t, err)
}

func CountBookings(t *testing.T, dbx Conn) int {
	t.Helper()
	var n int
	require.NoError(t, dbx.QueryRow(context.Background(), "SELECT count(*) FROM bookings").Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table between tests
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
