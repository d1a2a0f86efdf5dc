//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// tables written by the service; reference data from the seed migration stays.
var mutableTables = []string{"tickets", "cabin_bookings", "funnel_drafts"}

// CreateTestBooking stores an active booking for the cabin.
func CreateTestBooking(t *testing.T, db DBLike, cabinID string, userID uuid.UUID, date time.Time, start, duration int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO cabin_bookings (cabin_id, user_id, visit_date, start_hour, duration, guests, total_price, status)
		SELECT $1, $2, $3::date, $4, $5, 2, c.price_per_hour * $5, 'new'
		FROM cabins c WHERE c.id = $1
		RETURNING id`,
		cabinID, userID, date.Format("2006-01-02"), start, duration,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// SetPromoValidUntil moves a promo's expiry, e.g. into the past.
func SetPromoValidUntil(t *testing.T, db DBLike, promoID string, validUntil time.Time) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE promos SET valid_until = $2 WHERE id = $1", promoID, validUntil)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected(), "promo %s not found", promoID)
}

// SeedReferenceData adds the test-only rows on top of the seed migration.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO promos (id, title, description, discount, valid_until) VALUES
		    ('stale', 'Expired offer', '', 50, now() - interval '1 day')
		ON CONFLICT (id) DO UPDATE SET valid_until = EXCLUDED.valid_until;
	`)
	if err != nil {
		return err
	}

	return nil
}

// ResetDB truncates the tables the service writes and reseeds test data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(mutableTables, ", ")+" RESTART IDENTITY CASCADE;"); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
