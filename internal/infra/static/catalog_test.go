//go:build unit

package static_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/infra/static"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const testCatalog = `
[[branches]]
id = "shymkent"
name = "Shymkent"
city = "Shymkent"

[[branches]]
id = "aksu"
name = "Aksu"
city = "Aksu"

[[branches]]
id = ""
name = "No id"

[[tariffs]]
id = "weekend"
name = "Weekend"
unit_price = 7000
sort_order = 2
popular = true

[[tariffs]]
id = "weekday"
name = "Weekday"
unit_price = 5000
sort_order = 1

[[tariffs]]
id = "free"
name = "Free"
unit_price = 0

[[promos]]
id = "family"
title = "Family"
discount_percent = 20.0
valid_for_days = 30

[[promos]]
id = "newyear"
title = "New year"
discount_percent = 15.0
valid_until = 2026-12-31T23:59:00Z

[[promos]]
id = "gift"
title = "Gift"
valid_for_days = 3

[[cabins]]
id = "a-1"
branch_id = "aksu"
name = "Birthday room"
type = "birthday"
capacity = 15
price_per_hour = 15000
blocked_hours = [13, 14]

[[cabins]]
id = "orphan"
name = "No branch"
`

func TestParseCatalog(t *testing.T) {
	ctx := context.Background()
	c, err := static.ParseCatalog(testCatalog, now, discardLogger())
	require.NoError(t, err)

	t.Run("branches sorted by city, invalid skipped", func(t *testing.T) {
		branches, err := c.ListBranches(ctx)
		require.NoError(t, err)
		require.Len(t, branches, 2)
		assert.Equal(t, "aksu", branches[0].ID)
		assert.Equal(t, "shymkent", branches[1].ID)
	})

	t.Run("tariffs sorted, non-positive price skipped", func(t *testing.T) {
		tariffs, err := c.ListTariffs(ctx)
		require.NoError(t, err)
		require.Len(t, tariffs, 2)
		assert.Equal(t, "weekday", tariffs[0].ID)
		assert.Equal(t, "weekend", tariffs[1].ID)
		assert.True(t, tariffs[1].Popular)
	})

	t.Run("promos sorted by expiry", func(t *testing.T) {
		offers, err := c.ListPromoOffers(ctx)
		require.NoError(t, err)
		require.Len(t, offers, 3)
		assert.Equal(t, "gift", offers[0].ID)
		assert.Equal(t, now.AddDate(0, 0, 3), offers[0].ValidUntil)
		assert.Nil(t, offers[0].DiscountPercent)
		assert.Equal(t, "family", offers[1].ID)
		assert.Equal(t, 20.0, offers[1].Discount())
		assert.Equal(t, "newyear", offers[2].ID)
		assert.True(t, offers[2].ValidUntil.Equal(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)))
	})

	t.Run("cabins", func(t *testing.T) {
		cabins, err := c.ListCabins(ctx, "aksu")
		require.NoError(t, err)
		require.Len(t, cabins, 1)
		assert.Equal(t, cabin.TypeBirthday, cabins[0].Type)

		found, err := c.FindCabin(ctx, "a-1")
		require.NoError(t, err)
		assert.Equal(t, int64(15000), found.PricePerHour)
		assert.Equal(t, []int{13, 14}, c.BlockedHours("a-1"))

		_, err = c.FindCabin(ctx, "orphan")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("lists are copies", func(t *testing.T) {
		branches, _ := c.ListBranches(ctx)
		branches[0].Name = "changed"

		again, _ := c.ListBranches(ctx)
		assert.Equal(t, "Aksu", again[0].Name)
	})
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, err := static.ParseCatalog("[[branches]\nid = ", now, discardLogger())
	assert.Error(t, err)
}

func TestLoadCatalog_Embedded(t *testing.T) {
	c, err := static.LoadCatalog("", now, discardLogger())
	require.NoError(t, err)

	branches, _ := c.ListBranches(context.Background())
	tariffs, _ := c.ListTariffs(context.Background())
	offers, _ := c.ListPromoOffers(context.Background())
	assert.NotEmpty(t, branches)
	assert.NotEmpty(t, tariffs)
	assert.NotEmpty(t, offers)
	for _, tariff := range tariffs {
		assert.Positive(t, tariff.UnitPrice, tariff.ID)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := static.LoadCatalog("/nonexistent/catalog.toml", now, discardLogger())
	assert.Error(t, err)
}
