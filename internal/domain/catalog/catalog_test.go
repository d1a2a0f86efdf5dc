//go:build unit

package catalog_test

import (
	"testing"

	"mynbala-backend/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTariff(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		title string
		price int64
		errIs error
	}{
		{name: "valid", id: "weekend", title: "Выходные", price: 7000},
		{name: "missing id", id: " ", title: "x", price: 1, errIs: catalog.ErrEmptyID},
		{name: "missing name", id: "x", title: "", price: 1, errIs: catalog.ErrEmptyName},
		{name: "zero price", id: "x", title: "x", price: 0, errIs: catalog.ErrNonPositivePrice},
		{name: "negative price", id: "x", title: "x", price: -100, errIs: catalog.ErrNonPositivePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.NewTariff(tt.id, tt.title, tt.price)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.price, got.UnitPrice)
		})
	}
}

func TestNewBranch(t *testing.T) {
	_, err := catalog.NewBranch("", "MYNBALA TARAZ", "Тараз", "", "", "")
	assert.ErrorIs(t, err, catalog.ErrEmptyID)

	b, err := catalog.NewBranch("taraz", "MYNBALA TARAZ", "Тараз", "ул. Толе би 1", "+7 700 000 00 00", "10:00-22:00")
	require.NoError(t, err)
	assert.Equal(t, "Тараз", b.City)
}

func TestFind(t *testing.T) {
	branches := []catalog.Branch{{ID: "taraz"}, {ID: "aksu"}}
	tariffs := []catalog.Tariff{{ID: "weekday", UnitPrice: 5000}}

	b, ok := catalog.FindBranch(branches, "aksu")
	assert.True(t, ok)
	assert.Equal(t, "aksu", b.ID)

	_, ok = catalog.FindBranch(branches, "atyrau")
	assert.False(t, ok)

	tr, ok := catalog.FindTariff(tariffs, "weekday")
	assert.True(t, ok)
	assert.Equal(t, int64(5000), tr.UnitPrice)

	_, ok = catalog.FindTariff(tariffs, "")
	assert.False(t, ok)
}
