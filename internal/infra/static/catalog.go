// Package static serves the demo catalog and keeps orders and cabin bookings in memory.
// It backs the service when local mode is enabled.
package static

import (
	"cmp"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/domain/catalog"
	"mynbala-backend/internal/domain/promo"
	"mynbala-backend/internal/infra"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var defaultCatalog string

type catalogFile struct {
	Branches []branchRecord `toml:"branches"`
	Tariffs  []tariffRecord `toml:"tariffs"`
	Promos   []promoRecord  `toml:"promos"`
	Cabins   []cabinRecord  `toml:"cabins"`
}

type branchRecord struct {
	ID           string `toml:"id"`
	Name         string `toml:"name"`
	City         string `toml:"city"`
	Address      string `toml:"address"`
	Phone        string `toml:"phone"`
	WorkingHours string `toml:"working_hours"`
}

type tariffRecord struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Duration    string `toml:"duration"`
	UnitPrice   int64  `toml:"unit_price"`
	SortOrder   int    `toml:"sort_order"`
	Popular     bool   `toml:"popular"`
}

type promoRecord struct {
	ID              string     `toml:"id"`
	Title           string     `toml:"title"`
	Description     string     `toml:"description"`
	DiscountPercent *float64   `toml:"discount_percent"`
	ValidUntil      *time.Time `toml:"valid_until"`
	// ValidForDays is relative to the load time and used when ValidUntil is absent.
	ValidForDays int `toml:"valid_for_days"`
}

type cabinRecord struct {
	ID           string `toml:"id"`
	BranchID     string `toml:"branch_id"`
	Name         string `toml:"name"`
	Type         string `toml:"type"`
	Capacity     int    `toml:"capacity"`
	PricePerHour int64  `toml:"price_per_hour"`
	BlockedHours []int  `toml:"blocked_hours"`
}

// Catalog is an immutable in-memory reference catalog.
type Catalog struct {
	branches []catalog.Branch
	tariffs  []catalog.Tariff
	promos   []promo.Offer
	cabins   []cabin.Cabin
	blocked  map[string][]int
}

// LoadCatalog reads path, or the embedded demo catalog when path is empty.
func LoadCatalog(path string, now time.Time, logger *slog.Logger) (*Catalog, error) {
	var file catalogFile
	if path == "" {
		if _, err := toml.Decode(defaultCatalog, &file); err != nil {
			return nil, fmt.Errorf("failed to decode embedded catalog: %w", err)
		}
	} else if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}
	return buildCatalog(file, now, logger), nil
}

// ParseCatalog decodes TOML catalog data.
func ParseCatalog(data string, now time.Time, logger *slog.Logger) (*Catalog, error) {
	var file catalogFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return buildCatalog(file, now, logger), nil
}

func buildCatalog(file catalogFile, now time.Time, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{blocked: make(map[string][]int)}

	for _, r := range file.Branches {
		b, err := catalog.NewBranch(r.ID, r.Name, r.City, r.Address, r.Phone, r.WorkingHours)
		if err != nil {
			logger.Warn("skipping catalog branch", "id", r.ID, "error", err)
			continue
		}
		c.branches = append(c.branches, b)
	}
	slices.SortStableFunc(c.branches, func(a, b catalog.Branch) int { return cmp.Compare(a.City, b.City) })

	for _, r := range file.Tariffs {
		t, err := catalog.NewTariff(r.ID, r.Name, r.UnitPrice)
		if err != nil {
			logger.Warn("skipping catalog tariff", "id", r.ID, "error", err)
			continue
		}
		t.Description = r.Description
		t.Duration = r.Duration
		t.SortOrder = r.SortOrder
		t.Popular = r.Popular
		c.tariffs = append(c.tariffs, t)
	}
	slices.SortStableFunc(c.tariffs, func(a, b catalog.Tariff) int { return cmp.Compare(a.SortOrder, b.SortOrder) })

	for _, r := range file.Promos {
		if r.ID == "" {
			continue
		}
		until := now.AddDate(0, 0, r.ValidForDays)
		if r.ValidUntil != nil {
			until = *r.ValidUntil
		}
		c.promos = append(c.promos, promo.Offer{
			ID:              r.ID,
			Title:           r.Title,
			Description:     r.Description,
			DiscountPercent: r.DiscountPercent,
			ValidUntil:      until,
		})
	}
	slices.SortStableFunc(c.promos, func(a, b promo.Offer) int { return a.ValidUntil.Compare(b.ValidUntil) })

	for _, r := range file.Cabins {
		if r.ID == "" || r.BranchID == "" {
			logger.Warn("skipping catalog cabin", "id", r.ID)
			continue
		}
		c.cabins = append(c.cabins, cabin.Cabin{
			ID:           r.ID,
			BranchID:     r.BranchID,
			Name:         r.Name,
			Type:         cabin.Type(r.Type),
			Capacity:     r.Capacity,
			PricePerHour: r.PricePerHour,
		})
		if len(r.BlockedHours) > 0 {
			c.blocked[r.ID] = slices.Clone(r.BlockedHours)
		}
	}
	return c
}

func (c *Catalog) ListBranches(context.Context) ([]catalog.Branch, error) {
	return slices.Clone(c.branches), nil
}

func (c *Catalog) ListTariffs(context.Context) ([]catalog.Tariff, error) {
	return slices.Clone(c.tariffs), nil
}

func (c *Catalog) ListPromoOffers(context.Context) ([]promo.Offer, error) {
	return slices.Clone(c.promos), nil
}

func (c *Catalog) ListCabins(_ context.Context, branchID string) ([]cabin.Cabin, error) {
	var out []cabin.Cabin
	for _, cb := range c.cabins {
		if cb.BranchID == branchID {
			out = append(out, cb)
		}
	}
	return out, nil
}

func (c *Catalog) FindCabin(_ context.Context, cabinID string) (cabin.Cabin, error) {
	for _, cb := range c.cabins {
		if cb.ID == cabinID {
			return cb, nil
		}
	}
	return cabin.Cabin{}, infra.WrapRepoErr("cabin not found", nil, infra.KindNotFound)
}

// BlockedHours are demo reservations applied to every date.
func (c *Catalog) BlockedHours(cabinID string) []int {
	return slices.Clone(c.blocked[cabinID])
}
