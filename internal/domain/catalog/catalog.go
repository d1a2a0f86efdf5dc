package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID          = errors.New("id is required")
	ErrEmptyName        = errors.New("name is required")
	ErrNonPositivePrice = errors.New("price must be positive")
)

type Branch struct {
	ID           string
	Name         string
	City         string
	Address      string
	Phone        string
	WorkingHours string
}

func NewBranch(id, name, city, address, phone, workingHours string) (Branch, error) {
	if strings.TrimSpace(id) == "" {
		return Branch{}, ErrEmptyID
	}
	if strings.TrimSpace(name) == "" {
		return Branch{}, ErrEmptyName
	}
	return Branch{
		ID:           id,
		Name:         name,
		City:         city,
		Address:      address,
		Phone:        phone,
		WorkingHours: workingHours,
	}, nil
}

type Tariff struct {
	ID          string
	Name        string
	UnitPrice   int64
	Description string
	Duration    string
	SortOrder   int
	Popular     bool
}

func NewTariff(id, name string, unitPrice int64) (Tariff, error) {
	if strings.TrimSpace(id) == "" {
		return Tariff{}, ErrEmptyID
	}
	if strings.TrimSpace(name) == "" {
		return Tariff{}, ErrEmptyName
	}
	if unitPrice <= 0 {
		return Tariff{}, ErrNonPositivePrice
	}
	return Tariff{ID: id, Name: name, UnitPrice: unitPrice}, nil
}

func FindBranch(branches []Branch, id string) (Branch, bool) {
	for _, b := range branches {
		if b.ID == id {
			return b, true
		}
	}
	return Branch{}, false
}

func FindTariff(tariffs []Tariff, id string) (Tariff, bool) {
	for _, t := range tariffs {
		if t.ID == id {
			return t, true
		}
	}
	return Tariff{}, false
}
