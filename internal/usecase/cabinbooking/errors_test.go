//go:build unit

package cabinbooking_test

import (
	"testing"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/pkg/errs"
	"mynbala-backend/internal/usecase/cabinbooking"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsAreDistinct(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category error
		leaf     error
		siblings []error
	}{
		{"invalid date", cabinbooking.ErrInvalidDate, errs.ErrValidation, nil,
			[]error{cabinbooking.ErrInvalidDuration, cabinbooking.ErrInvalidGuests}},
		{"invalid duration", cabinbooking.ErrInvalidDuration, errs.ErrValidation, cabin.ErrInvalidDuration,
			[]error{cabinbooking.ErrInvalidDate, cabinbooking.ErrInvalidGuests}},
		{"invalid guests", cabinbooking.ErrInvalidGuests, errs.ErrValidation, cabin.ErrInvalidGuests,
			[]error{cabinbooking.ErrInvalidDate, cabinbooking.ErrInvalidDuration}},
		{"slot unavailable", cabinbooking.ErrSlotUnavailable, errs.ErrConflict, cabin.ErrSlotUnavailable,
			[]error{cabinbooking.ErrSlotConflict}},
		{"slot conflict", cabinbooking.ErrSlotConflict, errs.ErrConflict, cabin.ErrSlotConflict,
			[]error{cabinbooking.ErrSlotUnavailable}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errs.IsAny(tt.err, tt.category))
			if tt.leaf != nil {
				assert.True(t, errs.IsAny(tt.err, tt.leaf))
			}
			for _, sibling := range tt.siblings {
				assert.False(t, errs.IsAny(tt.err, sibling), "%q matched %q", tt.err, sibling)
			}
		})
	}
}
