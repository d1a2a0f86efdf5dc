package cabin

import (
	"fmt"
	"time"
)

// The grid covers 10:00 through 21:00 inclusive; a range may end at 22:00 at the latest.
const (
	OpeningHour  = 10
	LastSlotHour = 21
	ClosingBound = LastSlotHour + 1
	SlotCount    = LastSlotHour - OpeningHour + 1
)

type Slot struct {
	Hour   int
	Label  string
	Booked bool
}

type HourSet map[int]struct{}

func NewHourSet(hours ...int) HourSet {
	s := make(HourSet, len(hours))
	for _, h := range hours {
		s[h] = struct{}{}
	}
	return s
}

func (s HourSet) Has(h int) bool {
	_, ok := s[h]
	return ok
}

func (s HourSet) Add(hours ...int) {
	for _, h := range hours {
		s[h] = struct{}{}
	}
}

// SlotsFor returns the full opening window; hours not in booked are free.
func SlotsFor(booked HourSet) []Slot {
	slots := make([]Slot, 0, SlotCount)
	for h := OpeningHour; h <= LastSlotHour; h++ {
		slots = append(slots, Slot{
			Hour:   h,
			Label:  fmt.Sprintf("%02d:00", h),
			Booked: booked.Has(h),
		})
	}
	return slots
}

// HasConflict reports whether [start, start+duration) touches a booked slot or runs past
// closing time. Hours outside the slot list count as unavailable.
func HasConflict(start, duration int, slots []Slot) bool {
	if duration < 1 || start < OpeningHour || start+duration > ClosingBound {
		return true
	}
	for i := 0; i < duration; i++ {
		slot, ok := slotAt(slots, start+i)
		if !ok || slot.Booked {
			return true
		}
	}
	return false
}

func slotAt(slots []Slot, hour int) (Slot, bool) {
	for _, s := range slots {
		if s.Hour == hour {
			return s, true
		}
	}
	return Slot{}, false
}

// Grid is the availability of one cabin on one day plus the tentative start selection.
type Grid struct {
	CabinID string
	Date    time.Time
	Slots   []Slot

	start    int
	hasStart bool
}

func NewGrid(cabinID string, date time.Time, booked HourSet) *Grid {
	return &Grid{
		CabinID: cabinID,
		Date:    date,
		Slots:   SlotsFor(booked),
	}
}

// SelectStart sets the tentative start hour. Booked or unknown hours are rejected and leave
// the previous selection in place.
func (g *Grid) SelectStart(hour int) bool {
	slot, ok := slotAt(g.Slots, hour)
	if !ok || slot.Booked {
		return false
	}
	g.start = hour
	g.hasStart = true
	return true
}

func (g *Grid) Start() (int, bool) {
	return g.start, g.hasStart
}

// HasConflict checks the selected start; without a selection every range conflicts.
func (g *Grid) HasConflict(duration int) bool {
	if !g.hasStart {
		return true
	}
	return HasConflict(g.start, duration, g.Slots)
}

func (g *Grid) FreeHours() []int {
	var free []int
	for _, s := range g.Slots {
		if !s.Booked {
			free = append(free, s.Hour)
		}
	}
	return free
}
