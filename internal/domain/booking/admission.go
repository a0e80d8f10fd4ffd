package booking

type Availability struct {
	Available bool
	// Conflicts lists the active bookings overlapping the requested slot.
	Conflicts []*Booking
}

// CheckAvailability decides whether slot can be admitted given the bookings already
// stored for the same court and date. Cancelled bookings never block.
func CheckAvailability(existing []*Booking, slot Slot) Availability {
	var conflicts []*Booking
	for _, b := range existing {
		if b == nil {
			continue
		}
		if b.Blocks(slot) {
			conflicts = append(conflicts, b)
		}
	}
	return Availability{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
}

// DaySchedule is a consistent read of one court's bookings for one date.
// Version is bumped by every admitted booking; a write that carries a stale
// version is rejected by the store.
type DaySchedule struct {
	Version  int64
	Bookings []*Booking
}

func (d *DaySchedule) Check(slot Slot) Availability {
	return CheckAvailability(d.Bookings, slot)
}
