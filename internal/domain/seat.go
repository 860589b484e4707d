package domain

type Seat struct {
	Row    int
	Number int
}

// ValidateSeat checks that the (row, seat) coordinate lies within the hall.
// The row is checked first.
func ValidateSeat(hall TheatreHall, row, seat int) error {
	if row < 1 || row > hall.Rows {
		return &OutOfBoundsError{Dimension: "row", Value: row, Min: 1, Max: hall.Rows}
	}

	if seat < 1 || seat > hall.SeatsInRow {
		return &OutOfBoundsError{Dimension: "seat", Value: seat, Min: 1, Max: hall.SeatsInRow}
	}

	return nil
}

// AvailableSeats returns hall capacity minus the number of tickets linked to a performance.
func AvailableSeats(hall TheatreHall, ticketCount int) int {
	return hall.Capacity() - ticketCount
}
