package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeat(t *testing.T) {
	hall := TheatreHall{ID: 1, Name: "Blue", Rows: 3, SeatsInRow: 5}

	tests := []struct {
		name    string
		row     int
		seat    int
		wantErr *OutOfBoundsError
	}{
		{name: "first seat", row: 1, seat: 1},
		{name: "last seat", row: 3, seat: 5},
		{name: "row zero", row: 0, seat: 1, wantErr: &OutOfBoundsError{Dimension: "row", Value: 0, Min: 1, Max: 3}},
		{name: "row past end", row: 4, seat: 1, wantErr: &OutOfBoundsError{Dimension: "row", Value: 4, Min: 1, Max: 3}},
		{name: "seat zero", row: 2, seat: 0, wantErr: &OutOfBoundsError{Dimension: "seat", Value: 0, Min: 1, Max: 5}},
		{name: "seat past end", row: 2, seat: 6, wantErr: &OutOfBoundsError{Dimension: "seat", Value: 6, Min: 1, Max: 5}},
		{name: "row reported before seat", row: -1, seat: 99, wantErr: &OutOfBoundsError{Dimension: "row", Value: -1, Min: 1, Max: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeat(hall, tt.row, tt.seat)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			var oob *OutOfBoundsError
			require.True(t, errors.As(err, &oob))
			assert.Equal(t, tt.wantErr, oob)
		})
	}
}

func TestOutOfBoundsErrorMessage(t *testing.T) {
	err := ValidateSeat(TheatreHall{Rows: 10, SeatsInRow: 20}, 11, 1)

	assert.EqualError(t, err, "row number must be in available range: (1, 10)")
}

func TestAvailableSeats(t *testing.T) {
	hall := TheatreHall{Rows: 2, SeatsInRow: 2}

	assert.Equal(t, 4, hall.Capacity())
	assert.Equal(t, 4, AvailableSeats(hall, 0))
	assert.Equal(t, 3, AvailableSeats(hall, 1))
	assert.Equal(t, 0, Performance{Hall: hall, TicketCount: 4}.TicketsAvailable())
}

func TestPerformanceNotFoundMatchesRecordNotFound(t *testing.T) {
	var err error = &PerformanceNotFoundError{PerformanceID: 7}

	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.EqualError(t, err, "performance 7 not found")
}
