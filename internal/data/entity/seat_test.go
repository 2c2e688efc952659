package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSeatID(t *testing.T) {
	valid := []string{"A1", "A10", "B5", "F10", "C1"}
	for _, id := range valid {
		assert.True(t, ValidSeatID(id), "expected %s to be valid", id)
	}

	invalid := []string{"", "A", "A0", "A11", "G1", "Z5", "1A", "AA1", "a1", "B-1"}
	for _, id := range invalid {
		assert.False(t, ValidSeatID(id), "expected %s to be invalid", id)
	}
}

func TestValidSeatIDRejectsAliases(t *testing.T) {
	// Non-canonical spellings of an in-grid seat must not validate, or the
	// same physical seat could carry two confirmed bookings.
	aliases := []string{"A01", "A001", "A+1", "A 1", "B09", "F010"}
	for _, id := range aliases {
		assert.False(t, ValidSeatID(id), "expected alias %s to be invalid", id)
	}
}

func TestSeatGrid(t *testing.T) {
	grid := SeatGrid()

	assert.Len(t, grid, len(SeatRows)*SeatsPerRow)
	assert.Equal(t, "A1", grid[0])
	assert.Equal(t, "A10", grid[9])
	assert.Equal(t, "B1", grid[10])
	assert.Equal(t, "F10", grid[len(grid)-1])

	for _, id := range grid {
		assert.True(t, ValidSeatID(id), "grid produced invalid seat %s", id)
	}
}

func TestShowTimeIsOccupied(t *testing.T) {
	st := ShowTime{OccupiedSeats: []string{"A1", "B2"}}

	assert.True(t, st.IsOccupied("A1"))
	assert.True(t, st.IsOccupied("B2"))
	assert.False(t, st.IsOccupied("A2"))
	assert.False(t, st.IsOccupied(""))
}
