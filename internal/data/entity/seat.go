package entity

import (
	"fmt"
	"strconv"
)

// The auditorium layout is a fixed grid: rows A-F, ten seats per row.
// Seat identifiers are row letter + column number, e.g. "A1".
const SeatsPerRow = 10

var SeatRows = []string{"A", "B", "C", "D", "E", "F"}

// ValidSeatID reports whether id addresses a seat inside the grid.
func ValidSeatID(id string) bool {
	if len(id) < 2 {
		return false
	}

	row := id[:1]
	found := false
	for _, r := range SeatRows {
		if r == row {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	col, err := strconv.Atoi(id[1:])
	if err != nil {
		return false
	}
	// Only the canonical spelling addresses a seat; "A01" or "A+1" would
	// alias "A1" and let one physical seat be sold twice.
	if strconv.Itoa(col) != id[1:] {
		return false
	}

	return col >= 1 && col <= SeatsPerRow
}

// SeatGrid returns every seat identifier in row-major order.
func SeatGrid() []string {
	grid := make([]string, 0, len(SeatRows)*SeatsPerRow)
	for _, row := range SeatRows {
		for col := 1; col <= SeatsPerRow; col++ {
			grid = append(grid, fmt.Sprintf("%s%d", row, col))
		}
	}
	return grid
}
