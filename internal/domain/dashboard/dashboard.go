// Package dashboard turns sparse aggregate rows into the dense series the
// dashboard charts expect. Missing slots are nil.
package dashboard

import "time"

// SalesYears is the number of trailing years in the sales grid.
const SalesYears = 3

// Point is one aggregate row keyed by a 1-based index such as a day of the
// month or a month of the year.
type Point struct {
	Index int
	Value int64
}

// MonthlySum is the sales sum of one calendar month.
type MonthlySum struct {
	Year  int
	Month int
	Total int64
}

// Fill returns length slots with each point written to slot Index-1. Later
// points overwrite earlier ones and out-of-range indices are dropped.
func Fill(length int, points []Point) []*int64 {
	if length < 0 {
		length = 0
	}
	result := make([]*int64, length)
	for _, p := range points {
		if p.Index < 1 || p.Index > length {
			continue
		}
		value := p.Value
		result[p.Index-1] = &value
	}

	return result
}

// SalesGrid places sums in a [years back][month] grid relative to the
// rendered year. The rendered month itself stays nil since it is still
// incomplete.
func SalesGrid(renderYear, renderMonth int, sums []MonthlySum) [SalesYears][12]*int64 {
	var grid [SalesYears][12]*int64
	for _, s := range sums {
		y := renderYear - s.Year
		m := s.Month - 1
		if y < 0 || y >= SalesYears || m < 0 || m >= 12 {
			continue
		}
		if y == 0 && m == renderMonth-1 {
			continue
		}
		total := s.Total
		grid[y][m] = &total
	}

	return grid
}

// DaysIn returns the number of days in month of year.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
