package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(series []*int64) []any {
	out := make([]any, len(series))
	for i, v := range series {
		if v != nil {
			out[i] = *v
		}
	}

	return out
}

func TestFill(t *testing.T) {
	got := Fill(12, []Point{{Index: 3, Value: 7}, {Index: 11, Value: 2}})

	want := []any{nil, nil, int64(7), nil, nil, nil, nil, nil, nil, nil, int64(2), nil}
	assert.Equal(t, want, values(got))
}

func TestFill_EdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		length int
		points []Point
		want   []any
	}{
		{name: "Empty input", length: 3, points: nil, want: []any{nil, nil, nil}},
		{name: "Last write wins", length: 2, points: []Point{{1, 4}, {1, 9}}, want: []any{int64(9), nil}},
		{name: "Out of range dropped", length: 2, points: []Point{{0, 1}, {3, 1}, {2, 5}}, want: []any{nil, int64(5)}},
		{name: "Zero length", length: 0, points: []Point{{1, 1}}, want: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, values(Fill(tt.length, tt.points)))
		})
	}
}

func TestSalesGrid(t *testing.T) {
	sums := []MonthlySum{
		{Year: 2024, Month: 5, Total: 100},
		{Year: 2024, Month: 6, Total: 999},
		{Year: 2023, Month: 6, Total: 300},
		{Year: 2022, Month: 12, Total: 50},
		{Year: 2021, Month: 1, Total: 1},
	}

	grid := SalesGrid(2024, 6, sums)

	require.NotNil(t, grid[0][4])
	assert.Equal(t, int64(100), *grid[0][4])
	assert.Nil(t, grid[0][5], "the month being rendered stays empty")
	require.NotNil(t, grid[1][5])
	assert.Equal(t, int64(300), *grid[1][5])
	require.NotNil(t, grid[2][11])
	assert.Equal(t, int64(50), *grid[2][11])

	filled := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell != nil {
				filled++
			}
		}
	}
	assert.Equal(t, 3, filled)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, 2))
	assert.Equal(t, 28, DaysIn(2023, 2))
	assert.Equal(t, 31, DaysIn(2024, 12))
	assert.Equal(t, 30, DaysIn(2024, 4))
}
