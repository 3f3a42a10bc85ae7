package storefront

import (
	"testing"
	"time"

	"bakery/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday; the ISO week runs from Mon Mar 11 to Sun Mar 17.
var wednesday = time.Date(2024, time.March, 13, 10, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func orderDue(id int64, year int, month time.Month, day int) *entity.Order {
	return &entity.Order{ID: id, DueDate: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func TestGenerator_ShowPrevious(t *testing.T) {
	g := NewGenerator(fixedClock(wednesday), time.UTC)
	g.Reset(true)

	orders := []*entity.Order{
		orderDue(1, 2024, time.March, 1),
		orderDue(2, 2024, time.March, 10),
		orderDue(3, 2024, time.March, 11),
		orderDue(4, 2024, time.March, 12),
		orderDue(5, 2024, time.March, 13),
		orderDue(6, 2024, time.March, 13),
		orderDue(7, 2024, time.March, 15),
		orderDue(8, 2024, time.March, 18),
		orderDue(9, 2024, time.April, 1),
	}
	g.Assign(orders)

	want := map[int64]Header{
		1: {Main: "Recent", Secondary: "Before this week"},
		2: {Main: "Recent", Secondary: "Before this week"},
		3: {Main: "This week before yesterday", Secondary: "Mon, Mar 11 - Tue, Mar 12"},
		4: {Main: "Yesterday", Secondary: "Tue, Mar 12"},
		5: {Main: "Today", Secondary: "Wed, Mar 13"},
		6: {Main: "Today", Secondary: "Wed, Mar 13"},
		7: {Main: "This week starting tomorrow", Secondary: "Thu, Mar 14 - Sun, Mar 17"},
		8: {Main: "Upcoming", Secondary: "After this week"},
		9: {Main: "Upcoming", Secondary: "After this week"},
	}
	for id, header := range want {
		got := g.Lookup(id)
		require.NotNil(t, got, "order %d", id)
		assert.Equal(t, header, *got, "order %d", id)
	}

	leads := make([]int64, 0)
	for _, order := range orders {
		if g.IsFirstInGroup(order.ID) {
			leads = append(leads, order.ID)
		}
	}
	assert.Equal(t, []int64{1, 3, 4, 5, 7, 8}, leads)
}

func TestGenerator_WeekStartsYesterday(t *testing.T) {
	tuesday := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)
	g := NewGenerator(fixedClock(tuesday), time.UTC)
	g.Reset(true)

	g.Assign([]*entity.Order{
		orderDue(1, 2024, time.March, 8),
		orderDue(2, 2024, time.March, 11),
		orderDue(3, 2024, time.March, 12),
	})

	assert.Equal(t, "Recent", g.Lookup(1).Main)
	assert.Equal(t, "Yesterday", g.Lookup(2).Main)
	assert.Equal(t, "Today", g.Lookup(3).Main)
	assert.Len(t, g.chain, 5)
}

func TestGenerator_WithoutPrevious(t *testing.T) {
	g := NewGenerator(fixedClock(wednesday), time.UTC)
	g.Reset(false)

	g.Assign([]*entity.Order{orderDue(1, 2024, time.March, 12)})
	assert.Nil(t, g.Lookup(1), "yesterday has no band without previous orders")

	g.Assign([]*entity.Order{
		orderDue(2, 2024, time.March, 13),
		orderDue(3, 2024, time.March, 16),
		orderDue(4, 2024, time.March, 25),
	})

	assert.Equal(t, "Today", g.Lookup(2).Main)
	assert.Equal(t, Header{Main: "This week", Secondary: "Thu, Mar 14 - Sun, Mar 17"}, *g.Lookup(3))
	assert.Equal(t, "Upcoming", g.Lookup(4).Main)
}

func TestGenerator_AssignAcrossPages(t *testing.T) {
	g := NewGenerator(fixedClock(wednesday), time.UTC)
	g.Reset(false)

	g.Assign([]*entity.Order{orderDue(1, 2024, time.March, 13), orderDue(2, 2024, time.March, 13)})
	g.Assign([]*entity.Order{orderDue(3, 2024, time.March, 14), orderDue(4, 2024, time.March, 20)})

	assert.Equal(t, "Today", g.Lookup(2).Main)
	assert.Equal(t, "This week", g.Lookup(3).Main)
	assert.True(t, g.IsFirstInGroup(3))
	assert.Equal(t, "Upcoming", g.Lookup(4).Main)
	assert.True(t, g.IsFirstInGroup(4))
}

// A band selected by an earlier batch is never reused: a later batch that
// still holds orders of that band stops there.
func TestGenerator_SelectedBandNotReusedAcrossBatches(t *testing.T) {
	g := NewGenerator(fixedClock(wednesday), time.UTC)
	g.Reset(false)

	g.Assign([]*entity.Order{orderDue(1, 2024, time.March, 13), orderDue(2, 2024, time.March, 13)})
	g.Assign([]*entity.Order{orderDue(3, 2024, time.March, 13), orderDue(4, 2024, time.March, 14)})

	assert.Equal(t, "Today", g.Lookup(1).Main)
	assert.Nil(t, g.Lookup(3))
	assert.False(t, g.IsFirstInGroup(3))
	assert.Nil(t, g.Lookup(4), "the batch stops at the first unbanded order")
}

func TestGenerator_AssignIsIdempotent(t *testing.T) {
	g := NewGenerator(fixedClock(wednesday), time.UTC)
	g.Reset(true)
	batch := []*entity.Order{orderDue(1, 2024, time.March, 13), orderDue(2, 2024, time.March, 20)}

	g.Assign(batch)
	first := *g.Lookup(1)
	g.Assign(batch)

	assert.Equal(t, first, *g.Lookup(1))
	assert.Equal(t, "Upcoming", g.Lookup(2).Main)
	assert.True(t, g.IsFirstInGroup(1))
}

// Batches must arrive in date order. A later batch holding an earlier date
// than one already banded gets no header because the cursor never rewinds.
func TestGenerator_OutOfOrderBatchIsNotBanded(t *testing.T) {
	g := NewGenerator(fixedClock(wednesday), time.UTC)
	g.Reset(false)

	g.Assign([]*entity.Order{orderDue(1, 2024, time.March, 13), orderDue(2, 2024, time.March, 22)})
	g.Assign([]*entity.Order{orderDue(3, 2024, time.March, 14), orderDue(4, 2024, time.March, 29)})

	assert.Equal(t, "Upcoming", g.Lookup(2).Main)
	assert.Nil(t, g.Lookup(3))
	assert.Nil(t, g.Lookup(4), "the batch stops at the first unbanded order")
}

func TestGenerator_ResetClearsAssignments(t *testing.T) {
	g := NewGenerator(fixedClock(wednesday), time.UTC)
	g.Reset(false)
	g.Assign([]*entity.Order{orderDue(1, 2024, time.March, 20)})
	require.NotNil(t, g.Lookup(1))

	g.Reset(false)
	assert.Nil(t, g.Lookup(1))

	g.Assign([]*entity.Order{orderDue(2, 2024, time.March, 13)})
	assert.Equal(t, "Today", g.Lookup(2).Main)
}

func TestGenerator_DueDateIgnoresLocationOffset(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("time zone database unavailable")
	}
	now := time.Date(2024, time.March, 13, 20, 0, 0, 0, newYork)
	g := NewGenerator(fixedClock(now), newYork)
	g.Reset(false)

	g.Assign([]*entity.Order{orderDue(1, 2024, time.March, 13)})

	assert.Equal(t, "Today", g.Lookup(1).Main)
}
