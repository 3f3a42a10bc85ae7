// Package storefront groups the storefront order list into date bands such as
// "Today" or "Upcoming".
//
// A Generator is not safe for concurrent use; create one per request or view.
package storefront

import (
	"time"

	"bakery/internal/domain/entity"
)

// CaptionDateLayout formats dates in secondary captions, e.g. "Tue, Mar 5".
const CaptionDateLayout = "Mon, Jan 2"

const cursorDone = -1

// Header is the caption pair shown above a band of orders.
type Header struct {
	Main      string `json:"main"`
	Secondary string `json:"secondary"`
}

type band struct {
	header   Header
	matches  func(date time.Time) bool
	selected int64 // first order id assigned to the band, zero when unused
}

// Generator assigns orders to the bands of a chain built by Reset. Orders
// must be fed in non-decreasing due date order within one reset cycle.
type Generator struct {
	now      func() time.Time
	location *time.Location

	chain   []*band
	cursor  int
	headers map[int64]*Header
	leads   map[int64]bool
}

// NewGenerator returns a generator using clock and location to decide what
// "today" is. A nil clock means time.Now, a nil location means time.Local.
func NewGenerator(clock func() time.Time, location *time.Location) *Generator {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.Local
	}

	g := &Generator{now: clock, location: location}
	g.Reset(false)

	return g
}

// Reset rebuilds the band chain and forgets every assignment.
func (g *Generator) Reset(showPrevious bool) {
	g.chain = g.buildChain(showPrevious)
	g.cursor = 0
	g.headers = make(map[int64]*Header)
	g.leads = make(map[int64]bool)
}

// Assign maps every order to the band its due date falls in. The scan moves
// forward only and each call resumes at the first band no earlier call
// selected, so a run of same-band orders continues only within one batch. An
// order that matches no remaining band ends the batch.
func (g *Generator) Assign(orders []*entity.Order) {
	current := g.firstUnselected()
	if current == cursorDone {
		return
	}

	for _, order := range orders {
		if order == nil {
			continue
		}
		if _, ok := g.headers[order.ID]; ok {
			continue
		}

		next := g.advance(current, g.calendarDate(order.DueDate))
		if next == cursorDone {
			return
		}
		current = next
		g.cursor = next

		band := g.chain[next]
		if band.selected == 0 {
			band.selected = order.ID
			g.leads[order.ID] = true
		}
		g.headers[order.ID] = &band.header
	}
}

// Lookup returns the header assigned to id, or nil.
func (g *Generator) Lookup(id int64) *Header {
	return g.headers[id]
}

// IsFirstInGroup reports whether id opened its band.
func (g *Generator) IsFirstInGroup(id int64) bool {
	return g.leads[id]
}

// firstUnselected returns the index of the first band at or after the cursor
// that has no order yet, or cursorDone.
func (g *Generator) firstUnselected() int {
	for i := g.cursor; i < len(g.chain); i++ {
		if g.chain[i].selected == 0 {
			return i
		}
	}

	return cursorDone
}

// advance returns the index of the first band from start that matches date,
// or cursorDone.
func (g *Generator) advance(start int, date time.Time) int {
	for i := start; i < len(g.chain); i++ {
		if g.chain[i].matches(date) {
			return i
		}
	}

	return cursorDone
}

func (g *Generator) buildChain(showPrevious bool) []*band {
	today := g.calendarDate(g.now().In(g.location))
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := today.AddDate(0, 0, -(isoWeekday(today) - 1))
	nextWeekStart := weekStart.AddDate(0, 0, 7)
	weekEnd := nextWeekStart.AddDate(0, 0, -1)

	chain := make([]*band, 0, 6)
	if showPrevious {
		chain = append(chain, &band{
			header:  Header{Main: "Recent", Secondary: "Before this week"},
			matches: func(d time.Time) bool { return d.Before(weekStart) },
		})
		if weekStart.Before(yesterday) {
			chain = append(chain, &band{
				header: Header{Main: "This week before yesterday", Secondary: caption(weekStart, yesterday)},
				matches: func(d time.Time) bool {
					return !d.Before(weekStart) && d.Before(yesterday)
				},
			})
		}
		chain = append(chain, &band{
			header:  Header{Main: "Yesterday", Secondary: caption(yesterday)},
			matches: yesterday.Equal,
		})
	}

	thisWeek := "This week"
	if showPrevious {
		thisWeek = "This week starting tomorrow"
	}
	chain = append(chain,
		&band{
			header:  Header{Main: "Today", Secondary: caption(today)},
			matches: today.Equal,
		},
		&band{
			header: Header{Main: thisWeek, Secondary: caption(tomorrow, weekEnd)},
			matches: func(d time.Time) bool {
				return d.After(today) && d.Before(nextWeekStart)
			},
		},
		&band{
			header:  Header{Main: "Upcoming", Secondary: "After this week"},
			matches: func(d time.Time) bool { return !d.Before(nextWeekStart) },
		},
	)

	return chain
}

// calendarDate keeps the year, month and day of t as written and drops the
// time of day, so due dates loaded as UTC midnight compare correctly.
func (g *Generator) calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, g.location)
}

// isoWeekday numbers Monday as 1 and Sunday as 7.
func isoWeekday(t time.Time) int {
	if wd := t.Weekday(); wd != time.Sunday {
		return int(wd)
	}

	return 7
}

func caption(dates ...time.Time) string {
	if len(dates) == 1 {
		return dates[0].Format(CaptionDateLayout)
	}

	return dates[0].Format(CaptionDateLayout) + " - " + dates[len(dates)-1].Format(CaptionDateLayout)
}
