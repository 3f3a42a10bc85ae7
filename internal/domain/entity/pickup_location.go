package entity

// PickupLocation is a place where customers collect their orders.
type PickupLocation struct {
	ID      int64
	Version int
	Name    string // Unique across locations.
}

// IsNew reports whether the location has not been persisted yet.
func (p *PickupLocation) IsNew() bool {
	return p.ID == 0
}
