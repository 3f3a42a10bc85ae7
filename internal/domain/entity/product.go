package entity

const (
	// MinProductPrice is the lowest accepted price in cents.
	MinProductPrice = 0
	// MaxProductPrice is the highest accepted price in cents.
	MaxProductPrice = 100000
)

// Product is something the bakery sells. Price is kept in cents.
type Product struct {
	ID      int64
	Version int
	Name    string // Unique across products.
	Price   int
}

// IsNew reports whether the product has not been persisted yet.
func (p *Product) IsNew() bool {
	return p.ID == 0
}
