package repository

import "bakery/internal/domain/entity"

// PickupLocationRepository stores pickup locations. The filter matches the name.
type PickupLocationRepository interface {
	CrudRepository[*entity.PickupLocation]
}
