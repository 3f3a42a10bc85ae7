package repository

import "bakery/internal/domain/entity"

// ProductRepository stores products. The filter matches the name.
type ProductRepository interface {
	CrudRepository[*entity.Product]
}
