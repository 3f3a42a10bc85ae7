package main

import (
	"bakery/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Orders and their children are queried through hand-written joins and
// aggregates, so only the catalog and account tables get generated builders.
func main() {
	models := []any{
		model.ProductModel{},
		model.PickupLocationModel{},
		model.UserModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
