package impl

import (
	"log/slog"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/usecase"

	"go.uber.org/fx"
)

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

type productService struct {
	*crudService[*entity.Product]
}

// NewProductService returns the product catalogue service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		crudService: &crudService[*entity.Product]{
			txManager: params.TxManager,
			repo:      params.ProductRepo,
			txRepo: func(f repository.RepositoryFactory) repository.CrudRepository[*entity.Product] {
				return f.ProductRepo()
			},
			logger: params.Logger,
			policy: crudPolicy[*entity.Product]{
				name:         "product",
				newEntity:    func(*entity.User) *entity.Product { return &entity.Product{} },
				validate:     validateProduct,
				duplicateErr: domainerrors.ErrDuplicateProductName,
			},
		},
	}
}

func validateProduct(p *entity.Product) error {
	if p == nil {
		return domainerrors.ErrRequiredFieldsMissing
	}
	if err := requireText("name", p.Name, entity.MaxTextLength); err != nil {
		return err
	}
	if p.Price < entity.MinProductPrice || p.Price > entity.MaxProductPrice {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("price")
	}

	return nil
}
