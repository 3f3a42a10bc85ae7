package impl

import (
	"context"
	"log/slog"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/usecase"

	"go.uber.org/fx"
)

// PickupLocationServiceParams holds dependencies for PickupLocationService, injected by Fx.
type PickupLocationServiceParams struct {
	fx.In

	TxManager          repository.TransactionManager
	PickupLocationRepo repository.PickupLocationRepository
	Logger             *slog.Logger
}

type pickupLocationService struct {
	*crudService[*entity.PickupLocation]
}

// NewPickupLocationService returns the pickup location service.
func NewPickupLocationService(params PickupLocationServiceParams) usecase.PickupLocationUsecase {
	return &pickupLocationService{
		crudService: &crudService[*entity.PickupLocation]{
			txManager: params.TxManager,
			repo:      params.PickupLocationRepo,
			txRepo: func(f repository.RepositoryFactory) repository.CrudRepository[*entity.PickupLocation] {
				return f.PickupLocationRepo()
			},
			logger: params.Logger,
			policy: crudPolicy[*entity.PickupLocation]{
				name:      "pickup location",
				newEntity: func(*entity.User) *entity.PickupLocation { return &entity.PickupLocation{} },
				validate: func(p *entity.PickupLocation) error {
					if p == nil {
						return domainerrors.ErrRequiredFieldsMissing
					}

					return requireText("name", p.Name, entity.MaxTextLength)
				},
				duplicateErr: domainerrors.ErrDuplicatePickupLocationName,
			},
		},
	}
}

// GetDefault returns the pickup location with the lowest id.
func (s *pickupLocationService) GetDefault(ctx context.Context) (*entity.PickupLocation, error) {
	page, err := s.FindAnyMatching(ctx, "", repository.PageRequest{Page: 0, Size: 1})
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return nil, domainerrors.ErrEntityNotFound.WrapMessage("no pickup location configured")
	}

	return page.Items[0], nil
}
