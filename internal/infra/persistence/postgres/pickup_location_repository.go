package postgres

import (
	"context"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
	"bakery/internal/infra/persistence/model"
	"bakery/internal/infra/persistence/postgres/query"

	"gorm.io/gen"
	"gorm.io/gorm"
)

var pickupLocationSortColumns = map[string]string{
	"id":   "id",
	"name": "name",
}

// pickupLocationRepository implements repository.PickupLocationRepository using GORM.
type pickupLocationRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewPickupLocationRepository is the constructor for pickupLocationRepository.
func NewPickupLocationRepository(db *gorm.DB) repository.PickupLocationRepository {
	return &pickupLocationRepository{db: db, q: query.Use(db)}
}

func (repo *pickupLocationRepository) conditions(filter string) []gen.Condition {
	if filter == "" {
		return nil
	}

	return []gen.Condition{matchExpr(repo.q.PickupLocationModel.Name, filter)}
}

func (repo *pickupLocationRepository) FindByID(ctx context.Context, id int64) (*entity.PickupLocation, error) {
	m, err := repo.q.PickupLocationModel.WithContext(ctx).
		Where(repo.q.PickupLocationModel.ID.Eq(id)).
		First()
	if err != nil {
		return nil, translateDBError(err, "failed to find pickup location by id")
	}

	return toPickupLocationDomain(m), nil
}

// FindAnyMatching lists locations ordered by id unless the page sorts otherwise,
// so the first row is the default location.
func (repo *pickupLocationRepository) FindAnyMatching(ctx context.Context, filter string, page repository.PageRequest) (*repository.Page[*entity.PickupLocation], error) {
	total, err := repo.CountAnyMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	l := repo.q.PickupLocationModel
	page = page.Normalize()
	models, err := l.WithContext(ctx).
		Where(repo.conditions(filter)...).
		Order(sortExprs(page, pickupLocationSortColumns, l.GetFieldByName, l.ID)...).
		Offset(page.Offset()).
		Limit(page.Size).
		Find()
	if err != nil {
		return nil, translateDBError(err, "failed to list pickup locations")
	}

	items := make([]*entity.PickupLocation, 0, len(models))
	for _, m := range models {
		items = append(items, toPickupLocationDomain(m))
	}

	return repository.NewPage(items, total, page), nil
}

func (repo *pickupLocationRepository) CountAnyMatching(ctx context.Context, filter string) (int64, error) {
	total, err := repo.q.PickupLocationModel.WithContext(ctx).Where(repo.conditions(filter)...).Count()
	if err != nil {
		return 0, translateDBError(err, "failed to count pickup locations")
	}

	return total, nil
}

func (repo *pickupLocationRepository) Count(ctx context.Context) (int64, error) {
	return repo.CountAnyMatching(ctx, "")
}

func (repo *pickupLocationRepository) Save(ctx context.Context, location *entity.PickupLocation) error {
	if location.IsNew() {
		m := &model.PickupLocationModel{Name: location.Name, Version: 1}
		if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
			return translateDBError(err, "failed to create pickup location")
		}
		location.ID = m.ID
		location.Version = m.Version

		return nil
	}

	version, err := versionedUpdate(ctx, repo.db, model.PickupLocationModel{}.TableName(), location.ID, location.Version, map[string]any{
		"name": location.Name,
	})
	if err != nil {
		return err
	}
	location.Version = version

	return nil
}

func (repo *pickupLocationRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.db, &model.PickupLocationModel{}, model.PickupLocationModel{}.TableName(), id)
}

func toPickupLocationDomain(data *model.PickupLocationModel) *entity.PickupLocation {
	if data == nil {
		return nil
	}

	return &entity.PickupLocation{
		ID:      data.ID,
		Version: data.Version,
		Name:    data.Name,
	}
}
