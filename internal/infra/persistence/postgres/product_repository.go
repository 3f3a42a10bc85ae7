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

var productSortColumns = map[string]string{
	"id":    "id",
	"name":  "name",
	"price": "price",
}

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db, q: query.Use(db)}
}

func (repo *productRepository) conditions(filter string) []gen.Condition {
	if filter == "" {
		return nil
	}

	return []gen.Condition{matchExpr(repo.q.ProductModel.Name, filter)}
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	m, err := repo.q.ProductModel.WithContext(ctx).
		Where(repo.q.ProductModel.ID.Eq(id)).
		First()
	if err != nil {
		return nil, translateDBError(err, "failed to find product by id")
	}

	return toProductDomain(m), nil
}

func (repo *productRepository) FindAnyMatching(ctx context.Context, filter string, page repository.PageRequest) (*repository.Page[*entity.Product], error) {
	total, err := repo.CountAnyMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	p := repo.q.ProductModel
	page = page.Normalize()
	models, err := p.WithContext(ctx).
		Where(repo.conditions(filter)...).
		Order(sortExprs(page, productSortColumns, p.GetFieldByName, p.Name, p.ID)...).
		Offset(page.Offset()).
		Limit(page.Size).
		Find()
	if err != nil {
		return nil, translateDBError(err, "failed to list products")
	}

	items := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		items = append(items, toProductDomain(m))
	}

	return repository.NewPage(items, total, page), nil
}

func (repo *productRepository) CountAnyMatching(ctx context.Context, filter string) (int64, error) {
	total, err := repo.q.ProductModel.WithContext(ctx).Where(repo.conditions(filter)...).Count()
	if err != nil {
		return 0, translateDBError(err, "failed to count products")
	}

	return total, nil
}

func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	return repo.CountAnyMatching(ctx, "")
}

func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	if product.IsNew() {
		m := fromProductDomain(product)
		m.Version = 1
		if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
			return translateDBError(err, "failed to create product")
		}
		product.ID = m.ID
		product.Version = m.Version

		return nil
	}

	version, err := versionedUpdate(ctx, repo.db, model.ProductModel{}.TableName(), product.ID, product.Version, map[string]any{
		"name":  product.Name,
		"price": product.Price,
	})
	if err != nil {
		return err
	}
	product.Version = version

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.db, &model.ProductModel{}, model.ProductModel{}.TableName(), id)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:      data.ID,
		Version: data.Version,
		Name:    data.Name,
		Price:   data.Price,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:      data.ID,
		Version: data.Version,
		Name:    data.Name,
		Price:   data.Price,
	}
}
