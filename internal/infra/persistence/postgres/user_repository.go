package postgres

import (
	"context"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
	"bakery/internal/infra/persistence/model"
	"bakery/internal/infra/persistence/postgres/query"

	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

var userSortColumns = map[string]string{
	"id":        "id",
	"email":     "email",
	"firstName": "first_name",
	"lastName":  "last_name",
	"role":      "role",
}

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db, q: query.Use(db)}
}

// conditions matches filter against email, first name and last name.
func (repo *userRepository) conditions(filter string) []gen.Condition {
	if filter == "" {
		return nil
	}

	u := repo.q.UserModel
	return []gen.Condition{field.Or(
		matchExpr(u.Email, filter),
		matchExpr(u.FirstName, filter),
		matchExpr(u.LastName, filter),
	)}
}

// FindByID retrieves a single user by id.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	m, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		First()
	if err != nil {
		return nil, translateDBError(err, "failed to find user by id")
	}

	return toUserDomain(m), nil
}

// FindByEmail retrieves a single user by their normalized email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Email.Eq(email)).
		First()
	if err != nil {
		return nil, translateDBError(err, "failed to find user by email")
	}

	return toUserDomain(m), nil
}

func (repo *userRepository) FindAnyMatching(ctx context.Context, filter string, page repository.PageRequest) (*repository.Page[*entity.User], error) {
	total, err := repo.CountAnyMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	u := repo.q.UserModel
	page = page.Normalize()
	models, err := u.WithContext(ctx).
		Where(repo.conditions(filter)...).
		Order(sortExprs(page, userSortColumns, u.GetFieldByName, u.LastName, u.FirstName, u.ID)...).
		Offset(page.Offset()).
		Limit(page.Size).
		Find()
	if err != nil {
		return nil, translateDBError(err, "failed to list users")
	}

	items := make([]*entity.User, 0, len(models))
	for _, m := range models {
		items = append(items, toUserDomain(m))
	}

	return repository.NewPage(items, total, page), nil
}

func (repo *userRepository) CountAnyMatching(ctx context.Context, filter string) (int64, error) {
	total, err := repo.q.UserModel.WithContext(ctx).Where(repo.conditions(filter)...).Count()
	if err != nil {
		return 0, translateDBError(err, "failed to count users")
	}

	return total, nil
}

func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	return repo.CountAnyMatching(ctx, "")
}

// Save creates or updates a user. The locked flag is never written.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	if user.IsNew() {
		m := fromUserDomain(user)
		m.Version = 1
		m.Locked = false
		if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
			return translateDBError(err, "failed to create user")
		}
		user.ID = m.ID
		user.Version = m.Version

		return nil
	}

	version, err := versionedUpdate(ctx, repo.db, model.UserModel{}.TableName(), user.ID, user.Version, map[string]any{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"role":          user.Role.String(),
	})
	if err != nil {
		return err
	}
	user.Version = version

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, repo.db, &model.UserModel{}, model.UserModel{}.TableName(), id)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Version:      data.Version,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         entity.Role(data.Role),
		Locked:       data.Locked,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Version:      data.Version,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         data.Role.String(),
		Locked:       data.Locked,
	}
}
