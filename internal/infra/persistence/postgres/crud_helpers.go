package postgres

import (
	"context"
	"strings"

	"bakery/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern escapes LIKE wildcards in filter and wraps it for substring matching.
func likePattern(filter string) string {
	return "%" + likeEscaper.Replace(filter) + "%"
}

// applyPage adds ordering, offset and limit. Sort fields missing from columns
// are ignored; defaults apply when no valid field remains.
func applyPage(db *gorm.DB, page repository.PageRequest, columns map[string]string, defaults ...string) *gorm.DB {
	page = page.Normalize()

	sorted := false
	for _, s := range page.Sort {
		column, ok := columns[s.Field]
		if !ok {
			continue
		}
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: column, Raw: true}, Desc: s.Descending})
		sorted = true
	}
	if !sorted {
		for _, d := range defaults {
			db = db.Order(d)
		}
	}

	return db.Offset(page.Offset()).Limit(page.Size)
}

// matchExpr matches filter case-insensitively as a substring of col.
func matchExpr(col field.String, filter string) field.Expr {
	return col.Lower().Like(strings.ToLower(likePattern(filter)))
}

// sortExprs resolves the page sort through columns and lookup. Unknown fields
// are skipped and defaults apply when none remain.
func sortExprs(page repository.PageRequest, columns map[string]string, lookup func(string) (field.OrderExpr, bool), defaults ...field.Expr) []field.Expr {
	var exprs []field.Expr
	for _, s := range page.Normalize().Sort {
		column, ok := columns[s.Field]
		if !ok {
			continue
		}
		col, ok := lookup(column)
		if !ok {
			continue
		}
		if s.Descending {
			exprs = append(exprs, col.Desc())
		} else {
			exprs = append(exprs, col.Asc())
		}
	}
	if len(exprs) == 0 {
		return defaults
	}

	return exprs
}

// versionedUpdate writes values to the row with id if it is still at version
// and returns the incremented version.
func versionedUpdate(ctx context.Context, db *gorm.DB, table string, id int64, version int, values map[string]any) (int, error) {
	values["version"] = gorm.Expr("version + 1")

	res := db.WithContext(ctx).Table(table).Where("id = ? AND version = ?", id, version).Updates(values)
	if res.Error != nil {
		return 0, translateDBError(res.Error, "failed to update "+table)
	}
	if res.RowsAffected > 0 {
		return version + 1, nil
	}

	var count int64
	if err := db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return 0, translateDBError(err, "failed to check "+table)
	}
	if count == 0 {
		return 0, errors.Wrapf(repository.ErrNotFound, "%s %d", table, id)
	}

	return 0, errors.Wrapf(repository.ErrVersionConflict, "%s %d is not at version %d", table, id, version)
}

// deleteByID removes the row of model with id.
func deleteByID(ctx context.Context, db *gorm.DB, model any, table string, id int64) error {
	res := db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return translateDBError(res.Error, "failed to delete from "+table)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrNotFound, "%s %d", table, id)
	}

	return nil
}

// count returns the number of rows in scope.
func count(ctx context.Context, scope *gorm.DB, model any, op string) (int64, error) {
	var total int64
	if err := scope.WithContext(ctx).Model(model).Count(&total).Error; err != nil {
		return 0, translateDBError(err, op)
	}

	return total, nil
}
