// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"
)

// crudPolicy holds the per-entity hooks of a crudService. Nil hooks are skipped.
type crudPolicy[T any] struct {
	name string

	newEntity func(currentUser *entity.User) T

	// validate runs before the transaction starts.
	validate func(e T) error

	// beforeSave runs inside the save transaction.
	beforeSave func(ctx context.Context, repo repository.CrudRepository[T], currentUser *entity.User, e T) error

	// beforeDelete runs inside the delete transaction with the stored entity.
	beforeDelete func(ctx context.Context, currentUser *entity.User, stored T) error

	// duplicateErr replaces a unique violation on save.
	duplicateErr error
}

// crudService implements FilterableCrudUsecase on top of a repository and a policy.
type crudService[T any] struct {
	txManager repository.TransactionManager
	repo      repository.CrudRepository[T]
	txRepo    func(repository.RepositoryFactory) repository.CrudRepository[T]
	policy    crudPolicy[T]
	logger    *slog.Logger
}

func (s *crudService[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

func (s *crudService[T]) CreateNew(_ context.Context, currentUser *entity.User) T {
	return s.policy.newEntity(currentUser)
}

func (s *crudService[T]) Save(ctx context.Context, currentUser *entity.User, e T) (T, error) {
	var zero T
	if s.policy.validate != nil {
		if err := s.policy.validate(e); err != nil {
			return zero, err
		}
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := s.txRepo(factory)
		if s.policy.beforeSave != nil {
			if err := s.policy.beforeSave(ctx, repo, currentUser, e); err != nil {
				return err
			}
		}

		return repo.Save(ctx, e)
	})
	if err != nil {
		s.log(ctx).Warn("Failed to save "+s.policy.name, slog.Any("error", err))

		return zero, translateRepoError(err, s.policy.duplicateErr)
	}

	return e, nil
}

func (s *crudService[T]) Delete(ctx context.Context, currentUser *entity.User, id int64) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := s.txRepo(factory)
		stored, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if s.policy.beforeDelete != nil {
			if err := s.policy.beforeDelete(ctx, currentUser, stored); err != nil {
				return err
			}
		}

		return repo.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Warn("Failed to delete "+s.policy.name, slog.Int64("id", id), slog.Any("error", err))

		return translateRepoError(err, s.policy.duplicateErr)
	}

	return nil
}

func (s *crudService[T]) Load(ctx context.Context, id int64) (T, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var zero T

		return zero, translateRepoError(err, nil)
	}

	return e, nil
}

func (s *crudService[T]) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, translateRepoError(err, nil)
	}

	return count, nil
}

func (s *crudService[T]) FindAnyMatching(ctx context.Context, filter string, page repository.PageRequest) (*repository.Page[T], error) {
	result, err := s.repo.FindAnyMatching(ctx, filter, page.Normalize())
	if err != nil {
		return nil, translateRepoError(err, nil)
	}

	return result, nil
}

func (s *crudService[T]) CountAnyMatching(ctx context.Context, filter string) (int64, error) {
	count, err := s.repo.CountAnyMatching(ctx, filter)
	if err != nil {
		return 0, translateRepoError(err, nil)
	}

	return count, nil
}

// translateRepoError maps repository sentinels onto user-facing errors.
// Errors that already are AppErrors pass through.
func translateRepoError(err error, duplicateErr error) error {
	if err == nil {
		return nil
	}
	if _, ok := domainerrors.AsAppError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return domainerrors.ErrEntityNotFound.WrapMessage(err.Error())
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrConcurrentUpdate.WrapMessage(err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		if duplicateErr != nil {
			return errors.Wrap(duplicateErr, err.Error())
		}

		return domainerrors.ErrOperationPreventedByReferences.WrapMessage(err.Error())
	case errors.Is(err, repository.ErrReferenced):
		return domainerrors.ErrOperationPreventedByReferences.WrapMessage(err.Error())
	default:
		return errors.WithStack(err)
	}
}

// requireText reports a missing or overlong text field.
func requireText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" || len([]rune(value)) > maxLen {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails(field)
	}

	return nil
}

// optionalText reports an overlong optional text field.
func optionalText(field, value string, maxLen int) error {
	if len([]rune(value)) > maxLen {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails(field)
	}

	return nil
}
