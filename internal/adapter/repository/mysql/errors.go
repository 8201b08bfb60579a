package mysql

import (
	"errors"

	"gorm.io/gorm"

	"credit-engine/internal/domain/errs"
)

// translate maps gorm failures onto domain error kinds. Repositories are
// expected to run with gorm.Config.TranslateError so duplicates surface as
// gorm.ErrDuplicatedKey for every dialect.
func translate(entity string, notFound error, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &errs.Error{Kind: errs.KindConflict, Entity: entity, Message: entity + " already exists", Err: err}
	default:
		return errs.Persistence(entity, err)
	}
}
