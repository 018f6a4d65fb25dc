package commands

import (
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/pkg/errs"
)

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

// Conflicts are passed through untouched so the unit of work can retry them.
func stockErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindStockShortage):
		return errs.Mark(err, errs.ErrInsufficientStock)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrProductNotFound)
	default:
		return err
	}
}
