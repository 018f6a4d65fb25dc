//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"commerce-order-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkIsVisibleThroughWrap(t *testing.T) {
	cause := errors.New("row missing")
	err := errs.Wrap(errs.Mark(cause, errs.ErrProductNotFound), "load product")

	assert.True(t, errs.Is(err, errs.ErrProductNotFound))
	assert.True(t, errs.Is(err, cause))
	assert.False(t, errs.Is(err, errs.ErrUserNotFound))
}

func TestAsInfrastructure(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.AsInfrastructure(nil))
	})

	t.Run("business error untouched", func(t *testing.T) {
		err := errs.Wrap(errs.ErrInsufficientStock, "product p1")
		got := errs.AsInfrastructure(err)
		assert.Equal(t, err, got)
		assert.False(t, errs.Is(got, errs.ErrInfrastructure))
	})

	t.Run("unknown error marked", func(t *testing.T) {
		got := errs.AsInfrastructure(errors.New("connection refused"))
		assert.True(t, errs.Is(got, errs.ErrInfrastructure))
		assert.False(t, errs.IsBusiness(got))
	})
}

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "OK"},
		{errs.ErrRefundNotAllowed, "REFUND_NOT_ALLOWED"},
		{errs.Mark(errors.New("x"), errs.ErrUserNotFound), "USER_NOT_FOUND"},
		{errs.Wrap(errs.ErrInvalidQuantity, "qty 0"), "INVALID_QUANTITY"},
		{errs.AsInfrastructure(errors.New("boom")), "INFRASTRUCTURE"},
		{errors.New("boom"), "INTERNAL"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, errs.Code(c.err))
	}
}
